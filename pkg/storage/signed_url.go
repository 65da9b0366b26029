package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// SignedURLSigner creates and validates signed download tokens for objects
// held by LocalStorage.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewSignedURLSigner constructs a signer with the provided secret and TTL.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate returns a signed token referencing bucket and object path.
func (s *SignedURLSigner) Generate(bucket, objectPath string) (string, time.Time, error) {
	if bucket == "" || objectPath == "" {
		return "", time.Time{}, fmt.Errorf("bucket and object path required")
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("signing secret missing")
	}
	expiresAt := time.Now().Add(s.ttl)
	encodedBucket := base64.RawURLEncoding.EncodeToString([]byte(bucket))
	encodedPath := base64.RawURLEncoding.EncodeToString([]byte(objectPath))
	ts := fmt.Sprintf("%d", expiresAt.Unix())
	signature := s.sign(encodedBucket, ts, encodedPath)
	token := strings.Join([]string{encodedBucket, ts, encodedPath, signature}, ".")
	return token, expiresAt, nil
}

// Parse validates a token and returns the embedded bucket and path.
func (s *SignedURLSigner) Parse(token string) (bucket, objectPath string, expiresAt time.Time, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", "", time.Time{}, fmt.Errorf("invalid token format")
	}
	encodedBucket, ts, encodedPath, signature := parts[0], parts[1], parts[2], parts[3]

	expected := s.sign(encodedBucket, ts, encodedPath)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", "", time.Time{}, fmt.Errorf("invalid token signature")
	}

	rawBucket, err := base64.RawURLEncoding.DecodeString(encodedBucket)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode bucket: %w", err)
	}
	rawPath, err := base64.RawURLEncoding.DecodeString(encodedPath)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("decode path: %w", err)
	}

	var expUnix int64
	if _, err := fmt.Sscanf(ts, "%d", &expUnix); err != nil {
		return "", "", time.Time{}, fmt.Errorf("invalid timestamp")
	}
	expiresAt = time.Unix(expUnix, 0)
	if time.Now().After(expiresAt) {
		return "", "", time.Time{}, fmt.Errorf("token expired")
	}
	return string(rawBucket), string(rawPath), expiresAt, nil
}

func (s *SignedURLSigner) sign(encodedBucket, ts, encodedPath string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(encodedBucket + "|" + ts + "|" + encodedPath))
	return hex.EncodeToString(mac.Sum(nil))
}
