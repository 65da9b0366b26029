package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps bucket objects on disk under a base directory. Public
// URLs are signed download links served by the API's file endpoint.
type LocalStorage struct {
	baseDir string
	baseURL string
	signer  *SignedURLSigner
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir, baseURL string, signer *SignedURLSigner) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if signer == nil {
		return nil, fmt.Errorf("local storage requires a url signer")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/"), signer: signer}, nil
}

// Upload copies body into bucket/path, replacing any existing object.
func (s *LocalStorage) Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target, err := s.resolve(bucket, path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", &Error{Op: "upload", Message: fmt.Sprintf("prepare bucket directory: %v", err)}
	}
	file, err := os.Create(target)
	if err != nil {
		return "", &Error{Op: "upload", Message: fmt.Sprintf("create object: %v", err)}
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, body); err != nil {
		return "", &Error{Op: "upload", Message: fmt.Sprintf("write object: %v", err)}
	}
	return s.PublicURL(bucket, path)
}

// Open returns a read-only handle for the stored object.
func (s *LocalStorage) Open(bucket, path string) (*os.File, error) {
	target, err := s.resolve(bucket, path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(target)
	if err != nil {
		return nil, fmt.Errorf("open object: %w", err)
	}
	return file, nil
}

// Delete removes a stored object if present.
func (s *LocalStorage) Delete(ctx context.Context, bucket, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return &Error{Op: "delete", Message: err.Error()}
	}
	return nil
}

// PublicURL returns a signed link for bucket/path.
func (s *LocalStorage) PublicURL(bucket, path string) (string, error) {
	token, _, err := s.signer.Generate(bucket, path)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + token, nil
}

// Signer exposes the signer used for public URLs so the file endpoint can
// verify tokens.
func (s *LocalStorage) Signer() *SignedURLSigner {
	return s.signer
}

func (s *LocalStorage) resolve(bucket, path string) (string, error) {
	if bucket == "" || path == "" {
		return "", &Error{Op: "resolve", Message: "bucket and path are required"}
	}
	cleaned := filepath.Clean("/" + filepath.FromSlash(path))
	if strings.Contains(bucket, "..") || strings.ContainsAny(bucket, `/\`) {
		return "", &Error{Op: "resolve", Message: "invalid bucket name"}
	}
	return filepath.Join(s.baseDir, bucket, cleaned), nil
}
