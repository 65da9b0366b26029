package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseStorage talks to the managed backend's storage REST API.
type SupabaseStorage struct {
	baseURL string
	key     string
	client  *http.Client
}

// NewSupabaseStorage builds a storage client for baseURL authenticated with
// the service key. A nil client gets a 30s timeout default.
func NewSupabaseStorage(baseURL, serviceKey string, client *http.Client) *SupabaseStorage {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &SupabaseStorage{baseURL: strings.TrimRight(baseURL, "/"), key: serviceKey, client: client}
}

type providerError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

type uploadResponse struct {
	Key string `json:"Key"`
}

// Upload stores body at bucket/path, overwriting an existing object.
func (s *SupabaseStorage) Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	s.authorize(req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &Error{Op: "upload", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeProviderError("upload", resp)
	}

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &Error{Op: "upload", Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return s.PublicURL(bucket, path)
}

// Delete removes bucket/path. Missing objects are not an error for the API.
func (s *SupabaseStorage) Delete(ctx context.Context, bucket, path string) error {
	body, err := json.Marshal(map[string][]string{"prefixes": {path}})
	if err != nil {
		return fmt.Errorf("encode delete request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, url.PathEscape(bucket))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &Error{Op: "delete", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeProviderError("delete", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// PublicURL returns the public object URL for buckets marked public.
func (s *SupabaseStorage) PublicURL(bucket, path string) (string, error) {
	if bucket == "" || path == "" {
		return "", &Error{Op: "public url", Message: "bucket and path are required"}
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path)), nil
}

func (s *SupabaseStorage) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)
}

func decodeProviderError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var payload providerError
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Error != "":
			message = payload.Error
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &Error{Op: op, Status: resp.StatusCode, Message: message}
}

func escapePath(path string) string {
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
