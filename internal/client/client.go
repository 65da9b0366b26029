// Package client is a typed HTTP client for the NextUp admin API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
)

// APIError is a non-2xx reply decoded from the response envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta map[string]interface{} `json:"meta"`
}

// Client talks to the API under baseURL, for example
// http://localhost:8080/api/v1.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// New constructs a Client. A nil httpClient gets a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SetToken sets the admin bearer token used for later calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current admin token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges the admin password for a token and keeps it.
func (c *Client) Login(ctx context.Context, password string) (*dto.AdminLoginResponse, error) {
	var res dto.AdminLoginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", dto.AdminLoginRequest{Password: password}, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.Token)
	return &res, nil
}

// Dashboard fetches the admin snapshot.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardSnapshot, error) {
	var snapshot models.DashboardSnapshot
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Enrollments lists enrollments, optionally filtered by status.
func (c *Client) Enrollments(ctx context.Context, status string) ([]models.Enrollment, error) {
	path := "/admin/enrollments"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []models.Enrollment
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Enrollment fetches one enrollment.
func (c *Client) Enrollment(ctx context.Context, id string) (*models.Enrollment, error) {
	var out models.Enrollment
	if err := c.do(ctx, http.MethodGet, "/admin/enrollments/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEnrollmentStatus verifies or rejects an enrollment.
func (c *Client) UpdateEnrollmentStatus(ctx context.Context, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	var out models.Enrollment
	if err := c.do(ctx, http.MethodPatch, "/admin/enrollments/"+url.PathEscape(id)+"/status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportEnrollments downloads the enrollment export and returns its file name
// and body.
func (c *Client) ExportEnrollments(ctx context.Context, format, status string) (string, []byte, error) {
	query := url.Values{}
	if format != "" {
		query.Set("format", format)
	}
	if status != "" {
		query.Set("status", status)
	}
	path := "/admin/enrollments/export"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("read export: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", nil, decodeError(resp.StatusCode, body)
	}
	filename := "enrollments." + format
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}
	return filename, body, nil
}

// Messages lists contact messages.
func (c *Client) Messages(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	if err := c.do(ctx, http.MethodGet, "/admin/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMessageStatus marks a message unread, read or replied.
func (c *Client) UpdateMessageStatus(ctx context.Context, id, status string) (*models.Message, error) {
	var out models.Message
	if err := c.do(ctx, http.MethodPatch, "/admin/messages/"+url.PathEscape(id)+"/status", dto.UpdateMessageStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Packages lists active packages.
func (c *Client) Packages(ctx context.Context) ([]models.Package, error) {
	var out []models.Package
	if err := c.do(ctx, http.MethodGet, "/admin/packages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePackage adds a package.
func (c *Client) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error) {
	var out models.Package
	if err := c.do(ctx, http.MethodPost, "/admin/packages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePackage changes the supplied package fields.
func (c *Client) UpdatePackage(ctx context.Context, id string, req dto.UpdatePackageRequest) (*models.Package, error) {
	var out models.Package
	if err := c.do(ctx, http.MethodPut, "/admin/packages/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePackage deactivates a package.
func (c *Client) DeletePackage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/packages/"+url.PathEscape(id), nil, nil)
}

// Destinations lists destinations.
func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	var out []models.Destination
	if err := c.do(ctx, http.MethodGet, "/admin/destinations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDestination adds a destination.
func (c *Client) CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error) {
	var out models.Destination
	if err := c.do(ctx, http.MethodPost, "/admin/destinations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDestination changes the supplied destination fields.
func (c *Client) UpdateDestination(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*models.Destination, error) {
	var out models.Destination
	if err := c.do(ctx, http.MethodPut, "/admin/destinations/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDestination removes a destination.
func (c *Client) DeleteDestination(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/destinations/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, body)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func decodeError(status int, body []byte) error {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
