// Package llm talks to OpenAI-compatible chat completion endpoints.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Role values accepted by the completions API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultURL is the Groq OpenAI-compatible completions endpoint.
const DefaultURL = "https://api.groq.com/openai/v1/chat/completions"

// ErrMissingAPIKey is returned before any network call when no key is set.
var ErrMissingAPIKey = errors.New("llm: api key not configured")

// Message is one transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces the next assistant reply for a transcript. An empty
// string with a nil error means the upstream returned no usable choice.
type Completer interface {
	Complete(ctx context.Context, transcript []Message) (string, error)
}

// StatusError reports a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm: upstream returned %d: %s", e.StatusCode, e.Body)
}

// Options configures a Client.
type Options struct {
	URL         string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client calls a chat completions endpoint over HTTP.
type Client struct {
	opts       Options
	httpClient *http.Client
}

// NewClient builds a client. A nil httpClient gets one with opts.Timeout.
func NewClient(opts Options, httpClient *http.Client) *Client {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{opts: opts, httpClient: httpClient}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete posts the transcript and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, transcript []Message) (string, error) {
	if strings.TrimSpace(c.opts.APIKey) == "" {
		return "", ErrMissingAPIKey
	}
	payload, err := json.Marshal(completionRequest{
		Model:       c.opts.Model,
		Messages:    transcript,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var decoded completionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", nil
	}
	return decoded.Choices[0].Message.Content, nil
}
