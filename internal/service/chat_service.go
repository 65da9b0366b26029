package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/llm"
)

// Chat replies shown to the visitor.
const (
	ChatInvalidRequest = "Invalid request"
	ChatGenericError   = "Something went wrong. Please try again."
	ChatFallbackReply  = "Sorry, I couldn't generate a response."
)

//go:embed prompts/system_prompt.txt
var defaultSystemPrompt string

// LoadSystemPrompt reads the prompt from path, or returns the built-in prompt
// when path is empty.
func LoadSystemPrompt(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return strings.TrimSpace(defaultSystemPrompt), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read system prompt: %w", err)
	}
	prompt := strings.TrimSpace(string(raw))
	if prompt == "" {
		return "", fmt.Errorf("system prompt %s is empty", path)
	}
	return prompt, nil
}

// ChatService relays a visitor transcript to the language model.
type ChatService struct {
	completer llm.Completer
	prompt    string
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(completer llm.Completer, systemPrompt string, metrics *MetricsService, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if systemPrompt == "" {
		systemPrompt = strings.TrimSpace(defaultSystemPrompt)
	}
	return &ChatService{completer: completer, prompt: systemPrompt, metrics: metrics, logger: logger}
}

// ParseTranscript accepts only a non-empty JSON array of messages.
func (s *ChatService) ParseTranscript(raw json.RawMessage) ([]dto.ChatMessage, error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, appErrors.Clone(appErrors.ErrValidation, ChatInvalidRequest)
	}
	var messages []dto.ChatMessage
	if err := json.Unmarshal(raw, &messages); err != nil || len(messages) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, ChatInvalidRequest)
	}
	return messages, nil
}

// Transcript prepends the system prompt and maps every non-user role to
// assistant so the visitor cannot inject system turns.
func (s *ChatService) Transcript(messages []dto.ChatMessage) []llm.Message {
	out := make([]llm.Message, 0, len(messages)+1)
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: s.prompt})
	for _, m := range messages {
		role := llm.RoleAssistant
		if m.Role == llm.RoleUser {
			role = llm.RoleUser
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out
}

// Reply returns the assistant's answer. Failures carry the generic visitor
// message; an upstream error keeps the upstream status code.
func (s *ChatService) Reply(ctx context.Context, messages []dto.ChatMessage) (string, error) {
	start := time.Now()
	text, err := s.completer.Complete(ctx, s.Transcript(messages))
	if err != nil {
		outcome, status, code := ChatOutcomeError, http.StatusInternalServerError, appErrors.ErrInternal.Code
		var statusErr *llm.StatusError
		switch {
		case errors.As(err, &statusErr):
			outcome, status, code = ChatOutcomeUpstream, statusErr.StatusCode, appErrors.ErrUpstream.Code
		case errors.Is(err, llm.ErrCircuitOpen):
			outcome, status, code = ChatOutcomeCircuitOpen, http.StatusServiceUnavailable, appErrors.ErrUnavailable.Code
		}
		s.metrics.ObserveChat(outcome, time.Since(start))
		s.logger.Error("chat completion failed", zap.String("outcome", outcome), zap.Error(err))
		return "", appErrors.Wrap(err, code, status, ChatGenericError)
	}
	if text == "" {
		s.metrics.ObserveChat(ChatOutcomeFallback, time.Since(start))
		return ChatFallbackReply, nil
	}
	s.metrics.ObserveChat(ChatOutcomeOK, time.Since(start))
	return text, nil
}
