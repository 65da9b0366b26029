package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type messageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, msg *models.Message) error
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus, repliedAt *time.Time) (*models.Message, error)
}

// MessageService handles contact form submissions.
type MessageService struct {
	repo      messageRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMessageService constructs a MessageService.
func NewMessageService(repo messageRepository, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Create stores a contact message as unread.
func (s *MessageService) Create(ctx context.Context, req dto.CreateMessageRequest) (*models.Message, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}
	msg := &models.Message{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       blankToNil(req.Phone),
		Destination: blankToNil(req.Destination),
		Message:     req.Message,
		Status:      models.MessageStatusUnread,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send message")
	}
	return msg, nil
}

// List returns every message newest first.
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// UpdateStatus changes a message status. Marking it replied stamps replied_at
// with the current time, even when it was replied before.
func (s *MessageService) UpdateStatus(ctx context.Context, id string, req dto.UpdateMessageStatusRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message status")
	}
	status := models.MessageStatus(req.Status)
	var repliedAt *time.Time
	if status == models.MessageStatusReplied {
		now := s.now().UTC()
		repliedAt = &now
	}
	msg, err := s.repo.UpdateStatus(ctx, id, status, repliedAt)
	if err != nil {
		return nil, mapNotFound(err, "message not found", "failed to update message")
	}
	return msg, nil
}

func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
