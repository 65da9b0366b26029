package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type messageAdminService interface {
	List(ctx context.Context) ([]models.Message, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateMessageStatusRequest) (*models.Message, error)
}

// MessageHandler exposes the contact inbox to the admin.
type MessageHandler struct {
	messages messageAdminService
}

// NewMessageHandler constructs MessageHandler.
func NewMessageHandler(messages messageAdminService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// List godoc
// @Summary List contact messages
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} response.Envelope
// @Router /admin/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, messages)
}

// UpdateStatus godoc
// @Summary Mark a message read or replied
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Message ID"
// @Param payload body dto.UpdateMessageStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /admin/messages/{id}/status [patch]
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "message not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	msg, err := h.messages.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, msg)
}
