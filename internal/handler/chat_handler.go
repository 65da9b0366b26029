package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/service"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type chatService interface {
	ParseTranscript(raw json.RawMessage) ([]dto.ChatMessage, error)
	Reply(ctx context.Context, messages []dto.ChatMessage) (string, error)
}

// ChatHandler proxies the site chat widget. Its bodies are {message} and
// {error} rather than the usual envelope because the widget reads them as is.
type ChatHandler struct {
	chat chatService
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(chat chatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat godoc
// @Summary Ask the assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body dto.ChatRequest true "Transcript"
// @Success 200 {object} dto.ChatReply
// @Failure 400 {object} dto.ChatError
// @Failure 500 {object} dto.ChatError
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ChatError{Error: service.ChatInvalidRequest})
		return
	}
	messages, err := h.chat.ParseTranscript(req.Messages)
	if err != nil {
		chatError(c, err)
		return
	}
	text, err := h.chat.Reply(c.Request.Context(), messages)
	if err != nil {
		chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChatReply{Message: text})
}

func chatError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	status := appErr.Status
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.ChatError{Error: appErr.Message})
}
