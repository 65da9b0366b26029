package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type adminAuthenticator interface {
	Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

// AuthHandler exposes the admin password gate.
type AuthHandler struct {
	auth adminAuthenticator
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth adminAuthenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Unlock the admin dashboard
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.AdminLoginRequest true "Admin password"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	res, err := h.auth.Login(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}
