package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type destinationAdminService interface {
	List(ctx context.Context) ([]models.Destination, bool, error)
	Create(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error)
	Update(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*models.Destination, error)
	Delete(ctx context.Context, id string) error
}

// DestinationHandler exposes destination management to the admin.
type DestinationHandler struct {
	destinations destinationAdminService
}

// NewDestinationHandler constructs DestinationHandler.
func NewDestinationHandler(destinations destinationAdminService) *DestinationHandler {
	return &DestinationHandler{destinations: destinations}
}

// List godoc
// @Summary List destinations for the admin
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} response.Envelope
// @Router /admin/destinations [get]
func (h *DestinationHandler) List(c *gin.Context) {
	destinations, _, err := h.destinations.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, destinations)
}

// Create godoc
// @Summary Create destination
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param payload body dto.CreateDestinationRequest true "Destination payload"
// @Success 201 {object} response.Envelope
// @Router /admin/destinations [post]
func (h *DestinationHandler) Create(c *gin.Context) {
	var req dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	dest, err := h.destinations.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dest)
}

// Update godoc
// @Summary Update destination
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Destination ID"
// @Param payload body dto.UpdateDestinationRequest true "Destination payload"
// @Success 200 {object} response.Envelope
// @Router /admin/destinations/{id} [put]
func (h *DestinationHandler) Update(c *gin.Context) {
	id, err := pathID(c, "destination not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	dest, err := h.destinations.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dest)
}

// Delete godoc
// @Summary Delete destination
// @Tags Admin
// @Security AdminToken
// @Param id path string true "Destination ID"
// @Success 204
// @Router /admin/destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "destination not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.destinations.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
