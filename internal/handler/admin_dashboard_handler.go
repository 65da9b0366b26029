package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type dashboardService interface {
	Snapshot(ctx context.Context) (*models.DashboardSnapshot, error)
}

// DashboardHandler serves the admin dashboard snapshot.
type DashboardHandler struct {
	service   dashboardService
	converter *currency.Converter
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService, converter *currency.Converter) *DashboardHandler {
	if converter == nil {
		converter = currency.NewConverter(currency.DefaultEURRate)
	}
	return &DashboardHandler{service: service, converter: converter}
}

// Snapshot godoc
// @Summary Admin dashboard snapshot
// @Description Loads packages, enrollments, messages and destinations together. Any failed collection fails the request.
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	unit := middleware.CurrencyUnit(c)
	decoratePackages(h.converter, unit, snapshot.Packages)
	decorateEnrollments(h.converter, unit, snapshot.Enrollments)
	respondWithMeta(c, http.StatusOK, snapshot, false)
}
