package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/internal/service"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type enrollmentAdminService interface {
	List(ctx context.Context, status string) ([]models.Enrollment, error)
	Get(ctx context.Context, id string) (*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error)
}

type enrollmentExporter interface {
	Enrollments(ctx context.Context, format, status string) (*service.ExportResult, error)
}

// EnrollmentHandler exposes enrollment review endpoints to the admin.
type EnrollmentHandler struct {
	enrollments enrollmentAdminService
	exporter    enrollmentExporter
	converter   *currency.Converter
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentAdminService, exporter enrollmentExporter, converter *currency.Converter) *EnrollmentHandler {
	if converter == nil {
		converter = currency.NewConverter(currency.DefaultEURRate)
	}
	return &EnrollmentHandler{enrollments: enrollments, exporter: exporter, converter: converter}
}

// List godoc
// @Summary List enrollments
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Param status query string false "pending, verified or rejected"
// @Success 200 {object} response.Envelope
// @Router /admin/enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	items, err := h.enrollments.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	decorateEnrollments(h.converter, middleware.CurrencyUnit(c), items)
	response.OK(c, items)
}

// Get godoc
// @Summary Get enrollment detail
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "enrollment not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	enrollment, err := h.enrollments.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	decorateEnrollment(h.converter, middleware.CurrencyUnit(c), enrollment)
	response.OK(c, enrollment)
}

// UpdateStatus godoc
// @Summary Verify or reject an enrollment
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Enrollment ID"
// @Param payload body dto.UpdateEnrollmentStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/enrollments/{id}/status [patch]
func (h *EnrollmentHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "enrollment not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	enrollment, err := h.enrollments.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	decorateEnrollment(h.converter, middleware.CurrencyUnit(c), enrollment)
	response.OK(c, enrollment)
}

// Export godoc
// @Summary Export enrollments
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Security AdminToken
// @Param format query string false "csv (default) or pdf"
// @Param status query string false "pending, verified or rejected"
// @Success 200 {file} file
// @Router /admin/enrollments/export [get]
func (h *EnrollmentHandler) Export(c *gin.Context) {
	var query dto.EnrollmentExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.exporter.Enrollments(c.Request.Context(), query.Format, query.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
