package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type enrollmentSubmitter interface {
	Submit(ctx context.Context, sub dto.EnrollmentSubmission) (*models.Enrollment, error)
}

type messageCreator interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) (*models.Message, error)
}

// SubmissionHandler accepts the public write forms: payment confirmations and
// contact messages.
type SubmissionHandler struct {
	enrollments    enrollmentSubmitter
	messages       messageCreator
	converter      *currency.Converter
	maxUploadBytes int64
}

// NewSubmissionHandler constructs SubmissionHandler. maxUploadBytes bounds the
// whole multipart body.
func NewSubmissionHandler(enrollments enrollmentSubmitter, messages messageCreator, converter *currency.Converter, maxUploadBytes int64) *SubmissionHandler {
	if converter == nil {
		converter = currency.NewConverter(currency.DefaultEURRate)
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &SubmissionHandler{enrollments: enrollments, messages: messages, converter: converter, maxUploadBytes: maxUploadBytes}
}

// SubmitEnrollment godoc
// @Summary Submit a payment confirmation
// @Tags Public
// @Accept multipart/form-data
// @Produce json
// @Param student_name formData string true "Student name"
// @Param student_email formData string true "Student email"
// @Param student_phone formData string false "Student phone"
// @Param package_id formData string false "Package ID"
// @Param package_title formData string false "Package title when no package ID is sent"
// @Param amount formData int false "Amount in BDT when no package ID is sent"
// @Param transaction_id formData string true "Transaction ID"
// @Param payment_method formData string false "bkash, nagad or bank"
// @Param screenshot formData file true "Payment screenshot"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /enrollments [post]
func (h *SubmissionHandler) SubmitEnrollment(c *gin.Context) {
	// Multipart overhead on top of the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+(1<<20))

	var sub dto.EnrollmentSubmission
	if err := c.ShouldBindWith(&sub, binding.FormMultipart); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	upload, closeUpload, err := formUpload(c, "screenshot")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeUpload()
	sub.Screenshot = upload

	enrollment, err := h.enrollments.Submit(c.Request.Context(), sub)
	if err != nil {
		response.Error(c, err)
		return
	}
	decorateEnrollment(h.converter, middleware.CurrencyUnit(c), enrollment)
	middleware.SetMeta(c, "confirmation_delay_ms", dto.ConfirmationDelayMS)
	response.Created(c, enrollment, middleware.ResponseMeta(c))
}

// CreateMessage godoc
// @Summary Send a contact message
// @Tags Public
// @Accept json
// @Produce json
// @Param payload body dto.CreateMessageRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /messages [post]
func (h *SubmissionHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	msg, err := h.messages.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}
