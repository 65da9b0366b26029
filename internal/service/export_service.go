package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/export"
)

// Export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type enrollmentLister interface {
	List(ctx context.Context, status string) ([]models.Enrollment, error)
}

type tableRenderer interface {
	Render(t export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportResult is a rendered export ready to be sent as an attachment.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the enrollment ledger for bookkeeping.
type ExportService struct {
	enrollments enrollmentLister
	renderers   map[string]tableRenderer
	now         func() time.Time
}

// NewExportService constructs an ExportService with CSV and PDF renderers.
func NewExportService(enrollments enrollmentLister) *ExportService {
	return &ExportService{
		enrollments: enrollments,
		renderers: map[string]tableRenderer{
			ExportFormatCSV: export.NewCSVExporter(),
			ExportFormatPDF: export.NewPDFExporter(),
		},
		now: time.Now,
	}
}

var enrollmentExportColumns = []export.Column{
	{Key: "created_at", Title: "Submitted", Width: 30},
	{Key: "student_name", Title: "Student"},
	{Key: "student_email", Title: "Email"},
	{Key: "student_phone", Title: "Phone", Width: 26},
	{Key: "package_title", Title: "Package"},
	{Key: "amount", Title: "Amount (BDT)", Width: 22},
	{Key: "payment_method", Title: "Method", Width: 16},
	{Key: "transaction_id", Title: "Transaction", Width: 30},
	{Key: "status", Title: "Status", Width: 17},
	{Key: "admin_notes", Title: "Notes"},
}

// Enrollments renders enrollments in format, optionally filtered by status.
func (s *ExportService) Enrollments(ctx context.Context, format, status string) (*ExportResult, error) {
	if format == "" {
		format = ExportFormatCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
	enrollments, err := s.enrollments.List(ctx, status)
	if err != nil {
		return nil, err
	}

	title := "Enrollments"
	if status != "" {
		title = fmt.Sprintf("Enrollments (%s)", status)
	}
	table := export.Table{Title: title, Columns: enrollmentExportColumns, Rows: make([]map[string]string, 0, len(enrollments))}
	for _, e := range enrollments {
		method := ""
		if e.PaymentMethod != nil {
			method = string(*e.PaymentMethod)
		}
		table.Rows = append(table.Rows, map[string]string{
			"created_at":     e.CreatedAt.UTC().Format("2006-01-02 15:04"),
			"student_name":   e.StudentName,
			"student_email":  deref(e.StudentEmail),
			"student_phone":  deref(e.StudentPhone),
			"package_title":  e.PackageTitle,
			"amount":         strconv.FormatInt(e.Amount, 10),
			"payment_method": method,
			"transaction_id": e.TransactionID,
			"status":         string(e.Status),
			"admin_notes":    deref(e.AdminNotes),
		})
	}

	body, err := renderer.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportResult{
		Filename:    fmt.Sprintf("enrollments-%s.%s", s.now().UTC().Format("20060102-150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func deref(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
