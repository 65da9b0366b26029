package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type enrollmentRepository interface {
	List(ctx context.Context, status models.EnrollmentStatus) ([]models.Enrollment, error)
	FindByID(ctx context.Context, id string) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error)
}

type packageFinder interface {
	FindByID(ctx context.Context, id string) (*models.Package, error)
}

type screenshotStore interface {
	UploadScreenshot(ctx context.Context, up dto.Upload) (string, string, error)
	DeleteScreenshot(ctx context.Context, path string) error
}

const compensationTimeout = 10 * time.Second

// EnrollmentService runs the manual payment confirmation workflow.
type EnrollmentService struct {
	repo        enrollmentRepository
	packages    packageFinder
	screenshots screenshotStore
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, packages packageFinder, screenshots screenshotStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, packages: packages, screenshots: screenshots, metrics: metrics, validator: validate, logger: logger}
}

// Submit validates the form, uploads the screenshot and records a pending
// enrollment. Nothing touches storage or the database until the form is valid.
func (s *EnrollmentService) Submit(ctx context.Context, sub dto.EnrollmentSubmission) (*models.Enrollment, error) {
	enrollment, err := s.submit(ctx, sub)
	s.metrics.RecordEnrollment(err == nil)
	return enrollment, err
}

func (s *EnrollmentService) submit(ctx context.Context, sub dto.EnrollmentSubmission) (*models.Enrollment, error) {
	sub.StudentName = strings.TrimSpace(sub.StudentName)
	sub.StudentEmail = strings.TrimSpace(sub.StudentEmail)
	sub.TransactionID = strings.TrimSpace(sub.TransactionID)
	sub.PackageTitle = strings.TrimSpace(sub.PackageTitle)
	sub.PackageID = blankToNil(sub.PackageID)
	sub.PaymentMethod = blankToNil(sub.PaymentMethod)

	if sub.Screenshot == nil || sub.Screenshot.Size == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "payment screenshot is required")
	}
	if err := s.validator.Struct(sub); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "please fill in all required fields")
	}

	title, amount := sub.PackageTitle, sub.Amount
	if sub.PackageID != nil {
		pkg, err := s.packages.FindByID(ctx, *sub.PackageID)
		if err != nil {
			return nil, mapNotFound(err, "package not found", "failed to load package")
		}
		title, amount = pkg.Title, pkg.Price
	}

	url, path, err := s.screenshots.UploadScreenshot(ctx, *sub.Screenshot)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentName:       sub.StudentName,
		StudentEmail:      &sub.StudentEmail,
		StudentPhone:      blankToNil(sub.StudentPhone),
		PackageID:         sub.PackageID,
		PackageTitle:      title,
		Amount:            amount,
		TransactionID:     sub.TransactionID,
		PaymentScreenshot: &url,
		Status:            models.EnrollmentStatusPending,
	}
	if sub.PaymentMethod != nil {
		method := models.PaymentMethodCode(*sub.PaymentMethod)
		enrollment.PaymentMethod = &method
	}

	if err := s.repo.Create(ctx, enrollment); err != nil {
		s.compensate(path, err)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record enrollment")
	}
	s.logger.Info("enrollment submitted",
		zap.String("enrollment_id", enrollment.ID),
		zap.String("package_title", enrollment.PackageTitle),
		zap.String("transaction_id", enrollment.TransactionID))
	return enrollment, nil
}

// compensate removes a screenshot whose enrollment could not be stored. The
// request context may already be done, so a fresh one is used.
func (s *EnrollmentService) compensate(path string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()
	if err := s.screenshots.DeleteScreenshot(ctx, path); err != nil {
		s.logger.Error("orphaned payment screenshot", zap.String("path", path), zap.NamedError("cause", cause), zap.Error(err))
		return
	}
	s.logger.Warn("removed screenshot after failed insert", zap.String("path", path), zap.NamedError("cause", cause))
}

// List returns enrollments newest first, optionally filtered by status.
func (s *EnrollmentService) List(ctx context.Context, status string) ([]models.Enrollment, error) {
	filter := models.EnrollmentStatus(status)
	if status != "" && !filter.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown enrollment status")
	}
	enrollments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return enrollments, nil
}

// Get returns one enrollment.
func (s *EnrollmentService) Get(ctx context.Context, id string) (*models.Enrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "enrollment not found", "failed to load enrollment")
	}
	return enrollment, nil
}

// UpdateStatus reviews a pending enrollment. Verified and rejected are final:
// changing a finalized enrollment yields a conflict.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment status")
	}
	status := models.EnrollmentStatus(req.Status)

	enrollment, err := s.repo.UpdateStatus(ctx, id, status, blankToNil(req.AdminNotes))
	if err == nil {
		s.logger.Info("enrollment reviewed", zap.String("enrollment_id", id), zap.String("status", string(status)))
		return enrollment, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, mapNotFound(err, "enrollment not found", "failed to update enrollment")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, appErrors.Clone(appErrors.ErrFinalized, "enrollment already "+string(current.Status))
}
