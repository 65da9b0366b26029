package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

const enrollmentColumns = `id, student_name, student_email, student_phone, package_id, package_title, amount, transaction_id,
        payment_method, payment_screenshot, status, admin_notes, created_at, updated_at`

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollments newest first, optionally restricted to one status.
func (r *EnrollmentRepository) List(ctx context.Context, status models.EnrollmentStatus) ([]models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// FindByID returns an enrollment by its ID.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Create persists a new enrollment record as pending.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.UpdatedAt = now
	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentStatusPending
	}
	const query = `INSERT INTO enrollments (` + enrollmentColumns + `)
        VALUES (:id, :student_name, :student_email, :student_phone, :package_id, :package_title, :amount, :transaction_id,
        :payment_method, :payment_screenshot, :status, :admin_notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// UpdateStatus sets status and notes on an enrollment that is still pending.
// It returns sql.ErrNoRows when the id is unknown or the enrollment already
// reached a final status.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error) {
	query := `UPDATE enrollments SET status = $2, admin_notes = $3, updated_at = $4
        WHERE id = $1 AND status = $5 RETURNING ` + enrollmentColumns
	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id, status, notes, time.Now().UTC(), models.EnrollmentStatusPending); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update enrollment status: %w", err)
	}
	return &enrollment, nil
}
