package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/nextup-mentor/nextup-api/internal/models"
)

const destinationColumns = `id, country, flag, university_count, description, highlights, created_at`

// DestinationRepository handles persistence of destinations.
type DestinationRepository struct {
	db *sqlx.DB
}

// NewDestinationRepository constructs the repository.
func NewDestinationRepository(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// List returns destinations sorted by country.
func (r *DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY country ASC`
	var destinations []models.Destination
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	for i := range destinations {
		destinations[i].Normalize()
	}
	return destinations, nil
}

// FindByID returns a destination by its ID.
func (r *DestinationRepository) FindByID(ctx context.Context, id string) (*models.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`
	var dest models.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, err
	}
	dest.Normalize()
	return &dest, nil
}

// Create persists a new destination.
func (r *DestinationRepository) Create(ctx context.Context, dest *models.Destination) error {
	if dest.ID == "" {
		dest.ID = uuid.NewString()
	}
	if dest.CreatedAt.IsZero() {
		dest.CreatedAt = time.Now().UTC()
	}
	dest.Normalize()
	const query = `INSERT INTO destinations (` + destinationColumns + `)
        VALUES (:id, :country, :flag, :university_count, :description, :highlights, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, dest); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	return nil
}

// Update applies a partial update and returns the stored record.
func (r *DestinationRepository) Update(ctx context.Context, id string, patch models.DestinationPatch) (*models.Destination, error) {
	set := newSetClause(id)
	if patch.Country != nil {
		set.add("country", *patch.Country)
	}
	if patch.Flag != nil {
		set.add("flag", *patch.Flag)
	}
	if patch.UniversityCount != nil {
		set.add("university_count", *patch.UniversityCount)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Highlights != nil {
		set.add("highlights", pq.StringArray(nonNil(*patch.Highlights)))
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE destinations SET %s WHERE id = $1 RETURNING %s`, set, destinationColumns)
	var dest models.Destination
	if err := r.db.GetContext(ctx, &dest, query, set.args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update destination: %w", err)
	}
	dest.Normalize()
	return &dest, nil
}

// Delete removes a destination permanently.
func (r *DestinationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	return requireAffected(res)
}
