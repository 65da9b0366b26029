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

const packageColumns = `id, title, subtitle, icon, price, features, images, is_popular, is_active, display_order, created_at, updated_at`

// PackageRepository handles persistence of packages.
type PackageRepository struct {
	db *sqlx.DB
}

// NewPackageRepository constructs the repository.
func NewPackageRepository(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// ListActive returns active packages by display order, oldest first on ties.
func (r *PackageRepository) ListActive(ctx context.Context) ([]models.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active = TRUE ORDER BY display_order ASC, created_at ASC`
	var packages []models.Package
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	for i := range packages {
		packages[i].Normalize()
	}
	return packages, nil
}

// CountActive returns how many packages are active.
func (r *PackageRepository) CountActive(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM packages WHERE is_active = TRUE`); err != nil {
		return 0, fmt.Errorf("count packages: %w", err)
	}
	return total, nil
}

// FindByID returns a package regardless of its active flag.
func (r *PackageRepository) FindByID(ctx context.Context, id string) (*models.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	var pkg models.Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		return nil, err
	}
	pkg.Normalize()
	return &pkg, nil
}

// Create persists a new package.
func (r *PackageRepository) Create(ctx context.Context, pkg *models.Package) error {
	if pkg.ID == "" {
		pkg.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if pkg.CreatedAt.IsZero() {
		pkg.CreatedAt = now
	}
	pkg.UpdatedAt = now
	if pkg.Icon == "" {
		pkg.Icon = models.DefaultPackageIcon
	}
	pkg.Normalize()
	const query = `INSERT INTO packages (` + packageColumns + `)
        VALUES (:id, :title, :subtitle, :icon, :price, :features, :images, :is_popular, :is_active, :display_order, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, pkg); err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	return nil
}

// Update applies a partial update and returns the stored record.
func (r *PackageRepository) Update(ctx context.Context, id string, patch models.PackagePatch) (*models.Package, error) {
	set := newSetClause(id)
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Subtitle != nil {
		set.add("subtitle", *patch.Subtitle)
	}
	if patch.Icon != nil {
		set.add("icon", *patch.Icon)
	}
	if patch.Price != nil {
		set.add("price", *patch.Price)
	}
	if patch.Features != nil {
		set.add("features", pq.StringArray(nonNil(*patch.Features)))
	}
	if patch.Images != nil {
		set.add("images", pq.StringArray(nonNil(*patch.Images)))
	}
	if patch.IsPopular != nil {
		set.add("is_popular", *patch.IsPopular)
	}
	if patch.IsActive != nil {
		set.add("is_active", *patch.IsActive)
	}
	if patch.DisplayOrder != nil {
		set.add("display_order", *patch.DisplayOrder)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}
	set.add("updated_at", time.Now().UTC())

	query := fmt.Sprintf(`UPDATE packages SET %s WHERE id = $1 RETURNING %s`, set, packageColumns)
	var pkg models.Package
	if err := r.db.GetContext(ctx, &pkg, query, set.args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update package: %w", err)
	}
	pkg.Normalize()
	return &pkg, nil
}

// SoftDelete hides a package from listings without removing the row.
func (r *PackageRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE packages SET is_active = FALSE, updated_at = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("soft delete package: %w", err)
	}
	return requireAffected(res)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
