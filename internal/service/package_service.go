package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type packageRepository interface {
	ListActive(ctx context.Context) ([]models.Package, error)
	CountActive(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id string) (*models.Package, error)
	Create(ctx context.Context, pkg *models.Package) error
	Update(ctx context.Context, id string, patch models.PackagePatch) (*models.Package, error)
	SoftDelete(ctx context.Context, id string) error
}

// PackageService orchestrates package operations.
type PackageService struct {
	repo      packageRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPackageService constructs a PackageService. cache may be nil.
func NewPackageService(repo packageRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *PackageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PackageService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// ListActive returns active packages in display order. The second result
// reports a cache hit.
func (s *PackageService) ListActive(ctx context.Context) ([]models.Package, bool, error) {
	var packages []models.Package
	hit, err := s.cache.Remember(ctx, CachePackages, &packages, func(ctx context.Context) error {
		var err error
		packages, err = s.repo.ListActive(ctx)
		return err
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list packages")
	}
	if packages == nil {
		packages = []models.Package{}
	}
	for i := range packages {
		packages[i].Normalize()
	}
	return packages, hit, nil
}

// ListActiveUncached reads active packages straight from the repository.
func (s *PackageService) ListActiveUncached(ctx context.Context) ([]models.Package, error) {
	packages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list packages")
	}
	if packages == nil {
		packages = []models.Package{}
	}
	for i := range packages {
		packages[i].Normalize()
	}
	return packages, nil
}

// Get returns a package in any state.
func (s *PackageService) Get(ctx context.Context, id string) (*models.Package, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "package not found", "failed to load package")
	}
	return pkg, nil
}

// Create validates and stores a new package. Without an explicit display
// order it is placed after every active package.
func (s *PackageService) Create(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid package payload")
	}

	pkg := &models.Package{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Icon:      strings.TrimSpace(req.Icon),
		Price:     req.Price,
		Features:  trimList(req.Features),
		Images:    req.Images,
		IsPopular: req.IsPopular,
		IsActive:  true,
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		pkg.DisplayOrder = *req.DisplayOrder
	} else {
		count, err := s.repo.CountActive(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute display order")
		}
		pkg.DisplayOrder = count + 1
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create package")
	}
	s.cache.Invalidate(ctx, CachePackages)
	s.logger.Info("package created", zap.String("package_id", pkg.ID), zap.Int("display_order", pkg.DisplayOrder))
	return pkg, nil
}

// Update applies a partial update.
func (s *PackageService) Update(ctx context.Context, id string, req dto.UpdatePackageRequest) (*models.Package, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid package payload")
	}
	patch := models.PackagePatch{
		Title:        trimmedPtr(req.Title),
		Subtitle:     req.Subtitle,
		Icon:         req.Icon,
		Price:        req.Price,
		Images:       req.Images,
		IsPopular:    req.IsPopular,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if req.Features != nil {
		features := trimList(*req.Features)
		patch.Features = &features
	}

	pkg, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapNotFound(err, "package not found", "failed to update package")
	}
	s.cache.Invalidate(ctx, CachePackages)
	return pkg, nil
}

// Delete hides a package. The row and any enrollments pointing at it remain.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return mapNotFound(err, "package not found", "failed to delete package")
	}
	s.cache.Invalidate(ctx, CachePackages)
	s.logger.Info("package deactivated", zap.String("package_id", id))
	return nil
}

// invalidTextRepresentation is raised by Postgres for a malformed uuid literal.
const invalidTextRepresentation = "22P02"

func mapNotFound(err error, notFound, internal string) error {
	var pqErr *pq.Error
	if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &pqErr) && pqErr.Code == invalidTextRepresentation) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, internal)
}

func trimmedPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
