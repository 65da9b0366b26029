package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type destinationRepository interface {
	List(ctx context.Context) ([]models.Destination, error)
	Create(ctx context.Context, dest *models.Destination) error
	Update(ctx context.Context, id string, patch models.DestinationPatch) (*models.Destination, error)
	Delete(ctx context.Context, id string) error
}

// DestinationService orchestrates destination operations.
type DestinationService struct {
	repo      destinationRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDestinationService constructs a DestinationService.
func NewDestinationService(repo destinationRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *DestinationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DestinationService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns destinations by country.
func (s *DestinationService) List(ctx context.Context) ([]models.Destination, bool, error) {
	var destinations []models.Destination
	hit, err := s.cache.Remember(ctx, CacheDestinations, &destinations, func(ctx context.Context) error {
		var err error
		destinations, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list destinations")
	}
	if destinations == nil {
		destinations = []models.Destination{}
	}
	for i := range destinations {
		destinations[i].Normalize()
	}
	return destinations, hit, nil
}

// Create stores a new destination.
func (s *DestinationService) Create(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error) {
	req.Country = strings.TrimSpace(req.Country)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid destination payload")
	}
	dest := &models.Destination{
		Country:         req.Country,
		Flag:            strings.TrimSpace(req.Flag),
		UniversityCount: req.UniversityCount,
		Description:     strings.TrimSpace(req.Description),
		Highlights:      trimList(req.Highlights),
	}
	if err := s.repo.Create(ctx, dest); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create destination")
	}
	s.cache.Invalidate(ctx, CacheDestinations)
	return dest, nil
}

// Update applies a partial update.
func (s *DestinationService) Update(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*models.Destination, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid destination payload")
	}
	patch := models.DestinationPatch{
		Country:         trimmedPtr(req.Country),
		Flag:            trimmedPtr(req.Flag),
		UniversityCount: req.UniversityCount,
		Description:     trimmedPtr(req.Description),
	}
	if req.Highlights != nil {
		highlights := trimList(*req.Highlights)
		patch.Highlights = &highlights
	}
	dest, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, mapNotFound(err, "destination not found", "failed to update destination")
	}
	s.cache.Invalidate(ctx, CacheDestinations)
	return dest, nil
}

// Delete removes a destination permanently.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "destination not found", "failed to delete destination")
	}
	s.cache.Invalidate(ctx, CacheDestinations)
	s.logger.Info("destination deleted", zap.String("destination_id", id))
	return nil
}
