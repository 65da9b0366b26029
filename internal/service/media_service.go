package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/storage"
)

// MediaConfig names the buckets and the upload size ceiling.
type MediaConfig struct {
	PackageBucket    string
	ScreenshotBucket string
	MaxUploadBytes   int64
}

// MediaService stores package images and payment screenshots.
type MediaService struct {
	store   storage.ObjectStore
	cfg     MediaConfig
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewMediaService constructs a MediaService.
func NewMediaService(store storage.ObjectStore, cfg MediaConfig, metrics *MetricsService, logger *zap.Logger) *MediaService {
	if cfg.PackageBucket == "" {
		cfg.PackageBucket = "package-images"
	}
	if cfg.ScreenshotBucket == "" {
		cfg.ScreenshotBucket = "payment-screenshots"
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaService{store: store, cfg: cfg, metrics: metrics, logger: logger, now: time.Now}
}

// UploadPackageImage stores an admin-supplied package image.
func (s *MediaService) UploadPackageImage(ctx context.Context, up dto.Upload) (*dto.PackageImageResponse, error) {
	name := storage.ImageName(up.Filename, s.now())
	url, err := s.upload(ctx, s.cfg.PackageBucket, name, up)
	if err != nil {
		return nil, err
	}
	return &dto.PackageImageResponse{URL: url, Path: name}, nil
}

// DeletePackageImage removes a package image by its object path.
func (s *MediaService) DeletePackageImage(ctx context.Context, path string) error {
	path = strings.TrimPrefix(strings.TrimSpace(path), "/")
	if path == "" {
		return appErrors.Clone(appErrors.ErrValidation, "image path is required")
	}
	if err := s.store.Delete(ctx, s.cfg.PackageBucket, path); err != nil {
		return storageFailure(err, "failed to delete image")
	}
	return nil
}

// UploadScreenshot stores a payment screenshot and returns its URL and path.
func (s *MediaService) UploadScreenshot(ctx context.Context, up dto.Upload) (string, string, error) {
	name := storage.ScreenshotName(up.Filename, s.now())
	url, err := s.upload(ctx, s.cfg.ScreenshotBucket, name, up)
	if err != nil {
		return "", "", err
	}
	return url, name, nil
}

// DeleteScreenshot removes a screenshot by its object path.
func (s *MediaService) DeleteScreenshot(ctx context.Context, path string) error {
	if err := s.store.Delete(ctx, s.cfg.ScreenshotBucket, path); err != nil {
		return storageFailure(err, "failed to delete screenshot")
	}
	return nil
}

func (s *MediaService) upload(ctx context.Context, bucket, name string, up dto.Upload) (string, error) {
	if up.Body == nil || up.Size == 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "file is required")
	}
	if up.Size > s.cfg.MaxUploadBytes {
		return "", appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes", s.cfg.MaxUploadBytes))
	}
	body := io.LimitReader(up.Body, s.cfg.MaxUploadBytes)
	url, err := s.store.Upload(ctx, bucket, name, storage.ContentType(up.ContentType, up.Filename), body)
	s.metrics.RecordUpload(bucket, err == nil)
	if err != nil {
		s.logger.Warn("upload failed", zap.String("bucket", bucket), zap.String("path", name), zap.Error(err))
		return "", storageFailure(err, "upload failed")
	}
	return url, nil
}

// storageFailure keeps the provider's message visible to the caller.
func storageFailure(err error, prefix string) error {
	var storeErr *storage.Error
	if errors.As(err, &storeErr) && storeErr.Message != "" {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, prefix+": "+storeErr.Message)
	}
	return appErrors.Wrap(err, appErrors.ErrStorage.Code, appErrors.ErrStorage.Status, prefix)
}
