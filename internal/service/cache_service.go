package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/pkg/cache"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

// Cache collections. Each public listing lives under one key per collection.
const (
	CachePackages     = "packages"
	CacheDestinations = "destinations"
)

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CacheService is a read-through cache for public listings. Cache failures are
// logged and treated as misses so the database stays the source of truth.
type CacheService struct {
	repo    CacheRepository
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	enabled bool
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, ttl time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, ttl: ttl, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Remember loads collection into dest from cache, or calls load and caches
// its result. It reports whether the value came from cache.
func (s *CacheService) Remember(ctx context.Context, collection string, dest interface{}, load func(ctx context.Context) error) (bool, error) {
	if !s.Enabled() {
		return false, load(ctx)
	}
	key := cache.Key("public", collection)

	start := time.Now()
	err := s.repo.Get(ctx, key, dest)
	s.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err == nil {
		return true, nil
	}
	if !appErrors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	}

	if err := load(ctx); err != nil {
		return false, err
	}

	start = time.Now()
	if err := s.repo.Set(ctx, key, dest, s.ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	s.metrics.ObserveCacheWrite(time.Since(start))
	return false, nil
}

// Invalidate drops the cached listing of collection.
func (s *CacheService) Invalidate(ctx context.Context, collection string) {
	if !s.Enabled() {
		return
	}
	pattern := cache.Key("public", collection) + "*"
	if err := s.repo.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
