package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

func TestPackageServiceCreateAppendsDisplayOrder(t *testing.T) {
	repo := &mockPackageRepo{count: 3}
	svc := NewPackageService(repo, nil, nil, zap.NewNop())

	pkg, err := svc.Create(context.Background(), dto.CreatePackageRequest{Title: "  Italy Premium ", Price: 35000, Features: []string{" Visa ", ""}})
	require.NoError(t, err)
	assert.Equal(t, "Italy Premium", pkg.Title)
	assert.Equal(t, 4, pkg.DisplayOrder)
	assert.True(t, pkg.IsActive)
	assert.Equal(t, []string{"Visa"}, []string(pkg.Features))
	assert.NotNil(t, pkg.Images)
	assert.Equal(t, 1, repo.countCalls)
}

func TestPackageServiceCreateKeepsExplicitOrder(t *testing.T) {
	repo := &mockPackageRepo{count: 3}
	svc := NewPackageService(repo, nil, nil, nil)
	order := 1
	inactive := false

	pkg, err := svc.Create(context.Background(), dto.CreatePackageRequest{Title: "Lithuania", Price: 20000, DisplayOrder: &order, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 1, pkg.DisplayOrder)
	assert.False(t, pkg.IsActive)
	assert.Zero(t, repo.countCalls)
}

func TestPackageServiceCreateValidation(t *testing.T) {
	svc := NewPackageService(&mockPackageRepo{}, nil, nil, nil)
	_, err := svc.Create(context.Background(), dto.CreatePackageRequest{Title: " ", Price: -1})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestPackageServiceListUsesCache(t *testing.T) {
	repo := &mockPackageRepo{active: []models.Package{{ID: "p1", Title: "Italy", IsActive: true}}}
	cacheRepo := newMemoryCacheRepo()
	cache := NewCacheService(cacheRepo, NewMetricsService(), 0, nil, true)
	svc := NewPackageService(repo, cache, nil, nil)

	first, hit, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, first, 1)
	assert.NotNil(t, first[0].Features)

	second, hit, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Italy", second[0].Title)
	assert.Equal(t, 1, repo.listCalls)

	repo.items = map[string]*models.Package{"p1": {ID: "p1"}}
	require.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.Equal(t, []string{"nextup:public:packages*"}, cacheRepo.deleted)

	_, hit, err = svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, repo.listCalls)
}

func TestPackageServiceListEmptyIsNotNil(t *testing.T) {
	svc := NewPackageService(&mockPackageRepo{}, nil, nil, nil)
	packages, _, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, packages)
	assert.Empty(t, packages)
}

func TestPackageServiceListError(t *testing.T) {
	svc := NewPackageService(&mockPackageRepo{listErr: errors.New("db down")}, nil, nil, nil)
	_, _, err := svc.ListActive(context.Background())
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}

func TestPackageServiceUpdateAndDeleteNotFound(t *testing.T) {
	svc := NewPackageService(&mockPackageRepo{items: map[string]*models.Package{}}, nil, nil, nil)
	title := "x"
	_, err := svc.Update(context.Background(), "missing", dto.UpdatePackageRequest{Title: &title})
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(svc.Delete(context.Background(), "missing")).Status)
}

func TestPackageServiceGetReturnsInactive(t *testing.T) {
	repo := &mockPackageRepo{items: map[string]*models.Package{
		"off": {ID: "off", IsActive: false},
	}}
	svc := NewPackageService(repo, nil, nil, nil)

	pkg, err := svc.Get(context.Background(), "off")
	require.NoError(t, err)
	assert.False(t, pkg.IsActive)
}

func TestPackageServiceGetMalformedIDIsNotFound(t *testing.T) {
	repo := &mockPackageRepo{findErr: &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}}
	svc := NewPackageService(repo, nil, nil, nil)

	_, err := svc.Get(context.Background(), "abc")
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "package not found", appErr.Message)

	repo.findErr = &pq.Error{Code: "08006"}
	_, err = svc.Get(context.Background(), "abc")
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}

func TestPackageServiceListActiveUncachedSkipsCache(t *testing.T) {
	repo := &mockPackageRepo{active: []models.Package{{ID: "p1", Title: "Italy", IsActive: true}}}
	cacheRepo := newMemoryCacheRepo()
	svc := NewPackageService(repo, NewCacheService(cacheRepo, NewMetricsService(), 0, nil, true), nil, nil)

	_, _, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	repo.active = append(repo.active, models.Package{ID: "p2", Title: "Lithuania", IsActive: true})

	packages, err := svc.ListActiveUncached(context.Background())
	require.NoError(t, err)
	assert.Len(t, packages, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestPackageServiceUpdateTrimsFeatures(t *testing.T) {
	repo := &mockPackageRepo{items: map[string]*models.Package{"p1": {ID: "p1", Title: "Old"}}}
	svc := NewPackageService(repo, nil, nil, nil)
	features := []string{" a ", " ", "b"}
	title := " New "

	pkg, err := svc.Update(context.Background(), "p1", dto.UpdatePackageRequest{Title: &title, Features: &features})
	require.NoError(t, err)
	assert.Equal(t, "New", pkg.Title)
	require.NotNil(t, repo.lastPatch.Features)
	assert.Equal(t, []string{"a", "b"}, *repo.lastPatch.Features)
}
