package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type mockPackageRepo struct {
	items      map[string]*models.Package
	active     []models.Package
	listErr    error
	findErr    error
	count      int
	created    []*models.Package
	deleted    []string
	lastPatch  models.PackagePatch
	listCalls  int
	countCalls int
}

func (m *mockPackageRepo) ListActive(ctx context.Context) ([]models.Package, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.active, nil
}

func (m *mockPackageRepo) CountActive(ctx context.Context) (int, error) {
	m.countCalls++
	return m.count, nil
}

func (m *mockPackageRepo) FindByID(ctx context.Context, id string) (*models.Package, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if pkg, ok := m.items[id]; ok {
		cp := *pkg
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg *models.Package) error {
	if pkg.ID == "" {
		pkg.ID = "pkg-generated"
	}
	pkg.Normalize()
	m.created = append(m.created, pkg)
	return nil
}

func (m *mockPackageRepo) Update(ctx context.Context, id string, patch models.PackagePatch) (*models.Package, error) {
	m.lastPatch = patch
	pkg, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *pkg
	if patch.Title != nil {
		cp.Title = *patch.Title
	}
	return &cp, nil
}

func (m *mockPackageRepo) SoftDelete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type memoryCacheRepo struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
	getErr  error
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{data: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, pattern)
	for key := range m.data {
		delete(m.data, key)
	}
	return nil
}

type mockEnrollmentRepo struct {
	items     map[string]*models.Enrollment
	created   []*models.Enrollment
	createErr error
	listErr   error
	updateErr error
	list      []models.Enrollment
	lastNotes *string
}

func (m *mockEnrollmentRepo) List(ctx context.Context, status models.EnrollmentStatus) ([]models.Enrollment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if status == "" {
		return m.list, nil
	}
	var out []models.Enrollment
	for _, e := range m.list {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEnrollmentRepo) FindByID(ctx context.Context, id string) (*models.Enrollment, error) {
	if e, ok := m.items[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = "enr-generated"
	m.created = append(m.created, e)
	return nil
}

func (m *mockEnrollmentRepo) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus, notes *string) (*models.Enrollment, error) {
	m.lastNotes = notes
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	e, ok := m.items[id]
	if !ok || e.Status != models.EnrollmentStatusPending {
		return nil, sql.ErrNoRows
	}
	e.Status = status
	e.AdminNotes = notes
	cp := *e
	return &cp, nil
}

type mockScreenshots struct {
	uploaded  []dto.Upload
	deleted   []string
	uploadErr error
	deleteErr error
}

func (m *mockScreenshots) UploadScreenshot(ctx context.Context, up dto.Upload) (string, string, error) {
	if m.uploadErr != nil {
		return "", "", m.uploadErr
	}
	m.uploaded = append(m.uploaded, up)
	return "https://cdn.example.com/payment-screenshots/1700000000000.png", "1700000000000.png", nil
}

func (m *mockScreenshots) DeleteScreenshot(ctx context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return m.deleteErr
}

type memoryObjectStore struct {
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
	deleteErr error
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryObjectStore) Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.objects[bucket+"/"+path] = raw
	m.types[bucket+"/"+path] = contentType
	url, _ := m.PublicURL(bucket, path)
	return url, nil
}

func (m *memoryObjectStore) Delete(ctx context.Context, bucket, path string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.objects, bucket+"/"+path)
	return nil
}

func (m *memoryObjectStore) PublicURL(bucket, path string) (string, error) {
	return "https://cdn.example.com/" + bucket + "/" + path, nil
}
