package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/internal/service"
	"github.com/nextup-mentor/nextup-api/pkg/config"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/llm"
	"github.com/nextup-mentor/nextup-api/pkg/storage"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

const (
	italyID   = "6f1c2a4e-8b3d-4f5a-9c7e-1d2b3a4c5e6f"
	retiredID = "0a9b8c7d-6e5f-4a3b-8c2d-1e0f9a8b7c6d"
	missingID = "11111111-2222-4333-8444-555555555555"
)

type fakePackages struct {
	active        []models.Package
	byID          map[string]models.Package
	deleted       []string
	uncachedReads int
}

func (f *fakePackages) ListActive(ctx context.Context) ([]models.Package, bool, error) {
	out := make([]models.Package, len(f.active))
	copy(out, f.active)
	return out, true, nil
}

func (f *fakePackages) ListActiveUncached(ctx context.Context) ([]models.Package, error) {
	f.uncachedReads++
	out := make([]models.Package, len(f.active))
	copy(out, f.active)
	return out, nil
}

func (f *fakePackages) Get(ctx context.Context, id string) (*models.Package, error) {
	pkg, ok := f.byID[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "package not found")
	}
	return &pkg, nil
}

func (f *fakePackages) Create(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error) {
	return &models.Package{ID: "new", Title: req.Title, Price: req.Price, IsActive: true}, nil
}

func (f *fakePackages) Update(ctx context.Context, id string, req dto.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		pkg.Title = *req.Title
	}
	return pkg, nil
}

func (f *fakePackages) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDestinations struct{}

func (fakeDestinations) List(ctx context.Context) ([]models.Destination, bool, error) {
	return []models.Destination{{ID: "d1", Country: "Italy", Highlights: pq.StringArray{}}}, false, nil
}

func (fakeDestinations) Create(ctx context.Context, req dto.CreateDestinationRequest) (*models.Destination, error) {
	return &models.Destination{ID: "d2", Country: req.Country}, nil
}

func (fakeDestinations) Update(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*models.Destination, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "destination not found")
}

func (fakeDestinations) Delete(ctx context.Context, id string) error { return nil }

type fakeSubmissions struct {
	received *dto.EnrollmentSubmission
	body     []byte
	message  *dto.CreateMessageRequest
}

func (f *fakeSubmissions) Submit(ctx context.Context, sub dto.EnrollmentSubmission) (*models.Enrollment, error) {
	f.received = &sub
	if sub.Screenshot == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "payment screenshot is required")
	}
	f.body, _ = io.ReadAll(sub.Screenshot.Body)
	return &models.Enrollment{ID: "e1", StudentName: sub.StudentName, Amount: 15000, Status: models.EnrollmentStatusPending}, nil
}

func (f *fakeSubmissions) Create(ctx context.Context, req dto.CreateMessageRequest) (*models.Message, error) {
	f.message = &req
	return &models.Message{ID: "m1", Name: req.Name, Status: models.MessageStatusUnread}, nil
}

type fakeEnrollments struct{}

func (fakeEnrollments) List(ctx context.Context, status string) ([]models.Enrollment, error) {
	return []models.Enrollment{{ID: "e1", Amount: 11800, Status: models.EnrollmentStatusPending}}, nil
}

func (fakeEnrollments) Get(ctx context.Context, id string) (*models.Enrollment, error) {
	return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
}

func (fakeEnrollments) UpdateStatus(ctx context.Context, id string, req dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	return nil, appErrors.Clone(appErrors.ErrFinalized, "enrollment already verified")
}

type fakeExporter struct{}

func (fakeExporter) Enrollments(ctx context.Context, format, status string) (*service.ExportResult, error) {
	return &service.ExportResult{Filename: "enrollments.csv", ContentType: "text/csv; charset=utf-8", Body: []byte("a,b\n")}, nil
}

type fakeMessages struct{}

func (fakeMessages) List(ctx context.Context) ([]models.Message, error) {
	return []models.Message{}, nil
}

func (fakeMessages) UpdateStatus(ctx context.Context, id string, req dto.UpdateMessageStatusRequest) (*models.Message, error) {
	now := time.Now()
	return &models.Message{ID: id, Status: models.MessageStatus(req.Status), RepliedAt: &now}, nil
}

type fakeImages struct{ deleted string }

func (f *fakeImages) UploadPackageImage(ctx context.Context, up dto.Upload) (*dto.PackageImageResponse, error) {
	return &dto.PackageImageResponse{URL: "https://cdn.example.com/" + up.Filename, Path: up.Filename}, nil
}

func (f *fakeImages) DeletePackageImage(ctx context.Context, path string) error {
	f.deleted = path
	return nil
}

type fakeDashboard struct{ err error }

func (f fakeDashboard) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardSnapshot{
		Packages:     []models.Package{{ID: "p1", Price: 236}},
		Enrollments:  []models.Enrollment{},
		Messages:     []models.Message{},
		Destinations: []models.Destination{},
		Stats:        models.DashboardStats{TotalPackages: 1},
	}, nil
}

type fakeAuth struct{}

func (fakeAuth) Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if req.Password != "secret" {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "incorrect password")
	}
	return &dto.AdminLoginResponse{Token: "good"}, nil
}

type tokenValidator struct{}

func (tokenValidator) ValidateToken(token string) (*models.AdminClaims, error) {
	if token != "good" {
		return nil, appErrors.ErrUnauthorized
	}
	return &models.AdminClaims{Scope: models.AdminScope}, nil
}

type stubCompleter struct {
	text string
	err  error
}

func (s stubCompleter) Complete(ctx context.Context, transcript []llm.Message) (string, error) {
	return s.text, s.err
}

func paymentConfig() config.PaymentConfig {
	return config.PaymentConfig{
		BkashNumber:       "01883-913491",
		NagadNumber:       "01883-913491",
		BankAccountNumber: "2304144638001",
		BankName:          "City Bank",
	}
}

type testEnv struct {
	router      *gin.Engine
	packages    *fakePackages
	submissions *fakeSubmissions
	images      *fakeImages
}

func newTestEnv(t *testing.T, completer llm.Completer, files *FileHandler) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	converter := currency.NewConverter(118)
	env := &testEnv{
		packages: &fakePackages{
			active: []models.Package{{ID: italyID, Title: "Italy Basic", Price: 15000, IsActive: true}},
			byID: map[string]models.Package{
				italyID:   {ID: italyID, Title: "Italy Basic", Price: 15000, IsActive: true},
				retiredID: {ID: retiredID, Title: "Retired", Price: 9000, IsActive: false},
			},
		},
		submissions: &fakeSubmissions{},
		images:      &fakeImages{},
	}
	if completer == nil {
		completer = stubCompleter{text: "hello"}
	}
	h := Handlers{
		Catalog:      NewCatalogHandler(env.packages, fakeDestinations{}, service.NewPaymentMethodService(paymentConfig()), converter),
		Submissions:  NewSubmissionHandler(env.submissions, env.submissions, converter, 1<<20),
		Auth:         NewAuthHandler(fakeAuth{}),
		Dashboard:    NewDashboardHandler(fakeDashboard{}, converter),
		Enrollments:  NewEnrollmentHandler(fakeEnrollments{}, fakeExporter{}, converter),
		Messages:     NewMessageHandler(fakeMessages{}),
		Packages:     NewPackageHandler(env.packages, env.images, converter),
		Destinations: NewDestinationHandler(fakeDestinations{}),
		Chat:         NewChatHandler(service.NewChatService(completer, "prompt", nil, nil)),
		Currency:     NewCurrencyHandler(converter),
		Files:        files,
	}
	router := gin.New()
	router.Use(middleware.WithResponseMeta())
	RegisterRoutes(router.Group("/api/v1"), h, middleware.AdminJWT(tokenValidator{}))
	env.router = router
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var env responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestListPackagesDecoratesPrice(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/packages?currency=EUR", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	var pkgs []models.Package
	require.NoError(t, json.Unmarshal(body.Data, &pkgs))
	require.Len(t, pkgs, 1)
	require.NotNil(t, pkgs[0].DisplayPrice)
	assert.Equal(t, int64(127), pkgs[0].DisplayPrice.Amount)
	assert.Equal(t, "€ 127", pkgs[0].DisplayPrice.Formatted)
	assert.Equal(t, int64(15000), pkgs[0].Price)
	assert.Equal(t, true, body.Meta["cache_hit"])

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages", nil)
	rec = env.do(req)
	body = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(body.Data, &pkgs))
	assert.Equal(t, "৳ 15,000", pkgs[0].DisplayPrice.Formatted)
}

func TestGetPackageServesRetiredPackages(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/packages/"+retiredID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Retired")

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/packages/"+missingID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/packages/"+retiredID, nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = env.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/packages/abc", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, appErrors.ErrNotFound.Code, body.Error.Code)
	assert.Equal(t, "package not found", body.Error.Message)

	cases := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/api/v1/admin/packages/abc", ""},
		{http.MethodPut, "/api/v1/admin/packages/abc", `{"title":"X"}`},
		{http.MethodDelete, "/api/v1/admin/packages/abc", ""},
		{http.MethodGet, "/api/v1/admin/enrollments/abc", ""},
		{http.MethodPatch, "/api/v1/admin/enrollments/abc/status", `{"status":"verified"}`},
		{http.MethodPatch, "/api/v1/admin/messages/abc/status", `{"status":"read"}`},
		{http.MethodPut, "/api/v1/admin/destinations/abc", `{"country":"X"}`},
		{http.MethodDelete, "/api/v1/admin/destinations/abc", ""},
	}
	for _, tc := range cases {
		rec := env.do(jsonRequest(tc.method, tc.target, tc.body, "good"))
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.target)
	}
	assert.Empty(t, env.packages.deleted)
}

func TestAdminPackageListBypassesCache(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/packages", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Italy Basic")
	assert.Equal(t, 1, env.packages.uncachedReads)
}

func TestPaymentMethodsAndDestinations(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/payment-methods", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var methods []models.PaymentMethod
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &methods))
	assert.Len(t, methods, 3)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/destinations", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"highlights":[]`)
}

func multipartEnrollment(t *testing.T, withFile bool) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("student_name", "Rahim"))
	require.NoError(t, w.WriteField("student_email", "rahim@example.com"))
	require.NoError(t, w.WriteField("transaction_id", "TX1"))
	require.NoError(t, w.WriteField("package_title", "Italy Basic"))
	require.NoError(t, w.WriteField("amount", "15000"))
	if withFile {
		part, err := w.CreateFormFile("screenshot", "proof.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollments", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSubmitEnrollment(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(multipartEnrollment(t, true))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(dto.ConfirmationDelayMS), body.Meta["confirmation_delay_ms"])
	require.NotNil(t, env.submissions.received)
	assert.Equal(t, "Rahim", env.submissions.received.StudentName)
	assert.Equal(t, int64(15000), env.submissions.received.Amount)
	assert.Equal(t, "proof.png", env.submissions.received.Screenshot.Filename)
	assert.Equal(t, "png-bytes", string(env.submissions.body))
}

func TestSubmitEnrollmentWithoutScreenshot(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(multipartEnrollment(t, false))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.submissions.received)
	assert.Nil(t, env.submissions.received.Screenshot)
}

func TestCreateMessage(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(jsonRequest(http.MethodPost, "/api/v1/messages", `{"name":"Karim","email":"k@example.com","message":"Hi"}`, ""))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Karim", env.submissions.message.Name)

	rec = env.do(jsonRequest(http.MethodPost, "/api/v1/messages", `{`, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func jsonRequest(method, target, body, token string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestChatEndpoint(t *testing.T) {
	env := newTestEnv(t, stubCompleter{text: "Ciao!"}, nil)

	rec := env.do(jsonRequest(http.MethodPost, "/api/v1/chat", `{"messages":[{"role":"user","content":"hi"}]}`, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Ciao!"}`, rec.Body.String())

	for _, body := range []string{`{}`, `{"messages":[]}`, `{"messages":"hi"}`, `not json`} {
		rec = env.do(jsonRequest(http.MethodPost, "/api/v1/chat", body, ""))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"Invalid request"}`, rec.Body.String(), body)
	}
}

func TestChatEndpointRelaysUpstreamStatus(t *testing.T) {
	env := newTestEnv(t, stubCompleter{err: &llm.StatusError{StatusCode: http.StatusTooManyRequests}}, nil)

	rec := env.do(jsonRequest(http.MethodPost, "/api/v1/chat", `{"messages":[{"role":"user","content":"hi"}]}`, ""))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong. Please try again."}`, rec.Body.String())

	env = newTestEnv(t, stubCompleter{err: errors.New("dial tcp")}, nil)
	rec = env.do(jsonRequest(http.MethodPost, "/api/v1/chat", `{"messages":[{"role":"user","content":"hi"}]}`, ""))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCurrencyToggle(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/currency/toggle", nil)
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	var state dto.CurrencyState
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &state))
	assert.Equal(t, "EUR", state.Currency)
	assert.Equal(t, float64(118), state.EURRate)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "currency=EUR")

	req = httptest.NewRequest(http.MethodPost, "/api/v1/currency/toggle", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CurrencyCookie, Value: "EUR"})
	rec = env.do(req)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &state))
	assert.Equal(t, "BDT", state.Currency)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(jsonRequest(http.MethodPost, "/api/v1/admin/login", `{"password":"wrong"}`, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(jsonRequest(http.MethodPost, "/api/v1/admin/login", `{"password":"secret"}`, ""))
	require.Equal(t, http.StatusOK, rec.Code)
	var login dto.AdminLoginResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &login))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard?currency=EUR", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot models.DashboardSnapshot
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &snapshot))
	assert.Equal(t, 1, snapshot.Stats.TotalPackages)
	assert.Equal(t, int64(2), snapshot.Packages[0].DisplayPrice.Amount)
}

func TestAdminEnrollmentEndpoints(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/enrollments?currency=EUR", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.Enrollment
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	assert.Equal(t, "€ 100", items[0].DisplayPrice.Formatted)

	rec = env.do(jsonRequest(http.MethodPatch, "/api/v1/admin/enrollments/"+missingID+"/status", `{"status":"pending"}`, "good"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/enrollments/export?format=csv", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = env.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="enrollments.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/enrollments/"+missingID, nil)
	req.Header.Set("Authorization", "Bearer good")
	assert.Equal(t, http.StatusNotFound, env.do(req).Code)
}

func TestAdminPackageEndpoints(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(jsonRequest(http.MethodPost, "/api/v1/admin/packages", `{"title":"Lithuania","price":20000}`, "good"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(jsonRequest(http.MethodPut, "/api/v1/admin/packages/"+italyID, `{"title":"Italy Plus"}`, "good"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Italy Plus")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/packages/"+italyID, nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = env.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{italyID}, env.packages.deleted)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/packages/images/1700-photo.png", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = env.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "/1700-photo.png", env.images.deleted)

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("img"))
	require.NoError(t, w.Close())
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/packages/images", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer good")
	rec = env.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "photo.png")
}

func TestAdminMessageAndDestinationEndpoints(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.do(jsonRequest(http.MethodPatch, "/api/v1/admin/messages/"+missingID+"/status", `{"status":"replied"}`, "good"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"replied"`)

	rec = env.do(jsonRequest(http.MethodPost, "/api/v1/admin/destinations", `{"country":"Lithuania"}`, "good"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(jsonRequest(http.MethodPut, "/api/v1/admin/destinations/"+missingID, `{"country":"X"}`, "good"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileDownload(t *testing.T) {
	dir := t.TempDir()
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	store, err := storage.NewLocalStorage(dir, "http://localhost/api/v1/files", signer)
	require.NoError(t, err)
	url, err := store.Upload(context.Background(), "payment-screenshots", "1700.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)

	env := newTestEnv(t, nil, NewFileHandler(store))
	token := url[strings.LastIndex(url, "/")+1:]

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/files/"+token, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/files/forged."+token, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type failingPinger struct{}

func (failingPinger) PingContext(ctx context.Context) error { return sql.ErrConnDone }

func TestReadiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	healthy := NewMetricsHandler(service.NewMetricsService(), nil)
	broken := NewMetricsHandler(nil, failingPinger{})
	router.GET("/ready", healthy.Ready)
	router.GET("/broken", broken.Ready)
	router.GET("/metrics", broken.Prometheus)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
