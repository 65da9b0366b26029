package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
)

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	method := models.PaymentMethodNagad
	created := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	pending := models.Enrollment{ID: "e1", StudentName: "Rahim", PackageTitle: "Italy Basic", Amount: 15000,
		TransactionID: "TX1", PaymentMethod: &method, Status: models.EnrollmentStatusPending, CreatedAt: created}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.AdminLoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "letmein" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"incorrect password","status":401}}`))
			return
		}
		writeData(w, http.StatusOK, dto.AdminLoginResponse{Token: "tok"})
	})
	mux.HandleFunc("/api/v1/admin/enrollments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeData(w, http.StatusOK, []models.Enrollment{pending})
	})
	mux.HandleFunc("/api/v1/admin/enrollments/e1/status", func(w http.ResponseWriter, r *http.Request) {
		var req dto.UpdateEnrollmentStatusRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		verified := pending
		verified.Status = models.EnrollmentStatus(req.Status)
		verified.AdminNotes = req.AdminNotes
		writeData(w, http.StatusOK, verified)
	})
	mux.HandleFunc("/api/v1/admin/enrollments/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="enrollments-20240503-100000.csv"`)
		_, _ = w.Write([]byte("Date,Name\n"))
	})
	mux.HandleFunc("/api/v1/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, models.DashboardSnapshot{
			Enrollments: []models.Enrollment{pending},
			Messages:    []models.Message{{ID: "m1", Name: "Karim", Email: "k@example.com", Status: models.MessageStatusUnread}},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEnrollmentsListTable(t *testing.T) {
	srv := fakeAPI(t)
	out, err := run(t, "enrollments", "list", "--api-url", srv.URL+"/api/v1", "--password", "letmein", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "STUDENT")
	assert.Contains(t, out, "Rahim")
	assert.Contains(t, out, "nagad")
	assert.Contains(t, out, "pending")
}

func TestWrongPasswordFails(t *testing.T) {
	srv := fakeAPI(t)
	_, err := run(t, "enrollments", "list", "--api-url", srv.URL+"/api/v1", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect password")
}

func TestVerifyEnrollment(t *testing.T) {
	srv := fakeAPI(t)
	out, err := run(t, "enrollments", "verify", "e1", "--notes", "checked", "--api-url", srv.URL+"/api/v1", "--password", "letmein")
	require.NoError(t, err)
	assert.Equal(t, "e1: verified (Rahim)\n", out)
}

func TestExportWritesFile(t *testing.T) {
	srv := fakeAPI(t)
	dir := t.TempDir()
	out, err := run(t, "enrollments", "export", "--dir", dir, "--api-url", srv.URL+"/api/v1", "--password", "letmein")
	require.NoError(t, err)
	assert.Contains(t, out, "enrollments-20240503-100000.csv")

	body, err := os.ReadFile(filepath.Join(dir, "enrollments-20240503-100000.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Name\n", string(body))
}

func TestDashboardStats(t *testing.T) {
	srv := fakeAPI(t)
	out, err := run(t, "dashboard", "--tab", "messages", "--api-url", srv.URL+"/api/v1", "--password", "letmein", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 pending)")
	assert.Contains(t, out, "Karim")
}

func TestDashboardRejectsUnknownTab(t *testing.T) {
	srv := fakeAPI(t)
	_, err := run(t, "dashboard", "--tab", "billing", "--api-url", srv.URL+"/api/v1", "--password", "letmein")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nextup-admin dev")
}
