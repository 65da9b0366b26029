package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/storage"
)

func newMediaFixture(maxBytes int64) (*MediaService, *memoryObjectStore, *MetricsService) {
	store := newMemoryObjectStore()
	metrics := NewMetricsService()
	svc := NewMediaService(store, MediaConfig{MaxUploadBytes: maxBytes}, metrics, nil)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return svc, store, metrics
}

func TestMediaServiceUploadScreenshotNamesByTimestamp(t *testing.T) {
	svc, store, _ := newMediaFixture(0)

	url, path, err := svc.UploadScreenshot(context.Background(), dto.Upload{Filename: "Proof.WEBP", Size: 3, Body: strings.NewReader("img")})
	require.NoError(t, err)
	assert.Equal(t, "1700000000123.webp", path)
	assert.Equal(t, "https://cdn.example.com/payment-screenshots/1700000000123.webp", url)
	assert.Equal(t, "image/webp", store.types["payment-screenshots/1700000000123.webp"])
}

func TestMediaServiceUploadPackageImageSanitizesName(t *testing.T) {
	svc, store, _ := newMediaFixture(0)

	res, err := svc.UploadPackageImage(context.Background(), dto.Upload{Filename: "rome trip (1).jpg", ContentType: "image/jpeg", Size: 3, Body: strings.NewReader("img")})
	require.NoError(t, err)
	assert.Equal(t, "1700000000123-rome_trip__1_.jpg", res.Path)
	assert.Contains(t, store.objects, "package-images/1700000000123-rome_trip__1_.jpg")
}

func TestMediaServiceRejectsOversizedAndEmpty(t *testing.T) {
	svc, store, _ := newMediaFixture(2)

	_, _, err := svc.UploadScreenshot(context.Background(), dto.Upload{Filename: "a.png", Size: 3, Body: strings.NewReader("img")})
	assert.Equal(t, http.StatusRequestEntityTooLarge, appErrors.FromError(err).Status)

	_, _, err = svc.UploadScreenshot(context.Background(), dto.Upload{Filename: "a.png", Size: 0, Body: strings.NewReader("")})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
	assert.Empty(t, store.objects)
}

func TestMediaServiceSurfacesProviderMessage(t *testing.T) {
	svc, store, _ := newMediaFixture(0)
	store.uploadErr = &storage.Error{Op: "upload", Status: 400, Message: "Bucket not found"}

	_, _, err := svc.UploadScreenshot(context.Background(), dto.Upload{Filename: "a.png", Size: 1, Body: strings.NewReader("x")})
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Equal(t, "upload failed: Bucket not found", appErr.Message)
}

func TestMediaServiceDeletePackageImage(t *testing.T) {
	svc, store, _ := newMediaFixture(0)
	store.objects["package-images/1-a.jpg"] = []byte("x")

	require.NoError(t, svc.DeletePackageImage(context.Background(), "/1-a.jpg"))
	assert.Empty(t, store.objects)

	err := svc.DeletePackageImage(context.Background(), " ")
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
