package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nextup-mentor/nextup-api/pkg/config"
)

// ObjectStore persists objects in named buckets and hands back URLs that the
// browser can load directly.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, bucket, path string) error
	PublicURL(bucket, path string) (string, error)
}

// Error is returned when the storage provider rejects a request. Message is
// the provider's own explanation and is safe to show to the uploader.
type Error struct {
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("storage %s failed (%d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("storage %s failed: %s", e.Op, e.Message)
}

// New builds the object store selected by cfg.Storage.Driver.
func New(cfg *config.Config, client *http.Client) (ObjectStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSupabase:
		return NewSupabaseStorage(cfg.Backend.URL, cfg.Backend.ServiceKey, client), nil
	case config.StorageDriverLocal:
		signer := NewSignedURLSigner(cfg.Storage.SignedURLSecret, cfg.Storage.SignedURLTTL)
		return NewLocalStorage(cfg.Storage.LocalDir, cfg.PublicURL+cfg.APIPrefix+"/files", signer)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
