package handler

import (
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"

	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/response"
	"github.com/nextup-mentor/nextup-api/pkg/storage"
)

type objectOpener interface {
	Open(bucket, objectPath string) (*os.File, error)
	Signer() *storage.SignedURLSigner
}

// FileHandler serves objects kept by the local storage driver through signed
// download links.
type FileHandler struct {
	store objectOpener
}

// NewFileHandler constructs FileHandler.
func NewFileHandler(store objectOpener) *FileHandler {
	return &FileHandler{store: store}
}

// Download godoc
// @Summary Download a stored object
// @Tags Files
// @Param token path string true "Signed token"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /files/{token} [get]
func (h *FileHandler) Download(c *gin.Context) {
	bucket, objectPath, _, err := h.store.Signer().Parse(c.Param("token"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
		return
	}
	file, err := h.store.Open(bucket, objectPath)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "file not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read file"))
		return
	}
	c.Header("Content-Type", storage.ContentType("", objectPath))
	c.Header("Cache-Control", "private, max-age=3600")
	http.ServeContent(c.Writer, c.Request, path.Base(objectPath), info.ModTime(), file)
}
