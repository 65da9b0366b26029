package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

func invalidPayload(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload")
}

// pathID returns the :id route parameter. Anything that is not a UUID cannot
// name a stored record and is reported as not found.
func pathID(c *gin.Context, notFound string) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return id, nil
}

// respondWithMeta sends data with the per-request metadata collected by
// middleware.WithResponseMeta.
func respondWithMeta(c *gin.Context, status int, data interface{}, cacheHit bool) {
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, status, data, middleware.ResponseMeta(c))
}

func decoratePackage(cv *currency.Converter, unit currency.Code, pkg *models.Package) {
	if cv == nil || pkg == nil {
		return
	}
	price := cv.Price(pkg.Price, unit)
	pkg.DisplayPrice = &price
}

func decoratePackages(cv *currency.Converter, unit currency.Code, pkgs []models.Package) {
	for i := range pkgs {
		decoratePackage(cv, unit, &pkgs[i])
	}
}

func decorateEnrollment(cv *currency.Converter, unit currency.Code, e *models.Enrollment) {
	if cv == nil || e == nil {
		return
	}
	price := cv.Price(e.Amount, unit)
	e.DisplayPrice = &price
}

func decorateEnrollments(cv *currency.Converter, unit currency.Code, items []models.Enrollment) {
	for i := range items {
		decorateEnrollment(cv, unit, &items[i])
	}
}

// formUpload opens the named multipart file. A missing field yields a nil
// upload and no error so callers decide whether the file is required.
func formUpload(c *gin.Context, field string) (*dto.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, func() {}, appErrors.Clone(appErrors.ErrPayloadTooLarge, "upload too large")
		}
		return nil, func() {}, invalidPayload(err)
	}
	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*dto.Upload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, invalidPayload(err)
	}
	return &dto.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, nil
}
