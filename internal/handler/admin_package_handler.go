package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type packageAdminService interface {
	ListActiveUncached(ctx context.Context) ([]models.Package, error)
	Get(ctx context.Context, id string) (*models.Package, error)
	Create(ctx context.Context, req dto.CreatePackageRequest) (*models.Package, error)
	Update(ctx context.Context, id string, req dto.UpdatePackageRequest) (*models.Package, error)
	Delete(ctx context.Context, id string) error
}

type packageImageService interface {
	UploadPackageImage(ctx context.Context, up dto.Upload) (*dto.PackageImageResponse, error)
	DeletePackageImage(ctx context.Context, path string) error
}

// PackageHandler exposes package management to the admin.
type PackageHandler struct {
	packages  packageAdminService
	images    packageImageService
	converter *currency.Converter
}

// NewPackageHandler constructs PackageHandler.
func NewPackageHandler(packages packageAdminService, images packageImageService, converter *currency.Converter) *PackageHandler {
	if converter == nil {
		converter = currency.NewConverter(currency.DefaultEURRate)
	}
	return &PackageHandler{packages: packages, images: images, converter: converter}
}

// List godoc
// @Summary List active packages for the admin
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} response.Envelope
// @Router /admin/packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.packages.ListActiveUncached(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	decoratePackages(h.converter, middleware.CurrencyUnit(c), pkgs)
	response.OK(c, pkgs)
}

// Get godoc
// @Summary Get a package, active or not
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Param id path string true "Package ID"
// @Success 200 {object} response.Envelope
// @Router /admin/packages/{id} [get]
func (h *PackageHandler) Get(c *gin.Context) {
	id, err := pathID(c, "package not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	pkg, err := h.packages.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	decoratePackage(h.converter, middleware.CurrencyUnit(c), pkg)
	response.OK(c, pkg)
}

// Create godoc
// @Summary Create package
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param payload body dto.CreatePackageRequest true "Package payload"
// @Success 201 {object} response.Envelope
// @Router /admin/packages [post]
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	pkg, err := h.packages.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	decoratePackage(h.converter, middleware.CurrencyUnit(c), pkg)
	response.Created(c, pkg)
}

// Update godoc
// @Summary Update package
// @Tags Admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Package ID"
// @Param payload body dto.UpdatePackageRequest true "Package payload"
// @Success 200 {object} response.Envelope
// @Router /admin/packages/{id} [put]
func (h *PackageHandler) Update(c *gin.Context) {
	id, err := pathID(c, "package not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	pkg, err := h.packages.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	decoratePackage(h.converter, middleware.CurrencyUnit(c), pkg)
	response.OK(c, pkg)
}

// Delete godoc
// @Summary Deactivate package
// @Tags Admin
// @Security AdminToken
// @Param id path string true "Package ID"
// @Success 204
// @Router /admin/packages/{id} [delete]
func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "package not found")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.packages.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UploadImage godoc
// @Summary Upload a package image
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security AdminToken
// @Param file formData file true "Image"
// @Success 201 {object} response.Envelope
// @Router /admin/packages/images [post]
func (h *PackageHandler) UploadImage(c *gin.Context) {
	upload, closeUpload, err := formUpload(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeUpload()
	if upload == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}
	res, err := h.images.UploadPackageImage(c.Request.Context(), *upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// DeleteImage godoc
// @Summary Delete a package image
// @Tags Admin
// @Security AdminToken
// @Param path path string true "Object path"
// @Success 204
// @Router /admin/packages/images/{path} [delete]
func (h *PackageHandler) DeleteImage(c *gin.Context) {
	if err := h.images.DeletePackageImage(c.Request.Context(), c.Param("path")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
