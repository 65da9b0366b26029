package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

type publicPackageService interface {
	ListActive(ctx context.Context) ([]models.Package, bool, error)
	Get(ctx context.Context, id string) (*models.Package, error)
}

type publicDestinationService interface {
	List(ctx context.Context) ([]models.Destination, bool, error)
}

type paymentMethodLister interface {
	List() []models.PaymentMethod
}

// CatalogHandler serves the read-only public content.
type CatalogHandler struct {
	packages     publicPackageService
	destinations publicDestinationService
	payments     paymentMethodLister
	converter    *currency.Converter
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(packages publicPackageService, destinations publicDestinationService, payments paymentMethodLister, converter *currency.Converter) *CatalogHandler {
	if converter == nil {
		converter = currency.NewConverter(currency.DefaultEURRate)
	}
	return &CatalogHandler{packages: packages, destinations: destinations, payments: payments, converter: converter}
}

// ListPackages godoc
// @Summary List active packages
// @Tags Public
// @Produce json
// @Param currency query string false "Display currency (BDT or EUR)"
// @Success 200 {object} response.Envelope
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	pkgs, hit, err := h.packages.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	decoratePackages(h.converter, middleware.CurrencyUnit(c), pkgs)
	respondWithMeta(c, http.StatusOK, pkgs, hit)
}

// GetPackage godoc
// @Summary Get a package, including retired ones
// @Tags Public
// @Produce json
// @Param id path string true "Package ID"
// @Param currency query string false "Display currency (BDT or EUR)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
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

// ListDestinations godoc
// @Summary List study destinations
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /destinations [get]
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	destinations, hit, err := h.destinations.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, http.StatusOK, destinations, hit)
}

// PaymentMethods godoc
// @Summary List manual payment methods
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /payment-methods [get]
func (h *CatalogHandler) PaymentMethods(c *gin.Context) {
	response.OK(c, h.payments.List())
}
