package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/middleware"
	"github.com/nextup-mentor/nextup-api/pkg/currency"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

// CurrencyHandler reports and flips the visitor's display unit.
type CurrencyHandler struct {
	converter *currency.Converter
}

// NewCurrencyHandler constructs CurrencyHandler.
func NewCurrencyHandler(converter *currency.Converter) *CurrencyHandler {
	if converter == nil {
		converter = currency.NewConverter(currency.DefaultEURRate)
	}
	return &CurrencyHandler{converter: converter}
}

// Get godoc
// @Summary Current display currency
// @Tags Currency
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /currency [get]
func (h *CurrencyHandler) Get(c *gin.Context) {
	response.OK(c, h.state(middleware.CurrencyUnit(c)))
}

// Toggle godoc
// @Summary Switch between BDT and EUR
// @Tags Currency
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /currency/toggle [post]
func (h *CurrencyHandler) Toggle(c *gin.Context) {
	next := middleware.CurrencyUnit(c).Toggle()
	middleware.SetCurrencyCookie(c, next)
	response.OK(c, h.state(next))
}

func (h *CurrencyHandler) state(unit currency.Code) dto.CurrencyState {
	return dto.CurrencyState{Currency: string(unit), Symbol: unit.Symbol(), EURRate: h.converter.Rate()}
}
