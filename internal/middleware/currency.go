package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/pkg/currency"
)

const (
	// CurrencyCookie persists the visitor's display unit.
	CurrencyCookie = "currency"
	// CurrencyHeader lets API clients without cookies pick a unit.
	CurrencyHeader = "X-Currency"

	contextCurrencyKey = "currency"
	currencyCookieAge  = 365 * 24 * 60 * 60
)

type currencyCtxKey struct{}

// Currency resolves the display unit from the query string, the X-Currency
// header or the currency cookie, in that order, and stores it on both the gin
// and the request context. Unknown values fall back to BDT.
func Currency() gin.HandlerFunc {
	return func(c *gin.Context) {
		unit := resolveCurrency(c)
		c.Set(contextCurrencyKey, unit)
		c.Request = c.Request.WithContext(WithCurrency(c.Request.Context(), unit))
		c.Next()
	}
}

func resolveCurrency(c *gin.Context) currency.Code {
	if code, ok := currency.Parse(c.Query("currency")); ok {
		return code
	}
	if code, ok := currency.Parse(c.GetHeader(CurrencyHeader)); ok {
		return code
	}
	if raw, err := c.Cookie(CurrencyCookie); err == nil {
		if code, ok := currency.Parse(raw); ok {
			return code
		}
	}
	return currency.BDT
}

// CurrencyUnit returns the unit chosen for the current request.
func CurrencyUnit(c *gin.Context) currency.Code {
	if c == nil {
		return currency.BDT
	}
	if v, ok := c.Get(contextCurrencyKey); ok {
		if code, ok := v.(currency.Code); ok {
			return code
		}
	}
	return CurrencyFromContext(c.Request.Context())
}

// WithCurrency returns a copy of ctx carrying unit.
func WithCurrency(ctx context.Context, unit currency.Code) context.Context {
	return context.WithValue(ctx, currencyCtxKey{}, unit)
}

// CurrencyFromContext returns the unit stored by Currency, or BDT.
func CurrencyFromContext(ctx context.Context) currency.Code {
	if ctx == nil {
		return currency.BDT
	}
	if code, ok := ctx.Value(currencyCtxKey{}).(currency.Code); ok {
		return code
	}
	return currency.BDT
}

// SetCurrencyCookie persists unit for later requests from the same client.
func SetCurrencyCookie(c *gin.Context, unit currency.Code) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CurrencyCookie, string(unit), currencyCookieAge, "/", "", false, false)
	c.Set(contextCurrencyKey, unit)
}
