package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
	"github.com/nextup-mentor/nextup-api/pkg/response"
)

// ContextAdminKey is the gin context key storing admin token claims.
const ContextAdminKey = "adminClaims"

// TokenValidator verifies admin bearer tokens.
type TokenValidator interface {
	ValidateToken(token string) (*models.AdminClaims, error)
}

// AdminJWT protects routes by requiring a valid admin token.
func AdminJWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}

// AdminClaims returns the claims attached by AdminJWT, if any.
func AdminClaims(c *gin.Context) (*models.AdminClaims, bool) {
	v, ok := c.Get(ContextAdminKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.AdminClaims)
	return claims, ok
}
