package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

func TestAdminLoginAcceptsOnlyConfiguredPassword(t *testing.T) {
	svc := NewAdminAuthService(nil, nil, AdminAuthConfig{Password: "admin123", TokenSecret: "secret", TokenTTL: time.Hour})

	for _, candidate := range []string{"admin", "admin1234", "ADMIN123", " admin123"} {
		_, err := svc.Login(dto.AdminLoginRequest{Password: candidate})
		require.Error(t, err, candidate)
		assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)
	}

	for i := 0; i < 10; i++ {
		_, err := svc.Login(dto.AdminLoginRequest{Password: "wrong"})
		require.Error(t, err)
	}
	res, err := svc.Login(dto.AdminLoginRequest{Password: "admin123"})
	require.NoError(t, err, "no lockout after failed attempts")
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.AdminScope, claims.Scope)
}

func TestAdminLoginEmptyPassword(t *testing.T) {
	svc := NewAdminAuthService(nil, nil, AdminAuthConfig{Password: "admin123", TokenSecret: "secret"})
	_, err := svc.Login(dto.AdminLoginRequest{})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestAdminLoginWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAdminAuthService(nil, nil, AdminAuthConfig{Password: "ignored", PasswordHash: string(hash), TokenSecret: "secret"})

	_, err = svc.Login(dto.AdminLoginRequest{Password: "ignored"})
	require.Error(t, err)
	_, err = svc.Login(dto.AdminLoginRequest{Password: "s3cret"})
	require.NoError(t, err)
}

func TestAdminValidateTokenRejectsForeignTokens(t *testing.T) {
	svc := NewAdminAuthService(nil, nil, AdminAuthConfig{Password: "admin123", TokenSecret: "secret"})
	other := NewAdminAuthService(nil, nil, AdminAuthConfig{Password: "admin123", TokenSecret: "other"})

	res, err := other.Login(dto.AdminLoginRequest{Password: "admin123"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(res.Token)
	assert.Equal(t, http.StatusUnauthorized, appErrors.FromError(err).Status)

	wrongScope := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.AdminClaims{
		Scope:            "viewer",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: adminIssuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := wrongScope.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAdminValidateTokenExpired(t *testing.T) {
	svc := NewAdminAuthService(nil, nil, AdminAuthConfig{Password: "admin123", TokenSecret: "secret", TokenTTL: time.Minute})
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	res, err := svc.Login(dto.AdminLoginRequest{Password: "admin123"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(res.Token)
	assert.Error(t, err)
}

func TestAdminLoginWithoutConfiguredPassword(t *testing.T) {
	svc := NewAdminAuthService(nil, nil, AdminAuthConfig{TokenSecret: "secret"})
	_, err := svc.Login(dto.AdminLoginRequest{Password: "anything"})
	assert.Error(t, err)
}
