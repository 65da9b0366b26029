package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nextup-mentor/nextup-api/internal/dto"
	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

const adminIssuer = "nextup-api"

// AdminAuthConfig defines the shared admin password and token settings.
// PasswordHash, a bcrypt hash, wins over Password when both are set.
type AdminAuthConfig struct {
	Password     string
	PasswordHash string
	TokenSecret  string
	TokenTTL     time.Duration
}

// AdminAuthService gates the admin API behind one shared password. It is a
// deterrent for casual visitors, not per-user access control: there are no
// accounts, no lockout and no refresh tokens.
type AdminAuthService struct {
	validator *validator.Validate
	logger    *zap.Logger
	config    AdminAuthConfig
	now       func() time.Time
}

// NewAdminAuthService constructs an AdminAuthService.
func NewAdminAuthService(validate *validator.Validate, logger *zap.Logger, config AdminAuthConfig) *AdminAuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.TokenTTL <= 0 {
		config.TokenTTL = 8 * time.Hour
	}
	return &AdminAuthService{validator: validate, logger: logger, config: config, now: time.Now}
}

// Login exchanges the shared password for an admin token.
func (s *AdminAuthService) Login(req dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "password is required")
	}
	if !s.passwordMatches(req.Password) {
		s.logger.Warn("admin login rejected")
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "incorrect password")
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.config.TokenTTL)
	claims := &models.AdminClaims{
		Scope: models.AdminScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    adminIssuer,
			Subject:   models.AdminScope,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create admin token")
	}
	s.logger.Info("admin unlocked", zap.String("token_id", claims.ID))
	return &dto.AdminLoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		ExpiresIn: int64(s.config.TokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses an admin token and checks its scope.
func (s *AdminAuthService) ValidateToken(tokenString string) (*models.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	}, jwt.WithIssuer(adminIssuer))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}
	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid || claims.Scope != models.AdminScope {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

func (s *AdminAuthService) passwordMatches(candidate string) bool {
	if s.config.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(candidate)) == nil
	}
	if s.config.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.config.Password), []byte(candidate)) == 1
}
