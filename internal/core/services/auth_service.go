package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/utils"
)

// AuthConfig holds the admin credentials and token settings.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiry         time.Duration
	JWTIssuer         string
}

type authService struct {
	BaseService
	cfg AuthConfig
}

// NewAuthService creates a new instance of the admin auth service.
func NewAuthService(cfg AuthConfig) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login checks the credentials against the configured admin and issues a JWT.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogDebug(ctx, "Login attempted while no admin password hash is configured")
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passwordOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !usernameOK || !passwordOK {
		s.LogInfo(ctx, "Rejected admin login", slog.String("username", username))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}
