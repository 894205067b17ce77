package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	"github.com/SscSPs/cashbook_backend/internal/core/services"
	"github.com/SscSPs/cashbook_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-auth-service"

func adminAuthConfig(t *testing.T, password string) services.AuthConfig {
	t.Helper()
	hash := ""
	if password != "" {
		var err error
		hash, err = utils.HashPassword(password)
		require.NoError(t, err)
	}
	return services.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         testSecret,
		JWTExpiry:         time.Hour,
		JWTIssuer:         "cashbook-test",
	}
}

func TestLogin_Success(t *testing.T) {
	svc := services.NewAuthService(adminAuthConfig(t, "s3cret"))

	token, expiresAt, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, testSecret, "cashbook-test")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "cashbook-test", claims.Issuer)
}

func TestLogin_Rejected(t *testing.T) {
	svc := services.NewAuthService(adminAuthConfig(t, "s3cret"))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "s3cret"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := svc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
			assert.Empty(t, token)
		})
	}
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	svc := services.NewAuthService(adminAuthConfig(t, ""))

	_, _, err := svc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
