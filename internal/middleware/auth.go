package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/cashbook_backend/internal/dto"
	"github.com/SscSPs/cashbook_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidation describes which tokens the admin gate accepts.
type TokenValidation struct {
	Secret string
	Issuer string
	// Admin is the only subject allowed through.
	Admin string
}

// AuthMiddleware creates a Gin middleware handler that validates admin JWT tokens.
func AuthMiddleware(tv TokenValidation) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], tv.Secret, tv.Issuer)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: msg})
			return
		}

		admin := claims.Subject
		if admin == "" || admin != tv.Admin {
			logger.Warn("Token subject is not the configured admin", slog.String("subject", admin))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid token claims"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), adminKey, admin)
		ctx = WithLogger(ctx, logger.With(slog.String("admin", admin)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
