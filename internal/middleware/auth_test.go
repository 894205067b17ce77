package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const testSecret = "middleware-test-secret-value"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthMiddleware(TokenValidation{Secret: testSecret, Issuer: "test", Admin: "admin"}), func(c *gin.Context) {
		admin, ok := GetAdminFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, admin)
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	valid, _, err := utils.GenerateJWT("admin", testSecret, time.Hour, "test")
	require.NoError(t, err)
	expired, _, err := utils.GenerateJWT("admin", testSecret, -time.Minute, "test")
	require.NoError(t, err)
	foreign, _, err := utils.GenerateJWT("admin", "some-other-secret-value", time.Hour, "test")
	require.NoError(t, err)
	otherIssuer, _, err := utils.GenerateJWT("admin", testSecret, time.Hour, "someone-else")
	require.NoError(t, err)
	renamedAdmin, _, err := utils.GenerateJWT("old-admin", testSecret, time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
		{"wrong issuer", "Bearer " + otherIssuer, http.StatusUnauthorized, "Invalid token"},
		{"subject is not the admin", "Bearer " + renamedAdmin, http.StatusUnauthorized, "Invalid token claims"},
		{"valid token", "Bearer " + valid, http.StatusOK, "admin"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit_BlocksAfterQuota(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)
	instance := limiter.New(memory.NewStore(), rate)

	r := gin.New()
	r.GET("/private", RateLimit(instance), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	second := doGet(r, "")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := doGet(r, "")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "Too many requests")
}
