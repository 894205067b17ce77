package handlers

import (
	"net/http"

	"github.com/SscSPs/cashbook_backend/cmd/docs"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/middleware"
	"github.com/SscSPs/cashbook_backend/internal/platform/config"
	"github.com/SscSPs/cashbook_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Limiters holds the per-IP limiters applied to the API and to login.
type Limiters struct {
	API   *limiter.Limiter
	Login *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters Limiters,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, services.Auth, limiters.Login)

	setupAdminRoutes(r, cfg, services, limiters.API, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAdminRoutes mounts the form endpoints behind the admin gate
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	handlers := []gin.HandlerFunc{}
	if apiLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(apiLimiter))
	}
	handlers = append(handlers,
		middleware.AuthMiddleware(middleware.TokenValidation{
			Secret: cfg.JWTSecret,
			Issuer: cfg.JWTIssuer,
			Admin:  cfg.AdminUsername,
		}),
		middleware.PosthogMiddleware(posthogClient),
	)

	admin := r.Group("/", handlers...)
	RegisterLedgerEntryRoutes(admin, services.LedgerEntry, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
