// Package app wires configuration into a running server: storage, services,
// transport, background jobs and their shutdown order.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/adapters/messaging/whatsapp"
	portsrepo "github.com/SscSPs/cashbook_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/core/services"
	"github.com/SscSPs/cashbook_backend/internal/events/kafka"
	"github.com/SscSPs/cashbook_backend/internal/handlers"
	"github.com/SscSPs/cashbook_backend/internal/middleware"
	"github.com/SscSPs/cashbook_backend/internal/platform/config"
	"github.com/SscSPs/cashbook_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashbook_backend/internal/repositories/memory"
	"github.com/SscSPs/cashbook_backend/internal/scheduler"
	"github.com/SscSPs/cashbook_backend/internal/utils"
	"github.com/SscSPs/cashbook_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// App is a fully wired server. Nothing runs until Run is called.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	server    *http.Server
	pool      *pgxpool.Pool
	redis     *redis.Client
	publisher portssvc.EventPublisher
	posthog   *utils.PosthogClientWrapper
	scheduler *scheduler.Scheduler

	Router   *gin.Engine
	Services *portssvc.ServiceContainer
}

// Startup builds every dependency in order. On error, whatever was opened is closed again.
func Startup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}
	if err := a.build(ctx); err != nil {
		a.closeResources()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	repos, err := a.initRepositories(ctx)
	if err != nil {
		return err
	}

	notifier := a.initNotifier()
	a.publisher = a.initPublisher()
	a.posthog = utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)

	a.Services = services.NewServiceContainer(cfg, repos, notifier, a.publisher)

	a.scheduler, err = scheduler.New(scheduler.Config{
		Spec:     cfg.SummaryCron,
		Location: cfg.BusinessLocation,
	}, a.Services.Summary, logger)
	if err != nil {
		return err
	}

	limiters, err := a.initLimiters()
	if err != nil {
		return err
	}

	a.Router, err = a.initRouter(limiters)
	if err != nil {
		return err
	}

	a.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Run starts the scheduler and serves HTTP until Shutdown is called.
func (a *App) Run() error {
	a.scheduler.Start()

	a.logger.Info("Server starting", slog.String("port", a.cfg.Port))
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}

// Shutdown stops the scheduler, drains HTTP, then closes outbound clients and the pool.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.scheduler.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("scheduler: %w", err))
	}
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}
	a.closeResources()

	a.logger.Info("Shutdown complete")
	return errors.Join(errs...)
}

func (a *App) closeResources() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}
	if a.posthog != nil {
		a.posthog.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("Failed to close redis client", slog.String("error", err.Error()))
		}
	}
	database.ClosePgxPool(a.pool, a.logger)
}

func (a *App) initRepositories(ctx context.Context) (portsrepo.RepositoryProvider, error) {
	if a.cfg.DatabaseURL == "" {
		a.logger.Warn("No database configured, using in-memory store")
		return memory.NewRepositoryProvider(memory.NewStore()), nil
	}

	pool, err := database.NewPgxPool(ctx, a.cfg.DatabaseURL, a.logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	a.pool = pool

	if err := database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.logger); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return pgsql.NewRepositoryProvider(pool), nil
}

func (a *App) initNotifier() portssvc.NotificationSender {
	client, err := whatsapp.NewClient(whatsapp.Config{
		BaseURL:       a.cfg.WhatsAppAPIBaseURL,
		APIToken:      a.cfg.WhatsAppAPIToken,
		PhoneNumberID: a.cfg.WhatsAppPhoneNumberID,
		LanguageCode:  a.cfg.WhatsAppLanguageCode,
		Timeout:       a.cfg.NotifierTimeout,
	})
	if err != nil {
		a.logger.Warn("WhatsApp notifications disabled", slog.String("reason", err.Error()))
		return whatsapp.NoopSender{}
	}
	return client
}

func (a *App) initPublisher() portssvc.EventPublisher {
	if len(a.cfg.KafkaBrokers) == 0 {
		return kafka.NoopPublisher{}
	}
	a.logger.Info("Publishing ledger events to kafka",
		slog.Any("brokers", a.cfg.KafkaBrokers),
		slog.String("topic", a.cfg.KafkaTopic))
	return kafka.NewPublisher(a.cfg.KafkaBrokers, a.cfg.KafkaTopic)
}

func (a *App) initLimiters() (handlers.Limiters, error) {
	if a.cfg.RedisURL != "" {
		opts, err := redis.ParseURL(a.cfg.RedisURL)
		if err != nil {
			return handlers.Limiters{}, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		a.redis = redis.NewClient(opts)
	}

	apiLimiter, err := a.newLimiter("RATE_LIMIT", a.cfg.RateLimit, "cashbook_limiter")
	if err != nil {
		return handlers.Limiters{}, err
	}
	loginLimiter, err := a.newLimiter("LOGIN_RATE_LIMIT", a.cfg.LoginRateLimit, "cashbook_login_limiter")
	if err != nil {
		return handlers.Limiters{}, err
	}
	return handlers.Limiters{API: apiLimiter, Login: loginLimiter}, nil
}

// newLimiter builds a limiter with its own key prefix so the API and login
// quotas are counted separately.
func (a *App) newLimiter(key, formatted, prefix string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, formatted, err)
	}

	opts := limiter.StoreOptions{Prefix: prefix, MaxRetry: 3}
	if a.redis == nil {
		return limiter.New(limitermemory.NewStoreWithOptions(opts), rate), nil
	}

	store, err := limiterredis.NewStoreWithOptions(a.redis, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	return limiter.New(store, rate), nil
}

func (a *App) initRouter(limiters handlers.Limiters) (*gin.Engine, error) {
	if a.cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(a.logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(a.cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = a.cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, a.cfg, a.Services, limiters, a.posthog)
	return r, nil
}
