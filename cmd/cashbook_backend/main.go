package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/platform/app"
	"github.com/SscSPs/cashbook_backend/internal/platform/config"
)

// @title Cashbook Backend API
// @version 1.0
// @description Admin API for recording cash-ledger forms, customer WhatsApp notifications and daily totals.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.Startup(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- application.Run()
	}()

	select {
	case err := <-runErr:
		if err != nil {
			logger.Error("Server stopped unexpectedly", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
