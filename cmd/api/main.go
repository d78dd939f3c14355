package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"landing-builder-backend/internal/app"
	"landing-builder-backend/internal/config"
	"landing-builder-backend/pkg/logger"
	"landing-builder-backend/pkg/validator"
)

func main() {
	logger.Init()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables", nil)
	}

	cfg := config.New()
	if !logger.SetLevel(cfg.LogLevel) {
		logger.Warn("Unknown log level, keeping debug", map[string]interface{}{"level": cfg.LogLevel})
	}
	if cfg.IsProduction() {
		logger.UseJSON()
	}
	logger.Info("Starting landing page builder", map[string]interface{}{
		"addr":        cfg.Addr(),
		"environment": cfg.Environment,
	})

	validator.Init()

	application, err := app.New(cfg)
	if err != nil {
		logger.Error(err, "Failed to initialize application", nil)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	failed := make(chan error, 1)
	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Signal received, stopping editor", nil)
	case err := <-failed:
		logger.Error(err, "Editor server stopped unexpectedly", nil)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "Editor shutdown did not complete", nil)
		os.Exit(1)
	}

	logger.Info("Editor stopped", nil)
}
