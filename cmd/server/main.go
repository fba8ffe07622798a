// Command server runs the AladdinNow forms service: field validation, the
// sign-up and sign-in form endpoints, and the health probes.
//
// APP_PROFILE picks configs/{profile}.yaml. A .env file in the working
// directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/aladdinnow/forms-service/internal/adapters/http"
	"github.com/aladdinnow/forms-service/internal/platform/config"
	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

const telemetryFlushTimeout = 5 * time.Second

var errNoProfile = errors.New("APP_PROFILE is required (local, dev, qa, prod)")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "forms-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errNoProfile
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry flush failed", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	provide(injector)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()
	logger.Info("forms service started",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
	)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down", slog.Any("cause", context.Cause(ctx)))
	}
	stop()

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown incomplete", slog.Any("error", err))
	}
	<-serveErr

	logger.Info("shutdown complete")
	return nil
}
