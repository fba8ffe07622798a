package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/aladdinnow/forms-service/internal/adapters/clients/acl"
	adapthttp "github.com/aladdinnow/forms-service/internal/adapters/http"
	"github.com/aladdinnow/forms-service/internal/adapters/http/handlers"
	"github.com/aladdinnow/forms-service/internal/adapters/http/middleware"
	"github.com/aladdinnow/forms-service/internal/app"
	"github.com/aladdinnow/forms-service/internal/platform/config"
	"github.com/aladdinnow/forms-service/internal/platform/health"
	"github.com/aladdinnow/forms-service/internal/platform/httpclient"
	"github.com/aladdinnow/forms-service/internal/platform/telemetry"
	"github.com/aladdinnow/forms-service/internal/platform/validate"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// usersAPIName labels the users API in metrics, spans, and readiness.
const usersAPIName = "users-api"

// provide registers every lazily built component. The injector must already
// hold *config.Config, *slog.Logger, and *telemetry.Metrics.
func provide(i do.Injector) {
	// Downstream users API.
	do.Provide(i, func(i do.Injector) (*acl.UsersClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		client := httpclient.New(&cfg.UsersAPI, usersAPIName, do.MustInvoke[*telemetry.Metrics](i), logger)
		return acl.NewUsersClient(client, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.UsersClient, error) {
		return do.Invoke[*acl.UsersClient](i)
	})

	// Application services.
	do.Provide(i, func(i do.Injector) (ports.ValidationService, error) {
		forms := do.MustInvoke[*config.Config](i).Forms
		return app.NewValidationService(
			app.BatchLimits{Workers: forms.BatchWorkers, MaxFields: forms.MaxBatchFields},
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
	do.Provide(i, func(i do.Injector) (ports.AccountService, error) {
		return app.NewAccountService(do.MustInvoke[ports.UsersClient](i), do.MustInvoke[*slog.Logger](i)), nil
	})

	// Readiness watches the users API; its failures only degrade the probe.
	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		users, err := do.Invoke[*acl.UsersClient](i)
		if err != nil {
			return nil, err
		}
		registry := health.New()
		registry.Register(users)
		return registry, nil
	})

	// HTTP.
	do.Provide(i, func(do.Injector) (*validate.Validator, error) {
		return validate.New()
	})
	do.Provide(i, func(i do.Injector) (*handlers.ValidationHandler, error) {
		return handlers.NewValidationHandler(do.MustInvoke[ports.ValidationService](i), do.MustInvoke[*validate.Validator](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.AccountHandler, error) {
		return handlers.NewAccountHandler(do.MustInvoke[ports.AccountService](i), do.MustInvoke[*validate.Validator](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		stack := middleware.Stack(middleware.StackConfig{
			Logger:  do.MustInvoke[*slog.Logger](i),
			Metrics: do.MustInvoke[*telemetry.Metrics](i),
			CORS: middleware.CORSConfig{
				AllowedOrigins:   cfg.CORS.AllowedOrigins,
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           cfg.CORS.MaxAge,
			},
			RequestTimeout: cfg.Server.RequestTimeout,
		})
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.ValidationHandler](i),
			do.MustInvoke[*handlers.AccountHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			stack,
		), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(do.MustInvoke[*config.Config](i).Server, do.MustInvoke[nethttp.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
	})
}
