package main

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/aladdinnow/forms-service/internal/platform/config"
	"github.com/aladdinnow/forms-service/internal/platform/telemetry"
)

// otelProviders owns the SDK providers. Both are nil, and metrics is a
// no-op set, when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.TelemetryConfig) (*otelProviders, error) {
	if !cfg.Enabled {
		return &otelProviders{metrics: telemetry.NewNoopMetrics()}, nil
	}

	o := &otelProviders{}
	var err error
	if o.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	if o.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, errors.Join(fmt.Errorf("meter: %w", err), o.Shutdown(ctx))
	}
	if o.metrics, err = telemetry.NewMetrics(o.meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(fmt.Errorf("instruments: %w", err), o.Shutdown(ctx))
	}
	return o, nil
}
