// Package telemetry sets up OpenTelemetry tracing and metrics. Development
// profiles export to stdout; deployed profiles export over OTLP/HTTP.
//
//	tp, err := telemetry.InitTracer(ctx, "forms-service", telemetry.ExporterOTLP, endpoint)
//	mp, err := telemetry.InitMeter(ctx, "forms-service", telemetry.ExporterOTLP, endpoint)
//	metrics, err := telemetry.NewMetrics(mp, "forms-service")
//	metrics.ValidationTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrField.String("email")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var (
	// ErrUnsupportedExporter is returned for an exporter name other than
	// ExporterStdout or ExporterOTLP.
	ErrUnsupportedExporter = errors.New("unsupported telemetry exporter")
	// ErrMissingEndpoint is returned for ExporterOTLP without an endpoint.
	ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrField       = attribute.Key("field")
	AttrCategory    = attribute.Key("category")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// ValidationTotal counts field checks by field kind and result
	// (valid, invalid, error).
	ValidationTotal metric.Int64Counter
	// ValidationViolations counts individual violation messages by category.
	ValidationViolations metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider together with
// the W3C trace-context and baggage propagators.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider backed by a
// periodic reader.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var (
		m    Metrics
		errs []error
	)

	m.ServerRequestDuration, errs = float64Histogram(meter, errs,
		"http.server.request.duration", "Duration of incoming HTTP requests", "s")
	m.ServerRequestTotal, errs = int64Counter(meter, errs,
		"http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration, errs = float64Histogram(meter, errs,
		"http.client.request.duration", "Duration of outgoing HTTP requests", "s")
	m.ClientRequestTotal, errs = int64Counter(meter, errs,
		"http.client.request.total", "Total number of outgoing HTTP requests", "{request}")
	m.ValidationTotal, errs = int64Counter(meter, errs,
		"forms.validation.total", "Total number of form field checks", "{check}")
	m.ValidationViolations, errs = int64Counter(meter, errs,
		"forms.validation.violations", "Total number of form rule violations", "{violation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// NewNoopMetrics returns instruments that record nothing. Useful in tests
// and when telemetry is disabled.
func NewNoopMetrics() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider(), "noop")
	if err != nil {
		panic(fmt.Sprintf("noop metrics: %v", err))
	}
	return m
}

func float64Histogram(meter metric.Meter, errs []error, name, desc, unit string) (metric.Float64Histogram, []error) {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h, errs
}

func int64Counter(meter metric.Meter, errs []error, name, desc, unit string) (metric.Int64Counter, []error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c, errs
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		if endpoint == "" {
			return nil, ErrMissingEndpoint
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		if endpoint == "" {
			return nil, ErrMissingEndpoint
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort extracts host:port from an endpoint URL
// ("http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
