// Package httpclient is the outbound HTTP client used to reach the users
// API. A call passes through, in order:
//
//	circuit breaker → rate limiter → span and header injection → retry → transport
//
// Request and correlation IDs put in the context by the inbound middleware
// are forwarded as X-Request-ID and X-Correlation-ID.
//
// Only replayable requests are retried: GET, HEAD, OPTIONS, PUT, DELETE,
// and any request carrying an Idempotency-Key header.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/aladdinnow/forms-service/internal/platform/config"
	"github.com/aladdinnow/forms-service/internal/platform/telemetry"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the ID sent as X-Request-ID on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the ID sent as X-Correlation-ID on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// StatusError reports that retries ran out on a retryable status. Do
// returns it together with the last response.
type StatusError struct {
	Service    string
	StatusCode int
	Attempts   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d after %d attempt(s)", e.Service, e.StatusCode, e.Attempts)
}

// Client calls one downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil when rate limiting is disabled
	retry   retryPolicy
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a client for one downstream service. name labels spans,
// metrics, the breaker, and health reports. A nil metrics skips recording;
// a nil logger discards breaker transitions.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    name,
		retry:   newRetryPolicy(cfg.Retry),
		tracer:  otel.GetTracerProvider().Tracer("github.com/aladdinnow/forms-service/httpclient"),
		metrics: metrics,
		logger:  logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// A caller hanging up says nothing about the downstream's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}
	return c
}

// Do sends req. The caller's request is not modified.
//
// A non-retryable status (2xx, 4xx other than 429) returns the response
// and a nil error. When retries run out on a retryable status the last
// response is returned with a *StatusError; the caller closes its body in
// both cases. Transport failures and breaker rejections return a nil
// response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s: rate limit: %w", c.name, err)
			}
		}
		return c.send(ctx, req)
	})

	c.recordMetrics(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// send traces one logical call, including its retries.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	out := req.Clone(ctx)
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		out.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		out.Header.Set("X-Correlation-ID", id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(out.Header))

	resp, attempts, err := c.sendWithRetry(ctx, out)

	span.SetAttributes(attribute.Int("http.attempts", attempts))
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service name, e.g. "users-api".
func (c *Client) Name() string {
	return c.name
}

// CircuitBreakerState returns "closed", "half-open", or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck reports availability from the breaker state without a
// network call: closed is healthy, half-open degraded, open failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

// recordMetrics runs outside the breaker so rejected calls are counted.
func (c *Client) recordMetrics(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	result := "error"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err == nil && status < http.StatusBadRequest:
		result = "success"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into [0, MaxUint32].
func toUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
