package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/aladdinnow/forms-service/internal/platform/telemetry"
)

// StackConfig configures the inbound pipeline.
type StackConfig struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics
	CORS    CORSConfig
	// RequestTimeout bounds handler time. Zero disables the deadline.
	RequestTimeout time.Duration
}

// Stack returns the full inbound pipeline in the order listed in the
// package documentation.
func Stack(cfg StackConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		SecurityHeaders(),
		CORS(cfg.CORS),
		OpenTelemetry(cfg.Metrics),
		Logging(logger),
	}
	if cfg.RequestTimeout > 0 {
		mws = append(mws, Timeout(cfg.RequestTimeout))
	}
	return Chain(mws...)
}

// Chain composes middleware so that the first argument runs outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}
