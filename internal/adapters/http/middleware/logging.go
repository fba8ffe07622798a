package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying the request and
// correlation IDs in the context (see logging.FromContext) and writes one
// line when the request finishes: error level for 5xx, warn for 4xx.
// Redacted request headers are logged at debug. Bodies are never logged.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(r.Header)...)},
				)
			}

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			reqLogger.LogAttrs(ctx, completionLevel(sr.status), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
