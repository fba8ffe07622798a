// Package logging builds the service's slog logger and carries it through
// request contexts.
//
// Services log the operation, identifiers, and the error chain. They never
// log submitted form values:
//
//	logger.ErrorContext(ctx, "failed to register account",
//	    slog.String("operation", "SignUp"),
//	    slog.Any("error", err),
//	)
//
// The handler masks credential-bearing attributes (passwords, tokens,
// sensitive headers) even when a call site slips.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type loggerKey struct{}

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"; case-insensitive, info when unrecognized). format selects
// FormatText or, for anything else, FormatJSON. Debug loggers also record
// the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name to a slog.Level, falling back to
// info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
