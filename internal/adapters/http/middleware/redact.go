package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as log attributes sorted by name.
// Credential headers (logging.SensitiveHeaders) are replaced with
// "[REDACTED]"; repeated values are joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
