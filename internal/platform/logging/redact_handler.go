package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The HTTP middleware's RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
	"x-csrf-token":  true,
}

// SensitiveFields are attribute names masked wherever they appear,
// including nested in structs. The form names cover both the API's
// snake_case and the browser's camelCase spelling.
var SensitiveFields = []string{
	"password",
	"confirm_password",
	"confirmPassword",
	"compare_to",
	"secret",
	"token",
}

var (
	// bearerPattern matches "Bearer <token>" values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern matches header.payload.signature with at least 10
	// characters per segment so version strings are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern matches "api_key=<value>" and "apikey: <value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns a masq ReplaceAttr for slog.HandlerOptions.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(SensitiveFields)+5)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
