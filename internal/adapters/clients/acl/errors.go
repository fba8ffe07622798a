// Package acl is the anti-corruption layer between the downstream users API
// and the account domain. Wire shapes and their translators live in the
// users subpackage; request handling and error mapping live here.
package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sony/gobreaker/v2"

	"github.com/aladdinnow/forms-service/internal/domain"
)

// maxErrorBodyBytes bounds how much of an error body is parsed.
const maxErrorBodyBytes = 64 << 10

// errorBody accepts both shapes the users API answers with: the legacy
// {"error": "..."} envelope and RFC 9457 problem details.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// statusKinds maps client-error statuses to domain sentinels.
var statusKinds = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrUnauthorized,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
}

// TranslateHTTPError maps a non-2xx users API response to a domain error.
//
// Field-level problem details on a 400 or 422 become a
// *domain.ValidationError. Otherwise a downstream message becomes a
// *domain.DetailError the handlers can show the user. 5xx and 429 answers
// are ErrUnavailable and their bodies are never surfaced.
func TranslateHTTPError(resp *http.Response) error {
	status := resp.StatusCode
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		return fmt.Errorf("%d %s: %w", status, http.StatusText(status), domain.ErrUnavailable)
	}

	kind, known := statusKinds[status]
	if !known {
		return fmt.Errorf("unexpected status %d %s", status, http.StatusText(status))
	}

	body := readErrorBody(resp)
	if kind == domain.ErrValidation && len(body.Errors) > 0 {
		fields := make(map[string]string, len(body.Errors))
		for _, e := range body.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}

	msg := strings.TrimSpace(body.Error)
	if msg == "" {
		msg = strings.TrimSpace(body.Detail)
	}
	if msg != "" {
		return &domain.DetailError{Detail: msg, Err: kind}
	}
	return fmt.Errorf("%d %s: %w", status, http.StatusText(status), kind)
}

// TranslateTransportError maps a call that produced no usable response
// (network failure, open circuit breaker, deadline) to ErrUnavailable,
// keeping the cause in the chain. A caller's own cancellation passes
// through unchanged.
func TranslateTransportError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("circuit breaker: %w", errors.Join(domain.ErrUnavailable, err))
	default:
		return fmt.Errorf("transport: %w", errors.Join(domain.ErrUnavailable, err))
	}
}

// readErrorBody parses a JSON error body. Anything else, including a
// missing or malformed body, yields the zero value.
func readErrorBody(resp *http.Response) errorBody {
	var body errorBody
	if resp.Body == nil {
		return body
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return body
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodyBytes)).Decode(&body); err != nil {
		return errorBody{}
	}
	return body
}
