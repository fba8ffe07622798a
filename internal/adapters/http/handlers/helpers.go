package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

// maxBodyBytes caps request bodies at 1 MB.
const maxBodyBytes = 1 << 20

// structValidator checks a decoded body's shape. *validate.Validator
// implements it.
type structValidator interface {
	Struct(s any) error
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "response not fully written",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// decode reads exactly one JSON object of type T from the body and checks
// it with v. Unknown fields are rejected. On failure the problem response
// is already written and ok is false.
func decode[T any](w http.ResponseWriter, r *http.Request, v structValidator) (req T, ok bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		dto.WriteErrorResponse(w, r, bodyError(err))
		return req, false
	}
	if dec.More() {
		dto.WriteErrorResponse(w, r, bodyError(errTrailingData))
		return req, false
	}
	if err := v.Struct(&req); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return req, false
	}
	return req, true
}

var errTrailingData = errors.New("trailing data after JSON object")

// bodyError reports an unreadable body against the "body" field.
func bodyError(err error) *domain.ValidationError {
	msg := "invalid JSON"
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		msg = "too large"
	case errors.Is(err, io.EOF):
		msg = "is required"
	}
	return &domain.ValidationError{Fields: map[string]string{"body": msg}}
}
