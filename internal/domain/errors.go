package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DetailError pairs a sentinel with a message that is safe to show the end
// user, such as "Invalid credentials". The HTTP layer renders Detail as the
// problem detail.
type DetailError struct {
	Detail string
	Err    error
}

func (e *DetailError) Error() string {
	return e.Detail + ": " + e.Err.Error()
}

func (e *DetailError) Unwrap() error {
	return e.Err
}

// UserDetail returns the user-facing detail carried by err, or "" if there
// is none.
func UserDetail(err error) string {
	var de *DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return ""
}
