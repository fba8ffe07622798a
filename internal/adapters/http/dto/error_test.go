package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrValidation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"title": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrConflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "ErrUnauthorized maps to 401",
			err:        &domain.DetailError{Detail: "Invalid credentials", Err: domain.ErrUnauthorized},
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "Unauthorized",
		},
		{
			name:       "FormError maps to 400",
			err:        &account.FormError{Form: "signup", Report: account.Report{{Field: "email", Result: validation.Email("")}}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrForbidden maps to 403",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
		},
		{
			name:       "ErrUnavailable maps to 502",
			err:        domain.ErrUnavailable,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "deadline maps to 504",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped ErrNotFound preserves mapping",
			err:        fmt.Errorf("fetching user: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/signin", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)
	err := domain.ErrNotFound

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/auth/signup" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/auth/signup")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"fields[0].field": "is required",
		"fields":          "must contain at least 1 item(s)",
		"value":           "must be at most 4096 characters",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	// Verify sorted by location.
	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	// Verify location format.
	for _, detail := range got.Errors {
		if len(detail.Location) < 6 || detail.Location[:5] != "body." {
			t.Errorf("Location %q does not start with %q", detail.Location, "body.")
		}
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/signin", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/signin", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestWriteErrorResponse_StatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", &domain.ValidationError{Fields: map[string]string{"x": "y"}}, http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			dto.WriteErrorResponse(w, r, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status code = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestWriteErrorResponse_ValidJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)

	verr := &domain.ValidationError{Fields: map[string]string{
		"email": "is required",
	}}
	dto.WriteErrorResponse(w, r, verr)

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if resp.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", resp.Status, http.StatusBadRequest)
	}
	if resp.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", resp.Type, "about:blank")
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.email" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.email")
	}
	if resp.Errors[0].Message != "is required" {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, "is required")
	}
}

func TestNewErrorResponse_FormErrorKeepsCheckOrder(t *testing.T) {
	t.Parallel()

	form := account.SignUpForm{Email: "bad", Password: "abc", ConfirmPassword: "abd", Role: "root"}
	err := form.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want FormError")
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)
	got := dto.NewErrorResponse(r, err)

	wantLocations := []string{
		"body.email",
		"body.password", "body.password", "body.password", "body.password",
		"body.confirm_password",
		"body.role",
	}
	if len(got.Errors) != len(wantLocations) {
		t.Fatalf("len(Errors) = %d, want %d: %+v", len(got.Errors), len(wantLocations), got.Errors)
	}
	for i, loc := range wantLocations {
		if got.Errors[i].Location != loc {
			t.Errorf("Errors[%d].Location = %q, want %q", i, got.Errors[i].Location, loc)
		}
	}
	if got.Errors[0].Message != validation.MsgEmailInvalid {
		t.Errorf("Errors[0].Message = %q, want %q", got.Errors[0].Message, validation.MsgEmailInvalid)
	}
	if got.Errors[0].Category != "format" {
		t.Errorf("Errors[0].Category = %q, want %q", got.Errors[0].Category, "format")
	}
	if got.Errors[5].Category != "consistency" {
		t.Errorf("Errors[5].Category = %q, want %q", got.Errors[5].Category, "consistency")
	}
	if got.Errors[6].Category != "" {
		t.Errorf("Errors[6].Category = %q, want empty for role", got.Errors[6].Category)
	}
}

func TestNewErrorResponse_DetailErrorSuppliesDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", nil)
	err := fmt.Errorf("registering: %w", &domain.DetailError{Detail: "Email already registered", Err: domain.ErrConflict})

	got := dto.NewErrorResponse(r, err)

	if got.Status != http.StatusConflict {
		t.Errorf("Status = %d, want %d", got.Status, http.StatusConflict)
	}
	if got.Detail != "Email already registered" {
		t.Errorf("Detail = %q, want %q", got.Detail, "Email already registered")
	}
}

func TestNewErrorResponse_ServerErrorsHideCause(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)

	internal := dto.NewErrorResponse(r, errors.New("nil pointer in handler"))
	if internal.Detail != "internal error" {
		t.Errorf("Detail = %q, want %q", internal.Detail, "internal error")
	}

	upstream := dto.NewErrorResponse(r, fmt.Errorf("dial tcp 10.0.0.1:443: %w", domain.ErrUnavailable))
	if upstream.Detail != "upstream service unavailable" {
		t.Errorf("Detail = %q, want %q", upstream.Detail, "upstream service unavailable")
	}
}

func TestNewErrorResponse_TimeoutDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/validate", nil)
	got := dto.NewErrorResponse(r, fmt.Errorf("checking fields: %w", context.DeadlineExceeded))

	if got.Detail != "request timed out" {
		t.Errorf("Detail = %q, want %q", got.Detail, "request timed out")
	}
}
