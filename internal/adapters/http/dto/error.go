package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level error within an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
}

const (
	detailInternal    = "internal error"
	detailUnavailable = "upstream service unavailable"
	detailTimeout     = "request timed out"
)

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
//
// A *domain.DetailError supplies the detail verbatim. 5xx responses never
// echo the underlying error text.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detailFor(status, err),
		Instance: r.RequestURI,
	}

	var ferr *account.FormError
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &ferr):
		resp.Errors = formReportToDetails(ferr.Report)
	case errors.As(err, &verr):
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteStatusResponse writes a problem with no underlying error, for
// requests the router turns away before any handler runs.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "problem response not fully written",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func detailFor(status int, err error) string {
	if d := domain.UserDetail(err); d != "" {
		return d
	}
	switch {
	case status == http.StatusBadGateway:
		return detailUnavailable
	case status == http.StatusGatewayTimeout:
		return detailTimeout
	case status >= http.StatusInternalServerError:
		return detailInternal
	default:
		return err.Error()
	}
}

// formReportToDetails emits one entry per message, fields in check order
// and messages in the order the rules produced them.
func formReportToDetails(report account.Report) []ErrorDetail {
	var details []ErrorDetail
	for _, f := range report.Failed() {
		for _, msg := range f.Errors {
			details = append(details, ErrorDetail{
				Location: "body." + f.Field,
				Message:  msg,
				Category: categoryOf(msg),
			})
		}
	}
	return details
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}

func categoryOf(msg string) string {
	c := validation.CategoryOf(msg)
	if c == validation.CategoryUnknown {
		return ""
	}
	return c.String()
}
