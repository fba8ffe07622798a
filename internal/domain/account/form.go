package account

import (
	"strings"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
)

// Form field names, as the browser submits them.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldRole            = "role"
	FieldBusinessName    = "business_name"
	FieldPhone           = "phone"
)

// MsgRoleInvalid is reported when the account type is neither buyer nor
// supplier.
const MsgRoleInvalid = "Please choose a valid account type"

// FieldResult is the outcome for one named form field.
type FieldResult struct {
	Field string
	validation.Result
}

// Report holds the per-field outcomes of a form in the order the fields
// were checked.
type Report []FieldResult

// Valid returns true when every field passed.
func (r Report) Valid() bool {
	for _, f := range r {
		if !f.Valid {
			return false
		}
	}
	return true
}

// Field returns the result for the named field. A field that was not
// checked reads as valid.
func (r Report) Field(name string) validation.Result {
	for _, f := range r {
		if f.Field == name {
			return f.Result
		}
	}
	return validation.NewResult()
}

// Failed returns only the fields with violations.
func (r Report) Failed() Report {
	var out Report
	for _, f := range r {
		if !f.Valid {
			out = append(out, f)
		}
	}
	return out
}

// FormError blocks a submission. It wraps domain.ErrValidation so callers
// can use errors.Is; errors.As exposes the full report.
type FormError struct {
	Form   string
	Report Report
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Report))
	for _, f := range e.Report.Failed() {
		parts = append(parts, f.Field+": "+strings.Join(f.Errors, ", "))
	}
	return domain.ErrValidation.Error() + ": " + e.Form + ": " + strings.Join(parts, "; ")
}

func (e *FormError) Unwrap() error {
	return domain.ErrValidation
}

// check returns a *FormError for an invalid report, nil otherwise.
func check(form string, r Report) error {
	if r.Valid() {
		return nil
	}
	return &FormError{Form: form, Report: r}
}
