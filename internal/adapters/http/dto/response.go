// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// ValidationResultResponse is the outcome for a single field.
type ValidationResultResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ToValidationResultResponse converts a domain Result. Errors is always a
// JSON array, never null.
func ToValidationResultResponse(r validation.Result) ValidationResultResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResultResponse{Valid: r.Valid, Errors: errs}
}

// BatchItemResponse is one entry of a batch response. Error is set when the
// entry could not be checked at all (e.g. unknown field kind).
type BatchItemResponse struct {
	Field  string   `json:"field"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
	Error  string   `json:"error,omitempty"`
}

// BatchValidateResponse is the body returned by POST /api/v1/validate.
// Valid is true only when every entry was checked and passed.
type BatchValidateResponse struct {
	Valid   bool                `json:"valid"`
	Results []BatchItemResponse `json:"results"`
}

// ToBatchValidateResponse converts service outcomes, preserving order.
func ToBatchValidateResponse(outcomes []ports.FieldOutcome) BatchValidateResponse {
	resp := BatchValidateResponse{Valid: true, Results: make([]BatchItemResponse, len(outcomes))}
	for i, o := range outcomes {
		item := BatchItemResponse{Field: o.Kind.String(), Valid: o.Result.Valid, Errors: o.Result.Errors}
		if item.Errors == nil {
			item.Errors = []string{}
		}
		if o.Err != nil {
			item.Valid = false
			item.Error = batchItemError(o.Err)
		}
		if !item.Valid {
			resp.Valid = false
		}
		resp.Results[i] = item
	}
	return resp
}

func batchItemError(err error) string {
	if d := domain.UserDetail(err); d != "" {
		return d
	}
	return err.Error()
}

// StrengthResponse is the password strength meter state.
type StrengthResponse struct {
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Label    string `json:"label"`
	Color    string `json:"color"`
}

// ToStrengthResponse converts a domain Strength.
func ToStrengthResponse(s validation.Strength) StrengthResponse {
	return StrengthResponse{Score: s.Score, MaxScore: validation.MaxScore, Label: s.Label, Color: s.Color}
}

// FieldReportResponse is the outcome for one named form field.
type FieldReportResponse struct {
	Field  string   `json:"field"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// FormReportResponse is the body of the form validate-only endpoints.
// Fields are listed in the order the form checks them.
type FormReportResponse struct {
	Valid  bool                  `json:"valid"`
	Fields []FieldReportResponse `json:"fields"`
}

// ToFormReportResponse converts a domain Report.
func ToFormReportResponse(r account.Report) FormReportResponse {
	resp := FormReportResponse{Valid: r.Valid(), Fields: make([]FieldReportResponse, len(r))}
	for i, f := range r {
		res := ToValidationResultResponse(f.Result)
		resp.Fields[i] = FieldReportResponse{Field: f.Field, Valid: res.Valid, Errors: res.Errors}
	}
	return resp
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToUserResponse converts a domain User. A zero CreatedAt is omitted.
func ToUserResponse(u *account.User) UserResponse {
	resp := UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String()}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// SignUpResponse is returned with 201 after registration.
type SignUpResponse struct {
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

// ToSignUpResponse converts a service result.
func ToSignUpResponse(r *ports.SignUpResult) SignUpResponse {
	return SignUpResponse{User: ToUserResponse(r.User), Redirect: r.Redirect}
}

// SignInResponse is returned after a successful sign-in.
type SignInResponse struct {
	User       UserResponse `json:"user"`
	Redirect   string       `json:"redirect"`
	RememberMe bool         `json:"remember_me"`
}

// ToSignInResponse converts a service result.
func ToSignInResponse(r *ports.SignInResult) SignInResponse {
	return SignInResponse{User: ToUserResponse(r.User), Redirect: r.Redirect, RememberMe: r.RememberMe}
}
