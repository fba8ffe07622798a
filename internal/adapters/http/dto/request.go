package dto

import (
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// Request bodies carry only shape constraints. Content rules (required,
// format, policy) are reported by the services as validation results, so
// an empty value is a well-formed request.

// ValidateFieldRequest is the body of POST /api/v1/validate/{field}.
type ValidateFieldRequest struct {
	Value     string `json:"value" validate:"max=4096"`
	CompareTo string `json:"compare_to,omitempty" validate:"max=4096"`
}

// ToInput pairs the body with the field kind from the path.
func (r *ValidateFieldRequest) ToInput(kind validation.Kind) ports.FieldInput {
	return ports.FieldInput{Kind: kind, Value: r.Value, CompareTo: r.CompareTo}
}

// BatchFieldRequest is one entry of a batch validation request. Unknown
// kinds are reported per entry in the response, not rejected here.
type BatchFieldRequest struct {
	Field     string `json:"field" validate:"required"`
	Value     string `json:"value" validate:"max=4096"`
	CompareTo string `json:"compare_to,omitempty" validate:"max=4096"`
}

// BatchValidateRequest is the body of POST /api/v1/validate.
type BatchValidateRequest struct {
	Fields []BatchFieldRequest `json:"fields" validate:"required,min=1,dive"`
}

// ToInputs converts the batch to service inputs, preserving order.
func (r *BatchValidateRequest) ToInputs() []ports.FieldInput {
	in := make([]ports.FieldInput, len(r.Fields))
	for i, f := range r.Fields {
		in[i] = ports.FieldInput{Kind: validation.Kind(f.Field), Value: f.Value, CompareTo: f.CompareTo}
	}
	return in
}

// PasswordStrengthRequest is the body of POST /api/v1/password/strength.
type PasswordStrengthRequest struct {
	Password string `json:"password" validate:"max=4096"`
}

// SignUpRequest is the sign-up form as the browser submits it.
type SignUpRequest struct {
	Email           string `json:"email" validate:"max=4096"`
	Password        string `json:"password" validate:"max=4096"`
	ConfirmPassword string `json:"confirm_password" validate:"max=4096"`
	Role            string `json:"role" validate:"max=32"`
}

// ToForm converts the request to the domain form.
func (r *SignUpRequest) ToForm() account.SignUpForm {
	return account.SignUpForm{
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Role:            account.Role(r.Role),
	}
}

// SignInRequest is the sign-in form.
type SignInRequest struct {
	Email      string `json:"email" validate:"max=4096"`
	Password   string `json:"password" validate:"max=4096"`
	RememberMe bool   `json:"remember_me"`
}

// ToForm converts the request to the domain form.
func (r *SignInRequest) ToForm() account.SignInForm {
	return account.SignInForm{Email: r.Email, Password: r.Password, RememberMe: r.RememberMe}
}

// SupplierProfileRequest is the supplier business profile form.
type SupplierProfileRequest struct {
	BusinessName string `json:"business_name" validate:"max=4096"`
	Phone        string `json:"phone" validate:"max=4096"`
}

// ToForm converts the request to the domain form.
func (r *SupplierProfileRequest) ToForm() account.SupplierProfileForm {
	return account.SupplierProfileForm{BusinessName: r.BusinessName, Phone: r.Phone}
}
