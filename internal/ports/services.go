package ports

import (
	"context"

	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
)

// ValidationService defines the service port for single-field checks.
// Implemented by the application layer; called by inbound adapters (handlers).
type ValidationService interface {
	// ValidateField runs the rule set for one field.
	// Returns domain.ErrValidation if the field kind is unknown. Rule
	// violations are not errors; they are reported in the Result.
	ValidateField(ctx context.Context, in FieldInput) (validation.Result, error)

	// ValidateFields checks a batch concurrently and returns outcomes in
	// input order. Returns domain.ErrValidation if the batch is empty or
	// larger than the configured maximum. Per-item failures (unknown kind)
	// are reported in FieldOutcome.Err.
	ValidateFields(ctx context.Context, in []FieldInput) ([]FieldOutcome, error)

	// PasswordStrength scores a password for UI feedback.
	PasswordStrength(ctx context.Context, password string) validation.Strength
}

// FieldInput is one value to check. CompareTo holds the original password
// when Kind is validation.KindPasswordConfirmation.
type FieldInput struct {
	Kind      validation.Kind
	Value     string
	CompareTo string
}

// FieldOutcome is the result of checking one FieldInput.
type FieldOutcome struct {
	Kind   validation.Kind
	Result validation.Result
	Err    error
}

// AccountService defines the service port for the account forms.
// Implemented by the application layer; called by inbound adapters (handlers).
type AccountService interface {
	// CheckSignUp reports every sign-up field without submitting.
	CheckSignUp(ctx context.Context, form account.SignUpForm) account.Report

	// CheckSupplierProfile reports every supplier profile field.
	CheckSupplierProfile(ctx context.Context, form account.SupplierProfileForm) account.Report

	// SignUp validates the form and registers the account.
	// Returns an *account.FormError (wrapping domain.ErrValidation) if the
	// form is invalid; the users API is not called in that case.
	SignUp(ctx context.Context, form account.SignUpForm) (*SignUpResult, error)

	// SignIn validates the form and authenticates.
	// Returns an *account.FormError if the form is invalid and
	// domain.ErrUnauthorized (with a *domain.DetailError) for bad credentials.
	SignIn(ctx context.Context, form account.SignInForm) (*SignInResult, error)
}

// SignUpResult is a successful registration.
type SignUpResult struct {
	User     *account.User
	Redirect string
}

// SignInResult is a successful login.
type SignInResult struct {
	User       *account.User
	Redirect   string
	RememberMe bool
}
