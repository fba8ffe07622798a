package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// User-facing fallbacks when the users API rejects a request without saying
// why.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgSignUpFailed       = "Failed to create account"
)

// AccountService implements ports.AccountService. It runs the form rules
// locally and only calls the users API with a valid form.
type AccountService struct {
	users  ports.UsersClient
	logger *slog.Logger
}

// NewAccountService creates an AccountService. A nil logger is replaced
// with a no-op.
func NewAccountService(users ports.UsersClient, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{users: users, logger: logger}
}

// CheckSignUp reports every sign-up field without submitting.
func (s *AccountService) CheckSignUp(_ context.Context, form account.SignUpForm) account.Report {
	form.Normalize()
	return form.Check()
}

// CheckSupplierProfile reports every supplier profile field.
func (s *AccountService) CheckSupplierProfile(_ context.Context, form account.SupplierProfileForm) account.Report {
	return form.Check()
}

// SignUp validates the form and registers the account. A successful
// registration sends the user to the sign-in page.
func (s *AccountService) SignUp(ctx context.Context, form account.SignUpForm) (*ports.SignUpResult, error) {
	form.Normalize()
	s.logger.InfoContext(ctx, "sign-up submitted", slog.String("role", form.Role.String()))

	if err := form.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Register(ctx, form.Credentials(), form.Role)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register account",
			slog.String("operation", "SignUp"),
			slog.Any("error", err),
		)
		return nil, signUpError(err)
	}

	s.logger.InfoContext(ctx, "account registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)
	return &ports.SignUpResult{User: user, Redirect: account.SignInPath}, nil
}

// SignIn validates the form and authenticates. The redirect depends on the
// role the users API reports.
func (s *AccountService) SignIn(ctx context.Context, form account.SignInForm) (*ports.SignInResult, error) {
	s.logger.InfoContext(ctx, "sign-in submitted", slog.Bool("remember_me", form.RememberMe))

	if err := form.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Login(ctx, form.Credentials())
	if err != nil {
		s.logger.WarnContext(ctx, "sign-in rejected",
			slog.String("operation", "SignIn"),
			slog.Any("error", err),
		)
		return nil, signInError(err)
	}

	s.logger.InfoContext(ctx, "signed in",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)
	return &ports.SignInResult{
		User:       user,
		Redirect:   user.Role.DashboardPath(),
		RememberMe: form.RememberMe,
	}, nil
}

// signUpError keeps the downstream category but guarantees a user-facing
// detail. Outages pass through untouched.
func signUpError(err error) error {
	if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if domain.UserDetail(err) != "" {
		return err
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return err
	}

	sentinel := domain.ErrValidation
	if errors.Is(err, domain.ErrConflict) {
		sentinel = domain.ErrConflict
	}
	return &domain.DetailError{Detail: MsgSignUpFailed, Err: sentinel}
}

// signInError reports every rejection other than an outage as
// ErrUnauthorized, keeping the downstream message when there is one.
func signInError(err error) error {
	if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	detail := domain.UserDetail(err)
	if detail == "" {
		detail = MsgInvalidCredentials
	}
	return &domain.DetailError{Detail: detail, Err: domain.ErrUnauthorized}
}
