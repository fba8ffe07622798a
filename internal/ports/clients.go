package ports

import (
	"context"

	"github.com/aladdinnow/forms-service/internal/domain/account"
)

// UsersClient defines the client port for the downstream users API.
// Implemented by the ACL adapter; called by the application layer.
type UsersClient interface {
	// Register creates an account and returns it.
	// Returns domain.ErrConflict if the email is taken, domain.ErrValidation
	// if the users API rejects the data, and domain.ErrUnavailable when the
	// API cannot be reached. Rejections may carry a *domain.DetailError.
	Register(ctx context.Context, creds account.Credentials, role account.Role) (*account.User, error)

	// Login authenticates and returns the account.
	// Returns domain.ErrUnauthorized for bad credentials and
	// domain.ErrUnavailable when the API cannot be reached.
	Login(ctx context.Context, creds account.Credentials) (*account.User, error)
}
