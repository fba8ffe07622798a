package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aladdinnow/forms-service/internal/adapters/clients/acl/users"
	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/platform/httpclient"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// Compile-time interface check.
var _ ports.UsersClient = (*UsersClient)(nil)

const (
	registerPath = "/users/register"
	loginPath    = "/users/login"
)

// UsersClient is the outbound adapter for the downstream users API. It
// implements [ports.UsersClient].
//
// Payloads are translated by the [users] subpackage. HTTP errors are mapped
// to domain errors by [TranslateHTTPError]; the downstream's own
// {"error": "..."} message survives as a [domain.DetailError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type UsersClient struct {
	req    *Requester
	newKey func() string
}

// NewUsersClient creates a UsersClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the users API
// root (e.g. "https://api.aladdinnow.com").
func NewUsersClient(client *httpclient.Client, logger *slog.Logger) *UsersClient {
	return &UsersClient{
		req:    NewRequester(client, logger),
		newKey: uuid.NewString,
	}
}

// Register creates an account via POST /users/register. Each call carries
// a fresh Idempotency-Key so the transport may retry it without creating
// duplicate accounts.
func (c *UsersClient) Register(ctx context.Context, creds account.Credentials, role account.Role) (*account.User, error) {
	body := users.ToRegisterRequest(creds, role)

	var env users.UserEnvelopeDTO
	if err := c.req.Do(ctx, http.MethodPost, registerPath, body, &env, WithIdempotencyKey(c.newKey())); err != nil {
		return nil, err
	}
	return toUser(&env, registerPath)
}

// Login authenticates via POST /users/login. Logins are not replayed: a
// retried login after a lost response could trip downstream lockout.
func (c *UsersClient) Login(ctx context.Context, creds account.Credentials) (*account.User, error) {
	body := users.ToLoginRequest(creds)

	var env users.UserEnvelopeDTO
	if err := c.req.Do(ctx, http.MethodPost, loginPath, body, &env); err != nil {
		return nil, err
	}
	return toUser(&env, loginPath)
}

func toUser(env *users.UserEnvelopeDTO, path string) (*account.User, error) {
	if env.User == nil {
		return nil, fmt.Errorf("POST %s: response has no user: %w", path, domain.ErrUnavailable)
	}
	u := users.ToDomainUser(env.User)
	return &u, nil
}
