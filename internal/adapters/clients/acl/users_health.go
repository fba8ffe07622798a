package acl

import (
	"context"
	"fmt"

	"github.com/aladdinnow/forms-service/internal/ports"
)

// Name returns the service name the underlying client was built with.
func (c *UsersClient) Name() string {
	return c.req.client.Name()
}

// HealthCheck reports the users API circuit breaker state without a network
// call. Failures are marked [ports.ErrDegraded]: field validation does not
// depend on the users API, so readiness stays up while it is out.
func (c *UsersClient) HealthCheck(ctx context.Context) error {
	if err := c.req.client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrDegraded, err)
	}
	return nil
}
