package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health failure that does not take the service out of
// rotation. Checkers wrap it when the component is optional, such as a
// downstream API only some routes use.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports the health of one dependency.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "users-api".
	Name() string

	// HealthCheck returns nil when healthy. Errors wrapping ErrDegraded are
	// reported without failing readiness.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans readiness checks out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker, keyed by name. A nil value
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
