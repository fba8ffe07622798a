// Package health keeps the set of dependency checks behind the readiness
// probe. Checks run concurrently; a slow dependency delays the probe by at
// most the per-check timeout.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/aladdinnow/forms-service/internal/app/fanout"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds each individual check.
const DefaultCheckTimeout = 2 * time.Second

// maxConcurrentChecks caps how many checks run at once.
const maxConcurrentChecks = 8

// Registry implements [ports.HealthRegistry]. It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. A non-positive value
// disables the per-check deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.checkTimeout = d
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the outcomes keyed by
// checker name; nil means healthy. When two checkers share a name the one
// registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		if r.checkTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()
		}
		return struct{}{}, c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
