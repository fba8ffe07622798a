package handlers

import (
	"errors"
	"net/http"

	"github.com/aladdinnow/forms-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Degraded dependencies are listed but
// keep the probe at 200; any other failure answers 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status, code := statusReady, http.StatusOK
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = statusOK
		case errors.Is(err, ports.ErrDegraded):
			checks[name] = err.Error()
			if code == http.StatusOK {
				status = statusDegraded
			}
		default:
			checks[name] = err.Error()
			status, code = statusNotReady, http.StatusServiceUnavailable
		}
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
