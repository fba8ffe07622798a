// Package http is the inbound HTTP adapter: routes and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
	"github.com/aladdinnow/forms-service/internal/adapters/http/handlers"
)

// NewRouter mounts the probes at /health and the form API at /api/v1,
// behind middlewares in the order given. Unknown routes and methods answer
// with problem details like every other error.
func NewRouter(
	fields *handlers.ValidationHandler,
	forms *handlers.AccountHandler,
	probes *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", probes.Liveness)
		r.Get("/ready", probes.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Single fields as the user types.
		r.Post("/validate", fields.ValidateFields)
		r.Post("/validate/{field}", fields.ValidateField)
		r.Post("/password/strength", fields.PasswordStrength)

		// Whole forms, checked only.
		r.Route("/forms", func(r chi.Router) {
			r.Post("/signup/validate", forms.CheckSignUp)
			r.Post("/supplier-profile/validate", forms.CheckSupplierProfile)
		})

		// Submissions that reach the users API.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", forms.SignUp)
			r.Post("/signin", forms.SignIn)
		})
	})

	return r
}
