package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/aladdinnow/forms-service/internal/adapters/http"
	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
	"github.com/aladdinnow/forms-service/internal/adapters/http/handlers"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
	"github.com/aladdinnow/forms-service/internal/platform/validate"
	"github.com/aladdinnow/forms-service/internal/ports"
	"github.com/aladdinnow/forms-service/mocks"
)

type testRouter struct {
	handler    http.Handler
	validation *mocks.MockValidationService
	account    *mocks.MockAccountService
	registry   *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	vs := mocks.NewMockValidationService(t)
	as := mocks.NewMockAccountService(t)
	registry := mocks.NewMockHealthRegistry(t)
	v := validate.MustNew()

	router := adapthttp.NewRouter(
		handlers.NewValidationHandler(vs, v),
		handlers.NewAccountHandler(as, v),
		handlers.NewHealthHandler(registry),
		middlewares...,
	)
	return testRouter{handler: router, validation: vs, account: as, registry: registry}
}

func (tr testRouter) serve(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequestWithContext(context.Background(), method, target, strings.NewReader(body)))
	return rec
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	mux, ok := newTestRouter(t).handler.(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	var got []string
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	}))

	assert.ElementsMatch(t, []string{
		"GET /health/live",
		"GET /health/ready",
		"POST /api/v1/validate",
		"POST /api/v1/validate/{field}",
		"POST /api/v1/password/strength",
		"POST /api/v1/forms/signup/validate",
		"POST /api/v1/forms/supplier-profile/validate",
		"POST /api/v1/auth/signup",
		"POST /api/v1/auth/signin",
	}, got)
}

func TestRouter_RunsMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	tr := newTestRouter(t, tag("outer"), tag("inner"))
	rec := tr.serve(http.MethodGet, "/health/live", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestRouter_ValidateFieldEndToEnd(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.validation.EXPECT().
		ValidateField(mock.Anything, ports.FieldInput{Kind: validation.KindPhone, Value: "+15550100200"}).
		Return(validation.Phone("+15550100200"), nil)

	rec := tr.serve(http.MethodPost, "/api/v1/validate/phone", `{"value":"+15550100200"}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"valid":true,"errors":[]}`, rec.Body.String())
}

func TestRouter_UnroutedRequestsGetProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"unknown path", http.MethodGet, "/api/v1/orders", http.StatusNotFound},
		{"unknown root", http.MethodGet, "/", http.StatusNotFound},
		{"wrong method on auth", http.MethodGet, "/api/v1/auth/signin", http.StatusMethodNotAllowed},
		{"wrong method on forms", http.MethodPut, "/api/v1/forms/signup/validate", http.StatusMethodNotAllowed},
		{"wrong method on probe", http.MethodPost, "/health/live", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := newTestRouter(t).serve(tt.method, tt.target, "")

			require.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.want, problem.Status)
			assert.Equal(t, tt.target, problem.Instance)
			assert.Contains(t, problem.Detail, tt.target)
		})
	}
}
