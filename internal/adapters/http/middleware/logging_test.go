package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aladdinnow/forms-service/internal/adapters/http/middleware"
	"github.com/aladdinnow/forms-service/internal/platform/logging"
)

// logLines decodes JSON log output, one record per line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for line := range strings.Lines(buf.String()) {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		lines = append(lines, m)
	}
	return lines
}

func completedLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	for _, l := range logLines(t, buf) {
		if l["msg"] == "request completed" {
			return l
		}
	}
	t.Fatal("no request completed line")
	return nil
}

func jsonLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogging_CompletionLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user":{}}`))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", http.NoBody))

	line := completedLine(t, &buf)
	if line["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", line["level"])
	}
	if line["method"] != "POST" || line["path"] != "/api/v1/auth/signup" {
		t.Errorf("method/path = %v %v", line["method"], line["path"])
	}
	if line["status"] != float64(http.StatusCreated) {
		t.Errorf("status = %v, want 201", line["status"])
	}
	if line["bytes"] != float64(len(`{"user":{}}`)) {
		t.Errorf("bytes = %v", line["bytes"])
	}
	if _, ok := line["duration"]; !ok {
		t.Error("missing duration")
	}
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusBadRequest, "WARN"},
		{http.StatusUnauthorized, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", http.NoBody))

			if got := completedLine(t, &buf)["level"]; got != tt.want {
				t.Errorf("level = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestLogging_CarriesIDsIntoContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(jsonLogger(&buf, slog.LevelInfo)),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "checking form")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/signup/validate", http.NoBody)
	req.Header.Set("X-Request-ID", "req-7")
	req.Header.Set("X-Correlation-ID", "corr-7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var found bool
	for _, l := range logLines(t, &buf) {
		if l["msg"] != "checking form" {
			continue
		}
		found = true
		if l["request_id"] != "req-7" || l["correlation_id"] != "corr-7" {
			t.Errorf("ids = %v / %v", l["request_id"], l["correlation_id"])
		}
	}
	if !found {
		t.Error("handler log line not written through the context logger")
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(jsonLogger(&buf, slog.LevelInfo)))
	r.Post("/api/v1/validate/{field}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/validate/email", http.NoBody))

	if got := completedLine(t, &buf)["route"]; got != "/api/v1/validate/{field}" {
		t.Errorf("route = %v", got)
	}
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", strings.NewReader(`{"password":"Aa1!Bb2@"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, "request received") {
		t.Error("missing debug request line")
	}
	if strings.Contains(out, "secret-token") {
		t.Error("authorization header leaked into logs")
	}
	if strings.Contains(out, "Aa1!Bb2@") {
		t.Error("request body leaked into logs")
	}
	if !strings.Contains(out, "application/json") {
		t.Error("non-sensitive header missing")
	}
}

func TestLogging_NoDebugLineAtInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	if strings.Contains(buf.String(), "request received") {
		t.Error("debug line written at info level")
	}
}
