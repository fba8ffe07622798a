// Package middleware holds the inbound request pipeline. Stack assembles it
// in its fixed order:
//
//	Recovery → RequestID → CorrelationID → SecurityHeaders → CORS → OpenTelemetry → Logging → Timeout → Handler
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
// Recovery, OpenTelemetry, and Logging share one recorder per request.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

// record wraps w, reusing w itself when an outer middleware already did.
func record(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.started {
		return
	}
	sr.status = code
	sr.started = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.started = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
