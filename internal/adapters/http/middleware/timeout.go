package middleware

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
)

// Timeout gives each request a deadline. The handler runs in its own
// goroutine against a buffered writer; if the deadline passes first the
// client gets a 504 problem response and later handler writes fail with
// http.ErrHandlerTimeout. A panic in the handler is re-raised on the
// serving goroutine so Recovery still sees it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := newBufferedWriter()
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
						return
					}
					close(done)
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case p := <-panicked:
				bw.discard()
				panic(p)
			case <-done:
				bw.flushTo(w)
			case <-ctx.Done():
				bw.discard()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteErrorResponse(w, r, ctx.Err())
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// it reaches the client.
type bufferedWriter struct {
	header http.Header

	mu      sync.Mutex
	body    bytes.Buffer
	status  int
	dropped bool
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header)}
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.dropped || bw.status != 0 {
		return
	}
	bw.status = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.dropped {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

// discard makes every later write fail.
func (bw *bufferedWriter) discard() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.dropped = true
}

// flushTo copies the buffered response to w. A handler that wrote nothing
// leaves w untouched.
func (bw *bufferedWriter) flushTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.dropped = true

	maps.Copy(w.Header(), bw.header)
	if bw.status == 0 {
		return
	}
	w.WriteHeader(bw.status)
	_, _ = w.Write(bw.body.Bytes())
}
