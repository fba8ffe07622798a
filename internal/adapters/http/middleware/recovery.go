package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
)

// errHandlerPanic is rendered as a plain 500; the panic value stays in the log.
var errHandlerPanic = errors.New("handler panic")

// Recovery turns a handler panic into a 500 problem response and logs the
// panic value with its stack. If the handler had already started the
// response only the log line is written. http.ErrAbortHandler is re-raised
// so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if !sr.started {
					dto.WriteErrorResponse(sr, r, errHandlerPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
