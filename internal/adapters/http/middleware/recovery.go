package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/dto"
)

// errInternalServer is all a client learns about a recovered panic.
var errInternalServer = errors.New("internal server error")

// Recovery turns a panic in a checklist handler into a 500 problem
// response. The log entry carries the panic value, the stack and the
// resource the request addressed. Nothing is written to the client if the
// handler had already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := append(resourceAttrs(r),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.Bool("response_started", rw.headerWritten),
				)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
