package middleware

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
)

// Timeout bounds each checklist request to d. The handler runs with a
// context carrying the deadline, so storage calls made by the services stop
// with it. The handler's response is buffered. If the deadline passes
// first, the buffer is dropped and the client gets a 504 problem response;
// later writes from the handler fail with http.ErrHandlerTimeout.
//
// A panic in the handler is re-raised on the request goroutine so that
// Recovery sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r)
				close(done)
			}()

			select {
			case <-done:
				buf.copyTo(w)
			case v := <-panicked:
				panic(v)
			case <-ctx.Done():
				buf.expire()
				logging.FromContext(ctx).WarnContext(ctx, "request deadline exceeded",
					slog.Duration("timeout", d),
					slog.Any("error", ctx.Err()),
				)
				dto.WriteErrorResponse(w, r, dto.ErrTimeout)
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides whether
// it reaches the client.
type bufferedResponse struct {
	header http.Header

	mu          sync.Mutex
	body        []byte
	status      int
	wroteHeader bool
	expired     bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !b.wroteHeader {
		b.status = http.StatusOK
		b.wroteHeader = true
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.expired || b.wroteHeader {
		return
	}
	b.status = code
	b.wroteHeader = true
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
	b.body = nil
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.wroteHeader {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
