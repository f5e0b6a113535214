// Package middleware holds the inbound pipeline of the checklist API.
//
// Standard assembles it in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → router
//
// Every middleware is a func(http.Handler) http.Handler.
package middleware

import "net/http"

// responseWriter records the status and body size a handler produced.
// Recovery, OpenTelemetry and Logging read it after the handler returns.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	bytesWritten  int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader keeps the first status and ignores repeats.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

// Flush marks the response as started and flushes when the underlying
// writer supports it.
func (rw *responseWriter) Flush() {
	rw.headerWritten = true
	_ = http.NewResponseController(rw.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
