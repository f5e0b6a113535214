package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders h as a "headers" log group with keys in sorted
// order. Headers in logging.SensitiveHeaders are replaced with [REDACTED], as is any header
// whose name mentions a token or a secret. Multi-value headers are joined
// with a comma.
func RedactHeaders(h http.Header) slog.Attr {
	keys := slices.Sorted(maps.Keys(h))
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		args = append(args, slog.String(k, headerValue(k, h[k])))
	}
	return slog.Group("headers", args...)
}

func headerValue(name string, vals []string) string {
	lower := strings.ToLower(name)
	if logging.SensitiveHeaders[lower] || strings.Contains(lower, "token") || strings.Contains(lower, "secret") {
		return redacted
	}
	return strings.Join(vals, ",")
}
