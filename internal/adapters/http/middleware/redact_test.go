package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "no headers",
			headers: http.Header{},
			want:    map[string]string{},
		},
		{
			name: "credentials",
			headers: http.Header{
				"Authorization":       {"Bearer abc"},
				"Proxy-Authorization": {"Basic xyz"},
				"X-Api-Key":           {"k-123"},
				"Cookie":              {"session=1"},
			},
			want: map[string]string{
				"Authorization":       redactedValue,
				"Proxy-Authorization": redactedValue,
				"X-Api-Key":           redactedValue,
				"Cookie":              redactedValue,
			},
		},
		{
			name: "names mentioning token or secret",
			headers: http.Header{
				"X-Csrf-Token":    {"t"},
				"X-Client-Secret": {"s"},
			},
			want: map[string]string{
				"X-Csrf-Token":    redactedValue,
				"X-Client-Secret": redactedValue,
			},
		},
		{
			name: "checklist request headers pass through",
			headers: http.Header{
				"Content-Type":     {"application/json"},
				"X-Request-Id":     {"req-1"},
				"X-Correlation-Id": {"corr-1"},
				"Accept":           {"application/json", "application/problem+json"},
			},
			want: map[string]string{
				"Content-Type":     "application/json",
				"X-Request-Id":     "req-1",
				"X-Correlation-Id": "corr-1",
				"Accept":           "application/json,application/problem+json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attr := middleware.RedactHeaders(tt.headers)
			if attr.Key != "headers" || attr.Value.Kind() != slog.KindGroup {
				t.Fatalf("RedactHeaders() = %v, want a headers group", attr)
			}

			group := attr.Value.Group()
			if len(group) != len(tt.want) {
				t.Fatalf("group has %d attrs, want %d", len(group), len(tt.want))
			}
			for i, a := range group {
				if i > 0 && group[i-1].Key > a.Key {
					t.Errorf("keys out of order: %q before %q", group[i-1].Key, a.Key)
				}
				if want := tt.want[a.Key]; a.Value.String() != want {
					t.Errorf("%s = %q, want %q", a.Key, a.Value.String(), want)
				}
			}
		})
	}
}
