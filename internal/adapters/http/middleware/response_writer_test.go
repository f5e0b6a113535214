package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_RecordsResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(rw *responseWriter)
		wantStatus  int
		wantBytes   int64
		wantStarted bool
	}{
		{
			name:       "untouched",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "created list",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusCreated)
				_, _ = rw.Write([]byte(`{"name":`))
				_, _ = rw.Write([]byte(`"Groceries"}`))
			},
			wantStatus:  http.StatusCreated,
			wantBytes:   20,
			wantStarted: true,
		},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusConflict)
				rw.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:  http.StatusConflict,
			wantStarted: true,
		},
		{
			name: "implicit 200 on write",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{}`))
			},
			wantStatus:  http.StatusOK,
			wantBytes:   2,
			wantStarted: true,
		},
		{
			name:        "flush starts the response",
			write:       func(rw *responseWriter) { rw.Flush() },
			wantStatus:  http.StatusOK,
			wantStarted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.bytesWritten != tt.wantBytes {
				t.Errorf("bytesWritten = %d, want %d", rw.bytesWritten, tt.wantBytes)
			}
			if rw.headerWritten != tt.wantStarted {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantStarted)
			}
			if tt.wantStarted && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_FlushReachesUnderlyingWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newResponseWriter(rec).Flush()

	if !rec.Flushed {
		t.Error("recorder was not flushed")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newResponseWriter(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
