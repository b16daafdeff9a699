package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusConflict, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusBadGateway, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := RequestLogger(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/push", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "path=/api/v1/sync/push")
			assert.Contains(t, out, "bytes_written=4")
		})
	}
}

func TestRequestLogger_KeepsRequestID(t *testing.T) {
	var buf bytes.Buffer
	handler := RequestLogger(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/status", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestRequestLogger_SkipPaths(t *testing.T) {
	var buf bytes.Buffer
	handler := RequestLogger(bufferLogger(&buf), "/api/v1/health")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Empty(t, buf.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_HidesSecrets(t *testing.T) {
	var buf bytes.Buffer
	handler := RequestLogger(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/status?api_key=secret_abc&verbose=1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), "secret_abc")
	assert.Contains(t, buf.String(), "verbose=1")
}

func TestSanitizeQuery(t *testing.T) {
	assert.Empty(t, sanitizeQuery(url.Values{}))

	q, err := url.ParseQuery("token=t1&passphrase=p&page=2")
	require.NoError(t, err)
	got := sanitizeQuery(q)
	assert.Contains(t, got, "token=%2A%2A%2A")
	assert.Contains(t, got, "passphrase=%2A%2A%2A")
	assert.Contains(t, got, "page=2")
}
