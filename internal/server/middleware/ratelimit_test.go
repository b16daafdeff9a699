package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

func testLimiter(t *testing.T, rate int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(rate, window, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(rl.Stop)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, now := testLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "запрос %d должен пройти", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Другой клиент имеет свой бакет
	assert.True(t, rl.Allow("10.0.0.2"))

	// За треть окна восстанавливается один токен
	*now = now.Add(20 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// Бакет не превышает rate
	*now = now.Add(time.Hour)
	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"))
	}
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl, now := testLimiter(t, 2, time.Minute)

	rl.Allow("a")
	*now = now.Add(30 * time.Second)
	rl.Allow("b")
	*now = now.Add(45 * time.Second)

	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "a")
	assert.Contains(t, rl.buckets, "b")
}

func TestRateLimiter_Limit(t *testing.T) {
	rl, _ := testLimiter(t, 1, time.Minute)
	calls := 0
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/push", nil)
	req.RemoteAddr = "192.168.1.10:53211"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, 1, calls)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, api.ErrCodeRateLimited, resp.Error)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "10.1.1.1:4000", want: "10.1.1.1"},
		{name: "forwarded for", remote: "10.1.1.1:4000", headers: map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, want: "203.0.113.5"},
		{name: "real ip", remote: "10.1.1.1:4000", headers: map[string]string{"X-Real-IP": "198.51.100.7"}, want: "198.51.100.7"},
		{name: "no port", remote: "unix", want: "unix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
