package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthHandler_Health(t *testing.T) {
	configured := false
	handler := NewHealthHandler(setupTestLogger(), "1.2.3", func() bool { return configured })

	for _, want := range []bool{false, true} {
		configured = want

		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp api.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "1.2.3", resp.Version)
		assert.Equal(t, want, resp.Configured)
	}
}
