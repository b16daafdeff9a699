package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

func TestRecover(t *testing.T) {
	tests := []struct {
		handler    http.HandlerFunc
		name       string
		wantStatus int
		wantPanic  bool
	}{
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "string panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("mapper exploded")
			},
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
		},
		{
			name: "error panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var m map[string]int
				m["x"] = 1
			},
			wantStatus: http.StatusInternalServerError,
			wantPanic:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := Recover(bufferLogger(&buf))(tt.handler)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync/pull", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if !tt.wantPanic {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), "Panic recovered")
			assert.Contains(t, buf.String(), "stack=")

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, api.ErrCodeInternal, resp.Error)
			assert.NotContains(t, w.Body.String(), "mapper exploded")
		})
	}
}

func TestRecover_AbortHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := Recover(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Empty(t, buf.String())
}
