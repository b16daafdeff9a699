package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("", "secret_key")

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, "secret_key", client.apiKey)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_CreateRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, "Bearer secret_key", r.Header.Get("Authorization"))
		assert.Equal(t, APIVersion, r.Header.Get("Notion-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Parent struct {
				DatabaseID string `json:"database_id"`
			} `json:"parent"`
			Properties Properties `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "db-1", body.Parent.DatabaseID)
		assert.Equal(t, "Hero", body.Properties["Name"].Text)
		assert.Equal(t, "LIVE", body.Properties["Status"].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "page-1",
			"last_edited_time": "2026-02-01T10:00:00.000Z",
			"properties": {
				"Name": {"type": "title", "title": [{"type": "text", "plain_text": "Hero"}]}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret_key")
	rec, err := client.CreateRecord(context.Background(), "db-1", Properties{
		"Name":   Title("Hero"),
		"Status": Select("LIVE"),
	})

	require.NoError(t, err)
	assert.Equal(t, "page-1", rec.ID)
	assert.Equal(t, "Hero", rec.Properties["Name"].Text)
	assert.Equal(t, time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC), rec.LastEditedTime.UTC())
}

func TestClient_UpdateAndArchive(t *testing.T) {
	var archivedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/pages/page-1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if _, ok := body["archived"]; ok {
			archivedBody = body
		}
		_, _ = w.Write([]byte(`{"id": "page-1", "properties": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	ctx := context.Background()

	rec, err := client.UpdateRecord(ctx, "page-1", Properties{"Done": Checkbox(true)})
	require.NoError(t, err)
	assert.Equal(t, "page-1", rec.ID)

	require.NoError(t, client.ArchiveRecord(ctx, "page-1"))
	require.NotNil(t, archivedBody)
	assert.Equal(t, true, archivedBody["archived"])
	assert.NotContains(t, archivedBody, "properties")
}

func TestClient_QueryDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/databases/db-1/query", r.URL.Path)

		var q Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		if q.StartCursor == "" {
			_, _ = w.Write([]byte(`{"results": [{"id": "a", "properties": {}}], "has_more": true, "next_cursor": "c2"}`))
			return
		}
		assert.Equal(t, "c2", q.StartCursor)
		_, _ = w.Write([]byte(`{"results": [{"id": "b", "properties": {}}], "has_more": false, "next_cursor": null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k")
	ctx := context.Background()

	first, err := client.QueryDatabase(ctx, "db-1", Query{PageSize: 1})
	require.NoError(t, err)
	require.Len(t, first.Results, 1)
	assert.True(t, first.HasMore)

	second, err := client.QueryDatabase(ctx, "db-1", Query{PageSize: 1, StartCursor: first.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, "b", second.Results[0].ID)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextCursor)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		wantSentinel error
		name         string
		body         string
		status       int
	}{
		{
			name:         "unauthorized",
			status:       http.StatusUnauthorized,
			body:         `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`,
			wantSentinel: ErrUnauthorized,
		},
		{
			name:         "rate limited",
			status:       http.StatusTooManyRequests,
			body:         `{"code":"rate_limited","message":"slow down"}`,
			wantSentinel: ErrRateLimited,
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         `not json`,
			wantSentinel: ErrNotFound,
		},
		{
			name:   "validation error",
			status: http.StatusBadRequest,
			body:   `{"code":"validation_error","message":"body.properties.Name.title[0].text.content.length should be ≤ 2000"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "k")
			_, err := client.UpdateRecord(context.Background(), "p", Properties{})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.NotEmpty(t, apiErr.Message)
			if tt.wantSentinel != nil {
				assert.ErrorIs(t, err, tt.wantSentinel)
			}
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "k")
	_, err := client.QueryDatabase(ctx, "db", Query{})
	assert.ErrorIs(t, err, context.Canceled)
}
