// Package api is the HTTP client of the canvasd daemon API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// DefaultTimeout bounds requests that do not run a sync.
const DefaultTimeout = 30 * time.Second

// Error is a non-2xx answer from the daemon.
type Error struct {
	Code       string
	Message    string
	Field      string
	StatusCode int
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Field, msg)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, msg)
}

// IsCode reports whether err is an Error with the given code.
func IsCode(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Client представляет HTTP клиент демона
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент. Sync runs can take minutes, so the
// client has no overall timeout; callers bound requests with ctx.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Health проверяет доступность демона
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// ListEntities возвращает все локальные сущности
func (c *Client) ListEntities(ctx context.Context) ([]api.Entity, error) {
	var resp api.EntityListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/entities", nil, &resp); err != nil {
		return nil, fmt.Errorf("list entities request failed: %w", err)
	}
	return resp.Entities, nil
}

// GetEntity возвращает одну сущность
func (c *Client) GetEntity(ctx context.Context, id string) (*api.Entity, error) {
	var resp api.Entity
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/entities/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get entity request failed: %w", err)
	}
	return &resp, nil
}

// Configure включает синхронизацию
func (c *Client) Configure(ctx context.Context, req api.ConfigureRequest) (*api.ConfigResponse, error) {
	var resp api.ConfigResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/config", req, &resp); err != nil {
		return nil, fmt.Errorf("configure request failed: %w", err)
	}
	return &resp, nil
}

// GetConfig возвращает активную конфигурацию
func (c *Client) GetConfig(ctx context.Context) (*api.ConfigResponse, error) {
	var resp api.ConfigResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/config", nil, &resp); err != nil {
		return nil, fmt.Errorf("get config request failed: %w", err)
	}
	return &resp, nil
}

// Disable выключает синхронизацию
func (c *Client) Disable(ctx context.Context) (*api.ConfigResponse, error) {
	var resp api.ConfigResponse
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/sync/config", nil, &resp); err != nil {
		return nil, fmt.Errorf("disable request failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет перечисленные сущности, или все изменения если ids пуст
func (c *Client) Push(ctx context.Context, ids []string) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/push", api.SyncRequest{EntityIDs: ids}, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// Pull загружает изменения из удаленного хранилища
func (c *Client) Pull(ctx context.Context) (*api.PullResponse, error) {
	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/pull", nil, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// Status возвращает сводку синхронизации
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/status", nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return &resp, nil
}

// Conflicts возвращает конфликты в порядке разрешения
func (c *Client) Conflicts(ctx context.Context) ([]api.Conflict, error) {
	var resp api.ConflictsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/conflicts", nil, &resp); err != nil {
		return nil, fmt.Errorf("conflicts request failed: %w", err)
	}
	return resp.Conflicts, nil
}

// Resolve разрешает один конфликт
func (c *Client) Resolve(ctx context.Context, id, choice string) error {
	path := "/api/v1/sync/conflicts/" + url.PathEscape(id) + "/resolve"
	if err := c.doRequest(ctx, http.MethodPost, path, api.ResolveRequest{Choice: choice}, nil); err != nil {
		return fmt.Errorf("resolve request failed: %w", err)
	}
	return nil
}

// ResolveAll разрешает все конфликты в пользу одной стороны
func (c *Client) ResolveAll(ctx context.Context, choice string) (*api.ResolveAllResponse, error) {
	var resp api.ResolveAllResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/conflicts/resolve-all", api.ResolveRequest{Choice: choice}, &resp); err != nil {
		return nil, fmt.Errorf("resolve all request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			apiErr.Code, apiErr.Message, apiErr.Field = errResp.Error, errResp.Message, errResp.Field
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	// 204 No Content не имеет тела
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
