package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public endpoint of the remote store API
	DefaultBaseURL = "https://api.notion.com"

	// APIVersion is sent in the Notion-Version header
	APIVersion = "2022-06-28"

	defaultTimeout = 30 * time.Second
)

// Client is the HTTP implementation of Store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ Store = (*Client)(nil)

// NewClient creates a new remote store client
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			// Сохраняем заголовок Authorization при редиректе
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

type createRequest struct {
	Parent     parent     `json:"parent"`
	Properties Properties `json:"properties"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

type updateRequest struct {
	Properties Properties `json:"properties,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// CreateRecord creates a page in the database
func (c *Client) CreateRecord(ctx context.Context, databaseID string, props Properties) (*Record, error) {
	var rec Record
	req := createRequest{Parent: parent{DatabaseID: databaseID}, Properties: props}
	if err := c.doRequest(ctx, http.MethodPost, "/v1/pages", req, &rec); err != nil {
		return nil, fmt.Errorf("create record request failed: %w", err)
	}
	return &rec, nil
}

// UpdateRecord patches the properties of a page
func (c *Client) UpdateRecord(ctx context.Context, recordID string, props Properties) (*Record, error) {
	var rec Record
	path := "/v1/pages/" + url.PathEscape(recordID)
	if err := c.doRequest(ctx, http.MethodPatch, path, updateRequest{Properties: props}, &rec); err != nil {
		return nil, fmt.Errorf("update record request failed: %w", err)
	}
	return &rec, nil
}

// ArchiveRecord archives a page
func (c *Client) ArchiveRecord(ctx context.Context, recordID string) error {
	archived := true
	path := "/v1/pages/" + url.PathEscape(recordID)
	if err := c.doRequest(ctx, http.MethodPatch, path, updateRequest{Archived: &archived}, nil); err != nil {
		return fmt.Errorf("archive record request failed: %w", err)
	}
	return nil
}

// QueryDatabase fetches one page of database records
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query Query) (*Page, error) {
	var page Page
	path := "/v1/databases/" + url.PathEscape(databaseID) + "/query"
	if err := c.doRequest(ctx, http.MethodPost, path, query, &page); err != nil {
		return nil, fmt.Errorf("query database request failed: %w", err)
	}
	return &page, nil
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

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", APIVersion)
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
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = string(respBody)
		}
		// Тело ответа может переопределить status - восстанавливаем HTTP код
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
