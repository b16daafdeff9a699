// Package remote talks to the external record store (a Notion-style
// database API). The rest of the system sees it as a key-value service
// keyed by opaque record ids with typed properties.
package remote

import (
	"context"
	"errors"
	"fmt"
	"time"
)

//go:generate moq -out store_mock.go . Store

// Store is the capability interface of the remote record store.
type Store interface {
	// CreateRecord creates a record in the database and returns it with its
	// newly assigned id
	CreateRecord(ctx context.Context, databaseID string, props Properties) (*Record, error)

	// UpdateRecord overwrites the given properties of an existing record
	UpdateRecord(ctx context.Context, recordID string, props Properties) (*Record, error)

	// ArchiveRecord archives (soft deletes) a record
	ArchiveRecord(ctx context.Context, recordID string) error

	// QueryDatabase returns one page of records; pass Page.NextCursor back
	// in Query.StartCursor to continue
	QueryDatabase(ctx context.Context, databaseID string, query Query) (*Page, error)
}

// Record is one remote record.
type Record struct {
	LastEditedTime time.Time  `json:"last_edited_time"`
	Properties     Properties `json:"properties"`
	ID             string     `json:"id"`
	Archived       bool       `json:"archived"`
}

// Sort orders query results.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// Query selects one page of records.
type Query struct {
	Filter      map[string]any `json:"filter,omitempty"`
	StartCursor string         `json:"start_cursor,omitempty"`
	Sorts       []Sort         `json:"sorts,omitempty"`
	PageSize    int            `json:"page_size,omitempty"`
}

// Page is one page of query results.
type Page struct {
	NextCursor string   `json:"next_cursor"`
	Results    []Record `json:"results"`
	HasMore    bool     `json:"has_more"`
}

// Common remote store errors
var (
	// ErrUnauthorized indicates that the API key was rejected
	ErrUnauthorized = errors.New("remote store rejected credentials")

	// ErrRateLimited indicates that the remote store throttled the request
	ErrRateLimited = errors.New("remote store rate limit exceeded")

	// ErrNotFound indicates that the record or database does not exist
	ErrNotFound = errors.New("remote record not found")
)

// APIError is a non-2xx response from the remote store.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote store error (%d %s): %s", e.Status, e.Code, e.Message)
}

// Unwrap maps well-known statuses onto sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	}
	return nil
}
