package storage

import (
	"context"
	"encoding/json"
	"time"
)

// WorkspaceSnapshot is a workspace saved to the local fallback.
type WorkspaceSnapshot struct {
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// FallbackStorage is the key-value fallback used when the relational store
// is unreachable. Each workspace occupies two keys: WorkspaceKey holding the
// JSON blob and WorkspaceTimestampKey holding an ISO-8601 timestamp.
type FallbackStorage interface {
	// SaveWorkspace writes both keys of the workspace
	SaveWorkspace(ctx context.Context, workspaceID string, data []byte, ts time.Time) error

	// LoadWorkspace reads the workspace back
	// Returns nil without error if nothing was saved
	LoadWorkspace(ctx context.Context, workspaceID string) (*WorkspaceSnapshot, error)
}

// WorkspaceKey returns the key of the workspace JSON blob.
func WorkspaceKey(workspaceID string) string {
	return "workspace_" + workspaceID
}

// WorkspaceTimestampKey returns the key of the workspace save time.
func WorkspaceTimestampKey(workspaceID string) string {
	return "workspace_" + workspaceID + "_timestamp"
}

// FormatTimestamp renders the save time stored under WorkspaceTimestampKey.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ParseTimestamp parses a value written by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
