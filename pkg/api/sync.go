package api

import "time"

// ConfigureRequest включает интеграцию с удаленным хранилищем
type ConfigureRequest struct {
	APIKey            string `json:"api_key"`
	BaseURL           string `json:"base_url,omitempty"`
	BlocksDatabaseID  string `json:"blocks_database_id"`
	RoadmapDatabaseID string `json:"roadmap_database_id"`
}

// ConfigResponse is the active configuration. The API key is never
// returned, only a redacted form and a fingerprint.
type ConfigResponse struct {
	APIKey            string `json:"api_key"`
	Fingerprint       string `json:"fingerprint,omitempty"`
	BaseURL           string `json:"base_url,omitempty"`
	BlocksDatabaseID  string `json:"blocks_database_id"`
	RoadmapDatabaseID string `json:"roadmap_database_id"`
	Enabled           bool   `json:"enabled"`
}

// EntityError is a per-item failure
type EntityError struct {
	EntityID string `json:"entity_id"`
	Message  string `json:"message"`
}

// SyncRequest ограничивает push перечисленными сущностями.
// Пустой список означает полную синхронизацию.
type SyncRequest struct {
	EntityIDs []string `json:"entity_ids,omitempty"`
}

// SyncResponse представляет результат push
type SyncResponse struct {
	Timestamp     time.Time     `json:"timestamp"`
	Errors        []EntityError `json:"errors,omitempty"`
	SyncedCount   int           `json:"synced_count"`
	FailedCount   int           `json:"failed_count"`
	SkippedCount  int           `json:"skipped_count"`
	RequeuedCount int           `json:"requeued_count"`
	DeletedCount  int           `json:"deleted_count"`
	Cancelled     bool          `json:"cancelled,omitempty"`
}

// PullResponse представляет результат pull
type PullResponse struct {
	Timestamp time.Time     `json:"timestamp"`
	Errors    []EntityError `json:"errors,omitempty"`
	Total     int           `json:"total"`
	Imported  int           `json:"imported"`
	Updated   int           `json:"updated"`
	Unchanged int           `json:"unchanged"`
	Conflicts int           `json:"conflicts"`
	Pending   int           `json:"pending"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Cancelled bool          `json:"cancelled,omitempty"`
}

// StatusResponse summarizes sync state
type StatusResponse struct {
	LastPush         *time.Time     `json:"last_push,omitempty"`
	LastPull         *time.Time     `json:"last_pull,omitempty"`
	Counts           map[string]int `json:"counts"`
	DirtyCount       int            `json:"dirty_count"`
	ConflictCount    int            `json:"conflict_count"`
	PendingDeletions int            `json:"pending_deletions"`
	Configured       bool           `json:"configured"`
}

// FieldDiff describes one differing field of a conflict
type FieldDiff struct {
	Field  string `json:"field"`
	App    string `json:"app"`
	Remote string `json:"remote"`
	Pretty string `json:"pretty"`
}

// Conflict представляет сущность в состоянии CONFLICT
type Conflict struct {
	DetectedAt    time.Time   `json:"detected_at"`
	AppID         string      `json:"app_id"`
	RemoteID      string      `json:"remote_id"`
	EntityType    string      `json:"entity_type"`
	Title         string      `json:"title"`
	AppVersion    []Field     `json:"app_version"`
	RemoteVersion []Field     `json:"remote_version"`
	Diffs         []FieldDiff `json:"diffs"`
	Sequence      int64       `json:"sequence"`
}

// ConflictsResponse lists conflicts in resolution order
type ConflictsResponse struct {
	Conflicts []Conflict `json:"conflicts"`
}

// ResolveRequest выбирает победившую сторону: "APP" или "REMOTE"
type ResolveRequest struct {
	Choice string `json:"choice"`
}

// ResolveAllResponse представляет результат пакетного разрешения
type ResolveAllResponse struct {
	Errors   []EntityError `json:"errors,omitempty"`
	Resolved int           `json:"resolved"`
	Failed   int           `json:"failed"`
}

// ProgressEvent is streamed to websocket subscribers during a sync run
type ProgressEvent struct {
	Phase    string `json:"phase"`
	EntityID string `json:"entity_id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Current  int    `json:"current"`
	Total    int    `json:"total"`
}
