package storage

import (
	"context"
	"time"
)

// SyncSettings is the persisted remote sync configuration. The API key is
// stored sealed and never in clear text.
type SyncSettings struct {
	UpdatedAt         time.Time `json:"updated_at" msgpack:"updated_at"`
	BlocksDatabaseID  string    `json:"blocks_database_id" msgpack:"blocks_database_id"`
	RoadmapDatabaseID string    `json:"roadmap_database_id" msgpack:"roadmap_database_id"`
	BaseURL           string    `json:"base_url,omitempty" msgpack:"base_url,omitempty"`
	SealedAPIKey      []byte    `json:"sealed_api_key" msgpack:"sealed_api_key"`
	Enabled           bool      `json:"enabled" msgpack:"enabled"`
}

// ConfigStorage persists the sync configuration between runs
type ConfigStorage interface {
	// SaveSyncSettings stores the configuration, replacing any previous one
	SaveSyncSettings(ctx context.Context, settings *SyncSettings) error

	// LoadSyncSettings returns the stored configuration
	// Returns ErrConfigNotFound if nothing was saved yet
	LoadSyncSettings(ctx context.Context) (*SyncSettings, error)
}
