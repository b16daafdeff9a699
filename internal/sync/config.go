package sync

import (
	"errors"
	"fmt"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/validation"
)

// Default pacing between remote calls.
const (
	DefaultItemDelay = 500 * time.Millisecond
	DefaultPageDelay = 2 * time.Second
)

// ErrNotConfigured is wrapped by every ConfigError.
var ErrNotConfigured = errors.New("remote sync is not configured")

// ConfigError is returned before any network call when the remote
// integration is missing or disabled.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("remote sync is not configured: %s", e.Reason)
	}
	return fmt.Sprintf("remote sync is not configured: %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrNotConfigured.
func (e *ConfigError) Unwrap() error {
	return ErrNotConfigured
}

// Config is the remote integration configuration.
type Config struct {
	APIKey            string `json:"api_key"`
	BaseURL           string `json:"base_url,omitempty"`
	BlocksDatabaseID  string `json:"blocks_database_id"`
	RoadmapDatabaseID string `json:"roadmap_database_id"`
	Enabled           bool   `json:"enabled"`
}

// DatabaseID returns the remote database configured for kind.
func (c Config) DatabaseID(kind models.EntityType) string {
	switch kind {
	case models.EntityTypeBlock:
		return c.BlocksDatabaseID
	case models.EntityTypeRoadmapItem:
		return c.RoadmapDatabaseID
	}
	return ""
}

// Redacted returns a copy safe to log or return to clients.
func (c Config) Redacted() Config {
	if len(c.APIKey) > 8 {
		c.APIKey = c.APIKey[:4] + "…" + c.APIKey[len(c.APIKey)-4:]
	} else if c.APIKey != "" {
		c.APIKey = "…"
	}
	return c
}

// Validate checks that the configuration is complete.
func (c Config) Validate() error {
	if err := validation.ValidateAPIKey(c.APIKey); err != nil {
		return &ConfigError{Field: "api_key", Reason: err.Error()}
	}
	if c.BlocksDatabaseID == "" && c.RoadmapDatabaseID == "" {
		return &ConfigError{Field: "database_id", Reason: "at least one database id is required"}
	}
	if err := validation.ValidateDatabaseID(c.BlocksDatabaseID); err != nil {
		return &ConfigError{Field: "blocks_database_id", Reason: err.Error()}
	}
	if err := validation.ValidateDatabaseID(c.RoadmapDatabaseID); err != nil {
		return &ConfigError{Field: "roadmap_database_id", Reason: err.Error()}
	}
	return nil
}
