// Package settings persists the remote sync configuration with the API
// key sealed under a local passphrase.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/crypto"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
)

// ErrNoPassphrase is returned when settings are used without a passphrase.
var ErrNoPassphrase = errors.New("settings passphrase is not set")

// Store saves and loads syncsvc.Config.
type Store struct {
	storage    storage.ConfigStorage
	now        func() time.Time
	passphrase string
}

// New creates a settings store.
func New(cs storage.ConfigStorage, passphrase string) *Store {
	return &Store{storage: cs, passphrase: passphrase, now: time.Now}
}

// Save seals the API key and writes the configuration.
func (s *Store) Save(ctx context.Context, cfg syncsvc.Config) error {
	if s.passphrase == "" {
		return ErrNoPassphrase
	}

	sealed, err := crypto.SealString(cfg.APIKey, s.passphrase)
	if err != nil {
		return fmt.Errorf("failed to seal api key: %w", err)
	}

	return s.storage.SaveSyncSettings(ctx, &storage.SyncSettings{
		UpdatedAt:         s.now().UTC(),
		BlocksDatabaseID:  cfg.BlocksDatabaseID,
		RoadmapDatabaseID: cfg.RoadmapDatabaseID,
		BaseURL:           cfg.BaseURL,
		SealedAPIKey:      sealed,
		Enabled:           cfg.Enabled,
	})
}

// Load returns the saved configuration. It returns
// storage.ErrConfigNotFound when nothing was saved.
func (s *Store) Load(ctx context.Context) (syncsvc.Config, error) {
	if s.passphrase == "" {
		return syncsvc.Config{}, ErrNoPassphrase
	}

	saved, err := s.storage.LoadSyncSettings(ctx)
	if err != nil {
		return syncsvc.Config{}, err
	}

	key, err := crypto.OpenString(saved.SealedAPIKey, s.passphrase)
	if err != nil {
		return syncsvc.Config{}, fmt.Errorf("failed to open api key: %w", err)
	}

	return syncsvc.Config{
		APIKey:            key,
		BaseURL:           saved.BaseURL,
		BlocksDatabaseID:  saved.BlocksDatabaseID,
		RoadmapDatabaseID: saved.RoadmapDatabaseID,
		Enabled:           saved.Enabled,
	}, nil
}
