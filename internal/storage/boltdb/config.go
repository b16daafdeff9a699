package boltdb

import (
	"context"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

var _ storage.ConfigStorage = (*Storage)(nil)

var keySyncSettings = []byte("sync_settings")

// SaveSyncSettings stores the sync configuration
func (s *Storage) SaveSyncSettings(ctx context.Context, settings *storage.SyncSettings) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := msgpack.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal sync settings: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return fmt.Errorf("config bucket not found")
		}
		if err := bucket.Put(keySyncSettings, data); err != nil {
			return fmt.Errorf("failed to save sync settings: %w", err)
		}
		return nil
	})
}

// LoadSyncSettings returns the stored configuration
func (s *Storage) LoadSyncSettings(ctx context.Context) (*storage.SyncSettings, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var settings *storage.SyncSettings
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConfig)
		if bucket == nil {
			return storage.ErrConfigNotFound
		}
		data := bucket.Get(keySyncSettings)
		if data == nil {
			return storage.ErrConfigNotFound
		}
		settings = &storage.SyncSettings{}
		if err := msgpack.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to unmarshal sync settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}
