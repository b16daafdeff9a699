package boltdb

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

var _ storage.FallbackStorage = (*Storage)(nil)

// SaveWorkspace writes the workspace blob and its save time in one
// transaction
func (s *Storage) SaveWorkspace(ctx context.Context, workspaceID string, data []byte, ts time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFallback)
		if bucket == nil {
			return fmt.Errorf("fallback bucket not found")
		}
		if err := bucket.Put([]byte(storage.WorkspaceKey(workspaceID)), data); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}
		stamp := storage.FormatTimestamp(ts)
		if err := bucket.Put([]byte(storage.WorkspaceTimestampKey(workspaceID)), []byte(stamp)); err != nil {
			return fmt.Errorf("failed to save workspace timestamp: %w", err)
		}
		return nil
	})
}

// LoadWorkspace reads the workspace back, nil if it was never saved
func (s *Storage) LoadWorkspace(ctx context.Context, workspaceID string) (*storage.WorkspaceSnapshot, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *storage.WorkspaceSnapshot
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFallback)
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(storage.WorkspaceKey(workspaceID)))
		stamp := bucket.Get([]byte(storage.WorkspaceTimestampKey(workspaceID)))
		if data == nil || stamp == nil {
			return nil
		}

		ts, err := storage.ParseTimestamp(string(stamp))
		if err != nil {
			return fmt.Errorf("failed to parse workspace timestamp: %w", err)
		}
		// Данные bbolt валидны только внутри транзакции
		snapshot = &storage.WorkspaceSnapshot{Data: slices.Clone(data), Timestamp: ts}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
