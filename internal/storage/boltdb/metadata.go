package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

var _ storage.MetadataStorage = (*Storage)(nil)

func lastSyncKey(phase string) []byte {
	return []byte("last_" + phase + "_time")
}

// SaveLastSyncTime saves the time of the last completed push or pull
func (s *Storage) SaveLastSyncTime(ctx context.Context, phase string, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем время в bytes (наносекунды Unix)
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

		if err := bucket.Put(lastSyncKey(phase), buf); err != nil {
			return fmt.Errorf("failed to save last %s time: %w", phase, err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the time of the last completed push or pull
// Returns the zero time if the phase never ran
func (s *Storage) GetLastSyncTime(ctx context.Context, phase string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get(lastSyncKey(phase))
		if buf == nil {
			// Синхронизация ещё не выполнялась
			return nil
		}

		t = time.Unix(0, int64(binary.BigEndian.Uint64(buf))).UTC()
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last %s time: %w", phase, err)
	}

	return t, nil
}
