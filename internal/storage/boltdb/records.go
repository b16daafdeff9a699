package boltdb

import (
	"context"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

var _ storage.SyncRecordStorage = (*Storage)(nil)

// SaveRecord stores or replaces a sync record and keeps the remote id
// index in step
func (s *Storage) SaveRecord(ctx context.Context, record *models.SyncRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := record.Validate(); err != nil {
		return err
	}

	// Сериализуем запись в msgpack
	data, err := msgpack.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal sync record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		index := tx.Bucket(bucketRemoteID)
		if records == nil || index == nil {
			return fmt.Errorf("sync records bucket not found")
		}

		// Удаляем устаревшую ссылку индекса, если remote id поменялся
		if prev := records.Get([]byte(record.AppID)); prev != nil {
			var old models.SyncRecord
			if err := msgpack.Unmarshal(prev, &old); err == nil && old.RemoteID != "" && old.RemoteID != record.RemoteID {
				if err := index.Delete([]byte(old.RemoteID)); err != nil {
					return fmt.Errorf("failed to drop remote id index: %w", err)
				}
			}
		}

		if err := records.Put([]byte(record.AppID), data); err != nil {
			return fmt.Errorf("failed to save sync record: %w", err)
		}
		if record.RemoteID != "" {
			if err := index.Put([]byte(record.RemoteID), []byte(record.AppID)); err != nil {
				return fmt.Errorf("failed to index remote id: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetRecord retrieves a sync record by local entity id
func (s *Storage) GetRecord(ctx context.Context, appID string) (*models.SyncRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.SyncRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		record, err = getRecord(tx, appID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetRecordByRemoteID retrieves a sync record through the remote id index
func (s *Storage) GetRecordByRemoteID(ctx context.Context, remoteID string) (*models.SyncRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.SyncRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketRemoteID)
		if index == nil {
			return storage.ErrRecordNotFound
		}
		appID := index.Get([]byte(remoteID))
		if appID == nil {
			return storage.ErrRecordNotFound
		}
		var err error
		record, err = getRecord(tx, string(appID))
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListRecords returns all records ordered by AppID
func (s *Storage) ListRecords(ctx context.Context) ([]*models.SyncRecord, error) {
	return s.listRecords(func(*models.SyncRecord) bool { return true })
}

// ListRecordsByStatus returns records with the given status ordered by AppID
func (s *Storage) ListRecordsByStatus(ctx context.Context, status models.SyncStatus) ([]*models.SyncRecord, error) {
	return s.listRecords(func(r *models.SyncRecord) bool { return r.Status == status })
}

// DeleteRecord removes the record and its index entry
func (s *Storage) DeleteRecord(ctx context.Context, appID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		index := tx.Bucket(bucketRemoteID)
		if records == nil || index == nil {
			return fmt.Errorf("sync records bucket not found")
		}

		data := records.Get([]byte(appID))
		if data == nil {
			return nil
		}
		var record models.SyncRecord
		if err := msgpack.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal sync record: %w", err)
		}
		if record.RemoteID != "" {
			if err := index.Delete([]byte(record.RemoteID)); err != nil {
				return fmt.Errorf("failed to drop remote id index: %w", err)
			}
		}
		if err := records.Delete([]byte(appID)); err != nil {
			return fmt.Errorf("failed to delete sync record: %w", err)
		}
		return nil
	})
}

func (s *Storage) listRecords(keep func(*models.SyncRecord) bool) ([]*models.SyncRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.SyncRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return nil
		}

		// Ключи BoltDB упорядочены, поэтому результат отсортирован по AppID
		return bucket.ForEach(func(k, v []byte) error {
			record := &models.SyncRecord{}
			if err := msgpack.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal sync record %s: %w", k, err)
			}
			if keep(record) {
				records = append(records, record)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sync records: %w", err)
	}

	return records, nil
}

func getRecord(tx *bbolt.Tx, appID string) (*models.SyncRecord, error) {
	bucket := tx.Bucket(bucketRecords)
	if bucket == nil {
		return nil, storage.ErrRecordNotFound
	}

	data := bucket.Get([]byte(appID))
	if data == nil {
		return nil, storage.ErrRecordNotFound
	}

	// Десериализуем
	record := &models.SyncRecord{}
	if err := msgpack.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sync record: %w", err)
	}
	return record, nil
}
