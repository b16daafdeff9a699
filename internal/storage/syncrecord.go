// Package storage declares the persistence contracts of the sync engine,
// the autosave layer and the local fallback. Implementations live in the
// boltdb, redisstore and relational subpackages.
package storage

import (
	"context"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

//go:generate moq -out syncrecord_mock.go . SyncRecordStorage

// SyncRecordStorage persists one SyncRecord per entity
type SyncRecordStorage interface {
	// SaveRecord stores or replaces the record keyed by AppID
	SaveRecord(ctx context.Context, record *models.SyncRecord) error

	// GetRecord retrieves a record by local entity id
	// Returns ErrRecordNotFound if the record doesn't exist
	GetRecord(ctx context.Context, appID string) (*models.SyncRecord, error)

	// GetRecordByRemoteID retrieves a record by remote record id
	// Returns ErrRecordNotFound if no record is linked to remoteID
	GetRecordByRemoteID(ctx context.Context, remoteID string) (*models.SyncRecord, error)

	// ListRecords returns all records ordered by AppID
	ListRecords(ctx context.Context) ([]*models.SyncRecord, error)

	// ListRecordsByStatus returns records with the given status ordered by AppID
	ListRecordsByStatus(ctx context.Context, status models.SyncStatus) ([]*models.SyncRecord, error)

	// DeleteRecord removes the record; deleting a missing record is not an error
	DeleteRecord(ctx context.Context, appID string) error
}
