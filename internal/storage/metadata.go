package storage

import (
	"context"
	"time"
)

// Sync phases tracked by MetadataStorage.
const (
	PhasePush = "push"
	PhasePull = "pull"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the time of the last completed push or pull
	SaveLastSyncTime(ctx context.Context, phase string, t time.Time) error

	// GetLastSyncTime retrieves the time of the last completed push or pull
	// Returns the zero time if the phase never ran
	GetLastSyncTime(ctx context.Context, phase string) (time.Time, error)
}
