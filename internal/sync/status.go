package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

// StatusReport summarizes sync state for the status badge.
type StatusReport struct {
	LastPush time.Time                 `json:"last_push"`
	LastPull time.Time                 `json:"last_pull"`
	Counts   map[models.SyncStatus]int `json:"counts"`
	// DirtyCount is the number of entities with unpushed local changes.
	DirtyCount       int  `json:"dirty_count"`
	ConflictCount    int  `json:"conflict_count"`
	PendingDeletions int  `json:"pending_deletions"`
	Configured       bool `json:"configured"`
}

// Status summarizes sync state. It works without a configured remote.
func (e *Engine) Status(ctx context.Context) (*StatusReport, error) {
	records, err := e.records.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync records: %w", err)
	}

	report := &StatusReport{
		Configured:       e.IsConfigured(),
		DirtyCount:       e.entities.DirtyCount(),
		PendingDeletions: len(e.entities.Deleted()),
		Counts: map[models.SyncStatus]int{
			models.SyncStatusSynced:   0,
			models.SyncStatusPending:  0,
			models.SyncStatusConflict: 0,
			models.SyncStatusError:    0,
		},
	}
	for _, rec := range records {
		report.Counts[rec.Status]++
	}
	report.ConflictCount = report.Counts[models.SyncStatusConflict]

	if e.metadata != nil {
		if report.LastPush, err = e.metadata.GetLastSyncTime(ctx, storage.PhasePush); err != nil {
			return nil, fmt.Errorf("failed to get last push time: %w", err)
		}
		if report.LastPull, err = e.metadata.GetLastSyncTime(ctx, storage.PhasePull); err != nil {
			return nil, fmt.Errorf("failed to get last pull time: %w", err)
		}
	}
	return report, nil
}
