package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

// SyncResult summarizes a push run.
type SyncResult struct {
	Timestamp time.Time     `json:"timestamp"`
	Errors    []EntityError `json:"errors,omitempty"`
	// SyncedCount counts successful remote writes, including entities
	// re-queued because they changed during the round trip.
	SyncedCount int `json:"synced_count"`
	FailedCount int `json:"failed_count"`
	// SkippedCount counts entities left alone because they are in conflict.
	SkippedCount  int  `json:"skipped_count"`
	RequeuedCount int  `json:"requeued_count"`
	DeletedCount  int  `json:"deleted_count"`
	Cancelled     bool `json:"cancelled"`
}

func (r *SyncResult) fail(id string, err error) {
	r.FailedCount++
	r.Errors = append(r.Errors, EntityError{EntityID: id, Message: err.Error()})
}

// outcome is the result of processing one item.
type outcome int

const (
	outcomeSynced outcome = iota
	outcomeRequeued
	outcomeSkipped
	outcomeFailed
)

// PushEntities pushes entities in the given order. A failure on one entity
// marks its record ERROR and the batch continues. The returned error is
// non-nil only for configuration problems.
func (e *Engine) PushEntities(ctx context.Context, entities []*models.Entity) (*SyncResult, error) {
	client, strategies, err := e.requireConfigured()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	result := &SyncResult{}
	e.pushBatch(ctx, client, strategies, entities, result)
	result.Timestamp = e.now().UTC()
	e.saveSyncTime(ctx, storage.PhasePush, result.Timestamp)
	return result, nil
}

// SyncAll pushes every dirty entity in dirty order, then entities whose
// record is PENDING or ERROR, then pending deletions.
func (e *Engine) SyncAll(ctx context.Context) (*SyncResult, error) {
	client, strategies, err := e.requireConfigured()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	batch, err := e.collectPushSet(ctx)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Starting sync", "entities", len(batch), "deletions", len(e.entities.Deleted()))

	result := &SyncResult{}
	e.pushBatch(ctx, client, strategies, batch, result)
	if !result.Cancelled {
		e.pushDeletions(ctx, client, len(batch) > 0, result)
	}
	result.Timestamp = e.now().UTC()
	e.saveSyncTime(ctx, storage.PhasePush, result.Timestamp)

	e.logger.Info("Sync completed",
		"synced", result.SyncedCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
		"requeued", result.RequeuedCount,
		"deleted", result.DeletedCount,
		"cancelled", result.Cancelled)

	return result, nil
}

// PushDeletions archives the remote records of locally deleted entities
// and destroys their sync records.
func (e *Engine) PushDeletions(ctx context.Context) (*SyncResult, error) {
	client, _, err := e.requireConfigured()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	result := &SyncResult{}
	e.pushDeletions(ctx, client, false, result)
	result.Timestamp = e.now().UTC()
	return result, nil
}

// collectPushSet returns dirty entities followed by the manual retry set.
func (e *Engine) collectPushSet(ctx context.Context) ([]*models.Entity, error) {
	batch := e.entities.ListDirtySince(0)
	seen := make(map[string]struct{}, len(batch))
	for _, ent := range batch {
		seen[ent.ID] = struct{}{}
	}

	for _, status := range []models.SyncStatus{models.SyncStatusError, models.SyncStatusPending} {
		records, err := e.records.ListRecordsByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s records: %w", status, err)
		}
		for _, rec := range records {
			if _, ok := seen[rec.AppID]; ok {
				continue
			}
			ent, err := e.entities.Get(rec.AppID)
			if err != nil {
				// Удалённые сущности обрабатываются отдельно
				continue
			}
			seen[rec.AppID] = struct{}{}
			batch = append(batch, ent)
		}
	}
	return batch, nil
}

func (e *Engine) pushBatch(ctx context.Context, client remote.Store, strategies map[models.EntityType]strategy, entities []*models.Entity, result *SyncResult) {
	for i, ent := range entities {
		if ctx.Err() != nil {
			result.Cancelled = true
			return
		}
		if i > 0 {
			if err := e.pacer.Item(ctx); err != nil {
				result.Cancelled = true
				return
			}
		}

		status, out, err := e.pushOne(ctx, client, strategies, ent)
		switch out {
		case outcomeSynced:
			result.SyncedCount++
		case outcomeRequeued:
			result.SyncedCount++
			result.RequeuedCount++
		case outcomeSkipped:
			result.SkippedCount++
		case outcomeFailed:
			result.fail(ent.ID, err)
		}

		e.emit(Progress{
			Phase:    PhasePush,
			Current:  i + 1,
			Total:    len(entities),
			Title:    ent.Title(),
			EntityID: ent.ID,
			Status:   status,
		})
	}
}

// pushOne creates or updates the remote record of one entity.
func (e *Engine) pushOne(ctx context.Context, client remote.Store, strategies map[models.EntityType]strategy, ent *models.Entity) (models.SyncStatus, outcome, error) {
	// Берём актуальное состояние из хранилища, если сущность там есть
	tracked := false
	if cur, err := e.entities.Get(ent.ID); err == nil {
		ent = cur
		tracked = true
	}

	rec, err := e.loadRecord(ctx, ent.ID, ent.Type)
	if err != nil {
		e.logger.Error("Push failed", "entity_id", ent.ID, "error", err)
		return models.SyncStatusError, outcomeFailed, err
	}
	if rec.Status == models.SyncStatusConflict {
		e.logger.Debug("Skipping entity in conflict", "entity_id", ent.ID)
		return rec.Status, outcomeSkipped, nil
	}

	st, ok := strategies[ent.Type]
	if !ok {
		err := &ConfigError{Field: "database_id", Reason: fmt.Sprintf("no remote database for %s", ent.Type)}
		return e.failPush(ctx, rec, err)
	}

	revision := ent.LocalRevision
	props := st.mapper.ToRemote(ent)

	var remoteRec *remote.Record
	if rec.RemoteID == "" {
		remoteRec, err = client.CreateRecord(ctx, st.databaseID, props)
	} else {
		remoteRec, err = client.UpdateRecord(ctx, rec.RemoteID, props)
	}
	if err != nil {
		return e.failPush(ctx, rec, err)
	}
	if err := rec.SetRemoteID(remoteRec.ID); err != nil {
		return e.failPush(ctx, rec, err)
	}

	rec.LastAppUpdate = ent.LocalUpdatedAt
	rec.LastRemoteUpdate = remoteRec.LastEditedTime
	rec.MarkSynced(st.mapper.Normalize(ent.Fields), revision)

	// Если сущность изменилась во время запроса, оставляем её в очереди
	out := outcomeSynced
	if tracked && !e.entities.ClearDirty(ent.ID, revision) {
		rec.MarkPending()
		out = outcomeRequeued
	}

	if err := e.saveRecord(ctx, rec); err != nil {
		e.logger.Error("Push succeeded but record was not saved", "entity_id", ent.ID, "error", err)
		return models.SyncStatusError, outcomeFailed, err
	}

	e.logger.Debug("Entity pushed",
		"entity_id", ent.ID,
		"remote_id", rec.RemoteID,
		"revision", revision,
		"status", rec.Status)
	return rec.Status, out, nil
}

func (e *Engine) failPush(ctx context.Context, rec *models.SyncRecord, cause error) (models.SyncStatus, outcome, error) {
	e.logger.Warn("Push failed", "entity_id", rec.AppID, "remote_id", rec.RemoteID, "error", cause)

	rec.MarkError(cause)
	if err := e.saveRecord(ctx, rec); err != nil {
		e.logger.Error("Failed to save error status", "entity_id", rec.AppID, "error", err)
	}
	return models.SyncStatusError, outcomeFailed, cause
}

func (e *Engine) pushDeletions(ctx context.Context, client remote.Store, paced bool, result *SyncResult) {
	tombstones := e.entities.Deleted()
	sort.SliceStable(tombstones, func(i, j int) bool {
		return tombstones[i].DeletedAt.Before(tombstones[j].DeletedAt)
	})

	for i, t := range tombstones {
		if ctx.Err() != nil {
			result.Cancelled = true
			return
		}
		if paced || i > 0 {
			if err := e.pacer.Item(ctx); err != nil {
				result.Cancelled = true
				return
			}
		}

		status, err := e.deleteOne(ctx, client, t)
		if err != nil {
			result.fail(t.ID, err)
		} else {
			result.DeletedCount++
		}

		e.emit(Progress{
			Phase:    PhaseDelete,
			Current:  i + 1,
			Total:    len(tombstones),
			Title:    t.ID,
			EntityID: t.ID,
			Status:   status,
		})
	}
}

// deleteOne archives the remote record of a deleted entity. The sync
// record is destroyed only after the deletion reached the remote side.
func (e *Engine) deleteOne(ctx context.Context, client remote.Store, t entitystore.Tombstone) (models.SyncStatus, error) {
	rec, err := e.records.GetRecord(ctx, t.ID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		// Сущность никогда не синхронизировалась
		e.entities.ForgetDeleted(t.ID)
		return models.SyncStatusSynced, nil
	}
	if err != nil {
		return models.SyncStatusError, fmt.Errorf("failed to load sync record %s: %w", t.ID, err)
	}

	if rec.RemoteID != "" {
		err := client.ArchiveRecord(ctx, rec.RemoteID)
		if err != nil && !errors.Is(err, remote.ErrNotFound) {
			e.logger.Warn("Failed to archive remote record", "entity_id", t.ID, "remote_id", rec.RemoteID, "error", err)
			rec.ConflictData = nil
			rec.MarkError(err)
			if saveErr := e.saveRecord(ctx, rec); saveErr != nil {
				e.logger.Error("Failed to save error status", "entity_id", t.ID, "error", saveErr)
			}
			return models.SyncStatusError, err
		}
	}

	if err := e.records.DeleteRecord(ctx, t.ID); err != nil {
		return models.SyncStatusError, fmt.Errorf("failed to delete sync record %s: %w", t.ID, err)
	}
	e.entities.ForgetDeleted(t.ID)

	e.logger.Debug("Deletion pushed", "entity_id", t.ID, "remote_id", rec.RemoteID)
	return models.SyncStatusSynced, nil
}
