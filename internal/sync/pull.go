package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/mapper"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

// PullPageSize is the number of records requested per query page.
const PullPageSize = 100

// PullResult summarizes a pull run.
type PullResult struct {
	Timestamp time.Time     `json:"timestamp"`
	Errors    []EntityError `json:"errors,omitempty"`
	Total     int           `json:"total"`
	Imported  int           `json:"imported"`
	Updated   int           `json:"updated"`
	Unchanged int           `json:"unchanged"`
	Conflicts int           `json:"conflicts"`
	// Pending counts entities changed only locally; they wait for the next push.
	Pending   int  `json:"pending"`
	Skipped   int  `json:"skipped"`
	Failed    int  `json:"failed"`
	Cancelled bool `json:"cancelled"`
}

func (r *PullResult) fail(id string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, EntityError{EntityID: id, Message: err.Error()})
}

// pullOutcome classifies the reconciliation of one remote record.
type pullOutcome int

const (
	pullImported pullOutcome = iota
	pullUpdated
	pullUnchanged
	pullConflict
	pullPending
	pullSkipped
)

// PullFromRemote fetches every record of the configured databases and
// reconciles it with local state. Conflicts are detected by comparing
// mapped field sets, never timestamps.
func (e *Engine) PullFromRemote(ctx context.Context) (*PullResult, error) {
	client, strategies, err := e.requireConfigured()
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.logger.Info("Starting pull", "databases", len(strategies))

	result := &PullResult{}
	current := 0
	for _, kind := range models.EntityTypes {
		st, ok := strategies[kind]
		if !ok {
			continue
		}
		if !e.pullKind(ctx, client, kind, st, result, &current) {
			break
		}
	}

	result.Timestamp = e.now().UTC()
	if !result.Cancelled {
		e.saveSyncTime(ctx, storage.PhasePull, result.Timestamp)
	}

	e.logger.Info("Pull completed",
		"total", result.Total,
		"imported", result.Imported,
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"conflicts", result.Conflicts,
		"pending", result.Pending,
		"failed", result.Failed,
		"cancelled", result.Cancelled)

	return result, nil
}

// pullKind pages through one database. It returns false if the run was
// cancelled.
func (e *Engine) pullKind(ctx context.Context, client remote.Store, kind models.EntityType, st strategy, result *PullResult, current *int) bool {
	query := remote.Query{PageSize: PullPageSize}
	for page := 0; ; page++ {
		if page > 0 {
			if err := e.pacer.Page(ctx); err != nil {
				result.Cancelled = true
				return false
			}
		}
		if ctx.Err() != nil {
			result.Cancelled = true
			return false
		}

		res, err := client.QueryDatabase(ctx, st.databaseID, query)
		if err != nil {
			if ctx.Err() != nil {
				result.Cancelled = true
				return false
			}
			// Остальные базы всё равно обрабатываем
			e.logger.Error("Failed to query remote database", "kind", kind, "database_id", st.databaseID, "error", err)
			result.fail(st.databaseID, fmt.Errorf("failed to query %s database: %w", kind, err))
			return true
		}

		result.Total += len(res.Results)
		for i := range res.Results {
			rec := &res.Results[i]
			*current++

			status, out, entityID, err := e.pullOne(ctx, kind, st, rec)
			if err != nil {
				e.logger.Warn("Pull failed for record", "remote_id", rec.ID, "error", err)
				result.fail(entityID, err)
			} else {
				switch out {
				case pullImported:
					result.Imported++
				case pullUpdated:
					result.Updated++
				case pullUnchanged:
					result.Unchanged++
				case pullConflict:
					result.Conflicts++
				case pullPending:
					result.Pending++
				case pullSkipped:
					result.Skipped++
				}
			}

			title := rec.ID
			if v, ok := st.mapper.FromRemote(rec.Properties).Get(models.FieldTitle); ok {
				title = v.Str
			}
			e.emit(Progress{
				Phase:    PhasePull,
				Current:  *current,
				Total:    result.Total,
				Title:    title,
				EntityID: entityID,
				Status:   status,
			})
		}

		if !res.HasMore || res.NextCursor == "" {
			return true
		}
		query.StartCursor = res.NextCursor
	}
}

// pullOne reconciles one remote record and returns the resulting status,
// the outcome and the local entity id.
func (e *Engine) pullOne(ctx context.Context, kind models.EntityType, st strategy, rr *remote.Record) (models.SyncStatus, pullOutcome, string, error) {
	if rr.Archived {
		return "", pullSkipped, "", nil
	}

	remoteFields := st.mapper.FromRemote(rr.Properties)

	rec, err := e.records.GetRecordByRemoteID(ctx, rr.ID)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return e.importOrAdopt(ctx, kind, st, rr, remoteFields)
	}
	if err != nil {
		return models.SyncStatusError, pullSkipped, "", fmt.Errorf("failed to load sync record for %s: %w", rr.ID, err)
	}

	local, err := e.entities.Get(rec.AppID)
	if err != nil {
		if e.entities.IsDeleted(rec.AppID) {
			// Удаление ещё не отправлено, не воскрешаем сущность
			return rec.Status, pullSkipped, rec.AppID, nil
		}
		return e.importRecord(ctx, kind, st, rr, rec, rec.AppID, remoteFields)
	}

	return e.reconcile(ctx, st, rr, rec, local, remoteFields)
}

// importOrAdopt handles a remote record that no sync record points to.
func (e *Engine) importOrAdopt(ctx context.Context, kind models.EntityType, st strategy, rr *remote.Record, remoteFields models.Fields) (models.SyncStatus, pullOutcome, string, error) {
	id := mapper.AppID(rr.Properties)
	if id != "" {
		if local, err := e.entities.Get(id); err == nil && local.Type == kind {
			rec, err := e.loadRecord(ctx, id, kind)
			if err != nil {
				return models.SyncStatusError, pullSkipped, id, err
			}
			if rec.RemoteID == "" {
				// Создание прошло, но запись о синхронизации не сохранилась
				if err := rec.SetRemoteID(rr.ID); err != nil {
					return models.SyncStatusError, pullSkipped, id, err
				}
				return e.reconcile(ctx, st, rr, rec, local, remoteFields)
			}
		}
		if e.idTaken(ctx, id) {
			id = ""
		}
	}
	if id == "" {
		id = uuid.New().String()
	}

	rec := models.NewSyncRecord(id, kind)
	return e.importRecord(ctx, kind, st, rr, rec, id, remoteFields)
}

// idTaken reports whether id is used locally in any form.
func (e *Engine) idTaken(ctx context.Context, id string) bool {
	if _, err := e.entities.Get(id); err == nil {
		return true
	}
	if e.entities.IsDeleted(id) {
		return true
	}
	_, err := e.records.GetRecord(ctx, id)
	return !errors.Is(err, storage.ErrRecordNotFound)
}

// importRecord creates the local entity for a remote record.
func (e *Engine) importRecord(ctx context.Context, kind models.EntityType, st strategy, rr *remote.Record, rec *models.SyncRecord, id string, remoteFields models.Fields) (models.SyncStatus, pullOutcome, string, error) {
	fields := st.mapper.Defaults().Merge(remoteFields)
	ent, err := e.entities.Import(kind, id, fields)
	if err != nil {
		return models.SyncStatusError, pullSkipped, id, fmt.Errorf("failed to import %s: %w", rr.ID, err)
	}

	if err := rec.SetRemoteID(rr.ID); err != nil {
		return models.SyncStatusError, pullSkipped, id, err
	}
	rec.LastRemoteUpdate = rr.LastEditedTime
	rec.LastAppUpdate = ent.LocalUpdatedAt
	rec.MarkSynced(st.mapper.Normalize(ent.Fields), ent.LocalRevision)
	if err := e.saveRecord(ctx, rec); err != nil {
		return models.SyncStatusError, pullSkipped, id, err
	}

	e.logger.Debug("Remote record imported", "entity_id", id, "remote_id", rr.ID, "kind", kind)
	return rec.Status, pullImported, id, nil
}

// reconcile compares the local entity with the remote record.
func (e *Engine) reconcile(ctx context.Context, st strategy, rr *remote.Record, rec *models.SyncRecord, local *models.Entity, remoteFields models.Fields) (models.SyncStatus, pullOutcome, string, error) {
	localMapped := st.mapper.Normalize(local.Fields)
	merged := st.mapper.Normalize(local.Fields.Merge(remoteFields))
	advanced := local.LocalRevision > rec.LastSyncedRevision

	var out pullOutcome
	switch {
	case localMapped.Equal(merged):
		// Обе стороны совпадают, конфликта нет независимо от времени
		e.entities.ClearDirty(local.ID, local.LocalRevision)
		rec.MarkSynced(merged, local.LocalRevision)
		rec.LastRemoteUpdate = rr.LastEditedTime
		out = pullUnchanged

	case !advanced:
		_, err := e.entities.ApplyRemote(local.ID, local.LocalRevision, local.Fields.Merge(remoteFields))
		if errors.Is(err, entitystore.ErrRevisionChanged) {
			// Локальная правка пришла после чтения, сравниваем заново
			fresh, gerr := e.entities.Get(local.ID)
			if gerr != nil {
				return models.SyncStatusError, pullSkipped, local.ID, fmt.Errorf("failed to reload %s: %w", local.ID, gerr)
			}
			return e.reconcile(ctx, st, rr, rec, fresh, remoteFields)
		}
		if err != nil {
			return models.SyncStatusError, pullSkipped, local.ID, fmt.Errorf("failed to apply remote changes to %s: %w", local.ID, err)
		}
		rec.MarkSynced(merged, local.LocalRevision)
		rec.LastRemoteUpdate = rr.LastEditedTime
		out = pullUpdated

	case !merged.Equal(rec.LastSyncedFields):
		rec.MarkConflict(localMapped, merged, e.now().UTC(), rr.LastEditedTime, e.seq.Next())
		out = pullConflict
		e.logger.Info("Conflict detected",
			"entity_id", local.ID,
			"remote_id", rr.ID,
			"fields", localMapped.ChangedNames(merged))

	default:
		// Изменения только локальные, ждут следующей отправки
		if rec.Status == models.SyncStatusSynced {
			rec.MarkPending()
		}
		out = pullPending
	}

	if err := e.saveRecord(ctx, rec); err != nil {
		return models.SyncStatusError, pullSkipped, local.ID, err
	}
	return rec.Status, out, local.ID, nil
}
