package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

//go:generate moq -out conflict_service_mock.go . ConflictService

// Choice selects which side wins a conflict.
type Choice string

const (
	ChoiceApp    Choice = "APP"
	ChoiceRemote Choice = "REMOTE"
)

var (
	// ErrNoConflict indicates that the record is not in conflict
	ErrNoConflict = errors.New("entity is not in conflict")

	// ErrInvalidChoice indicates an unknown resolution choice
	ErrInvalidChoice = errors.New("invalid resolution choice")
)

// ParseChoice converts user input to a Choice.
func ParseChoice(s string) (Choice, error) {
	switch Choice(s) {
	case ChoiceApp, ChoiceRemote:
		return Choice(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

// ConflictService resolves conflicts detected by pull.
type ConflictService interface {
	// Conflicts lists conflicted entities in detection order
	Conflicts(ctx context.Context) ([]ConflictView, error)

	// Resolve resolves one conflict
	Resolve(ctx context.Context, appID string, choice Choice) error

	// ResolveAll resolves every conflict with the same choice
	ResolveAll(ctx context.Context, choice Choice) (*ResolveResult, error)
}

// ConflictView is a conflict prepared for display.
type ConflictView struct {
	DetectedAt    time.Time         `json:"detected_at"`
	AppID         string            `json:"app_id"`
	RemoteID      string            `json:"remote_id"`
	EntityType    models.EntityType `json:"entity_type"`
	Title         string            `json:"title"`
	AppVersion    models.Fields     `json:"app_version"`
	RemoteVersion models.Fields     `json:"remote_version"`
	Diffs         []FieldDiff       `json:"diffs"`
	Sequence      int64             `json:"sequence"`
}

// ResolveResult summarizes ResolveAll.
type ResolveResult struct {
	Errors   []EntityError `json:"errors,omitempty"`
	Resolved int           `json:"resolved"`
	Failed   int           `json:"failed"`
}

// Resolver applies user decisions to conflicted records. It shares the
// engine lock so that resolution never interleaves with a sync run.
type Resolver struct {
	engine *Engine
	logger *slog.Logger
}

var _ ConflictService = (*Resolver)(nil)

// NewResolver creates a resolver bound to the engine state.
func NewResolver(e *Engine) *Resolver {
	return &Resolver{engine: e, logger: e.logger.With("component", "resolver")}
}

// Conflicts returns every conflicted record ordered by detection.
func (r *Resolver) Conflicts(ctx context.Context) ([]ConflictView, error) {
	records, err := r.conflicted(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ConflictView, 0, len(records))
	for _, rec := range records {
		cd := rec.ConflictData
		title := rec.AppID
		if v, ok := cd.AppVersion.Get(models.FieldTitle); ok && v.Str != "" {
			title = v.Str
		}
		views = append(views, ConflictView{
			AppID:         rec.AppID,
			RemoteID:      rec.RemoteID,
			EntityType:    rec.EntityType,
			Title:         title,
			DetectedAt:    cd.DetectedAt,
			Sequence:      cd.Sequence,
			AppVersion:    cd.AppVersion,
			RemoteVersion: cd.RemoteVersion,
			Diffs:         DiffFields(cd.AppVersion, cd.RemoteVersion),
		})
	}
	return views, nil
}

// Resolve resolves one conflict. APP re-queues local fields for push; the
// record stays PENDING until that push succeeds. REMOTE overwrites local
// fields with the stored remote snapshot and marks the record SYNCED.
func (r *Resolver) Resolve(ctx context.Context, appID string, choice Choice) error {
	if _, err := ParseChoice(string(choice)); err != nil {
		return err
	}

	r.engine.mu.Lock()
	defer r.engine.mu.Unlock()

	return r.resolve(ctx, appID, choice)
}

// ResolveAll applies choice to every conflict in detection order. A failure
// on one record does not stop the others.
func (r *Resolver) ResolveAll(ctx context.Context, choice Choice) (*ResolveResult, error) {
	if _, err := ParseChoice(string(choice)); err != nil {
		return nil, err
	}

	r.engine.mu.Lock()
	defer r.engine.mu.Unlock()

	records, err := r.conflicted(ctx)
	if err != nil {
		return nil, err
	}

	result := &ResolveResult{}
	for _, rec := range records {
		if err := r.resolve(ctx, rec.AppID, choice); err != nil {
			r.logger.Warn("Failed to resolve conflict", "entity_id", rec.AppID, "choice", choice, "error", err)
			result.Failed++
			result.Errors = append(result.Errors, EntityError{EntityID: rec.AppID, Message: err.Error()})
			continue
		}
		result.Resolved++
	}

	r.logger.Info("Conflicts resolved", "choice", choice, "resolved", result.Resolved, "failed", result.Failed)
	return result, nil
}

func (r *Resolver) resolve(ctx context.Context, appID string, choice Choice) error {
	e := r.engine

	rec, err := e.records.GetRecord(ctx, appID)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrNoConflict, appID)
		}
		return fmt.Errorf("failed to load sync record %s: %w", appID, err)
	}
	if rec.Status != models.SyncStatusConflict || rec.ConflictData == nil {
		return fmt.Errorf("%w: %s is %s", ErrNoConflict, appID, rec.Status)
	}

	local, err := e.entities.Get(appID)
	if err != nil {
		return fmt.Errorf("failed to load entity %s: %w", appID, err)
	}

	remoteVersion := rec.ConflictData.RemoteVersion
	switch choice {
	case ChoiceApp:
		// Удалённая версия становится базой, чтобы следующий pull не нашёл конфликт снова
		rec.LastSyncedFields = remoteVersion.Clone()
		rec.MarkPending()
		if err := e.entities.MarkDirty(appID); err != nil {
			return fmt.Errorf("failed to re-queue %s: %w", appID, err)
		}

	case ChoiceRemote:
		// Правка, сделанная после чтения, не затирается: конфликт остаётся
		if _, err := e.entities.ApplyRemote(appID, local.LocalRevision, local.Fields.Merge(remoteVersion)); err != nil {
			return fmt.Errorf("failed to apply remote version to %s: %w", appID, err)
		}
		remoteUpdatedAt := rec.ConflictData.RemoteUpdatedAt
		rec.MarkSynced(remoteVersion, local.LocalRevision)
		rec.LastRemoteUpdate = remoteUpdatedAt
	}

	if err := e.saveRecord(ctx, rec); err != nil {
		return err
	}

	r.logger.Info("Conflict resolved", "entity_id", appID, "choice", choice, "status", rec.Status)
	return nil
}

// conflicted returns CONFLICT records ordered by detection time, sequence
// and id.
func (r *Resolver) conflicted(ctx context.Context) ([]*models.SyncRecord, error) {
	records, err := r.engine.records.ListRecordsByStatus(ctx, models.SyncStatusConflict)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	out := records[:0]
	for _, rec := range records {
		if rec.ConflictData != nil {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ConflictData, out[j].ConflictData
		if !a.DetectedAt.Equal(b.DetectedAt) {
			return a.DetectedAt.Before(b.DetectedAt)
		}
		if a.Sequence != b.Sequence {
			return a.Sequence < b.Sequence
		}
		return out[i].AppID < out[j].AppID
	})
	return out, nil
}
