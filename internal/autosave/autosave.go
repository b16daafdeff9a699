package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

const (
	// DefaultDelay is the quiet period before a save.
	DefaultDelay = 2 * time.Second

	// DefaultSaveTimeout bounds one save triggered by the timer.
	DefaultSaveTimeout = 30 * time.Second

	// maxParallelWrites caps concurrent relational requests per save.
	maxParallelWrites = 8
)

// Source is the entity store the autosaver reads from.
type Source interface {
	Get(id string) (*models.Entity, error)
	All() []*models.Entity
	Subscribe(fn func(entitystore.Change))
}

// Snapshot is the JSON document written to the local fallback.
type Snapshot struct {
	Workspace models.Workspace `json:"workspace"`
	Entities  []*models.Entity `json:"entities"`
}

// DecodeSnapshot parses data saved by the autosaver.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode workspace snapshot: %w", err)
	}
	return &s, nil
}

// Autosaver writes changed entities to the relational store and the whole
// workspace to the local fallback after each burst of edits.
type Autosaver struct {
	source     Source
	relational storage.RelationalStorage
	fallback   storage.FallbackStorage
	debouncer  *Debouncer[string]
	clock      Clock
	logger     *slog.Logger
	changed    map[string]struct{}
	deleted    map[string]models.EntityType
	lastErr    error
	workspace  models.Workspace
	mu         sync.Mutex
}

// Option configures an Autosaver.
type Option func(*options)

type options struct {
	clock Clock
	delay time.Duration
}

// WithClock overrides the clock, for tests.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// New creates an autosaver for workspace and subscribes it to source.
// Either backend may be nil.
func New(ws models.Workspace, source Source, relational storage.RelationalStorage, fallback storage.FallbackStorage, logger *slog.Logger, opts ...Option) *Autosaver {
	o := options{clock: RealClock(), delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &Autosaver{
		workspace:  ws,
		source:     source,
		relational: relational,
		fallback:   fallback,
		clock:      o.clock,
		logger:     logger.With("component", "autosave", "workspace_id", ws.ID),
		changed:    make(map[string]struct{}),
		deleted:    make(map[string]models.EntityType),
	}
	a.debouncer = NewDebouncer(o.delay, o.clock, a.flush)
	source.Subscribe(a.onChange)
	return a
}

func (a *Autosaver) onChange(c entitystore.Change) {
	a.mu.Lock()
	if c.Kind == entitystore.ChangeDelete {
		delete(a.changed, c.ID)
		a.deleted[c.ID] = c.Type
	} else {
		delete(a.deleted, c.ID)
		a.changed[c.ID] = struct{}{}
	}
	a.mu.Unlock()

	a.debouncer.Schedule(a.workspace.ID)
}

// Pending reports whether a save is scheduled.
func (a *Autosaver) Pending() bool {
	return a.debouncer.Pending()
}

// Flush saves pending changes now and returns the save error, if any.
func (a *Autosaver) Flush() error {
	if !a.debouncer.Flush() {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Close flushes pending work.
func (a *Autosaver) Close() error {
	return a.Flush()
}

// Load returns the workspace saved in the local fallback, or nil.
func (a *Autosaver) Load(ctx context.Context, workspaceID string) (*storage.WorkspaceSnapshot, error) {
	if a.fallback == nil {
		return nil, nil
	}
	return a.fallback.LoadWorkspace(ctx, workspaceID)
}

func (a *Autosaver) flush(workspaceID string) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultSaveTimeout)
	defer cancel()

	err := a.Save(ctx)

	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()
}

// Save writes collected changes. Relational writes are independent
// requests: a failed write is retried on the next save and does not undo
// the others. The fallback copy is written even if relational writes fail.
func (a *Autosaver) Save(ctx context.Context) error {
	a.mu.Lock()
	changed, deleted := a.changed, a.deleted
	a.changed = make(map[string]struct{})
	a.deleted = make(map[string]models.EntityType)
	a.mu.Unlock()

	now := a.clock.Now().UTC()
	ws := a.workspace
	ws.UpdatedAt = now
	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = now
	}

	var errs []error
	if a.relational != nil {
		if err := a.saveRelational(ctx, ws, changed, deleted); err != nil {
			errs = append(errs, err)
		}
	}
	if a.fallback != nil {
		if err := a.saveFallback(ctx, ws, now); err != nil {
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		a.logger.Warn("Autosave incomplete", "error", err)
	} else {
		a.logger.Debug("Autosave completed", "changed", len(changed), "deleted", len(deleted))
	}
	return err
}

func (a *Autosaver) saveRelational(ctx context.Context, ws models.Workspace, changed map[string]struct{}, deleted map[string]models.EntityType) error {
	var (
		g       errgroup.Group
		errMu   sync.Mutex
		errs    []error
		retries = make(map[string]struct{})
		redel   = make(map[string]models.EntityType)
	)
	g.SetLimit(maxParallelWrites)

	record := func(err error, retry func()) {
		errMu.Lock()
		errs = append(errs, err)
		retry()
		errMu.Unlock()
	}

	g.Go(func() error {
		if err := a.relational.UpsertWorkspace(ctx, &ws); err != nil {
			record(err, func() {})
		}
		return nil
	})

	for id := range changed {
		ent, err := a.source.Get(id)
		if err != nil {
			// Сущность удалена после изменения, удаление придёт отдельно
			continue
		}
		g.Go(func() error {
			if err := a.relational.UpsertEntity(ctx, ws.ID, ent); err != nil {
				record(fmt.Errorf("entity %s: %w", ent.ID, err), func() { retries[ent.ID] = struct{}{} })
			}
			return nil
		})
	}
	for id, kind := range deleted {
		g.Go(func() error {
			if err := a.relational.DeleteEntity(ctx, kind, id); err != nil {
				record(fmt.Errorf("delete %s: %w", id, err), func() { redel[id] = kind })
			}
			return nil
		})
	}
	if len(deleted) > 0 {
		g.Go(func() error {
			if err := a.dropConnections(ctx, ws.ID, deleted); err != nil {
				// Удаление повторяется целиком, строки удаляются идемпотентно
				record(err, func() {
					for id, kind := range deleted {
						redel[id] = kind
					}
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(retries) > 0 || len(redel) > 0 {
		a.requeue(retries, redel)
	}
	return errors.Join(errs...)
}

// dropConnections removes canvas edges that touch a deleted entity.
func (a *Autosaver) dropConnections(ctx context.Context, workspaceID string, deleted map[string]models.EntityType) error {
	conns, err := a.relational.ListConnections(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("list connections: %w", err)
	}

	var errs []error
	for _, c := range conns {
		_, from := deleted[c.FromID]
		_, to := deleted[c.ToID]
		if !from && !to {
			continue
		}
		if err := a.relational.DeleteConnection(ctx, c.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete connection %s: %w", c.ID, err))
		}
	}
	return errors.Join(errs...)
}

// requeue merges failed writes back so the next save retries them, unless
// a newer change superseded them.
func (a *Autosaver) requeue(changed map[string]struct{}, deleted map[string]models.EntityType) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for id := range changed {
		if _, ok := a.deleted[id]; !ok {
			a.changed[id] = struct{}{}
		}
	}
	for id, kind := range deleted {
		if _, ok := a.changed[id]; !ok {
			a.deleted[id] = kind
		}
	}
}

func (a *Autosaver) saveFallback(ctx context.Context, ws models.Workspace, now time.Time) error {
	data, err := json.Marshal(Snapshot{Workspace: ws, Entities: a.source.All()})
	if err != nil {
		return fmt.Errorf("failed to encode workspace snapshot: %w", err)
	}
	if err := a.fallback.SaveWorkspace(ctx, ws.ID, data, now); err != nil {
		return fmt.Errorf("failed to save local fallback: %w", err)
	}
	return nil
}
