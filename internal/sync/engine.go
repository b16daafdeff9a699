// Package sync pushes local canvas entities to the remote record store,
// pulls remote edits back and detects conflicts between the two copies.
//
// Sync runs only when a caller asks for it. Items are processed strictly
// one at a time with a pause between remote calls; a run holds the engine
// lock so that two runs never interleave.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/clock"
	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/mapper"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

//go:generate moq -out service_mock.go . Service

// Service is the sync trigger surface used by the HTTP handlers and CLI.
type Service interface {
	// Configure validates and activates the remote integration
	Configure(cfg Config) error

	// GetConfig returns the active configuration
	GetConfig() Config

	// DisableAutoSync turns the remote integration off
	DisableAutoSync()

	// IsConfigured reports whether sync operations can run
	IsConfigured() bool

	// PushEntities pushes the given entities in order
	PushEntities(ctx context.Context, entities []*models.Entity) (*SyncResult, error)

	// SyncAll pushes every dirty or previously failed entity and pending deletions
	SyncAll(ctx context.Context) (*SyncResult, error)

	// PullFromRemote fetches remote records and reconciles them with local state
	PullFromRemote(ctx context.Context) (*PullResult, error)

	// Status summarizes sync state
	Status(ctx context.Context) (*StatusReport, error)
}

// EntityStore is the part of the local entity store the engine uses.
type EntityStore interface {
	Get(id string) (*models.Entity, error)
	ListDirtySince(marker int64) []*models.Entity
	IsDirty(id string) bool
	DirtyCount() int
	MarkDirty(id string) error
	ClearDirty(id string, revision int64) bool
	Import(kind models.EntityType, id string, fields models.Fields) (*models.Entity, error)
	ApplyRemote(id string, revision int64, fields models.Fields) (*models.Entity, error)
	Deleted() []entitystore.Tombstone
	IsDeleted(id string) bool
	ForgetDeleted(id string)
}

// RemoteFactory builds a remote store client for a configuration.
type RemoteFactory func(cfg Config) remote.Store

// strategy binds an entity kind to its mapper and remote database.
type strategy struct {
	mapper     *mapper.Mapper
	databaseID string
}

// Engine orchestrates push, pull and conflict detection.
type Engine struct {
	entities EntityStore
	records  storage.SyncRecordStorage
	metadata storage.MetadataStorage
	factory  RemoteFactory
	client   remote.Store
	progress ProgressFunc
	pacer    *Pacer
	seq      *clock.Sequence
	now      func() time.Time
	logger   *slog.Logger
	mappers  map[models.EntityType]*mapper.Mapper
	cfg      Config

	// mu serializes sync runs and conflict resolution
	mu stdsync.Mutex
	// cfgMu guards cfg and client
	cfgMu stdsync.RWMutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithRemoteFactory overrides how remote clients are built.
func WithRemoteFactory(f RemoteFactory) Option {
	return func(e *Engine) {
		e.factory = f
	}
}

// WithPacer overrides the delays between remote calls.
func WithPacer(p *Pacer) Option {
	return func(e *Engine) {
		e.pacer = p
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// WithNow overrides the wall clock.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an unconfigured engine.
func NewEngine(entities EntityStore, records storage.SyncRecordStorage, metadata storage.MetadataStorage, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		entities: entities,
		records:  records,
		metadata: metadata,
		logger:   logger,
		pacer:    NewPacer(DefaultItemDelay, DefaultPageDelay),
		seq:      clock.NewSequence(),
		now:      time.Now,
		factory: func(cfg Config) remote.Store {
			return remote.NewClient(cfg.BaseURL, cfg.APIKey)
		},
		mappers: map[models.EntityType]*mapper.Mapper{
			models.EntityTypeBlock:       mapper.Block(logger),
			models.EntityTypeRoadmapItem: mapper.Roadmap(logger),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ Service = (*Engine)(nil)

// Configure validates cfg, builds the remote client and enables sync.
func (e *Engine) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Enabled = true

	e.cfgMu.Lock()
	e.cfg = cfg
	e.client = e.factory(cfg)
	e.cfgMu.Unlock()

	e.logger.Info("Remote sync configured",
		"blocks_database_id", cfg.BlocksDatabaseID,
		"roadmap_database_id", cfg.RoadmapDatabaseID)
	return nil
}

// GetConfig returns a copy of the active configuration.
func (e *Engine) GetConfig() Config {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return e.cfg
}

// DisableAutoSync turns the integration off. Sync calls fail with a
// ConfigError until Configure is called again.
func (e *Engine) DisableAutoSync() {
	e.cfgMu.Lock()
	e.cfg.Enabled = false
	e.client = nil
	e.cfgMu.Unlock()

	e.logger.Info("Remote sync disabled")
}

// IsConfigured reports whether sync operations can run.
func (e *Engine) IsConfigured() bool {
	_, _, err := e.requireConfigured()
	return err == nil
}

// requireConfigured is the single guard in front of every remote call.
func (e *Engine) requireConfigured() (remote.Store, map[models.EntityType]strategy, error) {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()

	if !e.cfg.Enabled {
		return nil, nil, &ConfigError{Reason: "sync is disabled"}
	}
	if e.client == nil {
		return nil, nil, &ConfigError{Field: "api_key", Reason: "remote client is not initialized"}
	}

	strategies := make(map[models.EntityType]strategy, len(e.mappers))
	for kind, m := range e.mappers {
		if id := e.cfg.DatabaseID(kind); id != "" {
			strategies[kind] = strategy{mapper: m, databaseID: id}
		}
	}
	if len(strategies) == 0 {
		return nil, nil, &ConfigError{Field: "database_id", Reason: "no remote database configured"}
	}
	return e.client, strategies, nil
}

func (e *Engine) emit(p Progress) {
	if e.progress != nil {
		e.progress(p)
	}
}

// loadRecord returns the stored record or a fresh PENDING one.
func (e *Engine) loadRecord(ctx context.Context, id string, kind models.EntityType) (*models.SyncRecord, error) {
	rec, err := e.records.GetRecord(ctx, id)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return models.NewSyncRecord(id, kind), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sync record %s: %w", id, err)
	}
	return rec, nil
}

func (e *Engine) saveRecord(ctx context.Context, rec *models.SyncRecord) error {
	rec.UpdatedAt = e.now().UTC()
	if err := e.records.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("failed to save sync record %s: %w", rec.AppID, err)
	}
	return nil
}

func (e *Engine) saveSyncTime(ctx context.Context, phase string, t time.Time) {
	if e.metadata == nil {
		return
	}
	if err := e.metadata.SaveLastSyncTime(ctx, phase, t); err != nil {
		// Не прерываем синхронизацию из-за ошибки сохранения времени
		e.logger.Warn("Failed to save last sync time", "phase", phase, "error", err)
	}
}

// ObserveConflictSequence advances the conflict counter past seq so that
// conflicts detected after a restart sort after the stored ones.
func (e *Engine) ObserveConflictSequence(seq int64) {
	e.seq.Observe(seq)
}
