// Package app assembles the daemon: storage backends, the entity store,
// the sync engine, autosave and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Brommah/contentfinal-sub002/internal/autosave"
	"github.com/Brommah/contentfinal-sub002/internal/config"
	"github.com/Brommah/contentfinal-sub002/internal/entitystore"
	"github.com/Brommah/contentfinal-sub002/internal/mapper"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/server"
	"github.com/Brommah/contentfinal-sub002/internal/server/events"
	"github.com/Brommah/contentfinal-sub002/internal/settings"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
	"github.com/Brommah/contentfinal-sub002/internal/storage/boltdb"
	"github.com/Brommah/contentfinal-sub002/internal/storage/redisstore"
	"github.com/Brommah/contentfinal-sub002/internal/storage/relational"
	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
)

// App owns every long-lived component of the daemon.
type App struct {
	Entities  *entitystore.Store
	Engine    *syncsvc.Engine
	Resolver  *syncsvc.Resolver
	Autosaver *autosave.Autosaver
	Hub       *events.Hub
	// Settings is nil when no passphrase is configured
	Settings *settings.Store

	logger     *slog.Logger
	bolt       *boltdb.Storage
	relational *relational.Storage
	redis      *redisstore.Store
	cfg        *config.Config
	workspace  models.Workspace
}

// Option configures New.
type Option func(*options)

type options struct {
	syncOpts []syncsvc.Option
}

// WithSyncOptions passes extra options to the sync engine.
func WithSyncOptions(opts ...syncsvc.Option) Option {
	return func(o *options) { o.syncOpts = append(o.syncOpts, opts...) }
}

// New opens the storage backends, restores local state and builds the
// services. The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, logger: logger}
	ok := false
	defer func() {
		if !ok {
			_ = a.Close()
		}
	}()

	var err error
	a.bolt, err = boltdb.New(ctx, cfg.Storage.BoltPath)
	if err != nil {
		return nil, err
	}
	a.relational, err = relational.New(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}

	var (
		fallback storage.FallbackStorage = a.bolt
		metadata storage.MetadataStorage = a.bolt
	)
	if cfg.Storage.RedisURL != "" {
		a.redis, err = redisstore.New(ctx, cfg.Storage.RedisURL, cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, err
		}
		fallback, metadata = a.redis, a.redis
		logger.Info("Using redis for fallback and sync metadata")
	}

	a.workspace = models.Workspace{ID: cfg.Workspace.ID, Name: cfg.Workspace.Name}
	a.Entities = entitystore.New()
	if err := a.restoreEntities(ctx, fallback); err != nil {
		return nil, err
	}

	a.Hub = events.NewHub(logger)
	engineOpts := append([]syncsvc.Option{
		syncsvc.WithPacer(syncsvc.NewPacer(cfg.Remote.ItemDelay, cfg.Remote.PageDelay)),
		syncsvc.WithProgress(a.Hub.Publish),
	}, o.syncOpts...)
	a.Engine = syncsvc.NewEngine(a.Entities, a.bolt, metadata, logger.With("component", "sync"), engineOpts...)

	if err := a.reconcile(ctx); err != nil {
		return nil, err
	}

	if cfg.Remote.Passphrase != "" {
		a.Settings = settings.New(a.bolt, cfg.Remote.Passphrase)
		a.loadSettings(ctx)
	} else {
		logger.Warn("No remote passphrase configured, sync settings are kept in memory only")
	}

	a.Autosaver = autosave.New(a.workspace, a.Entities, a.relational, fallback, logger, autosave.WithDelay(cfg.Autosave.Delay))
	a.Resolver = syncsvc.NewResolver(a.Engine)

	ok = true
	return a, nil
}

// restoreEntities loads the workspace from the relational store, or from
// the local fallback snapshot when the relational store is empty.
func (a *App) restoreEntities(ctx context.Context, fallback storage.FallbackStorage) error {
	if ws, err := a.relational.GetWorkspace(ctx, a.workspace.ID); err == nil {
		a.workspace.CreatedAt = ws.CreatedAt
		if a.workspace.Name == "" {
			a.workspace.Name = ws.Name
		}
	} else if !errors.Is(err, storage.ErrWorkspaceNotFound) {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	entities, err := a.relational.ListEntities(ctx, a.workspace.ID)
	if err != nil {
		return fmt.Errorf("failed to load entities: %w", err)
	}
	if len(entities) > 0 {
		a.Entities.Restore(entities)
		a.logger.Info("Restored entities", "source", "relational", "count", len(entities))
		return nil
	}

	snap, err := fallback.LoadWorkspace(ctx, a.workspace.ID)
	if err != nil {
		// Резервная копия не обязательна для запуска
		a.logger.Warn("Failed to load fallback snapshot", "error", err)
		return nil
	}
	if snap == nil {
		return nil
	}
	decoded, err := autosave.DecodeSnapshot(snap.Data)
	if err != nil {
		a.logger.Warn("Ignoring unreadable fallback snapshot", "error", err)
		return nil
	}
	a.Entities.Restore(decoded.Entities)
	a.logger.Info("Restored entities", "source", "fallback", "count", len(decoded.Entities), "saved_at", snap.Timestamp)
	return nil
}

// reconcile rebuilds the dirty set and pending deletions from sync records.
func (a *App) reconcile(ctx context.Context) error {
	records, err := a.bolt.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sync records: %w", err)
	}

	byID := make(map[string]*models.SyncRecord, len(records))
	var (
		maxSeq     int64
		tombstones []entitystore.Tombstone
	)
	for _, rec := range records {
		byID[rec.AppID] = rec
		if rec.ConflictData != nil && rec.ConflictData.Sequence > maxSeq {
			maxSeq = rec.ConflictData.Sequence
		}
		if _, err := a.Entities.Get(rec.AppID); err != nil {
			tombstones = append(tombstones, entitystore.Tombstone{ID: rec.AppID, Type: rec.EntityType, DeletedAt: rec.UpdatedAt})
		}
	}
	a.Engine.ObserveConflictSequence(maxSeq)

	dirty := 0
	for _, e := range a.Entities.All() {
		rec, ok := byID[e.ID]
		if ok && a.alignRevision(e, rec) {
			continue
		}
		if err := a.Entities.MarkDirty(e.ID); err == nil {
			dirty++
		}
	}

	switch {
	case len(tombstones) == 0:
	case a.Entities.Len() == 0:
		// Пустое хранилище скорее означает потерю данных, чем удаление
		a.logger.Warn("Sync records without local entities ignored", "count", len(tombstones))
	default:
		a.Entities.RestoreDeleted(tombstones)
	}

	a.logger.Info("Local state reconciled", "records", len(records), "dirty", dirty, "pending_deletes", len(a.Entities.Deleted()))
	return nil
}

// alignRevision keeps a restored revision from falling behind the sync
// record, which happens when the process stopped before autosave wrote the
// last pushed revision. It reports whether the entity matches what was last
// synced. Otherwise the revision is moved past LastSyncedRevision so that
// pull treats the entity as locally changed.
func (a *App) alignRevision(e *models.Entity, rec *models.SyncRecord) bool {
	m, err := mapper.ForKind(e.Type, a.logger)
	if err != nil {
		return false
	}
	clean := rec.Status == models.SyncStatusSynced &&
		e.LocalRevision <= rec.LastSyncedRevision &&
		m.Normalize(e.Fields).Equal(rec.LastSyncedFields)

	target := rec.LastSyncedRevision
	if !clean && e.LocalRevision <= rec.LastSyncedRevision {
		target++
	}
	if e.LocalRevision < target {
		if _, err := a.Entities.RaiseRevision(e.ID, target); err != nil {
			return false
		}
		a.logger.Warn("Restored revision behind sync record",
			"entity_id", e.ID, "restored", e.LocalRevision, "revision", target)
	}
	return clean
}

func (a *App) loadSettings(ctx context.Context) {
	cfg, err := a.Settings.Load(ctx)
	if errors.Is(err, storage.ErrConfigNotFound) {
		return
	}
	if err != nil {
		a.logger.Warn("Failed to load sync settings", "error", err)
		return
	}
	if !cfg.Enabled {
		return
	}
	if err := a.Engine.Configure(cfg); err != nil {
		a.logger.Warn("Saved sync settings rejected", "error", err)
		return
	}
	a.logger.Info("Remote sync configured from saved settings", "config", cfg.Redacted())
}

// Workspace returns the workspace the daemon edits.
func (a *App) Workspace() models.Workspace {
	return a.workspace
}

// ServerDeps returns the dependencies of the HTTP server.
func (a *App) ServerDeps(version string) server.Deps {
	d := server.Deps{
		Logger:        a.logger,
		Entities:      a.Entities,
		Sync:          a.Engine,
		Conflicts:     a.Resolver,
		Canvas:        a.relational,
		WorkspaceID:   a.workspace.ID,
		Events:        a.Hub,
		Version:       version,
		SyncRateLimit: a.cfg.Server.SyncRateLimit,
	}
	if a.Settings != nil {
		d.Settings = a.Settings
	}
	return d
}

// Handler builds the HTTP router. The returned stop func releases the
// rate limiter.
func (a *App) Handler(version string) (http.Handler, func()) {
	h, limiter := server.NewRouter(a.ServerDeps(version))
	return h, limiter.Stop
}

// Close flushes autosave and releases every backend.
func (a *App) Close() error {
	var errs []error
	if a.Autosaver != nil {
		if err := a.Autosaver.Close(); err != nil {
			errs = append(errs, fmt.Errorf("final autosave: %w", err))
		}
	}
	if a.Hub != nil {
		if err := a.Hub.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.relational != nil {
		if err := a.relational.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.bolt != nil {
		if err := a.bolt.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
