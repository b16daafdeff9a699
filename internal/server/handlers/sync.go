package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Brommah/contentfinal-sub002/internal/crypto"
	"github.com/Brommah/contentfinal-sub002/internal/models"
	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

//go:generate moq -out settings_store_mock.go . SettingsStore

// SettingsStore persists the sync configuration between restarts
type SettingsStore interface {
	Save(ctx context.Context, cfg syncsvc.Config) error
}

// SyncHandler handles sync triggers, configuration and status
type SyncHandler struct {
	logger   *slog.Logger
	service  syncsvc.Service
	entities EntityStore
	settings SettingsStore
}

// NewSyncHandler creates a new sync handler. settings may be nil, in
// which case configuration lives only in memory.
func NewSyncHandler(logger *slog.Logger, service syncsvc.Service, entities EntityStore, settings SettingsStore) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		service:  service,
		entities: entities,
		settings: settings,
	}
}

// Configure обрабатывает POST /api/v1/sync/config
func (h *SyncHandler) Configure(w http.ResponseWriter, r *http.Request) {
	var req api.ConfigureRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}

	cfg := syncsvc.Config{
		APIKey:            req.APIKey,
		BaseURL:           req.BaseURL,
		BlocksDatabaseID:  req.BlocksDatabaseID,
		RoadmapDatabaseID: req.RoadmapDatabaseID,
	}
	if err := h.service.Configure(cfg); err != nil {
		h.logger.Warn("Rejected sync configuration", "error", err)
		writeError(w, h.logger, err)
		return
	}
	if !h.persist(w, r.Context()) {
		return
	}

	writeJSON(w, h.logger, http.StatusOK, h.configResponse())
}

// GetConfig обрабатывает GET /api/v1/sync/config
func (h *SyncHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.configResponse())
}

// Disable обрабатывает DELETE /api/v1/sync/config
func (h *SyncHandler) Disable(w http.ResponseWriter, r *http.Request) {
	h.service.DisableAutoSync()
	if !h.persist(w, r.Context()) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.configResponse())
}

// Push обрабатывает POST /api/v1/sync/push. Без entity_ids выполняется
// полная синхронизация: грязные, ранее неудачные сущности и удаления.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req api.SyncRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, h.logger, err)
		return
	}

	var (
		result *syncsvc.SyncResult
		err    error
	)
	if len(req.EntityIDs) == 0 {
		result, err = h.service.SyncAll(r.Context())
	} else {
		entities := make([]*models.Entity, 0, len(req.EntityIDs))
		for _, id := range req.EntityIDs {
			e, getErr := h.entities.Get(id)
			if getErr != nil {
				writeError(w, h.logger, getErr)
				return
			}
			entities = append(entities, e)
		}
		result, err = h.service.PushEntities(r.Context(), entities)
	}
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toSyncResponse(result))
}

// Pull обрабатывает POST /api/v1/sync/pull
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PullFromRemote(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toPullResponse(result))
}

// Status обрабатывает GET /api/v1/sync/status
func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Status(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toStatusResponse(report))
}

func (h *SyncHandler) persist(w http.ResponseWriter, ctx context.Context) bool {
	if h.settings == nil {
		return true
	}
	if err := h.settings.Save(ctx, h.service.GetConfig()); err != nil {
		writeError(w, h.logger, err)
		return false
	}
	return true
}

func (h *SyncHandler) configResponse() api.ConfigResponse {
	cfg := h.service.GetConfig()
	redacted := cfg.Redacted()
	return api.ConfigResponse{
		APIKey:            redacted.APIKey,
		Fingerprint:       crypto.Fingerprint(cfg.APIKey),
		BaseURL:           cfg.BaseURL,
		BlocksDatabaseID:  cfg.BlocksDatabaseID,
		RoadmapDatabaseID: cfg.RoadmapDatabaseID,
		Enabled:           cfg.Enabled,
	}
}
