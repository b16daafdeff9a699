package handlers

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

//go:generate moq -out entity_store_mock.go . EntityStore

// EntityStore определяет операции локального хранилища сущностей
type EntityStore interface {
	Get(id string) (*models.Entity, error)
	All() []*models.Entity
	Create(kind models.EntityType, fields models.Fields) (*models.Entity, error)
	Upsert(kind models.EntityType, id string, partial models.Fields) (*models.Entity, error)
	Delete(id string) error
	IsDirty(id string) bool
}

// EntityHandler exposes local canvas edits over HTTP. Writes only touch
// the local store; autosave and sync pick them up from there.
type EntityHandler struct {
	logger *slog.Logger
	store  EntityStore
}

// NewEntityHandler создает новый handler сущностей
func NewEntityHandler(logger *slog.Logger, store EntityStore) *EntityHandler {
	return &EntityHandler{logger: logger, store: store}
}

// List обрабатывает GET /api/v1/entities
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	entities := h.store.All()
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })

	resp := api.EntityListResponse{Entities: make([]api.Entity, 0, len(entities))}
	for _, e := range entities {
		resp.Entities = append(resp.Entities, toAPIEntity(e, h.store.IsDirty(e.ID)))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Get обрабатывает GET /api/v1/entities/{id}
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	e, err := h.store.Get(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toAPIEntity(e, h.store.IsDirty(id)))
}

// Create обрабатывает POST /api/v1/entities
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, fields, ok := h.decodeUpsert(w, r)
	if !ok {
		return
	}

	e, err := h.store.Create(kind, fields)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Debug("Entity created", "entity_id", e.ID, "type", e.Type)
	writeJSON(w, h.logger, http.StatusCreated, toAPIEntity(e, true))
}

// Upsert обрабатывает PUT /api/v1/entities/{id}: частичное обновление
// или создание с заданным id
func (h *EntityHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	kind, fields, ok := h.decodeUpsert(w, r)
	if !ok {
		return
	}

	e, err := h.store.Upsert(kind, r.PathValue("id"), fields)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Debug("Entity updated", "entity_id", e.ID, "revision", e.LocalRevision)
	writeJSON(w, h.logger, http.StatusOK, toAPIEntity(e, true))
}

// Delete обрабатывает DELETE /api/v1/entities/{id}
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.Delete(id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Debug("Entity deleted", "entity_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntityHandler) decodeUpsert(w http.ResponseWriter, r *http.Request) (models.EntityType, models.Fields, bool) {
	var req api.UpsertEntityRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return "", nil, false
	}

	fields, err := fromAPIFields(req.Fields)
	if err != nil {
		writeError(w, h.logger, err)
		return "", nil, false
	}
	return models.EntityType(req.Type), fields, true
}
