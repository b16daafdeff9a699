package handlers

import (
	"log/slog"
	"net/http"

	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// ConflictHandler lists and resolves sync conflicts
type ConflictHandler struct {
	logger    *slog.Logger
	conflicts syncsvc.ConflictService
}

// NewConflictHandler создает handler конфликтов
func NewConflictHandler(logger *slog.Logger, conflicts syncsvc.ConflictService) *ConflictHandler {
	return &ConflictHandler{logger: logger, conflicts: conflicts}
}

// List обрабатывает GET /api/v1/sync/conflicts
func (h *ConflictHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.conflicts.Conflicts(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := api.ConflictsResponse{Conflicts: make([]api.Conflict, 0, len(views))}
	for _, v := range views {
		resp.Conflicts = append(resp.Conflicts, toAPIConflict(v))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Resolve обрабатывает POST /api/v1/sync/conflicts/{id}/resolve
func (h *ConflictHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	choice, ok := h.decodeChoice(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if err := h.conflicts.Resolve(r.Context(), id, choice); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("Conflict resolved", "entity_id", id, "choice", choice)
	w.WriteHeader(http.StatusNoContent)
}

// ResolveAll обрабатывает POST /api/v1/sync/conflicts/resolve-all
func (h *ConflictHandler) ResolveAll(w http.ResponseWriter, r *http.Request) {
	choice, ok := h.decodeChoice(w, r)
	if !ok {
		return
	}

	result, err := h.conflicts.ResolveAll(r.Context(), choice)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.ResolveAllResponse{
		Errors:   toAPIErrors(result.Errors),
		Resolved: result.Resolved,
		Failed:   result.Failed,
	})
}

func (h *ConflictHandler) decodeChoice(w http.ResponseWriter, r *http.Request) (syncsvc.Choice, bool) {
	var req api.ResolveRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return "", false
	}
	choice, err := syncsvc.ParseChoice(req.Choice)
	if err != nil {
		writeError(w, h.logger, err)
		return "", false
	}
	return choice, true
}
