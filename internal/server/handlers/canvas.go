package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
	"github.com/Brommah/contentfinal-sub002/internal/validation"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// CanvasStore определяет операции реляционного хранилища для связей,
// комментариев и участников
type CanvasStore interface {
	UpsertConnection(ctx context.Context, conn *models.Connection) error
	DeleteConnection(ctx context.Context, id string) error
	ListConnections(ctx context.Context, workspaceID string) ([]*models.Connection, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	ListComments(ctx context.Context, entityID string) ([]*models.Comment, error)
	UpsertUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// CanvasHandler serves canvas edges, review comments and workspace members.
// These rows are written straight to the relational store and never synced.
type CanvasHandler struct {
	logger      *slog.Logger
	store       CanvasStore
	entities    EntityStore
	now         func() time.Time
	workspaceID string
}

// NewCanvasHandler создает handler связей, комментариев и участников
func NewCanvasHandler(logger *slog.Logger, store CanvasStore, entities EntityStore, workspaceID string) *CanvasHandler {
	return &CanvasHandler{
		logger:      logger,
		store:       store,
		entities:    entities,
		now:         time.Now,
		workspaceID: workspaceID,
	}
}

// ListConnections обрабатывает GET /api/v1/connections
func (h *CanvasHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	conns, err := h.store.ListConnections(r.Context(), h.workspaceID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := api.ConnectionListResponse{Connections: make([]api.Connection, 0, len(conns))}
	for _, c := range conns {
		resp.Connections = append(resp.Connections, toAPIConnection(c))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// UpsertConnection обрабатывает PUT /api/v1/connections/{id}
func (h *CanvasHandler) UpsertConnection(w http.ResponseWriter, r *http.Request) {
	var req api.UpsertConnectionRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.FromID == "" || req.ToID == "" || req.FromID == req.ToID {
		writeError(w, h.logger, fmt.Errorf("%w: connection needs two different entities", errInvalidRequest))
		return
	}
	// Оба конца связи должны существовать локально
	for _, id := range []string{req.FromID, req.ToID} {
		if _, err := h.entities.Get(id); err != nil {
			writeError(w, h.logger, err)
			return
		}
	}

	conn := &models.Connection{
		ID:          r.PathValue("id"),
		WorkspaceID: h.workspaceID,
		FromID:      req.FromID,
		ToID:        req.ToID,
		Label:       req.Label,
		CreatedAt:   h.now().UTC(),
	}
	if err := h.store.UpsertConnection(r.Context(), conn); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Debug("Connection saved", "connection_id", conn.ID, "from", conn.FromID, "to", conn.ToID)
	writeJSON(w, h.logger, http.StatusOK, toAPIConnection(conn))
}

// DeleteConnection обрабатывает DELETE /api/v1/connections/{id}
func (h *CanvasHandler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.store.DeleteConnection(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments обрабатывает GET /api/v1/entities/{id}/comments
func (h *CanvasHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.entities.Get(id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	comments, err := h.store.ListComments(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	resp := api.CommentListResponse{Comments: make([]api.Comment, 0, len(comments))}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, toAPIComment(c))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// AddComment обрабатывает POST /api/v1/entities/{id}/comments
func (h *CanvasHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")

	var req api.AddCommentRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := validation.ValidateComment(req.Body); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: %v", errInvalidRequest, err))
		return
	}
	if _, err := h.entities.Get(entityID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.AuthorID != "" {
		if _, err := h.store.GetUser(r.Context(), req.AuthorID); err != nil {
			writeError(w, h.logger, err)
			return
		}
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		EntityID:  entityID,
		AuthorID:  req.AuthorID,
		Body:      req.Body,
		CreatedAt: h.now().UTC(),
	}
	if err := h.store.AddComment(r.Context(), comment); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Debug("Comment added", "comment_id", comment.ID, "entity_id", entityID)
	writeJSON(w, h.logger, http.StatusCreated, toAPIComment(comment))
}

// GetUser обрабатывает GET /api/v1/users/{id}
func (h *CanvasHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toAPIUser(user))
}

// UpsertUser обрабатывает PUT /api/v1/users/{id}
func (h *CanvasHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req api.UpsertUserRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		writeError(w, h.logger, fmt.Errorf("%w: %v", errInvalidRequest, err))
		return
	}

	now := h.now().UTC()
	user := &models.User{ID: id, Email: req.Email, Name: req.Name, CreatedAt: now, UpdatedAt: now}
	existing, err := h.store.GetUser(r.Context(), id)
	switch {
	case err == nil:
		user.CreatedAt = existing.CreatedAt
	case !errors.Is(err, storage.ErrUserNotFound):
		writeError(w, h.logger, err)
		return
	}

	if err := h.store.UpsertUser(r.Context(), user); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toAPIUser(user))
}

func toAPIConnection(c *models.Connection) api.Connection {
	return api.Connection{ID: c.ID, FromID: c.FromID, ToID: c.ToID, Label: c.Label, CreatedAt: c.CreatedAt}
}

func toAPIComment(c *models.Comment) api.Comment {
	return api.Comment{
		ID:        c.ID,
		EntityID:  c.EntityID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		Resolved:  c.Resolved,
		CreatedAt: c.CreatedAt,
	}
}

func toAPIUser(u *models.User) api.User {
	return api.User{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
