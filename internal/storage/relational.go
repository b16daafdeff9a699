package storage

import (
	"context"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

//go:generate moq -out relational_mock.go . RelationalStorage

// RelationalStorage is the relational backing store. Every method is an
// independent write or read keyed by UUID; callers must not assume that
// several calls succeed or fail together.
type RelationalStorage interface {
	// UpsertWorkspace creates or updates the workspace row
	UpsertWorkspace(ctx context.Context, ws *models.Workspace) error

	// GetWorkspace returns ErrWorkspaceNotFound if the row doesn't exist
	GetWorkspace(ctx context.Context, id string) (*models.Workspace, error)

	// UpsertEntity creates or updates a block or roadmap item row
	UpsertEntity(ctx context.Context, workspaceID string, entity *models.Entity) error

	// DeleteEntity removes the row; deleting a missing row is not an error
	DeleteEntity(ctx context.Context, kind models.EntityType, id string) error

	// ListEntities returns all entities of the workspace ordered by id
	ListEntities(ctx context.Context, workspaceID string) ([]*models.Entity, error)

	// UpsertConnection creates or updates a canvas edge
	UpsertConnection(ctx context.Context, conn *models.Connection) error

	// DeleteConnection removes the edge
	DeleteConnection(ctx context.Context, id string) error

	// ListConnections returns the edges of the workspace
	ListConnections(ctx context.Context, workspaceID string) ([]*models.Connection, error)

	// AddComment stores a comment on an entity
	AddComment(ctx context.Context, comment *models.Comment) error

	// ListComments returns the comments of an entity, oldest first
	ListComments(ctx context.Context, entityID string) ([]*models.Comment, error)

	// UpsertUser creates or updates a workspace member
	UpsertUser(ctx context.Context, user *models.User) error

	// GetUser returns ErrUserNotFound if the user doesn't exist
	GetUser(ctx context.Context, id string) (*models.User, error)
}
