package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/storage"
)

// UpsertWorkspace creates or updates the workspace row
func (s *Storage) UpsertWorkspace(ctx context.Context, ws *models.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			owner_id = excluded.owner_id,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, s.q(query),
		ws.ID,
		ws.Name,
		ws.OwnerID,
		ws.CreatedAt.UnixMilli(),
		ws.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert workspace: %w", err)
	}
	return nil
}

// GetWorkspace returns ErrWorkspaceNotFound if the row doesn't exist
func (s *Storage) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	query := `SELECT id, name, owner_id, created_at, updated_at FROM workspaces WHERE id = ?`

	var (
		ws                   models.Workspace
		createdAt, updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, s.q(query), id).Scan(&ws.ID, &ws.Name, &ws.OwnerID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	ws.CreatedAt = time.UnixMilli(createdAt).UTC()
	ws.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &ws, nil
}

// UpsertUser creates or updates a workspace member
func (s *Storage) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, s.q(query),
		user.ID,
		user.Email,
		user.Name,
		user.CreatedAt.UnixMilli(),
		user.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetUser returns ErrUserNotFound if the user doesn't exist
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, email, name, created_at, updated_at FROM users WHERE id = ?`

	var (
		user                 models.User
		createdAt, updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, s.q(query), id).Scan(&user.ID, &user.Email, &user.Name, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	user.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &user, nil
}
