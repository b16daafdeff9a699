package relational

import (
	"context"
	"fmt"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

// UpsertConnection creates or updates a canvas edge
func (s *Storage) UpsertConnection(ctx context.Context, conn *models.Connection) error {
	query := `
		INSERT INTO connections (id, workspace_id, from_id, to_id, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			from_id = excluded.from_id,
			to_id = excluded.to_id,
			label = excluded.label
	`

	_, err := s.db.ExecContext(ctx, s.q(query),
		conn.ID,
		conn.WorkspaceID,
		conn.FromID,
		conn.ToID,
		conn.Label,
		conn.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert connection: %w", err)
	}
	return nil
}

// DeleteConnection removes the edge
func (s *Storage) DeleteConnection(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM connections WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}

// ListConnections returns the edges of the workspace ordered by creation
func (s *Storage) ListConnections(ctx context.Context, workspaceID string) ([]*models.Connection, error) {
	query := `
		SELECT id, workspace_id, from_id, to_id, label, created_at
		FROM connections
		WHERE workspace_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, s.q(query), workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var conns []*models.Connection
	for rows.Next() {
		var (
			c         models.Connection
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.WorkspaceID, &c.FromID, &c.ToID, &c.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		c.CreatedAt = time.UnixMilli(createdAt).UTC()
		conns = append(conns, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate connections: %w", err)
	}

	return conns, nil
}

// AddComment stores a comment on an entity
func (s *Storage) AddComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, entity_id, author_id, body, resolved, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			body = excluded.body,
			resolved = excluded.resolved
	`

	_, err := s.db.ExecContext(ctx, s.q(query),
		comment.ID,
		comment.EntityID,
		comment.AuthorID,
		comment.Body,
		boolToInt(comment.Resolved),
		comment.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// ListComments returns the comments of an entity, oldest first
func (s *Storage) ListComments(ctx context.Context, entityID string) ([]*models.Comment, error) {
	query := `
		SELECT id, entity_id, author_id, body, resolved, created_at
		FROM comments
		WHERE entity_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, s.q(query), entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var comments []*models.Comment
	for rows.Next() {
		var (
			c         models.Comment
			resolved  int
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.EntityID, &c.AuthorID, &c.Body, &resolved, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Resolved = resolved == 1
		c.CreatedAt = time.UnixMilli(createdAt).UTC()
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}
