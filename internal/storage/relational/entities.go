package relational

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

// tables maps entity kinds to their tables
var tables = map[models.EntityType]string{
	models.EntityTypeBlock:       "blocks",
	models.EntityTypeRoadmapItem: "roadmap_items",
}

func tableFor(kind models.EntityType) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity type %q", kind)
	}
	return table, nil
}

// UpsertEntity creates or updates a block or roadmap item row
func (s *Storage) UpsertEntity(ctx context.Context, workspaceID string, entity *models.Entity) error {
	table, err := tableFor(entity.Type)
	if err != nil {
		return err
	}

	fields, err := json.Marshal(entity.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	query := `
		INSERT INTO ` + table + ` (id, workspace_id, fields, local_revision, local_updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			workspace_id = excluded.workspace_id,
			fields = excluded.fields,
			local_revision = excluded.local_revision,
			local_updated_at = excluded.local_updated_at
	`

	_, err = s.db.ExecContext(ctx, s.q(query),
		entity.ID,
		workspaceID,
		string(fields),
		entity.LocalRevision,
		entity.LocalUpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", table, err)
	}

	return nil
}

// DeleteEntity removes the row; deleting a missing row is not an error
func (s *Storage) DeleteEntity(ctx context.Context, kind models.EntityType, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM `+table+` WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// ListEntities returns all entities of the workspace ordered by id
func (s *Storage) ListEntities(ctx context.Context, workspaceID string) ([]*models.Entity, error) {
	var out []*models.Entity
	for _, kind := range models.EntityTypes {
		entities, err := s.listTable(ctx, kind, workspaceID)
		if err != nil {
			return nil, err
		}
		out = append(out, entities...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Storage) listTable(ctx context.Context, kind models.EntityType, workspaceID string) ([]*models.Entity, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, fields, local_revision, local_updated_at FROM ` + table + ` WHERE workspace_id = ?`
	rows, err := s.db.QueryContext(ctx, s.q(query), workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entities []*models.Entity
	for rows.Next() {
		var (
			e         = &models.Entity{Type: kind}
			fields    string
			updatedAt int64
		)
		if err := rows.Scan(&e.ID, &fields, &e.LocalRevision, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		if err := json.Unmarshal([]byte(fields), &e.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields of %s: %w", e.ID, err)
		}
		e.LocalUpdatedAt = time.UnixMilli(updatedAt).UTC()
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}

	return entities, nil
}
