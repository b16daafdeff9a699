package models

import "time"

// EntityType discriminates the two synchronizable entity kinds.
type EntityType string

const (
	EntityTypeBlock       EntityType = "BLOCK"
	EntityTypeRoadmapItem EntityType = "ROADMAP_ITEM"
)

// EntityTypes lists the kinds in the order they are processed by sync.
var EntityTypes = []EntityType{EntityTypeBlock, EntityTypeRoadmapItem}

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	return t == EntityTypeBlock || t == EntityTypeRoadmapItem
}

// Entity is a canvas block or roadmap item, the unit of synchronization.
type Entity struct {
	LocalUpdatedAt time.Time  `json:"local_updated_at"` // LocalUpdatedAt время последней локальной мутации
	ID             string     `json:"id"`               // ID стабильный идентификатор (UUID)
	Type           EntityType `json:"type"`
	Fields         Fields     `json:"fields"`
	LocalRevision  int64      `json:"local_revision"` // LocalRevision монотонно растёт на каждую мутацию
}

// Title returns the title field, used for progress reporting.
func (e *Entity) Title() string {
	if v, ok := e.Fields.Get(FieldTitle); ok {
		return v.Str
	}
	return e.ID
}

// Clone returns a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := *e
	c.Fields = e.Fields.Clone()
	return &c
}
