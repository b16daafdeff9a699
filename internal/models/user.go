package models

import "time"

// User представляет участника рабочего пространства
type User struct {
	ID        string    `json:"id"`         // UUID пользователя
	Email     string    `json:"email"`      // уникальный email
	Name      string    `json:"name"`       // отображаемое имя
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
}

// Workspace is one saved canvas document.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Connection is an edge drawn between two entities on the canvas.
type Connection struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	FromID      string    `json:"from_id"`
	ToID        string    `json:"to_id"`
	Label       string    `json:"label,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment is a review note attached to an entity.
type Comment struct {
	ID        string    `json:"id"`
	EntityID  string    `json:"entity_id"`
	AuthorID  string    `json:"author_id,omitempty"`
	Body      string    `json:"body"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}
