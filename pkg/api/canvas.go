package api

import "time"

// FieldValue is a typed entity field value. Only the member matching Kind
// is meaningful.
type FieldValue struct {
	Time   *time.Time `json:"time,omitempty"`
	Kind   string     `json:"kind"`
	Str    string     `json:"str,omitempty"`
	Strs   []string   `json:"strs,omitempty"`
	Number float64    `json:"number,omitempty"`
	Bool   bool       `json:"bool,omitempty"`
}

// Field is one named value; field order is preserved.
type Field struct {
	Name  string     `json:"name"`
	Value FieldValue `json:"value"`
}

// Entity представляет блок или элемент роадмапа
type Entity struct {
	LocalUpdatedAt time.Time `json:"local_updated_at"`
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Fields         []Field   `json:"fields"`
	LocalRevision  int64     `json:"local_revision"`
	Dirty          bool      `json:"dirty"`
}

// UpsertEntityRequest создает сущность или обновляет часть её полей
type UpsertEntityRequest struct {
	Type   string  `json:"type"`
	Fields []Field `json:"fields"`
}

// EntityListResponse содержит все локальные сущности
type EntityListResponse struct {
	Entities []Entity `json:"entities"`
}

// Connection is an edge between two entities on the canvas.
type Connection struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	Label     string    `json:"label,omitempty"`
}

// UpsertConnectionRequest создает или изменяет связь
type UpsertConnectionRequest struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Label  string `json:"label,omitempty"`
}

// ConnectionListResponse содержит связи рабочего пространства
type ConnectionListResponse struct {
	Connections []Connection `json:"connections"`
}

// Comment is a review note on an entity.
type Comment struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	EntityID  string    `json:"entity_id"`
	AuthorID  string    `json:"author_id,omitempty"`
	Body      string    `json:"body"`
	Resolved  bool      `json:"resolved"`
}

// AddCommentRequest добавляет комментарий к сущности
type AddCommentRequest struct {
	AuthorID string `json:"author_id,omitempty"`
	Body     string `json:"body"`
}

// CommentListResponse содержит комментарии сущности
type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}

// User представляет участника рабочего пространства
type User struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
}

// UpsertUserRequest создает или изменяет участника
type UpsertUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
