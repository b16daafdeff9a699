package sync

import "github.com/Brommah/contentfinal-sub002/internal/models"

// Phase names the part of a sync run that emitted a progress event.
type Phase string

const (
	PhasePush   Phase = "push"
	PhaseDelete Phase = "delete"
	PhasePull   Phase = "pull"
)

// Progress is emitted once per processed item.
type Progress struct {
	Phase    Phase             `json:"phase"`
	EntityID string            `json:"entity_id"`
	Title    string            `json:"title"`
	Status   models.SyncStatus `json:"status"`
	Current  int               `json:"current"`
	// Total is the batch size for push; for pull it grows as pages arrive.
	Total int `json:"total"`
}

// ProgressFunc receives progress events on the syncing goroutine.
type ProgressFunc func(Progress)

// EntityError is a per-item failure reported in results.
type EntityError struct {
	EntityID string `json:"entity_id"`
	Message  string `json:"message"`
}
