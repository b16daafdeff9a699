// Package entitystore holds the canonical in-memory state of canvas blocks
// and roadmap items together with their local revisions and dirty set.
package entitystore

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

var (
	// ErrEntityNotFound indicates that the entity does not exist locally
	ErrEntityNotFound = errors.New("entity not found")

	// ErrEntityExists indicates that an import targets an existing id
	ErrEntityExists = errors.New("entity already exists")

	// ErrRevisionChanged indicates a local edit since the caller read the entity
	ErrRevisionChanged = errors.New("entity revision changed")

	// ErrTypeMismatch indicates a write with a different entity type
	ErrTypeMismatch = errors.New("entity type mismatch")

	// ErrInvalidType indicates an unknown entity type
	ErrInvalidType = errors.New("invalid entity type")
)

// ChangeKind describes what happened to an entity.
type ChangeKind string

const (
	ChangeLocal  ChangeKind = "local"  // user mutation
	ChangeRemote ChangeKind = "remote" // written by pull or conflict resolution
	ChangeDelete ChangeKind = "delete"
)

// Change is delivered to subscribers after every write.
type Change struct {
	Entity *models.Entity // копия; nil для ChangeDelete
	ID     string
	Type   models.EntityType
	Kind   ChangeKind
}

// Tombstone marks a locally deleted entity whose deletion is not pushed yet.
type Tombstone struct {
	DeletedAt time.Time
	ID        string
	Type      models.EntityType
}

// Store is the local entity store. All methods are safe for concurrent use;
// returned entities are copies.
type Store struct {
	now         func() time.Time
	entities    map[string]*models.Entity
	deleted     map[string]Tombstone
	tracker     *Tracker
	subscribers []func(Change)
	mu          sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithNow overrides the wall clock used for LocalUpdatedAt.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:      time.Now,
		entities: make(map[string]*models.Entity),
		deleted:  make(map[string]Tombstone),
		tracker:  NewTracker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every write. Callbacks run
// synchronously on the writing goroutine, outside the store lock.
func (s *Store) Subscribe(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Get returns a copy of the entity.
func (s *Store) Get(id string) (*models.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	return e.Clone(), nil
}

// Create adds a new entity at revision 0 and marks it dirty so that the
// next sync pushes it.
func (s *Store) Create(kind models.EntityType, fields models.Fields) (*models.Entity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, kind)
	}

	s.mu.Lock()
	e := &models.Entity{
		ID:             uuid.New().String(),
		Type:           kind,
		Fields:         fields.Clone(),
		LocalUpdatedAt: s.now().UTC(),
	}
	s.entities[e.ID] = e
	s.tracker.Mark(e.ID)
	out := e.Clone()
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, Change{Kind: ChangeLocal, ID: out.ID, Type: kind, Entity: out.Clone()})
	return out, nil
}

// Upsert merges partial into the entity, creating it if needed. It always
// increments LocalRevision and sets LocalUpdatedAt, even when the written
// values are unchanged, and adds the id to the dirty set.
func (s *Store) Upsert(kind models.EntityType, id string, partial models.Fields) (*models.Entity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, kind)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrEntityNotFound)
	}

	s.mu.Lock()
	e, ok := s.entities[id]
	if ok && e.Type != kind {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, id, e.Type, kind)
	}
	if !ok {
		e = &models.Entity{ID: id, Type: kind}
		s.entities[id] = e
		delete(s.deleted, id)
	}
	e.Fields = e.Fields.Merge(partial)
	e.LocalRevision++
	e.LocalUpdatedAt = s.now().UTC()
	s.tracker.Mark(id)
	out := e.Clone()
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, Change{Kind: ChangeLocal, ID: id, Type: kind, Entity: out.Clone()})
	return out, nil
}

// Delete removes the entity and leaves a tombstone until the deletion is
// pushed.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	e, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	delete(s.entities, id)
	s.tracker.Clear(id)
	s.deleted[id] = Tombstone{ID: id, Type: e.Type, DeletedAt: s.now().UTC()}
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, Change{Kind: ChangeDelete, ID: id, Type: e.Type})
	return nil
}

// Import creates an entity received from the remote store. The entity
// starts at revision 0 and is not dirty.
func (s *Store) Import(kind models.EntityType, id string, fields models.Fields) (*models.Entity, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, kind)
	}

	s.mu.Lock()
	if _, ok := s.entities[id]; ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrEntityExists, id)
	}
	e := &models.Entity{
		ID:             id,
		Type:           kind,
		Fields:         fields.Clone(),
		LocalUpdatedAt: s.now().UTC(),
	}
	s.entities[id] = e
	out := e.Clone()
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, Change{Kind: ChangeRemote, ID: id, Type: kind, Entity: out.Clone()})
	return out, nil
}

// ApplyRemote replaces the entity fields with fields that came from the
// remote store, provided the entity is still at revision. The revision is
// not bumped and the dirty flag is cleared.
func (s *Store) ApplyRemote(id string, revision int64, fields models.Fields) (*models.Entity, error) {
	s.mu.Lock()
	e, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	if e.LocalRevision != revision {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is at %d, expected %d", ErrRevisionChanged, id, e.LocalRevision, revision)
	}
	e.Fields = fields.Clone()
	s.tracker.Clear(id)
	out := e.Clone()
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs, Change{Kind: ChangeRemote, ID: id, Type: out.Type, Entity: out.Clone()})
	return out, nil
}

// ListDirtySince returns entities dirtied after marker, oldest first.
func (s *Store) ListDirtySince(marker int64) []*models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.tracker.Since(marker)
	out := make([]*models.Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.entities[id]; ok {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Marker returns the current dirty-set marker.
func (s *Store) Marker() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Marker()
}

// IsDirty reports whether the entity has local changes not yet synced.
func (s *Store) IsDirty(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.IsDirty(id)
}

// DirtyCount returns the size of the dirty set.
func (s *Store) DirtyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Len()
}

// MarkDirty re-queues an entity for push without changing its fields.
func (s *Store) MarkDirty(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	s.tracker.Mark(id)
	return nil
}

// ClearDirty removes id from the dirty set only if its revision still
// equals revision. It reports whether the flag was cleared.
func (s *Store) ClearDirty(id string, revision int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[id]
	if !ok || e.LocalRevision != revision {
		return false
	}
	s.tracker.Clear(id)
	return true
}

// Deleted returns pending tombstones ordered by deletion time.
func (s *Store) Deleted() []Tombstone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Tombstone, 0, len(s.deleted))
	for _, t := range s.deleted {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DeletedAt.Equal(out[j].DeletedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].DeletedAt.Before(out[j].DeletedAt)
	})
	return out
}

// IsDeleted reports whether id has a pending tombstone.
func (s *Store) IsDeleted(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.deleted[id]
	return ok
}

// ForgetDeleted drops the tombstone once the deletion has been pushed.
func (s *Store) ForgetDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleted, id)
}

// All returns every entity ordered by id.
func (s *Store) All() []*models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Restore loads persisted entities without notifying subscribers and
// without touching the dirty set. Existing entities with the same id are
// replaced.
func (s *Store) Restore(entities []*models.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entities {
		s.entities[e.ID] = e.Clone()
	}
}

// RaiseRevision lifts the entity revision to min when it is lower, for
// state restored from a store that lagged behind sync records. Subscribers
// are not notified.
func (s *Store) RaiseRevision(id string, min int64) (*models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	if e.LocalRevision < min {
		e.LocalRevision = min
	}
	return e.Clone(), nil
}

// RestoreDeleted re-creates tombstones of deletions that were not pushed
// before a restart. Ids that exist as entities are ignored.
func (s *Store) RestoreDeleted(tombstones []Tombstone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tombstones {
		if _, ok := s.entities[t.ID]; ok {
			continue
		}
		s.deleted[t.ID] = t
	}
}

func notify(subs []func(Change), c Change) {
	for _, fn := range subs {
		fn(c)
	}
}
