package entitystore

import (
	"sort"

	"github.com/Brommah/contentfinal-sub002/internal/clock"
)

// Tracker records which entities changed locally since their last
// successful sync. Every insert is stamped with a value of a store-wide
// sequence, so callers can ask for "everything dirtied after marker".
//
// Tracker is not safe for concurrent use; Store guards it with its mutex.
type Tracker struct {
	seq   *clock.Sequence
	dirty map[string]int64 // id -> stamp of the latest dirty insert
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seq:   clock.NewSequence(),
		dirty: make(map[string]int64),
	}
}

// Mark adds id to the dirty set and returns its new stamp.
func (t *Tracker) Mark(id string) int64 {
	stamp := t.seq.Next()
	t.dirty[id] = stamp
	return stamp
}

// Clear removes id from the dirty set.
func (t *Tracker) Clear(id string) {
	delete(t.dirty, id)
}

// IsDirty reports whether id is in the dirty set.
func (t *Tracker) IsDirty(id string) bool {
	_, ok := t.dirty[id]
	return ok
}

// Len returns the size of the dirty set.
func (t *Tracker) Len() int {
	return len(t.dirty)
}

// Marker returns the latest stamp handed out.
func (t *Tracker) Marker() int64 {
	return t.seq.Current()
}

// Since returns ids dirtied after marker, oldest first.
func (t *Tracker) Since(marker int64) []string {
	ids := make([]string, 0, len(t.dirty))
	for id, stamp := range t.dirty {
		if stamp > marker {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return t.dirty[ids[i]] < t.dirty[ids[j]]
	})
	return ids
}
