// Package clock provides monotonic logical counters used to order local
// changes without relying on wall-clock time.
package clock

import "sync"

// Sequence is a monotonically increasing logical counter. It is safe for
// concurrent use.
type Sequence struct {
	counter int64      // монотонно возрастающий счетчик
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// NewSequence creates a sequence starting at zero.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next increments the counter and returns the new value.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	return s.counter
}

// Observe moves the counter forward to at least value. Used when restoring
// persisted state so new values never collide with stored ones.
// The counter never moves backwards.
func (s *Sequence) Observe(value int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value > s.counter {
		s.counter = value
	}
	return s.counter
}

// Current returns the counter without changing it.
func (s *Sequence) Current() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter
}
