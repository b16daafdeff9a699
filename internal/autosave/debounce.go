// Package autosave persists local edits after a quiet period: a burst of
// changes produces one save, issued a fixed delay after the last change.
package autosave

import (
	"sync"
	"time"
)

// Timer is a pending callback returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock abstracts time so that debouncing can be tested deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// Debouncer delays calls to fn until no new call arrived for delay. Only
// the argument of the last call is delivered. It is safe for concurrent
// use; fn never runs concurrently with itself through Flush and the timer.
type Debouncer[T any] struct {
	clock   Clock
	timer   Timer
	fn      func(T)
	arg     T
	delay   time.Duration
	gen     uint64 // номер последнего запланированного вызова
	pending bool
	mu      sync.Mutex
	runMu   sync.Mutex
}

// NewDebouncer creates a debouncer. A nil clock means the wall clock.
func NewDebouncer[T any](delay time.Duration, clock Clock, fn func(T)) *Debouncer[T] {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer[T]{delay: delay, clock: clock, fn: fn}
}

// Schedule replaces any pending call with a call for arg, due delay from now.
func (d *Debouncer[T]) Schedule(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.arg = arg
	d.pending = true
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush runs the pending call immediately. It reports whether a call ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	arg, ok := d.take()
	d.mu.Unlock()

	if ok {
		d.run(arg)
	}
	return ok
}

// Cancel drops the pending call.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		// Таймер устарел: был новый Schedule, Flush или Cancel
		d.mu.Unlock()
		return
	}
	arg, _ := d.take()
	d.mu.Unlock()

	d.run(arg)
}

// take clears the pending call and returns its argument. Caller holds mu.
func (d *Debouncer[T]) take() (T, bool) {
	var zero T
	if !d.pending {
		return zero, false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	arg := d.arg
	d.arg = zero
	d.pending = false
	return arg, true
}

func (d *Debouncer[T]) run(arg T) {
	d.runMu.Lock()
	defer d.runMu.Unlock()
	d.fn(arg)
}
