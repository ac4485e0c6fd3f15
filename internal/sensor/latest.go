package sensor

import (
	"sync"
	"time"
)

// Latest is a single-slot, last-value-wins sample buffer. The producer
// (a device callback or socket goroutine) overwrites the slot without
// blocking; the consumer reads whatever is newest. This decouples the
// device's acquisition cadence from the fixed simulation tick rate.
type Latest struct {
	mu  sync.Mutex
	s   Sample
	at  time.Time
	set bool
}

// Put stores a sample, stamping it with the current time.
func (l *Latest) Put(s Sample) {
	l.PutAt(s, time.Now())
}

// PutAt stores a sample with an explicit timestamp. Used by tests.
func (l *Latest) PutAt(s Sample, at time.Time) {
	l.mu.Lock()
	l.s = s
	l.at = at
	l.set = true
	l.mu.Unlock()
}

// Get returns the stored sample, its timestamp, and whether a sample has
// ever been stored.
func (l *Latest) Get() (Sample, time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s, l.at, l.set
}

// Reset clears the buffer to the never-written state.
func (l *Latest) Reset() {
	l.mu.Lock()
	l.s = Sample{}
	l.at = time.Time{}
	l.set = false
	l.mu.Unlock()
}
