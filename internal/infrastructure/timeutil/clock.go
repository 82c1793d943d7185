// Package timeutil provides clocks and timestamp parsing.
package timeutil

import (
	"sync"
	"time"
)

// Clock is a source of the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// System is the wall clock.
var System Clock = ClockFunc(time.Now)

// ManualClock is a Clock that only moves when told to.
// It is safe for concurrent use.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a ManualClock stopped at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// MustManualClock creates a ManualClock stopped at an RFC3339 instant.
// It panics on a malformed instant and is meant for tests.
func MustManualClock(rfc3339 string) *ManualClock {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		panic("timeutil: " + err.Error())
	}
	return NewManualClock(t)
}

// Now returns the current reading.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock by d, which may be negative.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

var _ Clock = (*ManualClock)(nil)
