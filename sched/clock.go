// Package sched provides the cooperative scheduler that sequences overlay
// exit animations and script timers. Callbacks never run spontaneously: the
// owner of the scheduler pumps it from its event loop, so all work happens
// on the caller's scheduling context.
package sched

import (
	"sync"
	"time"
)

// Clock is the time source a Scheduler reads. Production code uses the
// system clock; tests substitute a ManualClock to advance time explicitly.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// ManualClock is a controllable time source for testing.
type ManualClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualClock creates a manual clock set to the given start time.
func NewManualClock(startTime time.Time) *ManualClock {
	return &ManualClock{currentTime: startTime}
}

// Now returns the current manual time.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time.
func (m *ManualClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the current time forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
