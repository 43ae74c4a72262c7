package sched

import (
	"sort"
	"sync"
	"time"
)

// timer is one scheduled callback.
type timer struct {
	id       int
	fn       func()
	dueTime  time.Time
	interval time.Duration // 0 for one-shot, >0 for repeating
	cleared  bool
}

// Scheduler holds pending timers against an injected Clock. It never runs
// callbacks on its own: Process executes whatever is due at the clock's
// current reading and returns. Schedulers are safe for concurrent use, but
// the intended model is a single goroutine pumping Process from its loop.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	timers map[int]*timer
	nextID int
}

// New creates a Scheduler reading the given clock. A nil clock means the
// system clock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock:  clock,
		timers: make(map[int]*timer),
		nextID: 1,
	}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// AfterFunc schedules fn to run once d from now. It returns the timer id
// for Cancel.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) int {
	return s.schedule(d, 0, fn)
}

// EveryFunc schedules fn to run repeatedly with period d. The first run is
// due d from now. It returns the timer id for Cancel.
func (s *Scheduler) EveryFunc(d time.Duration, fn func()) int {
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.timers[id] = &timer{
		id:       id,
		fn:       fn,
		dueTime:  s.clock.Now().Add(delay),
		interval: interval,
	}
	return id
}

// Cancel removes a pending timer. Cancelling an unknown or already-fired id
// is a no-op.
func (s *Scheduler) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.cleared = true
		delete(s.timers, id)
	}
}

// Process runs every callback due at the clock's current reading, in due
// order, and returns how many ran. Callbacks may schedule or cancel other
// timers; newly scheduled work is not run until it is due on a later call.
func (s *Scheduler) Process() int {
	s.mu.Lock()
	now := s.clock.Now()
	var due []*timer
	for _, t := range s.timers {
		if !t.cleared && !t.dueTime.After(now) {
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].dueTime.Equal(due[j].dueTime) {
			return due[i].id < due[j].id
		}
		return due[i].dueTime.Before(due[j].dueTime)
	})

	ran := 0
	for _, t := range due {
		if t.cleared {
			continue
		}
		// Execute outside the lock so callbacks can call back in.
		t.fn()
		ran++

		s.mu.Lock()
		if t.interval > 0 && !t.cleared {
			t.dueTime = s.clock.Now().Add(t.interval)
		} else {
			delete(s.timers, t.id)
		}
		s.mu.Unlock()
	}
	return ran
}

// HasPending reports whether any timers remain scheduled.
func (s *Scheduler) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers) > 0
}

// NextDue returns the wait until the earliest pending timer fires. It
// returns (0, true) for an already-due timer and (0, false) when nothing is
// pending.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.timers) == 0 {
		return 0, false
	}

	now := s.clock.Now()
	var min time.Duration = -1
	for _, t := range s.timers {
		if t.cleared {
			continue
		}
		d := t.dueTime.Sub(now)
		if d <= 0 {
			return 0, true
		}
		if min < 0 || d < min {
			min = d
		}
	}
	if min < 0 {
		return 0, false
	}
	return min, true
}
