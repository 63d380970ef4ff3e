package session

import (
	"sort"
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs a callback after a delay. The session advances its demo
// state machine exclusively through a Scheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules on the wall clock via time.AfterFunc.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler is a virtual clock. Callbacks run only when the clock is
// advanced, on the caller's goroutine, in due-time order.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{s: m, at: m.now + max(d, 0), seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Stop cancels the timer. It returns false if the timer already fired or
// was stopped.
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Now returns the virtual time elapsed since construction.
func (m *ManualScheduler) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of scheduled callbacks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock forward by d, firing every callback that becomes
// due, including ones scheduled by callbacks during the advance. It returns
// the number of callbacks fired.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	fired := 0
	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.f()
		fired++
	}

	m.mu.Lock()
	m.now = max(m.now, target)
	m.mu.Unlock()
	return fired
}

// RunAll fires callbacks until none are pending or limit callbacks have
// fired. It returns the number fired.
func (m *ManualScheduler) RunAll(limit int) int {
	fired := 0
	for fired < limit {
		t := m.popDue(-1)
		if t == nil {
			break
		}
		t.f()
		fired++
	}
	return fired
}

// popDue removes and returns the earliest timer due at or before target.
// A negative target matches any timer.
func (m *ManualScheduler) popDue(target time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	next := m.pending[0]
	if target >= 0 && next.at > target {
		return nil
	}
	m.pending = m.pending[1:]
	m.now = max(m.now, next.at)
	return next
}
