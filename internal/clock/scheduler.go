package clock

import (
	"sync"
	"time"
)

// Scheduler arranges a single deferred callback. A new RequestTick
// replaces any pending one; Cancel drops it. Implementations must run
// callbacks on the goroutine that owns the game loop.
type Scheduler interface {
	RequestTick(d time.Duration, fn func())
	Cancel()
}

// ManualScheduler fires callbacks only when Advance moves its virtual
// time past their deadline. It is also a TimeProvider for that virtual
// time, so a Clock built on it measures deltas in virtual time.
type ManualScheduler struct {
	now     time.Time
	pending *manualRequest
	fired   int
}

type manualRequest struct {
	at time.Time
	fn func()
}

// NewManualScheduler creates a scheduler whose virtual time starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// RequestTick implements Scheduler.
func (m *ManualScheduler) RequestTick(d time.Duration, fn func()) {
	m.pending = &manualRequest{at: m.now.Add(d), fn: fn}
}

// Cancel implements Scheduler.
func (m *ManualScheduler) Cancel() {
	m.pending = nil
}

// Now implements TimeProvider.
func (m *ManualScheduler) Now() time.Time {
	return m.now
}

// Pending reports whether a callback is waiting.
func (m *ManualScheduler) Pending() bool {
	return m.pending != nil
}

// Fired returns how many callbacks have run so far.
func (m *ManualScheduler) Fired() int {
	return m.fired
}

// Advance moves virtual time forward by d, running every callback that
// becomes due on the way, in order. Callbacks may schedule further ticks.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now.Add(d)
	for m.pending != nil && !m.pending.at.After(target) {
		req := m.pending
		m.pending = nil
		m.now = req.at
		m.fired++
		req.fn()
	}
	m.now = target
}

// LoopScheduler backs a Scheduler with real timers and hands due
// callbacks to an event loop through a channel, so the callback itself
// runs on the loop goroutine and never concurrently with input handling.
type LoopScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
	ch    chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoopScheduler creates a loop scheduler. Close releases it.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		ch:   make(chan func(), 1),
		done: make(chan struct{}),
	}
}

// C delivers due callbacks. The loop should call each one it receives.
func (s *LoopScheduler) C() <-chan func() {
	return s.ch
}

// RequestTick implements Scheduler.
func (s *LoopScheduler) RequestTick(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(d, func() {
		select {
		case s.ch <- func() {
			if s.current(gen) {
				fn()
			}
		}:
		case <-s.done:
		}
	})
}

// Cancel implements Scheduler. A callback already sitting in the channel
// becomes a no-op.
func (s *LoopScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// Close cancels any pending tick and unblocks timer goroutines.
func (s *LoopScheduler) Close() {
	s.Cancel()
	s.once.Do(func() { close(s.done) })
}

func (s *LoopScheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}
