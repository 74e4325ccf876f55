package core

import (
	"sync"
	"time"
)

// Sampler tracks which movement keys are currently held and where the
// pointer last was. Events arrive asynchronously from the platform; the
// host reads a Snapshot once per tick, so a release that lands mid-tick
// takes effect on the next one.
//
// Terminals never report key releases. With a non-zero hold window a
// press counts as held until the window passes without a repeat, which is
// how key autorepeat looks from the outside. Explicit releases still win.
type Sampler struct {
	mu         sync.Mutex
	now        func() time.Time
	holdWindow time.Duration
	pressed    [keyCount]time.Time
	down       [keyCount]bool

	pointer    Vec
	hasPointer bool
}

// NewSampler creates a sampler. A zero holdWindow means keys stay held
// until an explicit release.
func NewSampler(holdWindow time.Duration) *Sampler {
	return &Sampler{now: time.Now, holdWindow: holdWindow}
}

// SetClock replaces the time source, for tests.
func (s *Sampler) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Handle applies one input event. Unknown keys are ignored.
func (s *Sampler) Handle(ev InputEvent) {
	switch ev.Kind {
	case EventKeyDown:
		s.Press(ev.Key)
	case EventKeyUp:
		s.Release(ev.Key)
	case EventPointerDown, EventPointerMove, EventPointerUp:
		s.SetPointer(ev.Pos)
	}
}

// Press marks k as held.
func (s *Sampler) Press(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	s.mu.Lock()
	s.down[k] = true
	s.pressed[k] = s.now()
	s.mu.Unlock()
}

// Release clears k.
func (s *Sampler) Release(k Key) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	s.mu.Lock()
	s.down[k] = false
	s.mu.Unlock()
}

// IsHeld reports whether k is currently held.
func (s *Sampler) IsHeld(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heldLocked(k, s.now())
}

func (s *Sampler) heldLocked(k Key, now time.Time) bool {
	if !s.down[k] {
		return false
	}
	if s.holdWindow > 0 && now.Sub(s.pressed[k]) > s.holdWindow {
		s.down[k] = false
		return false
	}
	return true
}

// SetPointer records the last pointer position in world units.
func (s *Sampler) SetPointer(p Vec) {
	s.mu.Lock()
	s.pointer = p
	s.hasPointer = true
	s.mu.Unlock()
}

// PointerPosition returns the last pointer position, or false when the
// pointer has never been seen over the play surface.
func (s *Sampler) PointerPosition() (Vec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer, s.hasPointer
}

// Snapshot captures the current input for one tick.
func (s *Sampler) Snapshot(dt time.Duration) InputFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := InputFrame{Dt: dt, Pointer: s.pointer, HasPointer: s.hasPointer}
	now := s.now()
	for k := KeyNone + 1; k < keyCount; k++ {
		f.held[k] = s.heldLocked(k, now)
	}
	return f
}

// Reset forgets all held keys and the pointer.
func (s *Sampler) Reset() {
	s.mu.Lock()
	s.down = [keyCount]bool{}
	s.pressed = [keyCount]time.Time{}
	s.pointer = Vec{}
	s.hasPointer = false
	s.mu.Unlock()
}
