package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the wall clock (with its monotonic reading).
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time {
	return time.Now()
}

// MockTime is a controllable time source for tests.
type MockTime struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTime creates a mock time source starting at start.
func NewMockTime(start time.Time) *MockTime {
	return &MockTime{now: start}
}

// Now returns the mocked time.
func (m *MockTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the mocked time forward by d.
func (m *MockTime) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
