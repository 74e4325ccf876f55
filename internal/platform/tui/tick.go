// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries a scheduled clock tick back into the Bubble Tea loop.
type tickMsg struct {
	gen uint64
}

// Scheduler implements clock.Scheduler on top of tea.Tick. RequestTick
// only prepares a command; the model hands it to Bubble Tea with Take
// and runs the callback from Update when the matching tickMsg arrives,
// so every tick executes on the program's event loop.
type Scheduler struct {
	gen uint64
	fn  func()
	cmd tea.Cmd
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestTick implements clock.Scheduler.
func (s *Scheduler) RequestTick(d time.Duration, fn func()) {
	s.gen++
	gen := s.gen
	s.fn = fn
	s.cmd = tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Cancel implements clock.Scheduler. Ticks already in flight are dropped
// when they arrive.
func (s *Scheduler) Cancel() {
	s.gen++
	s.fn = nil
	s.cmd = nil
}

// Take returns the command for the latest request, once.
func (s *Scheduler) Take() tea.Cmd {
	cmd := s.cmd
	s.cmd = nil
	return cmd
}

// Pending reports whether a callback is waiting for its tick.
func (s *Scheduler) Pending() bool {
	return s.fn != nil
}

// Deliver runs the callback if msg belongs to the latest request.
func (s *Scheduler) Deliver(msg tickMsg) bool {
	if msg.gen != s.gen || s.fn == nil {
		return false
	}
	fn := s.fn
	s.fn = nil
	fn()
	return true
}
