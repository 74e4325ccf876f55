package core

import "time"

// Status is the termination flag of a game session.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the session.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// GameState is the externally visible state of a game.
type GameState struct {
	Score         int
	OpponentScore int // only two-sided games such as Pong use it
	Status        Status
}

// IsOver reports whether the game has reached a terminal status.
func (s GameState) IsOver() bool {
	return s.Status.Terminal()
}

// IsWon reports whether the game ended in a win.
func (s GameState) IsWon() bool {
	return s.Status == StatusWon
}

// StepResult is returned by Step after one simulation tick.
type StepResult struct {
	State GameState
}

// CadenceMode selects how a game wants to be ticked.
type CadenceMode int

const (
	// CadenceFrame ticks once per display frame.
	CadenceFrame CadenceMode = iota
	// CadenceFixed ticks on a fixed wall-clock interval.
	CadenceFixed
	// CadenceEvent never ticks on its own; the game only advances on input.
	CadenceEvent
)

// Cadence is the tick rate a game asks its host for.
type Cadence struct {
	Mode     CadenceMode
	Interval time.Duration // used by CadenceFixed
}

// FrameCadence returns the per-frame cadence.
func FrameCadence() Cadence {
	return Cadence{Mode: CadenceFrame}
}

// FixedCadence returns a fixed-interval cadence.
func FixedCadence(d time.Duration) Cadence {
	return Cadence{Mode: CadenceFixed, Interval: d}
}

// Resolve returns the concrete tick interval given the frame interval.
// Event-driven games still get a frame-rate redraw tick so the host can
// render and publish summaries.
func (c Cadence) Resolve(frame time.Duration) time.Duration {
	if c.Mode == CadenceFixed && c.Interval > 0 {
		return c.Interval
	}
	return frame
}

// RuntimeConfig carries session-level parameters into Reset.
type RuntimeConfig struct {
	Seed int64 // RNG seed; the same seed gives the same session
}
