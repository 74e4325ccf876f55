// Package events is a small typed publish/subscribe bus. Every
// subscription hands back an unsubscribe function that the subscriber
// must call when its owner goes away.
package events

import (
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Topic names a stream of events.
type Topic string

const (
	TopicKey     Topic = "input.key"
	TopicPointer Topic = "input.pointer"
	TopicSummary Topic = "host.summary"
	TopicStarted Topic = "host.started"
	TopicStopped Topic = "host.stopped"
)

// Event is anything that can travel on the bus.
type Event interface {
	Topic() Topic
}

// Input wraps a key or pointer event coming from a render surface.
type Input struct {
	core.InputEvent
}

// Topic implements Event.
func (e Input) Topic() Topic {
	if e.IsKey() {
		return TopicKey
	}
	return TopicPointer
}

// Summary is the observable state of a host, published after every tick
// that changed it.
type Summary struct {
	SessionID     string
	GameID        string
	Score         int
	OpponentScore int
	IsOver        bool
	IsWon         bool
	Paused        bool
}

// Topic implements Event.
func (Summary) Topic() Topic { return TopicSummary }

// Started is published when a host starts or restarts a session.
type Started struct {
	SessionID string
	GameID    string
	Restart   bool
}

// Topic implements Event.
func (Started) Topic() Topic { return TopicStarted }

// StopReason describes why a host stopped.
type StopReason int

const (
	StopReasonFinished StopReason = iota // game reached a terminal status
	StopReasonClosed                     // host was torn down
)

func (r StopReason) String() string {
	switch r {
	case StopReasonFinished:
		return "finished"
	case StopReasonClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Stopped is published when a host stops ticking.
type Stopped struct {
	SessionID string
	GameID    string
	Reason    StopReason
}

// Topic implements Event.
func (Stopped) Topic() Topic { return TopicStopped }
