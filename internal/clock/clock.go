// Package clock drives a step callback at a game's cadence on top of a
// pluggable Scheduler.
//
// A Clock is not safe for concurrent use: Start, Stop and the scheduler's
// callbacks must all run on the goroutine that owns the game loop.
package clock

import (
	"time"

	"github.com/charmbracelet/log"
)

// StepFunc receives the time elapsed since the previous tick.
type StepFunc func(dt time.Duration)

// Clock invokes a step callback repeatedly. The next tick is requested
// only after the current step returns, so steps never overlap.
//
// Start on a running clock is a no-op. Stop is idempotent, and once it
// returns no further step is invoked even if the scheduler still delivers
// a stale callback.
type Clock struct {
	sched    Scheduler
	tp       TimeProvider
	interval time.Duration
	step     StepFunc
	logger   *log.Logger

	running bool
	gen     uint64
	last    time.Time
	ticks   uint64
}

// New creates a stopped clock.
func New(s Scheduler, tp TimeProvider, interval time.Duration, step StepFunc) *Clock {
	if tp == nil {
		tp = SystemTime{}
	}
	return &Clock{
		sched:    s,
		tp:       tp,
		interval: interval,
		step:     step,
	}
}

// SetLogger attaches a logger for debug output.
func (c *Clock) SetLogger(l *log.Logger) {
	c.logger = l
}

// Start begins ticking. The first step runs one interval from now.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.gen++
	c.last = c.tp.Now()
	if c.logger != nil {
		c.logger.Debug("clock started", "interval", c.interval)
	}
	c.arm()
}

// Stop halts future ticks.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.gen++
	c.sched.Cancel()
	if c.logger != nil {
		c.logger.Debug("clock stopped", "ticks", c.ticks)
	}
}

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool {
	return c.running
}

// Ticks returns how many steps have run since the clock was created.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Interval returns the tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// SetInterval changes the interval; it applies from the next request.
func (c *Clock) SetInterval(d time.Duration) {
	c.interval = d
}

func (c *Clock) arm() {
	gen := c.gen
	c.sched.RequestTick(c.interval, func() { c.fire(gen) })
}

func (c *Clock) fire(gen uint64) {
	if !c.running || gen != c.gen {
		return
	}
	now := c.tp.Now()
	dt := now.Sub(c.last)
	c.last = now
	c.ticks++

	c.step(dt)

	// The step may have stopped or restarted the clock.
	if c.running && gen == c.gen {
		c.arm()
	}
}
