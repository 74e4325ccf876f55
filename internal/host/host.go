// Package host runs one game session: it owns the clock, the input
// sampler and the bus subscriptions that feed it, and releases all of
// them when the session ends.
//
// A Host is single-threaded. Every method, every scheduler callback and
// every bus publication must happen on the goroutine that owns the UI
// loop.
package host

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pocket-arcade/internal/clock"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/events"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// DefaultFrameInterval is the frame cadence used when none is configured.
const DefaultFrameInterval = time.Second / 60

// DefaultHoldWindow is how long a key press counts as held on surfaces
// that never report key releases. It must outlast the terminal's
// autorepeat delay, or a held key stutters before repeats arrive.
const DefaultHoldWindow = 500 * time.Millisecond

// Surface receives one draw command per tick. Implementations must not
// keep the frame past the next call; it is reused.
type Surface interface {
	Present(f *core.Frame)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(f *core.Frame)

// Present implements Surface.
func (fn SurfaceFunc) Present(f *core.Frame) { fn(f) }

// Summary is what the surrounding UI observes about a session.
type Summary struct {
	Score         int
	OpponentScore int
	IsOver        bool
	IsWon         bool
	Paused        bool
}

// Options configures a Host.
type Options struct {
	Scheduler     clock.Scheduler
	Time          clock.TimeProvider // defaults to the system clock
	Bus           *events.Bus        // required for input; may be shared by hosts
	Logger        *log.Logger
	FrameInterval time.Duration
	HoldWindow    time.Duration // key hold emulation; negative disables it
	Seed          int64         // 0 picks a time-based seed per session
}

// Host composes a game with a clock, a sampler and a surface.
type Host struct {
	game    registry.Game
	opts    Options
	logger  *log.Logger
	sampler *core.Sampler
	clock   *clock.Clock
	frame   *core.Frame
	surface Surface

	sessionID string
	unsubs    []func()
	started   bool
	paused    bool
	finished  bool
	restarts  int64
	summary   Summary
}

// New creates a stopped host. surface may be nil and attached later.
func New(game registry.Game, surface Surface, opts Options) *Host {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.HoldWindow == 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Time == nil {
		opts.Time = clock.SystemTime{}
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("host").With("game", game.ID())

	h := &Host{
		game:    game,
		opts:    opts,
		logger:  logger,
		sampler: core.NewSampler(max(opts.HoldWindow, 0)),
		frame:   core.NewFrame(0, 0),
		surface: surface,
	}
	h.sampler.SetClock(opts.Time.Now)
	interval := game.Cadence().Resolve(opts.FrameInterval)
	h.clock = clock.New(opts.Scheduler, opts.Time, interval, h.tick)
	h.clock.SetLogger(logger)
	return h
}

// Game returns the hosted game.
func (h *Host) Game() registry.Game {
	return h.game
}

// SessionID identifies the current session; it changes on restart.
func (h *Host) SessionID() string {
	return h.sessionID
}

// Running reports whether the clock is ticking.
func (h *Host) Running() bool {
	return h.clock.Running()
}

// Started reports whether the host is mounted.
func (h *Host) Started() bool {
	return h.started
}

// Sampler exposes the input sampler, mostly for tests and debugging.
func (h *Host) Sampler() *core.Sampler {
	return h.sampler
}

// SetSurface attaches or detaches the render surface.
func (h *Host) SetSurface(s Surface) {
	h.surface = s
	h.Render()
}

// Start mounts the host: it subscribes to input, resets the game and
// starts the clock. Starting a started host does nothing.
func (h *Host) Start() {
	if h.started {
		return
	}
	h.started = true

	bus := h.opts.Bus
	h.unsubs = append(h.unsubs,
		bus.Subscribe(events.TopicKey, h.onInput),
		bus.Subscribe(events.TopicPointer, h.onInput),
	)

	h.begin(false)
}

// Restart throws the current session away and begins a fresh one.
func (h *Host) Restart() {
	if !h.started {
		h.Start()
		return
	}
	h.clock.Stop()
	h.restarts++
	h.begin(true)
}

// Stop unmounts the host. The clock is halted and every subscription is
// released before Stop returns. Stopping a stopped host does nothing.
func (h *Host) Stop() {
	if !h.started {
		return
	}
	h.clock.Stop()
	for _, unsub := range h.unsubs {
		unsub()
	}
	h.unsubs = nil
	h.sampler.Reset()
	h.started = false
	h.paused = false

	h.logger.Info("session closed", "session", h.sessionID, "score", h.summary.Score)
	h.opts.Bus.Publish(events.Stopped{
		SessionID: h.sessionID,
		GameID:    h.game.ID(),
		Reason:    events.StopReasonClosed,
	})
}

// Pause suspends ticking. Input is ignored while paused.
func (h *Host) Pause() {
	if !h.started || h.paused || h.finished {
		return
	}
	h.paused = true
	h.clock.Stop()
	h.sampler.Reset()
	h.logger.Debug("paused", "session", h.sessionID)
	h.publishSummary(true)
	h.Render()
}

// Resume continues a paused session.
func (h *Host) Resume() {
	if !h.started || !h.paused {
		return
	}
	h.paused = false
	h.clock.Start()
	h.logger.Debug("resumed", "session", h.sessionID)
	h.publishSummary(true)
}

// TogglePause flips between paused and running.
func (h *Host) TogglePause() {
	if h.paused {
		h.Resume()
	} else {
		h.Pause()
	}
}

// Paused reports whether the host is paused.
func (h *Host) Paused() bool {
	return h.paused
}

// Summary returns the observable state of the session.
func (h *Host) Summary() Summary {
	st := h.game.State()
	return Summary{
		Score:         st.Score,
		OpponentScore: st.OpponentScore,
		IsOver:        st.IsOver(),
		IsWon:         st.IsWon(),
		Paused:        h.paused,
	}
}

// Render draws the current state without advancing it. It does nothing
// when no surface is attached.
func (h *Host) Render() {
	if h.surface == nil || !h.started {
		return
	}
	h.frame.Reset(0, 0, core.ColorDefault)
	h.game.Render(h.frame)
	h.surface.Present(h.frame)
}

func (h *Host) begin(restart bool) {
	h.sessionID = uuid.NewString()
	h.paused = false
	h.finished = false
	h.sampler.Reset()
	h.game.Reset(core.RuntimeConfig{Seed: h.seed()})

	h.logger.Info("session started", "session", h.sessionID, "restart", restart)
	h.opts.Bus.Publish(events.Started{
		SessionID: h.sessionID,
		GameID:    h.game.ID(),
		Restart:   restart,
	})

	h.clock.Start()
	h.publishSummary(true)
	h.Render()
}

func (h *Host) seed() int64 {
	if h.opts.Seed != 0 {
		return h.opts.Seed + h.restarts
	}
	return time.Now().UnixNano()
}

// onInput feeds the sampler and forwards discrete presses to games that
// want them.
func (h *Host) onInput(ev events.Event) {
	in, ok := ev.(events.Input)
	if !ok {
		return
	}
	if h.paused || h.finished {
		return
	}
	h.sampler.Handle(in.InputEvent)

	ih, ok := h.game.(registry.InputHandler)
	if !ok {
		return
	}
	ih.HandleInput(in.InputEvent)
	h.settle()
}

// tick is the clock callback: sample, step, draw, check termination.
func (h *Host) tick(dt time.Duration) {
	if h.surface == nil {
		return
	}

	res := h.game.Step(h.sampler.Snapshot(dt))
	h.Render()
	h.publishSummary(false)

	if res.State.IsOver() {
		h.finish(res.State)
	}
}

// settle runs after input changed the game outside a tick.
func (h *Host) settle() {
	st := h.game.State()
	h.publishSummary(false)
	if st.IsOver() {
		h.Render()
		h.finish(st)
	}
}

func (h *Host) finish(st core.GameState) {
	if h.finished {
		return
	}
	h.finished = true
	h.clock.Stop()

	h.logger.Info("session finished",
		"session", h.sessionID,
		"status", st.Status,
		"score", st.Score,
		"opponent", st.OpponentScore,
	)
	h.opts.Bus.Publish(events.Stopped{
		SessionID: h.sessionID,
		GameID:    h.game.ID(),
		Reason:    events.StopReasonFinished,
	})
}

// publishSummary sends the summary when it changed, or always if forced.
func (h *Host) publishSummary(force bool) {
	s := h.Summary()
	if !force && s == h.summary {
		return
	}
	h.summary = s
	h.opts.Bus.Publish(events.Summary{
		SessionID:     h.sessionID,
		GameID:        h.game.ID(),
		Score:         s.Score,
		OpponentScore: s.OpponentScore,
		IsOver:        s.IsOver,
		IsWon:         s.IsWon,
		Paused:        s.Paused,
	})
}
