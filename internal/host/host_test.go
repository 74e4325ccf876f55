package host

import (
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/clock"
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/events"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// countGame scores one point per tick and loses after limit ticks.
type countGame struct {
	limit   int
	ticks   int
	resets  int
	seeds   []int64
	presses []core.InputEvent
	held    []bool
	state   core.GameState
}

func (g *countGame) ID() string { return "count" }
func (g *countGame) Title() string { return "Count" }
func (g *countGame) Cadence() core.Cadence { return core.FrameCadence() }
func (g *countGame) State() core.GameState { return g.state }

func (g *countGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.ticks = 0
	g.state = core.GameState{}
}

func (g *countGame) Step(in core.InputFrame) core.StepResult {
	if g.state.IsOver() {
		return core.StepResult{State: g.state}
	}
	g.ticks++
	g.held = append(g.held, in.Held(core.KeyLeft))
	g.state.Score = g.ticks
	if g.limit > 0 && g.ticks >= g.limit {
		g.state.Status = core.StatusLost
	}
	return core.StepResult{State: g.state}
}

func (g *countGame) Render(f *core.Frame) {
	f.Reset(10, 10, core.ColorDefault)
	f.FillRect(core.NewRect(0, 0, 1, 1), core.ColorRed, 0)
}

func (g *countGame) HandleInput(ev core.InputEvent) {
	g.presses = append(g.presses, ev)
	if ev.Kind == core.EventKeyDown && ev.Key == core.KeySpace {
		g.state.Status = core.StatusWon
	}
}

type frameCounter struct{ n int }

func (c *frameCounter) Present(*core.Frame) { c.n++ }

type fixture struct {
	sched   *clock.ManualScheduler
	bus     *events.Bus
	game    *countGame
	surface *frameCounter
	host    *Host
}

func newFixture(t *testing.T, limit int) *fixture {
	t.Helper()
	sched := clock.NewManualScheduler(time.Unix(0, 0))
	bus := events.NewBus()
	g := &countGame{limit: limit}
	s := &frameCounter{}
	h := New(g, s, Options{
		Scheduler:     sched,
		Time:          sched,
		Bus:           bus,
		FrameInterval: 10 * time.Millisecond,
		HoldWindow:    -1,
		Seed:          7,
	})
	return &fixture{sched: sched, bus: bus, game: g, surface: s, host: h}
}

func TestHostTicksAndStopsOnTerminal(t *testing.T) {
	f := newFixture(t, 3)

	var stopped []events.Stopped
	f.bus.Subscribe(events.TopicStopped, func(ev events.Event) {
		stopped = append(stopped, ev.(events.Stopped))
	})

	f.host.Start()
	f.sched.Advance(time.Second)

	if f.game.ticks != 3 {
		t.Errorf("game stepped %d times, expected 3", f.game.ticks)
	}
	if f.host.Running() {
		t.Error("clock should stop once the game is over")
	}
	sum := f.host.Summary()
	if !sum.IsOver || sum.IsWon || sum.Score != 3 {
		t.Errorf("Summary() = %+v", sum)
	}
	if len(stopped) != 1 || stopped[0].Reason != events.StopReasonFinished {
		t.Errorf("stopped events = %+v", stopped)
	}
	// Initial render plus one per tick, including the final one.
	if f.surface.n != 4 {
		t.Errorf("presented %d frames, expected 4", f.surface.n)
	}
}

func TestHostStopReleasesEverything(t *testing.T) {
	f := newFixture(t, 0)

	f.host.Start()
	if f.bus.ListenerCount(events.TopicKey) != 1 || f.bus.ListenerCount(events.TopicPointer) != 1 {
		t.Fatalf("host should subscribe to input")
	}
	f.sched.Advance(25 * time.Millisecond)

	f.host.Stop()
	f.host.Stop()
	ticks := f.game.ticks
	f.sched.Advance(time.Second)

	if f.game.ticks != ticks {
		t.Errorf("game kept ticking after Stop: %d -> %d", ticks, f.game.ticks)
	}
	if f.bus.ListenerCount(events.TopicKey) != 0 || f.bus.ListenerCount(events.TopicPointer) != 0 {
		t.Error("input listeners leaked after Stop")
	}
	if f.sched.Pending() {
		t.Error("scheduler still has a pending tick")
	}
}

func TestHostSamplesHeldKeys(t *testing.T) {
	f := newFixture(t, 0)
	f.host.Start()

	f.bus.Publish(events.Input{InputEvent: core.KeyPress(core.KeyLeft)})
	f.sched.Advance(10 * time.Millisecond)
	f.bus.Publish(events.Input{InputEvent: core.KeyRelease(core.KeyLeft)})
	f.sched.Advance(10 * time.Millisecond)

	if len(f.game.held) != 2 || !f.game.held[0] || f.game.held[1] {
		t.Errorf("held samples = %v, expected [true false]", f.game.held)
	}
}

func TestHostForwardsDiscreteInput(t *testing.T) {
	f := newFixture(t, 0)
	f.host.Start()

	f.bus.Publish(events.Input{InputEvent: core.KeyPress(core.KeyUp)})
	if len(f.game.presses) != 1 {
		t.Fatalf("HandleInput saw %d events, expected 1", len(f.game.presses))
	}

	// A press that ends the game stops the clock right away.
	f.bus.Publish(events.Input{InputEvent: core.KeyPress(core.KeySpace)})
	if f.host.Running() {
		t.Error("clock should stop when input ends the game")
	}
	if !f.host.Summary().IsWon {
		t.Error("Summary should report the win")
	}

	// Input after the end is not forwarded.
	f.bus.Publish(events.Input{InputEvent: core.KeyPress(core.KeyDown)})
	if len(f.game.presses) != 2 {
		t.Errorf("HandleInput saw %d events after game over, expected 2", len(f.game.presses))
	}
}

func TestHostRestart(t *testing.T) {
	f := newFixture(t, 2)
	f.host.Start()
	first := f.host.SessionID()
	f.sched.Advance(time.Second)

	f.host.Restart()
	if f.host.SessionID() == first {
		t.Error("restart should start a new session")
	}
	if !f.host.Running() {
		t.Fatal("clock should run after restart")
	}
	if got := f.host.Summary(); got.IsOver || got.Score != 0 {
		t.Errorf("Summary() after restart = %+v", got)
	}
	if len(f.game.seeds) != 2 || f.game.seeds[0] != 7 || f.game.seeds[1] != 8 {
		t.Errorf("seeds = %v, expected [7 8]", f.game.seeds)
	}
}

func TestHostDoubleStartIsNoop(t *testing.T) {
	f := newFixture(t, 0)
	f.host.Start()
	f.host.Start()

	if f.game.resets != 1 {
		t.Errorf("game reset %d times, expected 1", f.game.resets)
	}
	if f.bus.ListenerCount(events.TopicKey) != 1 {
		t.Errorf("double start subscribed twice")
	}
}

func TestHostPauseResume(t *testing.T) {
	f := newFixture(t, 0)
	f.host.Start()
	f.sched.Advance(20 * time.Millisecond)

	f.host.Pause()
	paused := f.game.ticks
	f.sched.Advance(time.Second)
	if f.game.ticks != paused {
		t.Errorf("game ticked while paused")
	}
	if !f.host.Summary().Paused {
		t.Error("Summary should report paused")
	}

	f.host.TogglePause()
	f.sched.Advance(20 * time.Millisecond)
	if f.game.ticks != paused+2 {
		t.Errorf("ticks = %d after resume, expected %d", f.game.ticks, paused+2)
	}
}

func TestHostWithoutSurfaceSkipsTicks(t *testing.T) {
	f := newFixture(t, 0)
	f.host.SetSurface(nil)
	f.host.Start()
	f.sched.Advance(100 * time.Millisecond)

	if f.game.ticks != 0 {
		t.Errorf("game stepped %d times without a surface", f.game.ticks)
	}
	if !f.host.Running() {
		t.Error("clock should keep running without a surface")
	}

	f.host.SetSurface(f.surface)
	f.sched.Advance(10 * time.Millisecond)
	if f.game.ticks != 1 {
		t.Errorf("game should resume stepping once a surface is attached")
	}
}

func TestManagerSwitchStopsPreviousHost(t *testing.T) {
	registry.Register(registry.GameInfo{ID: "zz_count"}, func(*config.Store) (registry.Game, error) {
		return &countGame{}, nil
	})

	sched := clock.NewManualScheduler(time.Unix(0, 0))
	bus := events.NewBus()
	m := NewManager(Options{Scheduler: sched, Time: sched, Bus: bus}, nil)

	first, err := m.Switch("zz_count", &frameCounter{})
	if err != nil {
		t.Fatalf("Switch() error: %v", err)
	}
	second, err := m.Switch("zz_count", &frameCounter{})
	if err != nil {
		t.Fatalf("Switch() error: %v", err)
	}

	if first.Started() || first.Running() {
		t.Error("previous host should be stopped")
	}
	if !second.Running() || m.Current() != second {
		t.Error("new host should be running")
	}
	if bus.ListenerCount(events.TopicKey) != 1 {
		t.Errorf("key listeners = %d, expected 1", bus.ListenerCount(events.TopicKey))
	}

	if _, err := m.Switch("nope", nil); err == nil {
		t.Error("switching to an unknown game should fail")
	}
	if m.Current() != second {
		t.Error("a failed switch must keep the current host")
	}

	m.Close()
	if bus.Len() != 0 {
		t.Errorf("listeners leaked after Close: %d", bus.Len())
	}
}

func TestHostIgnoresKeysWhilePaused(t *testing.T) {
	f := newFixture(t, 0)
	f.host.Start()
	f.host.Pause()

	f.bus.Publish(events.Input{InputEvent: core.KeyPress(core.KeyLeft)})
	if f.host.Sampler().IsHeld(core.KeyLeft) {
		t.Error("key pressed while paused should not be held")
	}

	f.host.Resume()
	f.sched.Advance(10 * time.Millisecond)
	if len(f.game.held) == 0 || f.game.held[len(f.game.held)-1] {
		t.Errorf("held samples after resume = %v, expected the last to be false", f.game.held)
	}
}

func TestHostDefaultHoldWindowOutlastsAutorepeat(t *testing.T) {
	sched := clock.NewManualScheduler(time.Unix(0, 0))
	h := New(&countGame{}, &frameCounter{}, Options{
		Scheduler: sched,
		Time:      sched,
		Bus:       events.NewBus(),
	})
	now := time.Unix(0, 0)
	h.Sampler().SetClock(func() time.Time { return now })

	h.Sampler().Press(core.KeyRight)
	tests := []struct {
		after time.Duration
		held  bool
	}{
		{150 * time.Millisecond, true},
		{400 * time.Millisecond, true},
		{DefaultHoldWindow, true},
		{DefaultHoldWindow + time.Millisecond, false},
	}
	for _, tt := range tests {
		now = time.Unix(0, 0).Add(tt.after)
		if got := h.Sampler().IsHeld(core.KeyRight); got != tt.held {
			t.Errorf("held after %v = %v, expected %v", tt.after, got, tt.held)
		}
	}
}
