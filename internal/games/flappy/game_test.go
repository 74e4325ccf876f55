package flappy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGravityAndFlap(t *testing.T) {
	g := newGame(t, 1)

	g.Step(core.InputFrame{})
	if !almostEqual(g.vel, 0.4) || !almostEqual(g.birdY, 200.4) {
		t.Errorf("after one tick: vel=%v y=%v, expected 0.4 and 200.4", g.vel, g.birdY)
	}

	g.HandleInput(core.KeyPress(core.KeySpace))
	g.Step(core.InputFrame{})
	if !almostEqual(g.vel, -6.1) {
		t.Errorf("vel after flap = %v, expected -6.1", g.vel)
	}
	if !almostEqual(g.birdY, 200.4-6.1) {
		t.Errorf("y after flap = %v", g.birdY)
	}
}

func TestFlapInputs(t *testing.T) {
	tests := []struct {
		name string
		ev   core.InputEvent
		flap bool
	}{
		{"space", core.KeyPress(core.KeySpace), true},
		{"up", core.KeyPress(core.KeyUp), true},
		{"pointer", core.PointerDown(core.Vec{X: 10, Y: 10}, core.ButtonLeft), true},
		{"left arrow", core.KeyPress(core.KeyLeft), false},
		{"release", core.KeyRelease(core.KeySpace), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 1)
			g.HandleInput(tc.ev)
			if got := g.vel == -6.5; got != tc.flap {
				t.Errorf("flapped = %v, expected %v", got, tc.flap)
			}
		})
	}
}

func TestPipeSpawnInterval(t *testing.T) {
	pm := NewPipeManager(3, config.DefaultFlappyConfig())

	for frame := uint64(1); frame < 90; frame++ {
		pm.Update(frame, 70)
	}
	if len(pm.Pipes()) != 0 {
		t.Fatalf("no pipe should exist before frame 90, got %d", len(pm.Pipes()))
	}

	pm.Update(90, 70)
	pipes := pm.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("expected one pipe at frame 90, got %d", len(pipes))
	}
	if pipes[0].X != 277.5 {
		t.Errorf("new pipe X = %v, expected 277.5 after one scroll", pipes[0].X)
	}
	if pipes[0].TopH < 50 || pipes[0].TopH > 230 {
		t.Errorf("TopH = %v outside [50, 230]", pipes[0].TopH)
	}
}

func TestPipeScoresExactlyOnce(t *testing.T) {
	pm := NewPipeManager(3, config.DefaultFlappyConfig())
	pm.pipes = append(pm.pipes, Pipe{X: 40, TopH: 100})

	total := 0
	for frame := uint64(1); frame < 60; frame++ {
		total += pm.Update(frame, 70)
	}
	if total != 1 {
		t.Errorf("pipe scored %d times, expected 1", total)
	}
}

func TestPipeCulling(t *testing.T) {
	pm := NewPipeManager(3, config.DefaultFlappyConfig())
	pm.pipes = append(pm.pipes, Pipe{X: -48, TopH: 100})

	pm.Update(1, 70)
	if len(pm.Pipes()) != 0 {
		t.Errorf("pipe at x+w <= -10 should be culled")
	}
}

func TestCollisions(t *testing.T) {
	tests := []struct {
		name  string
		birdY float64
		vel   float64
		pipe  *Pipe
		lost  bool
	}{
		{"free flight", 200, 0, nil, false},
		{"floor", 385, 3, nil, true},
		{"ceiling", 14, -3, nil, true},
		{"hits upper pipe", 200, 0, &Pipe{X: 60, TopH: 250}, true},
		{"hits lower pipe", 200, 0, &Pipe{X: 60, TopH: 50}, true},
		{"inside the gap", 200, -0.4, &Pipe{X: 60, TopH: 140}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 1)
			g.birdY = tc.birdY
			g.vel = tc.vel
			if tc.pipe != nil {
				g.pipes.pipes = append(g.pipes.pipes, *tc.pipe)
			}
			res := g.Step(core.InputFrame{})
			if got := res.State.Status == core.StatusLost; got != tc.lost {
				t.Errorf("lost = %v, expected %v (y=%v)", got, tc.lost, g.birdY)
			}
		})
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	g := newGame(t, 1)
	g.birdY = 390
	g.Step(core.InputFrame{})
	if !g.State().IsOver() {
		t.Fatal("bird below the floor should lose")
	}

	before := g.Snapshot()
	g.HandleInput(core.KeyPress(core.KeySpace))
	g.Step(core.InputFrame{})
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("state changed after game over")
	}
}

func play(g *Game, ticks int) Snapshot {
	for range ticks {
		if g.birdY > 220 {
			g.Flap()
		}
		if g.Step(core.InputFrame{}).State.IsOver() {
			break
		}
	}
	return g.Snapshot()
}

func TestGameDeterminism(t *testing.T) {
	a := play(newGame(t, 12345), 600)
	b := play(newGame(t, 12345), 600)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("determinism failed:\n%+v\n%+v", a, b)
	}
}

func TestSeedChangesPipes(t *testing.T) {
	a := newGame(t, 1)
	b := newGame(t, 2)
	for range 90 {
		// Pin the birds mid-air so only the pipes evolve.
		a.birdY, a.vel = 200, 0
		b.birdY, b.vel = 200, 0
		a.Step(core.InputFrame{})
		b.Step(core.InputFrame{})
	}
	pa, pb := a.pipes.Pipes(), b.pipes.Pipes()
	if len(pa) != 1 || len(pb) != 1 {
		t.Fatalf("expected one pipe each, got %d and %d", len(pa), len(pb))
	}
	if pa[0].TopH == pb[0].TopH {
		t.Error("different seeds should give different pipe heights")
	}
}
