// Package flappy implements Flappy Bird: gravity pulls the bird down, a
// flap sets its velocity to a fixed upward impulse, and pipes scroll in
// from the right.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Game implements Flappy Bird.
type Game struct {
	cfg    config.FlappyConfig
	frame  uint64
	birdY  float64
	vel    float64
	score  int
	status core.Status
	pipes  *PipeManager
}

// New creates a new Flappy Bird game.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "flappy",
		Title:    "Flappy Bird",
		Controls: "Space/↑ or click to flap",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.Flappy()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Cadence ticks once per frame.
func (g *Game) Cadence() core.Cadence {
	return core.FrameCadence()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.frame = 0
	g.birdY = g.cfg.World.Height / 2
	g.vel = 0
	g.score = 0
	g.status = core.StatusRunning
	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, g.cfg)
	} else {
		g.pipes.Reset(cfg.Seed)
	}
}

// HandleInput flaps on Space, Up or a pointer press. The new velocity
// applies from the next tick.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.status.Terminal() {
		return
	}
	switch {
	case ev.Kind == core.EventKeyDown && (ev.Key == core.KeySpace || ev.Key == core.KeyUp):
		g.Flap()
	case ev.Kind == core.EventPointerDown:
		g.Flap()
	}
}

// Flap sets the bird's velocity to the flap impulse.
func (g *Game) Flap() {
	g.vel = g.cfg.Physics.FlapImpulse
}

// Step advances the game by one tick.
//
// Scoring runs before the collision test, so a bird that clears a pipe's
// right edge and hits the next obstacle in the same tick keeps the point.
func (g *Game) Step(_ core.InputFrame) core.StepResult {
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}
	c := g.cfg
	g.frame++

	g.vel += c.Physics.Gravity
	g.birdY += g.vel

	g.score += g.pipes.Update(g.frame, c.Bird.X)

	r := c.Bird.Radius
	if g.birdY+r > c.World.Height || g.birdY-r < 0 {
		g.status = core.StatusLost
	} else if g.pipes.Collides(c.Bird.X, g.birdY, r) {
		g.status = core.StatusLost
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// Render draws pipes, the bird and the score.
func (g *Game) Render(dst *core.Frame) {
	c := g.cfg
	dst.Reset(c.World.Width, c.World.Height, core.ColorNavy)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	dst.FillCircle(core.Vec{X: c.Bird.X, Y: g.birdY}, c.Bird.Radius, core.ColorBrightYellow, '●')

	dst.DrawTextCentered(16, fmt.Sprintf("%d", g.score), core.ColorBrightWhite)
	if g.status == core.StatusLost {
		dst.DrawTextCentered(c.World.Height/2, "GAME OVER", core.ColorBrightRed)
	}
}

func (g *Game) drawPipe(dst *core.Frame, p Pipe) {
	c := g.cfg
	top := p.TopRect(c.Pipes)
	bottom := p.BottomRect(c.Pipes, c.World.Height)
	dst.FillRect(top, core.ColorGreen, '█')
	dst.FillRect(bottom, core.ColorGreen, '█')

	// Caps overhang the pipe by a few units on each side.
	const capH, overhang = 12, 3
	dst.FillRect(core.NewRect(p.X-overhang, p.TopH-capH, c.Pipes.Width+2*overhang, capH), core.ColorBrightGreen, '▀')
	dst.FillRect(core.NewRect(p.X-overhang, bottom.Y, c.Pipes.Width+2*overhang, capH), core.ColorBrightGreen, '▄')
}

// Snapshot contains the complete game state for determinism checks.
type Snapshot struct {
	Frame  uint64
	BirdY  float64
	Vel    float64
	Score  int
	Status core.Status
	Pipes  []Pipe
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:  g.frame,
		BirdY:  g.birdY,
		Vel:    g.vel,
		Score:  g.score,
		Status: g.status,
		Pipes:  append([]Pipe(nil), g.pipes.Pipes()...),
	}
}
