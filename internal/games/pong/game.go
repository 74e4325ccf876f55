// Package pong implements Pong against a computer opponent.
// The player controls the left paddle, the computer the right one.
package pong

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Game implements the Pong game logic.
type Game struct {
	cfg config.PongConfig
	rng *rand.Rand

	tick    uint64
	playerY float64 // top of the left paddle
	aiY     float64 // top of the right paddle
	ball    core.Vec
	vel     core.Vec

	playerScore int
	aiScore     int
	status      core.Status

	lastPointer core.Vec
	hasPointer  bool
}

// New creates a new Pong game instance.
func New(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "pong",
		Title:    "Pong",
		Controls: "↑/↓ or mouse to move the paddle",
		Opponent: "CPU",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.Pong()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Cadence ticks once per frame.
func (g *Game) Cadence() core.Cadence {
	return core.FrameCadence()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	c := g.cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.playerY = c.World.Height/2 - c.Paddle.Height/2
	g.aiY = g.playerY
	g.ball = core.Vec{X: c.World.Width / 2, Y: c.World.Height / 2}
	g.vel = core.Vec{X: c.Ball.SpeedX, Y: c.Ball.SpeedY}
	g.playerScore = 0
	g.aiScore = 0
	g.status = core.StatusRunning
	g.hasPointer = false
}

// serve puts the ball back in the center with a random direction.
func (g *Game) serve() {
	c := g.cfg
	g.ball = core.Vec{X: c.World.Width / 2, Y: c.World.Height / 2}
	dir := -1.0
	if g.rng.Float64() > 0.5 {
		dir = 1
	}
	g.vel = core.Vec{
		X: dir * c.Ball.ServeX,
		Y: (g.rng.Float64() - 0.5) * c.Ball.ServeSpread,
	}
}

// Step advances the game by one tick.
//
// Order within a tick: player paddle, computer paddle, ball movement,
// top and bottom walls, left paddle, right paddle, scoring. Every paddle
// hit speeds the ball up and then caps its speed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	c := g.cfg

	g.movePlayer(in)
	g.aiY = trackBall(g.aiY, g.ball.Y, c)

	g.ball = g.ball.Add(g.vel)
	g.bounceWalls()

	if g.hitsLeftPaddle() {
		g.vel.X = math.Abs(g.vel.X) * c.Ball.Accel
		g.deflect(g.playerY)
	}
	if g.hitsRightPaddle() {
		g.vel.X = -math.Abs(g.vel.X) * c.Ball.Accel
		g.deflect(g.aiY)
	}

	switch {
	case g.ball.X < 0:
		g.aiScore++
		g.point(g.aiScore, core.StatusLost)
	case g.ball.X > c.World.Width:
		g.playerScore++
		g.point(g.playerScore, core.StatusWon)
	}

	return core.StepResult{State: g.State()}
}

// point ends the match if score reached the target, otherwise serves.
func (g *Game) point(score int, outcome core.Status) {
	if score >= g.cfg.Gameplay.WinScore {
		g.status = outcome
		return
	}
	g.serve()
}

func (g *Game) movePlayer(in core.InputFrame) {
	c := g.cfg
	maxY := c.World.Height - c.Paddle.Height
	if in.Held(core.KeyUp) {
		g.playerY = max(0, g.playerY-c.Paddle.Speed)
	}
	if in.Held(core.KeyDown) {
		g.playerY = min(maxY, g.playerY+c.Paddle.Speed)
	}
	if in.HasPointer && (!g.hasPointer || in.Pointer != g.lastPointer) {
		g.playerY = core.ClampF(in.Pointer.Y-c.Paddle.Height/2, 0, maxY)
	}
	g.lastPointer = in.Pointer
	g.hasPointer = in.HasPointer
}

func (g *Game) bounceWalls() {
	r, h := g.cfg.Ball.Radius, g.cfg.World.Height
	if g.ball.Y-r <= 0 {
		g.vel.Y = math.Abs(g.vel.Y)
	} else if g.ball.Y+r >= h {
		g.vel.Y = -math.Abs(g.vel.Y)
	}
}

func (g *Game) hitsLeftPaddle() bool {
	c := g.cfg
	face := c.Paddle.Inset + c.Paddle.Width
	return g.vel.X < 0 &&
		g.ball.X-c.Ball.Radius <= face &&
		g.ball.Y >= g.playerY && g.ball.Y <= g.playerY+c.Paddle.Height
}

func (g *Game) hitsRightPaddle() bool {
	c := g.cfg
	face := c.World.Width - c.Paddle.Inset - c.Paddle.Width
	return g.vel.X > 0 &&
		g.ball.X+c.Ball.Radius >= face &&
		g.ball.Y >= g.aiY && g.ball.Y <= g.aiY+c.Paddle.Height
}

// deflect adds spin from the hit offset and caps the ball's speed.
func (g *Game) deflect(paddleY float64) {
	c := g.cfg
	center := paddleY + c.Paddle.Height/2
	g.vel.Y += (g.ball.Y - center) * c.Ball.Spin
	g.vel = g.vel.ClampLen(c.Ball.MaxSpeed)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.playerScore,
		OpponentScore: g.aiScore,
		Status:        g.status,
	}
}

// Render draws the court.
func (g *Game) Render(dst *core.Frame) {
	c := g.cfg
	w, h := c.World.Width, c.World.Height
	dst.Reset(w, h, core.ColorNavy)

	// Dashed center line.
	for y := 0.0; y < h; y += 24 {
		dst.FillRect(core.NewRect(w/2-1, y, 2, 12), core.ColorGray, '│')
	}

	dst.FillRect(core.NewRect(c.Paddle.Inset, g.playerY, c.Paddle.Width, c.Paddle.Height), core.ColorTeal, '█')
	dst.FillRect(core.NewRect(w-c.Paddle.Inset-c.Paddle.Width, g.aiY, c.Paddle.Width, c.Paddle.Height), core.ColorRed, '█')
	dst.FillCircle(g.ball, c.Ball.Radius, core.ColorBrightYellow, '●')

	dst.DrawText(w/4, 12, fmt.Sprintf("%d", g.playerScore), core.ColorBrightWhite)
	dst.DrawText(3*w/4, 12, fmt.Sprintf("%d", g.aiScore), core.ColorBrightWhite)

	switch g.status {
	case core.StatusWon:
		dst.DrawTextCentered(h/2, "YOU WIN!", core.ColorBrightGreen)
	case core.StatusLost:
		dst.DrawTextCentered(h/2, "CPU WINS", core.ColorBrightRed)
	}
}
