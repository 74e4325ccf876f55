// Package breakout implements Breakout: a paddle, a ball and a wall of
// bricks. Positions are world units; the ball moves a fixed distance per
// tick.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// rowColors paints the brick rows from the top down.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorTeal,
}

// Brick is one destructible block.
type Brick struct {
	Rect  core.Rect
	Alive bool
	Color core.Color
}

// Game implements Breakout.
type Game struct {
	cfg config.BreakoutConfig

	tick    uint64
	paddleX float64
	ball    core.Vec
	vel     core.Vec
	bricks  []Brick
	score   int
	status  core.Status

	lastPointer core.Vec
	hasPointer  bool
}

// New creates a Breakout game with the given configuration.
func New(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "breakout",
		Title:    "Breakout",
		Controls: "←/→ or mouse to move the paddle",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.Breakout()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Cadence ticks once per frame.
func (g *Game) Cadence() core.Cadence { return core.FrameCadence() }

// Reset initializes/restarts the game.
func (g *Game) Reset(_ core.RuntimeConfig) {
	c := g.cfg
	g.tick = 0
	g.score = 0
	g.status = core.StatusRunning
	g.paddleX = c.World.Width/2 - c.Paddle.Width/2
	g.ball = core.Vec{X: c.Ball.StartX, Y: c.Ball.StartY}
	g.vel = core.Vec{X: c.Ball.SpeedX, Y: c.Ball.SpeedY}
	g.hasPointer = false
	g.bricks = buildBricks(c)
}

func buildBricks(c config.BreakoutConfig) []Brick {
	if c.Bricks.Cols <= 0 {
		return nil
	}
	w := c.World.Width / float64(c.Bricks.Cols)
	bricks := make([]Brick, 0, c.Bricks.Rows*c.Bricks.Cols)
	for r := range c.Bricks.Rows {
		for col := range c.Bricks.Cols {
			bricks = append(bricks, Brick{
				Rect:  core.NewRect(float64(col)*w, c.Bricks.Top+float64(r)*c.Bricks.Height, w, c.Bricks.Height),
				Alive: true,
				Color: rowColors[r%len(rowColors)],
			})
		}
	}
	return bricks
}

// Step advances the game by one tick.
//
// Order within a tick: paddle input, ball movement, walls, paddle, bottom
// edge, bricks, win check. The bottom edge is checked before bricks, so a
// ball that leaves the field loses even if it would also have broken a
// brick. At most one brick breaks per tick: the first one in row-major
// order that the ball overlaps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.movePaddle(in)

	g.ball = g.ball.Add(g.vel)
	bounceWalls(&g.ball, &g.vel, g.cfg)

	if hitPaddle(g.ball, g.vel, g.paddleX, g.cfg) {
		g.vel.Y = -g.vel.Y
		g.vel.X = paddleDeflection(g.ball.X, g.paddleX, g.cfg)
	}

	if g.ball.Y > g.cfg.World.Height {
		g.status = core.StatusLost
		return core.StepResult{State: g.State()}
	}

	if i := firstBrickHit(g.ball, g.cfg.Ball.Radius, g.bricks); i >= 0 {
		g.bricks[i].Alive = false
		g.vel.Y = -g.vel.Y
		g.score += g.cfg.Bricks.Points
	}

	if g.BricksRemaining() == 0 {
		g.status = core.StatusWon
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) movePaddle(in core.InputFrame) {
	c := g.cfg
	maxX := c.World.Width - c.Paddle.Width
	if in.Held(core.KeyLeft) {
		g.paddleX = max(0, g.paddleX-c.Paddle.Speed)
	}
	if in.Held(core.KeyRight) {
		g.paddleX = min(maxX, g.paddleX+c.Paddle.Speed)
	}

	// The pointer only takes over when it actually moves, so a resting
	// mouse does not fight the keyboard.
	if in.HasPointer && (!g.hasPointer || in.Pointer != g.lastPointer) {
		g.paddleX = core.ClampF(in.Pointer.X-c.Paddle.Width/2, 0, maxX)
	}
	g.lastPointer = in.Pointer
	g.hasPointer = in.HasPointer
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// BricksRemaining counts the bricks still standing.
func (g *Game) BricksRemaining() int {
	n := 0
	for _, b := range g.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Render draws the playfield.
func (g *Game) Render(dst *core.Frame) {
	c := g.cfg
	dst.Reset(c.World.Width, c.World.Height, core.ColorNavy)

	for _, b := range g.bricks {
		if !b.Alive {
			continue
		}
		r := b.Rect
		dst.FillRect(core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), b.Color, '▆')
	}

	dst.FillRect(g.paddleRect(), core.ColorTeal, '▀')
	dst.FillCircle(g.ball, c.Ball.Radius, core.ColorBrightYellow, '●')

	dst.DrawText(4, 8, fmt.Sprintf("SCORE %d", g.score), core.ColorWhite)

	switch g.status {
	case core.StatusWon:
		dst.DrawTextCentered(c.World.Height/2, "YOU WIN!", core.ColorBrightGreen)
	case core.StatusLost:
		dst.DrawTextCentered(c.World.Height/2, "GAME OVER", core.ColorBrightRed)
	}
}

func (g *Game) paddleRect() core.Rect {
	c := g.cfg
	return core.NewRect(g.paddleX, paddleTop(c), c.Paddle.Width, c.Paddle.Height)
}
