// Package snake implements Snake on a walled grid. The snake advances one
// cell every move interval; frame deltas are accumulated until a move is
// due.
package snake

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// CellSize is the side of one grid cell in world units.
const CellSize = 16

// maxCatchUp bounds how many moves a single long frame may trigger.
const maxCatchUp = 4

// Game implements the Snake game.
type Game struct {
	cfg config.SnakeConfig
	rng *rand.Rand

	tick  uint64 // moves made
	acc   time.Duration
	score int

	body    []core.Point // head at index 0
	dir     Direction    // direction of the last move
	nextDir Direction    // latched for the next move
	food    core.Point

	status core.Status
	resets int
}

// New creates a Snake game with the given configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "snake",
		Title:    "Snake",
		Controls: "arrows to turn, tap to steer toward a point",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.Snake()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Cadence ticks every frame; moves are paced by the accumulator.
func (g *Game) Cadence() core.Cadence { return core.FrameCadence() }

// Reset initializes/restarts the game. The first round starts with food on
// the configured cell; restarts place it at random.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	s := g.cfg.Start
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.acc = 0
	g.score = 0
	g.body = []core.Point{{X: s.X, Y: s.Y}}
	g.dir = directionOf(core.Point{X: s.DirX, Y: s.DirY})
	g.nextDir = g.dir
	g.status = core.StatusRunning
	if g.resets == 0 {
		g.food = core.Point{X: s.FoodX, Y: s.FoodY}
	} else {
		g.placeFood()
	}
	g.resets++
}

// HandleInput latches a new direction. A turn straight back onto the
// neck is ignored.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.status.Terminal() {
		return
	}
	switch ev.Kind {
	case core.EventKeyDown:
		if d, ok := keyDirection(ev.Key); ok {
			g.Turn(d)
		}
	case core.EventPointerDown:
		g.Turn(g.directionToward(ev.Pos))
	}
}

// Turn requests direction d for the next move.
func (g *Game) Turn(d Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// directionToward picks the dominant axis from the head to a world point.
func (g *Game) directionToward(p core.Vec) Direction {
	head := g.body[0]
	dx := p.X - (float64(head.X)+0.5)*CellSize
	dy := p.Y - (float64(head.Y)+0.5)*CellSize
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy >= 0 {
		return DirDown
	}
	return DirUp
}

// Step accumulates the frame time and moves once per elapsed interval.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}
	every := g.cfg.Gameplay.MoveEvery
	g.acc += in.Dt
	if g.acc > maxCatchUp*every {
		g.acc = maxCatchUp * every
	}
	for g.acc >= every && !g.status.Terminal() {
		g.acc -= every
		g.Advance()
	}
	return core.StepResult{State: g.State()}
}

// Advance moves the snake one cell.
//
// The head may enter the cell the tail leaves in the same move. Walls and
// any other body cell end the game.
func (g *Game) Advance() {
	if g.status.Terminal() {
		return
	}
	g.tick++
	g.dir = g.nextDir
	head := g.body[0].Add(g.dir.Delta())

	if !head.In(g.cfg.Grid.Cols, g.cfg.Grid.Rows) {
		g.status = core.StatusLost
		return
	}
	if g.occupies(head, g.body[:len(g.body)-1]) {
		g.status = core.StatusLost
		return
	}

	if head == g.food {
		g.body = append([]core.Point{head}, g.body...)
		g.score += g.cfg.Gameplay.FoodPoints
		if len(g.body) == g.cfg.Grid.Cols*g.cfg.Grid.Rows {
			g.status = core.StatusWon
			return
		}
		g.placeFood()
		return
	}

	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head
}

func (g *Game) occupies(p core.Point, cells []core.Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

// placeFood draws random cells until one is free of the snake.
func (g *Game) placeFood() {
	for {
		p := core.Point{
			X: g.rng.Intn(g.cfg.Grid.Cols),
			Y: g.rng.Intn(g.cfg.Grid.Rows),
		}
		if !g.occupies(p, g.body) {
			g.food = p
			return
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []core.Point {
	return append([]core.Point(nil), g.body...)
}

// Food returns the food cell.
func (g *Game) Food() core.Point {
	return g.food
}

// Render draws the grid, food and snake.
func (g *Game) Render(dst *core.Frame) {
	w := float64(g.cfg.Grid.Cols * CellSize)
	h := float64(g.cfg.Grid.Rows * CellSize)
	dst.Reset(w, h, core.ColorNavy)

	dst.FillRect(cellRect(g.food), core.ColorBrightRed, '●')
	for i, p := range g.body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.FillRect(cellRect(p), color, '█')
	}

	dst.DrawText(4, 4, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	switch g.status {
	case core.StatusLost:
		dst.DrawTextCentered(h/2, "GAME OVER", core.ColorBrightRed)
	case core.StatusWon:
		dst.DrawTextCentered(h/2, "YOU WIN!", core.ColorBrightGreen)
	}
}

func cellRect(p core.Point) core.Rect {
	return core.NewRect(float64(p.X*CellSize), float64(p.Y*CellSize), CellSize, CellSize)
}
