// Package t2048 implements the 2048 sliding tile puzzle. Each accepted
// move spawns one new tile; the game ends when no move changes the board.
package t2048

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// gap separates tiles in world units.
const gap = 6

var tileColors = map[int]core.Color{
	2:    core.ColorYellow,
	4:    core.ColorBrightYellow,
	8:    core.ColorOrange,
	16:   core.ColorBrightRed,
	32:   core.ColorRed,
	64:   core.ColorMagenta,
	128:  core.ColorPurple,
	256:  core.ColorBlue,
	512:  core.ColorTeal,
	1024: core.ColorCyan,
	2048: core.ColorBrightGreen,
}

// Game implements the 2048 puzzle game.
type Game struct {
	cfg config.T2048Config
	rng *rand.Rand

	moves  uint64
	score  int
	board  Board
	status core.Status

	swipeStart core.Vec
	swiping    bool
}

// New creates a 2048 game with the given configuration.
func New(cfg config.T2048Config) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "2048",
		Title:    "2048",
		Controls: "arrows or swipe to slide the tiles",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.T2048()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "2048" }

// Title returns the display name.
func (g *Game) Title() string { return "2048" }

// Cadence is event driven.
func (g *Game) Cadence() core.Cadence { return core.Cadence{Mode: core.CadenceEvent} }

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.moves = 0
	g.score = 0
	g.status = core.StatusRunning
	g.swiping = false
	g.board = NewBoard(g.cfg.Size)
	for range g.cfg.StartTiles {
		g.addRandom()
	}
}

// addRandom drops a 2 (or sometimes a 4) on a random empty cell and
// returns its value, or 0 if the board is full.
func (g *Game) addRandom() int {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return 0
	}
	cell := empty[g.rng.Intn(len(empty))]
	v := 2
	if g.rng.Float64() < g.cfg.FourChance {
		v = 4
	}
	g.board[cell.Row][cell.Col] = v
	return v
}

// HandleInput moves on arrow keys and on pointer swipes.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.status.Terminal() {
		return
	}
	switch ev.Kind {
	case core.EventKeyDown:
		if d, ok := keyDirection(ev.Key); ok {
			g.Move(d)
		}
	case core.EventPointerDown:
		g.swipeStart = ev.Pos
		g.swiping = true
	case core.EventPointerUp:
		if !g.swiping {
			return
		}
		g.swiping = false
		if d, ok := swipeDirection(ev.Pos.X-g.swipeStart.X, ev.Pos.Y-g.swipeStart.Y, g.cfg.SwipeMin); ok {
			g.Move(d)
		}
	}
}

func keyDirection(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	case core.KeyUp:
		return DirUp, true
	case core.KeyDown:
		return DirDown, true
	}
	return 0, false
}

// swipeDirection picks the dominant axis of a drag at least minDist long.
func swipeDirection(dx, dy, minDist float64) (Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if max(ax, ay) < minDist {
		return 0, false
	}
	if ax > ay {
		if dx > 0 {
			return DirRight, true
		}
		return DirLeft, true
	}
	if dy > 0 {
		return DirDown, true
	}
	return DirUp, true
}

// Move slides the board. A move that changes nothing is not a turn: no
// tile spawns and the score stays. It reports whether the board changed.
func (g *Game) Move(d Direction) bool {
	if g.status.Terminal() {
		return false
	}
	next, gained, changed := Slide(g.board, d)
	if !changed {
		return false
	}
	g.board = next
	g.score += gained
	g.moves++
	g.addRandom()
	if !CanMove(g.board) {
		g.status = core.StatusLost
	}
	return true
}

// Step only reports state; moves happen in HandleInput.
func (g *Game) Step(_ core.InputFrame) core.StepResult {
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// Board returns a copy of the tiles.
func (g *Game) Board() Board { return g.board.Clone() }

// Render draws the tiles with their values.
func (g *Game) Render(dst *core.Frame) {
	n := float64(g.cfg.Size)
	tile := g.cfg.TileSize
	top := tile / 2
	side := tile*n + gap*(n+1)
	dst.Reset(side, side+top, core.ColorNavy)

	dst.DrawText(gap, 4, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)

	for r, row := range g.board {
		for c, v := range row {
			x := gap + float64(c)*(tile+gap)
			y := top + gap + float64(r)*(tile+gap)
			rect := core.NewRect(x, y, tile, tile)
			if v == 0 {
				dst.FillRect(rect, core.ColorGray, '░')
				continue
			}
			color, ok := tileColors[v]
			if !ok {
				color = core.ColorBrightWhite
			}
			dst.FillRect(rect, color, '█')
			label := strconv.Itoa(v)
			center := rect.Center()
			dst.DrawText(center.X-float64(len(label))*tile/8, center.Y, label, core.ColorBrightWhite)
		}
	}

	if g.status == core.StatusLost {
		dst.DrawTextCentered(top+side/2, "GAME OVER", core.ColorBrightRed)
	}
}
