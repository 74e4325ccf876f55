// Package minesweeper implements Minesweeper. The game only changes in
// response to input: pointer clicks or the keyboard cursor.
package minesweeper

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// CellSize is the side of one square in world units.
const CellSize = 24

// hudHeight is the strip above the field holding the counters.
const hudHeight = CellSize

var numberColors = [...]core.Color{
	1: core.ColorBrightBlue,
	2: core.ColorGreen,
	3: core.ColorBrightRed,
	4: core.ColorBlue,
	5: core.ColorRed,
	6: core.ColorTeal,
	7: core.ColorWhite,
	8: core.ColorGray,
}

// Game implements Minesweeper.
type Game struct {
	cfg config.MinesweeperConfig

	moves  uint64
	board  *Board
	cursor core.Point
	status core.Status
}

// New creates a Minesweeper game with the given configuration.
func New(cfg config.MinesweeperConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "minesweeper",
		Title:    "Minesweeper",
		Controls: "click to reveal, right-click to flag, arrows + space",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.Minesweeper()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "minesweeper" }

// Title returns the display name.
func (g *Game) Title() string { return "Minesweeper" }

// Cadence is event driven; the host only redraws between inputs.
func (g *Game) Cadence() core.Cadence { return core.Cadence{Mode: core.CadenceEvent} }

// Reset lays out a fresh minefield.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(runtime.Seed))
	g.board = NewBoard(g.cfg.Grid.Cols, g.cfg.Grid.Rows, g.cfg.Mines, rng)
	g.moves = 0
	g.cursor = core.Point{X: g.cfg.Grid.Cols / 2, Y: g.cfg.Grid.Rows / 2}
	g.status = core.StatusRunning
}

// HandleInput reveals or flags cells and moves the keyboard cursor.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.status.Terminal() {
		return
	}
	switch ev.Kind {
	case core.EventKeyDown:
		g.handleKey(ev.Key)
	case core.EventPointerDown:
		p, ok := g.cellAt(ev.Pos)
		if !ok {
			return
		}
		g.cursor = p
		if ev.Button == core.ButtonRight {
			g.ToggleFlag(p)
		} else {
			g.Reveal(p)
		}
	}
}

func (g *Game) handleKey(k core.Key) {
	d := core.Point{}
	switch k {
	case core.KeyLeft:
		d.X = -1
	case core.KeyRight:
		d.X = 1
	case core.KeyUp:
		d.Y = -1
	case core.KeyDown:
		d.Y = 1
	case core.KeySpace:
		g.Reveal(g.cursor)
		return
	default:
		return
	}
	c := g.cursor.Add(d)
	g.cursor = core.Point{
		X: core.Clamp(c.X, 0, g.board.Cols()-1),
		Y: core.Clamp(c.Y, 0, g.board.Rows()-1),
	}
}

// cellAt maps a world position to a board cell.
func (g *Game) cellAt(pos core.Vec) (core.Point, bool) {
	if pos.X < 0 || pos.Y < hudHeight {
		return core.Point{}, false
	}
	p := core.Point{X: int(pos.X / CellSize), Y: int((pos.Y - hudHeight) / CellSize)}
	return p, p.In(g.board.Cols(), g.board.Rows())
}

// Reveal uncovers p. Flagged and already revealed cells are ignored.
// Hitting a mine uncovers every mine and loses the game.
func (g *Game) Reveal(p core.Point) {
	if g.status.Terminal() {
		return
	}
	opened := g.board.Reveal(p)
	if len(opened) == 0 {
		return
	}
	g.moves++
	if g.board.At(p).Mine {
		g.board.RevealMines()
		g.status = core.StatusLost
		return
	}
	if g.board.CoveredSafe() == 0 {
		g.status = core.StatusWon
	}
}

// ToggleFlag flags or unflags a covered cell.
func (g *Game) ToggleFlag(p core.Point) {
	if g.status.Terminal() {
		return
	}
	g.board.ToggleFlag(p)
}

// Step only reports state; all changes happen in HandleInput.
func (g *Game) Step(_ core.InputFrame) core.StepResult {
	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the number of
// uncovered safe cells.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.board.RevealedSafe(), Status: g.status}
}

// Board returns the minefield.
func (g *Game) Board() *Board { return g.board }

// MinesLeft is the mine count minus placed flags.
func (g *Game) MinesLeft() int {
	return g.board.Mines() - g.board.Flags()
}

// Render draws the counters and the field.
func (g *Game) Render(dst *core.Frame) {
	b := g.board
	w := float64(b.Cols() * CellSize)
	h := float64(b.Rows()*CellSize + hudHeight)
	dst.Reset(w, h, core.ColorNavy)

	dst.DrawText(2, 4, fmt.Sprintf("MINES %d", g.MinesLeft()), core.ColorBrightWhite)

	for y := range b.Rows() {
		for x := range b.Cols() {
			g.drawCell(dst, core.Point{X: x, Y: y})
		}
	}

	switch g.status {
	case core.StatusWon:
		dst.DrawTextCentered(h/2, "YOU WIN!", core.ColorBrightGreen)
	case core.StatusLost:
		dst.DrawTextCentered(h/2, "BOOM!", core.ColorBrightRed)
	}
}

func (g *Game) drawCell(dst *core.Frame, p core.Point) {
	c := g.board.At(p)
	x := float64(p.X * CellSize)
	y := float64(p.Y*CellSize + hudHeight)
	r := core.NewRect(x+1, y+1, CellSize-2, CellSize-2)
	center := r.Center()

	switch {
	case !c.Revealed:
		color := core.ColorGray
		if p == g.cursor && !g.status.Terminal() {
			color = core.ColorBrightWhite
		}
		dst.FillRect(r, color, '▒')
		if c.Flagged {
			dst.DrawText(center.X, center.Y, "⚑", core.ColorBrightRed)
		}
	case c.Mine:
		dst.FillRect(r, core.ColorRed, '█')
		dst.DrawText(center.X, center.Y, "*", core.ColorBrightWhite)
	default:
		color := core.ColorDefault
		if p == g.cursor && !g.status.Terminal() {
			color = core.ColorTeal
		}
		dst.FillRect(r, color, ' ')
		if c.Adjacent > 0 {
			dst.DrawText(center.X, center.Y, strconv.Itoa(c.Adjacent), numberColors[c.Adjacent])
		}
	}
}
