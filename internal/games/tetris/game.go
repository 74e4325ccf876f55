// Package tetris implements falling-block Tetris. Gravity moves the piece
// down once per fixed interval; player moves arrive as input events.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// CellSize is the side of one board cell in world units.
const CellSize = 16

// Game implements Tetris.
type Game struct {
	cfg config.TetrisConfig
	rng *rand.Rand

	tick   uint64
	board  *Board
	piece  Piece
	score  int
	lines  int
	status core.Status
}

// New creates a Tetris game with the given configuration.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "tetris",
		Title:    "Tetris",
		Controls: "←/→ move, ↓ drop one row, ↑ rotate, space hard drop",
	}, func(cfgs *config.Store) (registry.Game, error) {
		cfg, err := cfgs.Tetris()
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Cadence ticks on the gravity interval.
func (g *Game) Cadence() core.Cadence {
	return core.FixedCadence(g.cfg.Gameplay.Gravity)
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.board = NewBoard(g.cfg.Grid.Cols, g.cfg.Grid.Rows)
	g.score = 0
	g.lines = 0
	g.status = core.StatusRunning
	g.spawn()
}

// spawn places a random piece at the top center. A spawn that already
// overlaps the stack ends the game.
func (g *Game) spawn() {
	k := Kind(g.rng.Intn(int(kindCount)))
	g.piece = NewPiece(k, g.cfg.Grid.Cols/2+g.cfg.Gameplay.SpawnOffsetX, 0)
	if g.board.Collides(g.piece) {
		g.status = core.StatusLost
	}
}

// HandleInput applies a player move.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.status.Terminal() || ev.Kind != core.EventKeyDown {
		return
	}
	switch ev.Key {
	case core.KeyLeft:
		g.Shift(-1)
	case core.KeyRight:
		g.Shift(1)
	case core.KeyDown:
		g.Drop()
	case core.KeyUp:
		g.Rotate()
	case core.KeySpace:
		g.HardDrop()
	}
}

// Shift moves the piece sideways if the target is free.
func (g *Game) Shift(dx int) bool {
	return g.try(g.piece.Moved(dx, 0))
}

// Rotate turns the piece clockwise. A rotation into a wall or block is
// rejected.
func (g *Game) Rotate() bool {
	return g.try(g.piece.Rotated())
}

func (g *Game) try(p Piece) bool {
	if g.status.Terminal() || g.board.Collides(p) {
		return false
	}
	g.piece = p
	return true
}

// Drop moves the piece down one row, locking it when it cannot move.
// It returns the lock result when a lock happened.
func (g *Game) Drop() (LockResult, bool) {
	if g.status.Terminal() {
		return LockResult{}, false
	}
	if g.try(g.piece.Moved(0, 1)) {
		return LockResult{}, false
	}
	return g.lock(), true
}

// HardDrop drops the piece as far as it goes and locks it.
func (g *Game) HardDrop() LockResult {
	if g.status.Terminal() {
		return LockResult{}
	}
	for g.try(g.piece.Moved(0, 1)) {
	}
	return g.lock()
}

func (g *Game) lock() LockResult {
	res := g.board.Lock(g.piece)
	if res.Overflow {
		g.status = core.StatusLost
		return res
	}
	g.lines += len(res.Cleared)
	g.score += len(res.Cleared) * g.cfg.Gameplay.LinePoints
	g.spawn()
	return res
}

// Step applies one gravity tick.
func (g *Game) Step(_ core.InputFrame) core.StepResult {
	if !g.status.Terminal() {
		g.tick++
		g.Drop()
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Status: g.status}
}

// Board returns the settled blocks.
func (g *Game) Board() *Board { return g.board }

// Piece returns the falling piece.
func (g *Game) Piece() Piece { return g.piece }

// Lines returns the number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Render draws the board, the falling piece and the score.
func (g *Game) Render(dst *core.Frame) {
	b := g.board
	w := float64(b.Cols() * CellSize)
	h := float64(b.Rows() * CellSize)
	dst.Reset(w, h, core.ColorNavy)

	for y := range b.Rows() {
		for x := range b.Cols() {
			if c := b.At(x, y); c != core.ColorDefault {
				dst.FillRect(cellRect(x, y), c, '█')
			}
		}
	}
	if !g.status.Terminal() {
		for _, c := range g.piece.Blocks() {
			if c.Y >= 0 {
				dst.FillRect(cellRect(c.X, c.Y), g.piece.Color, '█')
			}
		}
	}

	dst.DrawText(2, 2, fmt.Sprintf("%d", g.score), core.ColorBrightWhite)
	if g.status == core.StatusLost {
		dst.DrawTextCentered(h/2, "GAME OVER", core.ColorBrightRed)
	}
}

func cellRect(x, y int) core.Rect {
	return core.NewRect(float64(x*CellSize), float64(y*CellSize), CellSize, CellSize)
}
