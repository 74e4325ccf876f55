package tetris

import (
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Snapshot captures the game state for determinism testing. The board is
// encoded one character per cell so snapshots compare with ==.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lines  int
	Board  string
	Piece  Kind
	PieceX int
	PieceY int
	Status core.Status
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	var sb strings.Builder
	for y := range g.board.Rows() {
		for x := range g.board.Cols() {
			if g.board.At(x, y) == core.ColorDefault {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Lines:  g.lines,
		Board:  sb.String(),
		Piece:  g.piece.Kind,
		PieceX: g.piece.X,
		PieceY: g.piece.Y,
		Status: g.status,
	}
}
