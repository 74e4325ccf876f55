package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Cell is one square of the minefield.
type Cell struct {
	Mine     bool
	Adjacent int // mines among the up to 8 neighbours
	Revealed bool
	Flagged  bool
}

// Board holds the minefield. Mines and adjacency counts are fixed when
// the board is created.
type Board struct {
	cols, rows int
	mines      int
	cells      []Cell
}

// NewBoard lays out mines by drawing random cells until the requested
// number of distinct cells holds a mine.
func NewBoard(cols, rows, mines int, rng *rand.Rand) *Board {
	mines = core.Clamp(mines, 0, cols*rows)
	b := &Board{cols: cols, rows: rows, mines: mines, cells: make([]Cell, cols*rows)}
	for placed := 0; placed < mines; {
		i := rng.Intn(len(b.cells))
		if b.cells[i].Mine {
			continue
		}
		b.cells[i].Mine = true
		placed++
	}
	b.countAdjacent()
	return b
}

// NewBoardWithMines builds a board with mines at the given cells.
func NewBoardWithMines(cols, rows int, mines []core.Point) *Board {
	b := &Board{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	for _, p := range mines {
		if p.In(cols, rows) && !b.cells[b.index(p)].Mine {
			b.cells[b.index(p)].Mine = true
			b.mines++
		}
	}
	b.countAdjacent()
	return b
}

func (b *Board) countAdjacent() {
	for y := range b.rows {
		for x := range b.cols {
			p := core.Point{X: x, Y: y}
			n := 0
			for _, q := range b.Neighbors(p) {
				if b.cells[b.index(q)].Mine {
					n++
				}
			}
			b.cells[b.index(p)].Adjacent = n
		}
	}
}

func (b *Board) index(p core.Point) int {
	return p.Y*b.cols + p.X
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Mines returns the number of mines.
func (b *Board) Mines() int { return b.mines }

// At returns the cell at p. Cells outside the board are zero.
func (b *Board) At(p core.Point) Cell {
	if !p.In(b.cols, b.rows) {
		return Cell{}
	}
	return b.cells[b.index(p)]
}

var offsets = []core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Neighbors returns the in-bounds cells around p.
func (b *Board) Neighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, len(offsets))
	for _, o := range offsets {
		if q := p.Add(o); q.In(b.cols, b.rows) {
			out = append(out, q)
		}
	}
	return out
}

// Reveal uncovers p. When p has no adjacent mines, the connected region
// of zero cells and its numbered border are uncovered as well. Flagged
// cells are left alone. It returns the newly revealed cells.
func (b *Board) Reveal(p core.Point) []core.Point {
	if !p.In(b.cols, b.rows) {
		return nil
	}
	start := &b.cells[b.index(p)]
	if start.Revealed || start.Flagged {
		return nil
	}
	start.Revealed = true
	revealed := []core.Point{p}
	if start.Mine || start.Adjacent > 0 {
		return revealed
	}

	stack := []core.Point{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range b.Neighbors(cur) {
			c := &b.cells[b.index(q)]
			if c.Revealed || c.Flagged || c.Mine {
				continue
			}
			c.Revealed = true
			revealed = append(revealed, q)
			if c.Adjacent == 0 {
				stack = append(stack, q)
			}
		}
	}
	return revealed
}

// RevealMines uncovers every mine.
func (b *Board) RevealMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Revealed = true
		}
	}
}

// ToggleFlag flips the flag on a covered cell.
func (b *Board) ToggleFlag(p core.Point) bool {
	if !p.In(b.cols, b.rows) {
		return false
	}
	c := &b.cells[b.index(p)]
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	return true
}

// Flags counts flagged cells.
func (b *Board) Flags() int {
	n := 0
	for _, c := range b.cells {
		if c.Flagged {
			n++
		}
	}
	return n
}

// CoveredSafe counts safe cells that are still hidden.
func (b *Board) CoveredSafe() int {
	n := 0
	for _, c := range b.cells {
		if !c.Mine && !c.Revealed {
			n++
		}
	}
	return n
}

// RevealedSafe counts uncovered safe cells.
func (b *Board) RevealedSafe() int {
	return len(b.cells) - b.mines - b.CoveredSafe()
}
