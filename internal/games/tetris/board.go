package tetris

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Board is the grid of settled blocks. ColorDefault marks an empty cell.
type Board struct {
	cols, rows int
	cells      [][]core.Color
}

// LockResult reports what happened when a piece was merged.
type LockResult struct {
	// Cleared lists the removed rows, top to bottom, as indices into the
	// board before removal.
	Cleared []int
	// Overflow is set when part of the piece was still above the board.
	Overflow bool
}

// NewBoard returns an empty cols×rows board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.cells = make([][]core.Color, rows)
	for r := range b.cells {
		b.cells[r] = make([]core.Color, cols)
	}
	return b
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// At returns the cell at (x, y), or ColorDefault outside the board.
func (b *Board) At(x, y int) core.Color {
	if !(core.Point{X: x, Y: y}).In(b.cols, b.rows) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Set fills the cell at (x, y). Out of range writes are dropped.
func (b *Board) Set(x, y int, c core.Color) {
	if !(core.Point{X: x, Y: y}).In(b.cols, b.rows) {
		return
	}
	b.cells[y][x] = c
}

// Collides reports whether p overlaps a wall, the floor or a settled
// block. Blocks above the top edge only collide with the side walls.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Blocks() {
		if c.X < 0 || c.X >= b.cols || c.Y >= b.rows {
			return true
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != core.ColorDefault {
			return true
		}
	}
	return false
}

// Lock merges p into the board and clears completed rows.
func (b *Board) Lock(p Piece) LockResult {
	var res LockResult
	for _, c := range p.Blocks() {
		if c.Y < 0 {
			res.Overflow = true
			continue
		}
		b.Set(c.X, c.Y, p.Color)
	}
	if res.Overflow {
		return res
	}
	res.Cleared = b.ClearLines()
	return res
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// ClearLines removes full rows, shifts the rows above down and inserts
// empty rows at the top. It returns the removed row indices.
func (b *Board) ClearLines() []int {
	var cleared []int
	kept := make([][]core.Color, 0, b.rows)
	for y := range b.rows {
		if b.RowFull(y) {
			cleared = append(cleared, y)
			continue
		}
		kept = append(kept, b.cells[y])
	}
	if len(cleared) == 0 {
		return nil
	}
	fresh := make([][]core.Color, len(cleared), b.rows)
	for i := range fresh {
		fresh[i] = make([]core.Color, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

// Filled counts settled blocks.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != core.ColorDefault {
				n++
			}
		}
	}
	return n
}
