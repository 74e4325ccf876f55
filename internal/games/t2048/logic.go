package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirRight
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// rotations is how many clockwise turns line the direction up with left.
// The enum order matches, so it is the direction value itself.
func (d Direction) rotations() int {
	return int(d)
}

// Board is a square grid of tile values; 0 is empty.
type Board [][]int

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for r := range b {
		b[r] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int { return len(b) }

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both boards hold the same tiles.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for r := range b {
		for c := range b[r] {
			if b[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Sum adds up all tile values.
func (b Board) Sum() int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// slideRow packs a row to the left and merges equal neighbours. A tile
// produced by a merge never merges again in the same move.
// Returns the updated row and the score gained from merges.
func slideRow(row []int) (result []int, score int) {
	result = make([]int, len(row))
	writePos := 0
	mergeable := false

	for _, v := range row {
		if v == 0 {
			continue
		}
		if mergeable && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			mergeable = false
			continue
		}
		result[writePos] = v
		writePos++
		mergeable = true
	}

	return result, score
}

// rotate turns the board 90° clockwise.
func rotate(b Board) Board {
	n := b.Size()
	out := NewBoard(n)
	for r := range n {
		for c := range n {
			out[r][c] = b[n-1-c][r]
		}
	}
	return out
}

// Slide performs a move in the given direction by rotating the board so
// the move points left, sliding every row, and rotating back.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	turns := dir.rotations()
	b := board.Clone()
	for range turns {
		b = rotate(b)
	}

	total := 0
	for r, row := range b {
		var gained int
		b[r], gained = slideRow(row)
		total += gained
	}

	for range (4 - turns) % 4 {
		b = rotate(b)
	}
	return b, total, !b.Equal(board)
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for r, row := range board {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// CanMove returns true if any direction changes the board.
func CanMove(board Board) bool {
	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		if _, _, changed := Slide(board, d); changed {
			return true
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, row := range board {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}
