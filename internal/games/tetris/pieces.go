package tetris

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Shape is a piece matrix; true marks a filled block.
type Shape [][]bool

// Kind names a tetromino.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
	kindCount
)

func (k Kind) String() string {
	return "IOTLJSZ"[k : k+1]
}

type tetromino struct {
	rows  []string
	color core.Color
}

var tetrominoes = [kindCount]tetromino{
	KindI: {[]string{"####"}, core.ColorCyan},
	KindO: {[]string{"##", "##"}, core.ColorYellow},
	KindT: {[]string{".#.", "###"}, core.ColorPurple},
	KindL: {[]string{"#.", "#.", "##"}, core.ColorOrange},
	KindJ: {[]string{".#", ".#", "##"}, core.ColorBlue},
	KindS: {[]string{".##", "##."}, core.ColorGreen},
	KindZ: {[]string{"##.", ".##"}, core.ColorRed},
}

// ParseShape builds a shape from rows of '#' and '.'.
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, line := range rows {
		s[r] = make([]bool, len(line))
		for c, ch := range line {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// Rows returns the shape height.
func (s Shape) Rows() int { return len(s) }

// Cols returns the shape width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90° clockwise.
func (s Shape) Rotate() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for c := range cols {
		out[c] = make([]bool, rows)
		for r := range rows {
			out[c][r] = s[rows-1-r][c]
		}
	}
	return out
}

// Cells returns the filled offsets of the shape.
func (s Shape) Cells() []core.Point {
	var cells []core.Point
	for r, row := range s {
		for c, filled := range row {
			if filled {
				cells = append(cells, core.Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// Piece is a falling tetromino anchored at (X, Y) on the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Color core.Color
}

// NewPiece returns a piece of kind k at the given anchor.
func NewPiece(k Kind, x, y int) Piece {
	t := tetrominoes[k]
	return Piece{Kind: k, Shape: ParseShape(t.rows...), X: x, Y: y, Color: t.color}
}

// Blocks returns the board cells covered by the piece.
func (p Piece) Blocks() []core.Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(core.Point{X: p.X, Y: p.Y})
	}
	return cells
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy with the shape turned clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}
