package core

import "math"

// CellAspect is how many times taller than wide a terminal cell is.
const CellAspect = 2.0

// DefaultGlyph fills shapes that carry no glyph hint.
const DefaultGlyph = '█'

// Viewport maps a world of WorldW×WorldH units onto a Cols×Rows character
// grid, keeping the world's proportions and centering it.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int

	unit       float64 // world units per column; a row is unit*CellAspect
	offX, offY int
	usedCols   int
	usedRows   int
}

// NewViewport fits the world into the grid.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	v := Viewport{WorldW: worldW, WorldH: worldH, Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return v
	}
	v.unit = math.Max(worldW/float64(cols), worldH/(float64(rows)*CellAspect))
	v.usedCols = min(cols, int(math.Ceil(worldW/v.unit-1e-9)))
	v.usedRows = min(rows, int(math.Ceil(worldH/(v.unit*CellAspect)-1e-9)))
	v.offX = (cols - v.usedCols) / 2
	v.offY = (rows - v.usedRows) / 2
	return v
}

// Valid reports whether the viewport has a usable area.
func (v Viewport) Valid() bool {
	return v.unit > 0 && v.usedCols > 0 && v.usedRows > 0
}

// Area returns the cell rectangle the world occupies: origin and size.
func (v Viewport) Area() (x, y, w, h int) {
	return v.offX, v.offY, v.usedCols, v.usedRows
}

// ToCell maps a world position to the cell that contains it.
func (v Viewport) ToCell(p Vec) (col, row int) {
	if !v.Valid() {
		return 0, 0
	}
	col = v.offX + int(math.Floor(p.X/v.unit))
	row = v.offY + int(math.Floor(p.Y/(v.unit*CellAspect)))
	return col, row
}

// ToWorld maps a cell to the world position of its center. The result may
// lie outside the world when the cell is in the letterbox.
func (v Viewport) ToWorld(col, row int) Vec {
	if !v.Valid() {
		return Vec{}
	}
	return Vec{
		X: (float64(col-v.offX) + 0.5) * v.unit,
		Y: (float64(row-v.offY) + 0.5) * v.unit * CellAspect,
	}
}

// InWorld reports whether a cell lies over the play surface.
func (v Viewport) InWorld(col, row int) bool {
	return col >= v.offX && col < v.offX+v.usedCols && row >= v.offY && row < v.offY+v.usedRows
}

// Rasterize paints a frame into s. Each shape covers the cells whose
// centers it contains; a shape too small to cover any center still marks
// the cell under its own center so fast small objects never vanish.
func (v Viewport) Rasterize(f *Frame, s *Screen) {
	s.Clear()
	if f == nil || !v.Valid() {
		return
	}

	bg := Cell{Rune: ' ', Bg: f.Background}
	for row := v.offY; row < v.offY+v.usedRows; row++ {
		for col := v.offX; col < v.offX+v.usedCols; col++ {
			s.SetCell(col, row, bg)
		}
	}

	for _, sh := range f.Shapes {
		v.fillShape(sh, s, f.Background)
	}

	for _, t := range f.Texts {
		col, row := v.ToCell(Vec{X: t.X, Y: t.Y})
		if t.Centered {
			col -= len([]rune(t.Value)) / 2
		}
		s.DrawText(col, row, t.Value, t.Color)
	}
}

func (v Viewport) fillShape(sh Shape, s *Screen, bg Color) {
	glyph := sh.Glyph
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	cell := Cell{Rune: glyph, Color: sh.Color, Bg: bg}

	var bounds Rect
	var center Vec
	switch sh.Kind {
	case ShapeCircle:
		c := Circle{C: Vec{X: sh.X, Y: sh.Y}, R: sh.W}
		bounds = c.Bounds()
		center = c.C
	default:
		bounds = Rect{X: sh.X, Y: sh.Y, W: sh.W, H: sh.H}
		center = bounds.Center()
	}

	c0, r0 := v.ToCell(Vec{X: bounds.X, Y: bounds.Y})
	c1, r1 := v.ToCell(Vec{X: bounds.Right(), Y: bounds.Bottom()})
	hit := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !v.InWorld(col, row) {
				continue
			}
			p := v.ToWorld(col, row)
			if !covers(sh, p) {
				continue
			}
			s.SetCell(col, row, cell)
			hit = true
		}
	}
	if !hit {
		col, row := v.ToCell(center)
		if v.InWorld(col, row) {
			s.SetCell(col, row, cell)
		}
	}
}

func covers(sh Shape, p Vec) bool {
	if sh.Kind == ShapeCircle {
		dx, dy := p.X-sh.X, p.Y-sh.Y
		return dx*dx+dy*dy <= sh.W*sh.W
	}
	return p.X >= sh.X && p.X < sh.X+sh.W && p.Y >= sh.Y && p.Y < sh.Y+sh.H
}
