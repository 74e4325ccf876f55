package core

// ShapeKind distinguishes filled primitives in a Frame.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is one filled primitive in world units.
// For circles X, Y is the center and W is the radius.
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	W, H  float64
	Color Color
	Glyph rune // hint for character surfaces; 0 means a solid block
}

// Text is an overlay string anchored at a world position.
// Centered texts use X as the horizontal midpoint.
type Text struct {
	X, Y     float64
	Value    string
	Color    Color
	Centered bool
}

// Frame is the draw command a game emits once per tick: a background
// fill, filled shapes in painter's order and text overlays on top.
// It says nothing about how a surface turns it into pixels or cells.
type Frame struct {
	Width, Height float64 // world extents
	Background    Color
	Shapes        []Shape
	Texts         []Text
}

// NewFrame returns an empty frame for a world of the given size.
func NewFrame(w, h float64) *Frame {
	return &Frame{Width: w, Height: h}
}

// Reset clears the frame for reuse, keeping allocated capacity.
func (f *Frame) Reset(w, h float64, bg Color) {
	f.Width, f.Height = w, h
	f.Background = bg
	f.Shapes = f.Shapes[:0]
	f.Texts = f.Texts[:0]
}

// FillRect queues a filled rectangle.
func (f *Frame) FillRect(r Rect, c Color, glyph rune) {
	f.Shapes = append(f.Shapes, Shape{Kind: ShapeRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c, Glyph: glyph})
}

// FillCircle queues a filled disc.
func (f *Frame) FillCircle(center Vec, radius float64, c Color, glyph rune) {
	f.Shapes = append(f.Shapes, Shape{Kind: ShapeCircle, X: center.X, Y: center.Y, W: radius, Color: c, Glyph: glyph})
}

// DrawText queues a left-aligned text overlay.
func (f *Frame) DrawText(x, y float64, s string, c Color) {
	f.Texts = append(f.Texts, Text{X: x, Y: y, Value: s, Color: c})
}

// DrawTextCentered queues a text overlay centered on the world's midline.
func (f *Frame) DrawTextCentered(y float64, s string, c Color) {
	f.Texts = append(f.Texts, Text{X: f.Width / 2, Y: y, Value: s, Color: c, Centered: true})
}
