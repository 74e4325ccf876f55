package snake

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var deltas = [...]core.Point{
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirUp:    {X: 0, Y: -1},
}

// Delta returns the one-cell step for d.
func (d Direction) Delta() core.Point {
	return deltas[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	}
	return "unknown"
}

// directionOf maps a unit delta to a direction. Anything else is right.
func directionOf(p core.Point) Direction {
	for d, v := range deltas {
		if v == p {
			return Direction(d)
		}
	}
	return DirRight
}

// keyDirection maps arrow keys to directions.
func keyDirection(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyRight:
		return DirRight, true
	case core.KeyDown:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyUp:
		return DirUp, true
	}
	return 0, false
}
