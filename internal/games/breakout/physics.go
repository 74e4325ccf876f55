package breakout

import (
	"math"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func paddleTop(c config.BreakoutConfig) float64 {
	return c.World.Height - c.Paddle.BottomMargin - c.Paddle.Height
}

// bounceWalls reflects the ball off the side and top walls. The velocity
// is pointed away from the wall rather than negated, so a ball that is
// still overlapping a wall on the next tick does not flip back into it.
func bounceWalls(ball, vel *core.Vec, c config.BreakoutConfig) {
	r := c.Ball.Radius
	if ball.X-r <= 0 {
		vel.X = math.Abs(vel.X)
	} else if ball.X+r >= c.World.Width {
		vel.X = -math.Abs(vel.X)
	}
	if ball.Y-r <= 0 {
		vel.Y = math.Abs(vel.Y)
	}
}

// hitPaddle reports whether a descending ball's bottom lies within the
// paddle's vertical band while its center is over the paddle.
func hitPaddle(ball, vel core.Vec, paddleX float64, c config.BreakoutConfig) bool {
	if vel.Y <= 0 {
		return false
	}
	bottom := ball.Y + c.Ball.Radius
	top := paddleTop(c)
	if bottom < top || bottom > top+c.Paddle.Height {
		return false
	}
	return ball.X >= paddleX && ball.X <= paddleX+c.Paddle.Width
}

// paddleDeflection maps the hit offset along the paddle, 0 at the left
// end and 1 at the right, onto a horizontal speed in [-steer/2, steer/2].
func paddleDeflection(ballX, paddleX float64, c config.BreakoutConfig) float64 {
	offset := (ballX-paddleX)/c.Paddle.Width - 0.5
	return offset * c.Ball.Steer
}

// firstBrickHit returns the index of the first live brick the ball
// touches, or -1. The ball center must lie within the brick's columns and
// its vertical extent must overlap the brick's rows.
func firstBrickHit(ball core.Vec, radius float64, bricks []Brick) int {
	for i, b := range bricks {
		if !b.Alive {
			continue
		}
		r := b.Rect
		if ball.X >= r.X && ball.X <= r.Right() &&
			ball.Y-radius <= r.Bottom() && ball.Y+radius >= r.Y {
			return i
		}
	}
	return -1
}
