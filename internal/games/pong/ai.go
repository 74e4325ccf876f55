package pong

import "github.com/vovakirdan/pocket-arcade/internal/config"

// trackBall moves the computer paddle toward the ball's height at a fixed
// speed. Inside the dead zone around the paddle center it holds still.
func trackBall(paddleY, ballY float64, c config.PongConfig) float64 {
	center := paddleY + c.Paddle.Height/2
	switch {
	case center < ballY-c.AI.DeadZone:
		paddleY += c.AI.Speed
	case center > ballY+c.AI.DeadZone:
		paddleY -= c.AI.Speed
	}
	return max(0, min(c.World.Height-c.Paddle.Height, paddleY))
}
