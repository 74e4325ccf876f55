package breakout

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only so two snapshots compare with ==.
type Snapshot struct {
	Tick    uint64
	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	Score   int
	Status  core.Status
	Bricks  uint64 // bit i set when brick i is alive
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	var mask uint64
	for i, b := range g.bricks {
		if b.Alive && i < 64 {
			mask |= 1 << uint(i)
		}
	}
	return Snapshot{
		Tick:    g.tick,
		PaddleX: g.paddleX,
		BallX:   g.ball.X,
		BallY:   g.ball.Y,
		BallVX:  g.vel.X,
		BallVY:  g.vel.Y,
		Score:   g.score,
		Status:  g.status,
		Bricks:  mask,
	}
}
