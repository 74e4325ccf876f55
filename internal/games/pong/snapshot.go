package pong

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Snapshot contains the complete state of a Pong game.
// Uses primitive types only so two snapshots compare with ==.
type Snapshot struct {
	Tick        uint64
	PlayerY     float64
	AIY         float64
	BallX       float64
	BallY       float64
	BallVX      float64
	BallVY      float64
	PlayerScore int
	AIScore     int
	Status      core.Status
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		PlayerY:     g.playerY,
		AIY:         g.aiY,
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		BallVX:      g.vel.X,
		BallVY:      g.vel.Y,
		PlayerScore: g.playerScore,
		AIScore:     g.aiScore,
		Status:      g.status,
	}
}
