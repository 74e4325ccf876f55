package snake

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Status   core.Status
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	head := g.body[0]
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.body),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.dir,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Status:   g.status,
	}
}
