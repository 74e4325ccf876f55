package t2048

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Snapshot captures the game state for determinism testing. The board is
// encoded as text so snapshots compare with ==.
type Snapshot struct {
	Moves   uint64
	Score   int
	Board   string
	MaxTile int
	Status  core.Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var sb strings.Builder
	for _, row := range g.board {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}
	return Snapshot{
		Moves:   g.moves,
		Score:   g.score,
		Board:   sb.String(),
		MaxTile: MaxTile(g.board),
		Status:  g.status,
	}
}
