package flappy

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Pipe is a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X    float64 // left edge
	TopH float64 // height of the upper pipe; the gap starts here
}

// TopRect returns the upper pipe.
func (p Pipe) TopRect(c config.FlappyPipes) core.Rect {
	return core.NewRect(p.X, 0, c.Width, p.TopH)
}

// BottomRect returns the lower pipe down to the floor.
func (p Pipe) BottomRect(c config.FlappyPipes, worldH float64) core.Rect {
	y := p.TopH + c.Gap
	return core.NewRect(p.X, y, c.Width, worldH-y)
}

// PipeManager spawns, scrolls and culls pipes.
type PipeManager struct {
	pipes  []Pipe
	rng    *rand.Rand
	cfg    config.FlappyPipes
	worldW float64
	worldH float64
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		pipes:  make([]Pipe, 0, 8),
		cfg:    cfg.Pipes,
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// Update runs one tick of pipe logic for the given frame number: spawn on
// the spawn interval, scroll, count pipes whose right edge crossed birdX
// during this tick, then cull pipes that left the screen.
func (pm *PipeManager) Update(frame uint64, birdX float64) (passed int) {
	c := pm.cfg
	if c.SpawnEvery > 0 && frame%uint64(c.SpawnEvery) == 0 {
		pm.spawn()
	}

	for i := range pm.pipes {
		pm.pipes[i].X -= c.Speed
	}

	for _, p := range pm.pipes {
		right := p.X + c.Width
		if right < birdX && right >= birdX-c.Speed {
			passed++
		}
	}

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+c.Width > -c.CullMargin {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept

	return passed
}

func (pm *PipeManager) spawn() {
	c := pm.cfg
	span := max(0, pm.worldH-c.Gap-c.MinTop-c.BottomSlack)
	pm.pipes = append(pm.pipes, Pipe{
		X:    pm.worldW,
		TopH: c.MinTop + pm.rng.Float64()*span,
	})
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Collides reports whether a bird at center (x, y) with radius r overlaps
// a pipe. The test uses the bird's bounding box, matching the pipes'
// axis-aligned shape.
func (pm *PipeManager) Collides(x, y, r float64) bool {
	c := pm.cfg
	for _, p := range pm.pipes {
		if x+r > p.X && x-r < p.X+c.Width {
			if y-r < p.TopH || y+r > p.TopH+c.Gap {
				return true
			}
		}
	}
	return false
}
