package config

import (
	"fmt"
	"time"
)

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy, PresetHard:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// presetter is implemented by configs that react to difficulty.
type presetter interface {
	ApplyPreset(p Preset)
}

func applyPreset(cfg any, p Preset) {
	if ps, ok := cfg.(presetter); ok {
		ps.ApplyPreset(p)
	}
}

// ApplyPreset widens or narrows the paddle.
func (c *BreakoutConfig) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.Paddle.Width *= 4.0 / 3.0
	case PresetHard:
		c.Paddle.Width *= 0.75
	}
}

// ApplyPreset opens or closes the pipe gap.
func (c *FlappyConfig) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.Pipes.Gap += 20
	case PresetHard:
		c.Pipes.Gap -= 20
	}
}

// ApplyPreset changes how well the computer paddle keeps up.
func (c *PongConfig) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.AI.Speed *= 0.7
	case PresetHard:
		c.AI.Speed *= 1.3
		c.AI.DeadZone /= 2
	}
}

// ApplyPreset changes the snake's speed.
func (c *SnakeConfig) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.Gameplay.MoveEvery = scaleDuration(c.Gameplay.MoveEvery, 1.5)
	case PresetHard:
		c.Gameplay.MoveEvery = scaleDuration(c.Gameplay.MoveEvery, 0.7)
	}
}

// ApplyPreset changes the gravity interval.
func (c *TetrisConfig) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.Gameplay.Gravity = scaleDuration(c.Gameplay.Gravity, 1.5)
	case PresetHard:
		c.Gameplay.Gravity = scaleDuration(c.Gameplay.Gravity, 0.6)
	}
}

// ApplyPreset changes the mine density.
func (c *MinesweeperConfig) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.Mines = c.Mines * 2 / 3
	case PresetHard:
		c.Mines = c.Mines * 5 / 3
	}
	c.Mines = max(1, min(c.Mines, c.Grid.Cols*c.Grid.Rows-1))
}

// ApplyPreset changes how often a 4 spawns instead of a 2.
func (c *T2048Config) ApplyPreset(p Preset) {
	switch p {
	case PresetEasy:
		c.FourChance /= 2
	case PresetHard:
		c.FourChance = min(1, c.FourChance*2)
	}
}

func scaleDuration(d time.Duration, k float64) time.Duration {
	return time.Duration(float64(d) * k)
}
