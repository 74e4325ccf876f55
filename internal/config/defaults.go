package config

import (
	"embed"
	"time"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// defaultYAML returns the embedded default document for a game.
func defaultYAML(id string) ([]byte, error) {
	return defaultFS.ReadFile("defaults/" + id + ".yaml")
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: World{Width: 320, Height: 400},
		Paddle: BreakoutPaddle{
			Width:        60,
			Height:       10,
			BottomMargin: 20,
			Speed:        6,
		},
		Ball: BreakoutBall{
			Radius: 5,
			StartX: 160,
			StartY: 360,
			SpeedX: 3,
			SpeedY: -3,
			Steer:  6,
		},
		Bricks: BreakoutBricks{
			Rows:   5,
			Cols:   8,
			Height: 16,
			Top:    40,
			Points: 10,
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{Width: 280, Height: 400},
		Physics: FlappyPhysics{
			Gravity:     0.4,
			FlapImpulse: -6.5,
		},
		Bird: FlappyBird{X: 70, Radius: 12},
		Pipes: FlappyPipes{
			Width:       40,
			Gap:         120,
			Speed:       2.5,
			SpawnEvery:  90,
			MinTop:      50,
			BottomSlack: 50,
			CullMargin:  10,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: World{Width: 320, Height: 320},
		Paddle: PongPaddle{
			Width:  10,
			Height: 60,
			Inset:  10,
			Speed:  5,
		},
		Ball: PongBall{
			Radius:      6,
			SpeedX:      3,
			SpeedY:      2,
			ServeX:      3,
			ServeSpread: 4,
			Accel:       1.05,
			Spin:        0.1,
			MaxSpeed:    8,
		},
		AI:       PongAI{Speed: 3.5, DeadZone: 10},
		Gameplay: PongGameplay{WinScore: 5},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: Grid{Cols: 20, Rows: 20},
		Start: SnakeStart{
			X: 8, Y: 8,
			DirX: 1, DirY: 0,
			FoodX: 12, FoodY: 8,
		},
		Gameplay: SnakeGameplay{
			MoveEvery:  120 * time.Millisecond,
			FoodPoints: 10,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: Grid{Cols: 10, Rows: 20},
		Gameplay: TetrisGameplay{
			Gravity:      500 * time.Millisecond,
			LinePoints:   100,
			SpawnOffsetX: -1,
		},
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Grid:  Grid{Cols: 10, Rows: 10},
		Mines: 15,
	}
}

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Size:       4,
		StartTiles: 2,
		FourChance: 0.1,
		SwipeMin:   30,
		TileSize:   64,
	}
}
