// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import "time"

// World is the size of a continuous play field in world units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Grid is the size of a discrete board in cells.
type Grid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	World  World          `yaml:"world"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks"`
}

// BreakoutPaddle defines the player paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // gap between paddle bottom and world bottom
	Speed        float64 `yaml:"speed"`
}

// BreakoutBall defines the ball and how the paddle steers it.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
	Steer  float64 `yaml:"steer"` // horizontal speed range produced by paddle offset
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Height float64 `yaml:"height"`
	Top    float64 `yaml:"top"`
	Points int     `yaml:"points"`
}

// FlappyConfig contains all configuration for Flappy Bird.
type FlappyConfig struct {
	World   World         `yaml:"world"`
	Physics FlappyPhysics `yaml:"physics"`
	Bird    FlappyBird    `yaml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
}

// FlappyBird defines the bird.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// FlappyPipes defines pipe generation and scrolling.
type FlappyPipes struct {
	Width       float64 `yaml:"width"`
	Gap         float64 `yaml:"gap"`
	Speed       float64 `yaml:"speed"`
	SpawnEvery  int     `yaml:"spawn_every"` // ticks
	MinTop      float64 `yaml:"min_top"`
	BottomSlack float64 `yaml:"bottom_slack"` // space kept free below the lowest possible gap
	CullMargin  float64 `yaml:"cull_margin"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	World    World        `yaml:"world"`
	Paddle   PongPaddle   `yaml:"paddle"`
	Ball     PongBall     `yaml:"ball"`
	AI       PongAI       `yaml:"ai"`
	Gameplay PongGameplay `yaml:"gameplay"`
}

// PongPaddle defines both paddles.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Inset  float64 `yaml:"inset"` // distance from the side walls
	Speed  float64 `yaml:"speed"`
}

// PongBall defines ball physics.
type PongBall struct {
	Radius      float64 `yaml:"radius"`
	SpeedX      float64 `yaml:"speed_x"`
	SpeedY      float64 `yaml:"speed_y"`
	ServeX      float64 `yaml:"serve_x"`
	ServeSpread float64 `yaml:"serve_spread"` // vertical serve speed range
	Accel       float64 `yaml:"accel"`        // horizontal speed multiplier per hit
	Spin        float64 `yaml:"spin"`         // vertical kick per unit of offset from paddle center
	MaxSpeed    float64 `yaml:"max_speed"`
}

// PongAI defines the computer paddle.
type PongAI struct {
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid     Grid          `yaml:"grid"`
	Start    SnakeStart    `yaml:"start"`
	Gameplay SnakeGameplay `yaml:"gameplay"`
}

// SnakeStart is the opening position.
type SnakeStart struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	DirX  int `yaml:"dir_x"`
	DirY  int `yaml:"dir_y"`
	FoodX int `yaml:"food_x"`
	FoodY int `yaml:"food_y"`
}

// SnakeGameplay defines speed and scoring.
type SnakeGameplay struct {
	MoveEvery  time.Duration `yaml:"move_every"`
	FoodPoints int           `yaml:"food_points"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Grid     Grid           `yaml:"grid"`
	Gameplay TetrisGameplay `yaml:"gameplay"`
}

// TetrisGameplay defines gravity and scoring.
type TetrisGameplay struct {
	Gravity      time.Duration `yaml:"gravity"`
	LinePoints   int           `yaml:"line_points"`
	SpawnOffsetX int           `yaml:"spawn_offset_x"` // spawn column relative to the board center
}

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Grid  Grid `yaml:"grid"`
	Mines int  `yaml:"mines"`
}

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Size       int     `yaml:"size"`
	StartTiles int     `yaml:"start_tiles"`
	FourChance float64 `yaml:"four_chance"`
	SwipeMin   float64 `yaml:"swipe_min"` // minimum pointer travel in world units
	TileSize   float64 `yaml:"tile_size"` // world units per tile
}
