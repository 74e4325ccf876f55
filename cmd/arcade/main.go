// arcade is a terminal arcade: seven small games on one game loop.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--hold <duration>     - How long a key press counts as held (default: 500ms)
//	--difficulty <name>   - easy, normal or hard
//	--renderer <name>     - tui (Bubble Tea) or tcell
//	--log-file <path>     - Write logs to a file (default: no logs)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/host"

	// Import games to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/minesweeper"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/pong"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/t2048"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/tetris"
)

const (
	rendererTUI   = "tui"
	rendererTcell = "tcell"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagHold       time.Duration
	flagDifficulty string
	flagRenderer   string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pocket Arcade - retro games in your terminal",
	Long: `Pocket Arcade plays Breakout, Flappy Bird, Pong, Snake, Tetris,
Minesweeper and 2048 in the terminal, with keyboard and mouse.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu

Examples:
  arcade list
  arcade play tetris
  arcade play pong --difficulty hard
  arcade menu --renderer tui --fps 30`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.DurationVar(&flagHold, "hold", host.DefaultHoldWindow, "How long a key press counts as held; raise it if held keys stutter")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagRenderer, "renderer", rendererTUI, "Renderer: tui or tcell")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// frameInterval converts --fps into the clock interval.
func frameInterval(fps int) (time.Duration, error) {
	if fps <= 0 || fps > 1000 {
		return 0, fmt.Errorf("--fps must be between 1 and 1000, got %d", fps)
	}
	return time.Second / time.Duration(fps), nil
}

// holdWindow validates --hold.
func holdWindow(d time.Duration) (time.Duration, error) {
	if d <= 0 || d > 5*time.Second {
		return 0, fmt.Errorf("--hold must be between 1ms and 5s, got %v", d)
	}
	return d, nil
}

// newLogger builds the logger from --log-file and --log-level. Without a
// file the terminal belongs to the game, so logs are dropped. The returned
// closer releases the file.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           lvl,
		Prefix:          "arcade",
	})
	return logger, f, nil
}

// newStore applies --difficulty to a fresh config store.
func newStore(difficulty string) (*config.Store, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	store := config.NewStore()
	store.SetPreset(preset)
	return store, nil
}
