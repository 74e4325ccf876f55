package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tcellui"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, steer or slide
  Space        - Action (flap, hard drop, reveal)
  Mouse        - Paddles follow the pointer, click to flap or reveal
  P            - Pause
  R            - Restart
  Esc/B        - Back to the menu
  Q/Ctrl+C     - Quit

Examples:
  arcade play breakout
  arcade play snake --difficulty hard
  arcade play tetris --renderer tcell
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config for this game")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	return launch(cmd.Context(), gameID, flagConfig)
}

// launch wires config, logging and the chosen renderer, then blocks until
// the player quits. An empty gameID opens the menu.
func launch(ctx context.Context, gameID, configPath string) error {
	interval, err := frameInterval(flagFPS)
	if err != nil {
		return err
	}
	hold, err := holdWindow(flagHold)
	if err != nil {
		return err
	}
	store, err := newStore(flagDifficulty)
	if err != nil {
		return err
	}
	if configPath != "" && gameID != "" {
		store.SetOverride(gameID, configPath)
	}
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("arcade starting",
		"game", gameID,
		"renderer", flagRenderer,
		"fps", flagFPS,
		"difficulty", store.Preset(),
	)

	switch flagRenderer {
	case rendererTUI:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.Run(tui.Options{
			Config:        store,
			Logger:        logger,
			FrameInterval: interval,
			HoldWindow:    hold,
			Seed:          flagSeed,
			Width:         width,
			Height:        height,
		}, gameID)

	case rendererTcell:
		if gameID == "" {
			return fmt.Errorf("the tcell renderer has no menu, use 'arcade play <game> --renderer tcell'")
		}
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return tcellui.Run(ctx, tcellui.Options{
			Config:        store,
			Logger:        logger,
			FrameInterval: interval,
			HoldWindow:    hold,
			Seed:          flagSeed,
		}, gameID)

	default:
		return fmt.Errorf("unknown renderer %q (want %s or %s)", flagRenderer, rendererTUI, rendererTcell)
	}
}
