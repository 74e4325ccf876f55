package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.SetSearchDirs("", "")
	return s
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	s := newTestStore(t)

	breakout, err := s.Breakout()
	if err != nil {
		t.Fatalf("Breakout() error: %v", err)
	}
	if breakout != DefaultBreakoutConfig() {
		t.Errorf("embedded breakout differs from default:\n%+v\n%+v", breakout, DefaultBreakoutConfig())
	}

	flappy, _ := s.Flappy()
	if flappy != DefaultFlappyConfig() {
		t.Errorf("embedded flappy differs from default")
	}
	pong, _ := s.Pong()
	if pong != DefaultPongConfig() {
		t.Errorf("embedded pong differs from default")
	}
	snake, _ := s.Snake()
	if snake != DefaultSnakeConfig() {
		t.Errorf("embedded snake differs from default")
	}
	tetris, _ := s.Tetris()
	if tetris != DefaultTetrisConfig() {
		t.Errorf("embedded tetris differs from default")
	}
	mines, _ := s.Minesweeper()
	if mines != DefaultMinesweeperConfig() {
		t.Errorf("embedded minesweeper differs from default")
	}
	t2048, _ := s.T2048()
	if t2048 != DefaultT2048Config() {
		t.Errorf("embedded 2048 differs from default")
	}
}

func TestOverridePartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  move_every: 80ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := newTestStore(t)
	s.SetOverride("snake", path)

	cfg, err := s.Snake()
	if err != nil {
		t.Fatalf("Snake() error: %v", err)
	}
	if cfg.Gameplay.MoveEvery != 80*time.Millisecond {
		t.Errorf("MoveEvery = %v, expected 80ms", cfg.Gameplay.MoveEvery)
	}
	if cfg.Grid.Cols != 20 || cfg.Gameplay.FoodPoints != 10 {
		t.Errorf("untouched keys should keep defaults: %+v", cfg)
	}
}

func TestOverrideMissingFileFails(t *testing.T) {
	s := newTestStore(t)
	s.SetOverride("pong", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := s.Pong()
	if err == nil {
		t.Fatal("expected an error for a missing override")
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("failed load should still hand back defaults")
	}
}

func TestLocalDirIsSearched(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "minesweeper.yaml"), []byte("mines: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	s.SetSearchDirs("", dir)

	cfg, err := s.Minesweeper()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mines != 20 {
		t.Errorf("Mines = %d, expected 20 from local dir", cfg.Mines)
	}
}

func TestStoreCachesUntilReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	write := func(body string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	write("gameplay:\n  gravity: 400ms\n")
	s := newTestStore(t)
	s.SetOverride("tetris", path)

	first, _ := s.Tetris()
	write("gameplay:\n  gravity: 200ms\n")
	cached, _ := s.Tetris()
	s.Reload()
	fresh, _ := s.Tetris()

	if first.Gameplay.Gravity != 400*time.Millisecond || cached.Gameplay.Gravity != 400*time.Millisecond {
		t.Errorf("expected cached 400ms, got %v and %v", first.Gameplay.Gravity, cached.Gameplay.Gravity)
	}
	if fresh.Gameplay.Gravity != 200*time.Millisecond {
		t.Errorf("expected 200ms after Reload, got %v", fresh.Gameplay.Gravity)
	}
}

func TestNilStoreUsesDefaults(t *testing.T) {
	var s *Store
	cfg, err := s.T2048()
	if err != nil || cfg != DefaultT2048Config() {
		t.Errorf("nil store = %+v, %v", cfg, err)
	}
}

func TestUnknownIDHasNoDefault(t *testing.T) {
	s := newTestStore(t)
	var out struct{}
	if err := s.decode("nosuchgame", &out); !errors.Is(err, ErrNoDefault) {
		t.Errorf("decode() error = %v, expected ErrNoDefault", err)
	}
}
