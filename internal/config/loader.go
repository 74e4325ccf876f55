package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pocket-arcade/internal/cache"
)

// ErrNoDefault is returned when a game has no embedded default document.
var ErrNoDefault = errors.New("config: no embedded default")

// Store loads game configurations and keeps each one cached until Reload.
//
// Search order for a game id: override path -> ~/.arcade/configs/<id>.yaml
// -> ./configs/<id>.yaml -> embedded default. Files are decoded on top of
// the built-in defaults, so a file only needs the keys it changes.
type Store struct {
	mu        sync.Mutex
	overrides map[string]string
	preset    Preset
	values    map[string]*cache.Value[any]
	userDir   string
	localDir  string
}

// NewStore creates a store with the standard search path.
func NewStore() *Store {
	s := &Store{
		overrides: make(map[string]string),
		values:    make(map[string]*cache.Value[any]),
		preset:    PresetNormal,
		localDir:  "configs",
	}
	if home, err := os.UserHomeDir(); err == nil {
		s.userDir = filepath.Join(home, ".arcade", "configs")
	}
	return s
}

// SetSearchDirs replaces the user and local directories. Empty strings
// disable that step.
func (s *Store) SetSearchDirs(userDir, localDir string) {
	s.mu.Lock()
	s.userDir = userDir
	s.localDir = localDir
	s.mu.Unlock()
	s.Reload()
}

// SetOverride makes id load from path. A missing or malformed override
// is an error rather than a silent fallback.
func (s *Store) SetOverride(id, path string) {
	s.mu.Lock()
	if path == "" {
		delete(s.overrides, id)
	} else {
		s.overrides[id] = path
	}
	v := s.values[id]
	s.mu.Unlock()
	if v != nil {
		v.Invalidate()
	}
}

// SetPreset changes the difficulty preset applied after loading.
func (s *Store) SetPreset(p Preset) {
	s.mu.Lock()
	s.preset = p
	s.mu.Unlock()
	s.Reload()
}

// Preset returns the active difficulty preset.
func (s *Store) Preset() Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preset
}

// Reload invalidates every cached configuration.
func (s *Store) Reload() {
	s.mu.Lock()
	values := make([]*cache.Value[any], 0, len(s.values))
	for _, v := range s.values {
		values = append(values, v)
	}
	s.mu.Unlock()

	for _, v := range values {
		v.Invalidate()
	}
}

// Breakout returns the Breakout configuration.
func (s *Store) Breakout() (BreakoutConfig, error) {
	return load(s, "breakout", DefaultBreakoutConfig)
}

// Flappy returns the Flappy Bird configuration.
func (s *Store) Flappy() (FlappyConfig, error) {
	return load(s, "flappy", DefaultFlappyConfig)
}

// Pong returns the Pong configuration.
func (s *Store) Pong() (PongConfig, error) {
	return load(s, "pong", DefaultPongConfig)
}

// Snake returns the Snake configuration.
func (s *Store) Snake() (SnakeConfig, error) {
	return load(s, "snake", DefaultSnakeConfig)
}

// Tetris returns the Tetris configuration.
func (s *Store) Tetris() (TetrisConfig, error) {
	return load(s, "tetris", DefaultTetrisConfig)
}

// Minesweeper returns the Minesweeper configuration.
func (s *Store) Minesweeper() (MinesweeperConfig, error) {
	return load(s, "minesweeper", DefaultMinesweeperConfig)
}

// T2048 returns the 2048 configuration.
func (s *Store) T2048() (T2048Config, error) {
	return load(s, "t2048", DefaultT2048Config)
}

// load fetches id through the cache. On error the hard-coded default is
// returned alongside the error so callers can still run.
func load[T any](s *Store, id string, def func() T) (T, error) {
	if s == nil {
		cfg := def()
		applyPreset(&cfg, PresetNormal)
		return cfg, nil
	}

	v := s.value(id, func() (any, error) {
		cfg := def()
		if err := s.decode(id, &cfg); err != nil {
			return nil, err
		}
		applyPreset(&cfg, s.Preset())
		return cfg, nil
	})

	got, err := v.Get()
	if err != nil {
		return def(), err
	}
	return got.(T), nil
}

func (s *Store) value(id string, loader func() (any, error)) *cache.Value[any] {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[id]
	if !ok {
		v = cache.New(loader)
		s.values[id] = v
	}
	return v
}

// decode fills out from the first source found on the search path.
func (s *Store) decode(id string, out any) error {
	s.mu.Lock()
	override := s.overrides[id]
	userDir, localDir := s.userDir, s.localDir
	s.mu.Unlock()

	filename := id + ".yaml"

	if override != "" {
		data, err := os.ReadFile(override)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", override, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: parse %s: %w", override, err)
		}
		return nil
	}

	for _, dir := range []string{userDir, localDir} {
		if dir == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	data, err := defaultYAML(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoDefault, id)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config: parse embedded %s: %w", filename, err)
	}
	return nil
}
