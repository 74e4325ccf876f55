package config

import (
	"testing"
	"time"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    Preset
		wantErr bool
	}{
		{"", PresetNormal, false},
		{"normal", PresetNormal, false},
		{"easy", PresetEasy, false},
		{"hard", PresetHard, false},
		{"insane", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestPresetsScaleDifficulty(t *testing.T) {
	s := newTestStore(t)

	s.SetPreset(PresetHard)
	hardSnake, _ := s.Snake()
	hardMines, _ := s.Minesweeper()

	s.SetPreset(PresetEasy)
	easySnake, _ := s.Snake()
	easyMines, _ := s.Minesweeper()

	if hardSnake.Gameplay.MoveEvery >= 120*time.Millisecond {
		t.Errorf("hard snake should be faster, got %v", hardSnake.Gameplay.MoveEvery)
	}
	if easySnake.Gameplay.MoveEvery <= 120*time.Millisecond {
		t.Errorf("easy snake should be slower, got %v", easySnake.Gameplay.MoveEvery)
	}
	if hardMines.Mines <= easyMines.Mines {
		t.Errorf("hard should have more mines: hard=%d easy=%d", hardMines.Mines, easyMines.Mines)
	}
}

func TestNormalPresetKeepsDefaults(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.ApplyPreset(PresetNormal)
	if cfg != DefaultPongConfig() {
		t.Errorf("normal preset changed the config")
	}
}
