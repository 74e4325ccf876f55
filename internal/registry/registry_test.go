package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Cadence() core.Cadence { return core.FrameCadence() }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Frame) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub"}, func(*config.Store) (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("stub should be registered")
	}
	g, err := Create("zz_stub", nil)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist", nil)
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	f := func(*config.Store) (Game, error) { return &stubGame{id: "zz_dup"}, nil }
	Register(GameInfo{ID: "zz_dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, f)
}
