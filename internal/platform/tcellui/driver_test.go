package tcellui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/snake"
)

func newDriver(t *testing.T) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)
	d := New(screen, Options{Seed: 7})
	t.Cleanup(func() {
		d.Close()
		screen.Fini()
	})
	return d, screen
}

func contents(s tcell.SimulationScreen) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			sb.WriteByte('\n')
		}
		if len(c.Runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(string(c.Runes))
	}
	return sb.String()
}

func TestPlayDrawsFrame(t *testing.T) {
	d, screen := newDriver(t)
	if err := d.Play("snake"); err != nil {
		t.Fatalf("play: %v", err)
	}
	out := contents(screen)
	if !strings.Contains(out, "Snake") {
		t.Error("status line should show the game title")
	}
	if !strings.Contains(out, "█") {
		t.Error("the snake should be drawn")
	}
}

func TestPlayUnknownGame(t *testing.T) {
	d, _ := newDriver(t)
	if err := d.Play("nope"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestKeysReachHost(t *testing.T) {
	d, _ := newDriver(t)
	if err := d.Play("snake"); err != nil {
		t.Fatal(err)
	}

	d.Handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if !d.Host().Sampler().IsHeld(core.KeyDown) {
		t.Error("down arrow should be held")
	}

	d.Handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if !d.Host().Paused() {
		t.Error("p should pause")
	}

	if !d.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should request quit")
	}
}

func TestMouseClickBecomesPointerDown(t *testing.T) {
	d, _ := newDriver(t)
	if err := d.Play("snake"); err != nil {
		t.Fatal(err)
	}
	col, row := d.viewport.ToCell(core.Vec{X: 100, Y: 100})

	d.Handle(tcell.NewEventMouse(col, row+statusRows, tcell.Button1, tcell.ModNone))

	p, ok := d.Host().Sampler().PointerPosition()
	if !ok {
		t.Fatal("pointer not recorded")
	}
	if c, r := d.viewport.ToCell(p); c != col || r != row {
		t.Errorf("pointer %+v lands in (%d,%d), expected (%d,%d)", p, c, r, col, row)
	}
}

func TestLoopTicksAndStops(t *testing.T) {
	d, _ := newDriver(t)
	if err := d.Play("snake"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	if err := d.Loop(ctx); err != nil {
		t.Fatalf("loop: %v", err)
	}

	if !d.Host().Running() {
		t.Error("the clock should still be running when the loop returns")
	}
	if d.Host().Game().(interface{ Body() []core.Point }).Body()[0].X == 8 {
		t.Error("the snake should have moved during the loop")
	}
}
