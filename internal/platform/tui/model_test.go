package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/pong"
)

func newTestModel(t *testing.T, gameID string) *Model {
	t.Helper()
	m := NewModel(Options{Seed: 1, Width: 80, Height: 24}, gameID)
	m.Init()
	t.Cleanup(func() { m.quit() })
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSchedulerDeliver(t *testing.T) {
	s := NewScheduler()
	calls := 0

	s.RequestTick(time.Millisecond, func() { calls++ })
	if s.Take() == nil {
		t.Fatal("expected a command after RequestTick")
	}
	if s.Take() != nil {
		t.Error("Take should hand out the command once")
	}

	stale := tickMsg{gen: s.gen}
	s.RequestTick(time.Millisecond, func() { calls += 10 })
	if s.Deliver(stale) {
		t.Error("a replaced request must not run")
	}
	if !s.Deliver(tickMsg{gen: s.gen}) || calls != 10 {
		t.Errorf("calls = %d, expected 10", calls)
	}
	if s.Deliver(tickMsg{gen: s.gen}) {
		t.Error("a tick runs at most once")
	}

	s.RequestTick(time.Millisecond, func() { calls++ })
	gen := s.gen
	s.Cancel()
	if s.Deliver(tickMsg{gen: gen}) || s.Pending() || s.Take() != nil {
		t.Error("Cancel should drop the pending tick")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(1, 1, "hi", core.ColorRed)

	out := RenderScreen(s)

	if !strings.Contains(out, "hi") {
		t.Errorf("output %q lacks the text", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("%d line breaks, expected 2", n)
	}
}

func TestGameKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"wasd right", keyMsg("d"), core.KeyRight, true},
		{"wasd down", keyMsg("s"), core.KeyDown, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, true},
		{"unmapped", keyMsg("x"), core.KeyNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.GameKey(tc.msg)
			if got != tc.want || ok != tc.ok {
				t.Errorf("GameKey() = %v, %v; expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPlayStartsHost(t *testing.T) {
	m := newTestModel(t, "pong")

	if m.mode != modePlay || m.manager.Current() == nil {
		t.Fatal("expected pong to be mounted")
	}
	if !m.sched.Pending() {
		t.Fatal("clock should have requested a tick")
	}
	if strings.TrimSpace(m.screen.String()) == "" {
		t.Error("the first frame should be drawn on start")
	}
	if !strings.Contains(m.View(), "Pong") {
		t.Error("status line should show the title")
	}
}

func TestTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, "pong")
	before := m.manager.Current().Summary()

	_, cmd := m.Update(tickMsg{gen: m.sched.gen})

	if cmd == nil || !m.sched.Pending() {
		t.Error("the next tick should be requested after a step")
	}
	if m.manager.Current().Summary().IsOver != before.IsOver {
		t.Error("one tick should not end the match")
	}
}

func TestKeyPublishesInput(t *testing.T) {
	m := newTestModel(t, "pong")
	m.Update(tea.KeyMsg{Type: tea.KeyUp})

	if !m.manager.Current().Sampler().IsHeld(core.KeyUp) {
		t.Error("up should be held right after the key press")
	}
}

func TestMouseMapsToWorld(t *testing.T) {
	m := newTestModel(t, "pong")
	if !m.viewport.Valid() {
		t.Fatal("viewport should be set by the first frame")
	}
	col, row := m.viewport.ToCell(core.Vec{X: 160, Y: 160})

	m.Update(tea.MouseMsg{X: col, Y: row + headerRows, Action: tea.MouseActionMotion})

	p, ok := m.manager.Current().Sampler().PointerPosition()
	if !ok {
		t.Fatal("pointer position not recorded")
	}
	if c, r := m.viewport.ToCell(p); c != col || r != row {
		t.Errorf("pointer %+v maps to cell (%d,%d), expected (%d,%d)", p, c, r, col, row)
	}
}

func TestPauseToggle(t *testing.T) {
	m := newTestModel(t, "pong")
	h := m.manager.Current()

	m.Update(keyMsg("p"))
	if !h.Paused() || m.sched.Pending() {
		t.Fatal("p should pause and cancel the pending tick")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("status line should say paused")
	}

	_, cmd := m.Update(keyMsg("p"))
	if h.Paused() || cmd == nil {
		t.Error("second p should resume and schedule a tick")
	}
}

func TestMenuSelectAndBack(t *testing.T) {
	m := newTestModel(t, "")
	if m.mode != modeMenu {
		t.Fatal("expected the menu without a game id")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modePlay || m.manager.Current() == nil {
		t.Fatal("enter should start the highlighted game")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeMenu || m.manager.Current() != nil {
		t.Error("esc should stop the game and return to the menu")
	}
	if m.sched.Pending() {
		t.Error("no tick may stay scheduled after leaving a game")
	}
}

func TestQuitReleasesEverything(t *testing.T) {
	m := newTestModel(t, "pong")

	_, cmd := m.Update(keyMsg("q"))

	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.manager.Current() != nil || m.sched.Pending() {
		t.Error("host should be stopped on quit")
	}
	if n := m.bus.Len(); n != 0 {
		t.Errorf("%d subscriptions left on the bus", n)
	}
}
