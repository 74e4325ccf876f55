package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/events"
	"github.com/vovakirdan/pocket-arcade/internal/host"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// headerRows is the status line above the play area.
const headerRows = 1

type mode int

const (
	modeMenu mode = iota
	modePlay
)

// Options configures the terminal UI.
type Options struct {
	Config        *config.Store
	Logger        *log.Logger
	FrameInterval time.Duration
	// HoldWindow of zero means host.DefaultHoldWindow.
	HoldWindow    time.Duration
	Seed          int64
	Width, Height int // initial terminal size; updated on resize
}

// Model is the Bubble Tea model for the arcade: a game picker and the
// play screen of the mounted host.
type Model struct {
	opts    Options
	logger  *log.Logger
	sched   *Scheduler
	bus     *events.Bus
	manager *host.Manager
	unsub   func()

	keys KeyMap
	help help.Model
	menu Menu

	mode    mode
	startID string // game launched directly; back quits instead of opening the menu
	info    registry.GameInfo

	screen   *core.Screen
	viewport core.Viewport
	width    int
	height   int
	summary  events.Summary
	quitting bool
	err      error
}

// NewModel creates the UI. With a non-empty gameID the game starts right
// away; otherwise the menu is shown first.
func NewModel(opts Options, gameID string) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sched := NewScheduler()
	bus := events.NewBus()

	m := &Model{
		opts:    opts,
		logger:  logger.WithPrefix("tui"),
		sched:   sched,
		bus:     bus,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		menu:    NewMenu(),
		startID: gameID,
		screen:  core.NewScreen(0, 0),
	}
	m.manager = host.NewManager(host.Options{
		Scheduler:     sched,
		Bus:           bus,
		Logger:        logger,
		FrameInterval: opts.FrameInterval,
		HoldWindow:    opts.HoldWindow,
		Seed:          opts.Seed,
	}, opts.Config)
	m.unsub = bus.Subscribe(events.TopicSummary, func(ev events.Event) {
		if s, ok := ev.(events.Summary); ok {
			m.summary = s
		}
	})
	m.resize(opts.Width, opts.Height)
	if gameID != "" {
		m.menu.Select(gameID)
	}
	return m
}

// Init starts the requested game, if any.
func (m *Model) Init() tea.Cmd {
	if m.startID == "" {
		return nil
	}
	return m.play(m.startID)
}

// Present implements host.Surface by rasterizing the frame into the
// screen buffer that View prints.
func (m *Model) Present(f *core.Frame) {
	m.viewport = core.NewViewport(f.Width, f.Height, m.screen.Width(), m.screen.Height())
	m.viewport.Rasterize(f, m.screen)
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.sched.Deliver(msg)
		return m, m.sched.Take()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeMenu {
			return m.updateMenu(msg)
		}
		return m.updatePlay(msg)

	case tea.MouseMsg:
		if m.mode == modePlay {
			m.handleMouse(msg)
		}
		return m, m.sched.Take()
	}

	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.menu.HandleKey(msg) {
	case MenuActionQuit:
		return m, m.quit()
	case MenuActionSelect:
		it, _ := m.menu.Selected()
		return m, m.play(it.ID)
	}
	return m, nil
}

func (m *Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	h := m.manager.Current()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Back):
		if m.startID != "" {
			return m, m.quit()
		}
		m.manager.Close()
		m.mode = modeMenu
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		h.TogglePause()
	case key.Matches(msg, m.keys.Restart):
		h.Restart()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	default:
		if k, ok := m.keys.GameKey(msg); ok {
			m.bus.Publish(events.Input{InputEvent: core.KeyPress(k)})
		}
	}
	return m, m.sched.Take()
}

// handleMouse maps a terminal cell to world coordinates and publishes it.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-headerRows
	if !m.viewport.InWorld(col, row) {
		return
	}
	p := m.viewport.ToWorld(col, row)

	button := core.ButtonLeft
	if msg.Button == tea.MouseButtonRight {
		button = core.ButtonRight
	}

	var ev core.InputEvent
	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return
		}
		ev = core.PointerDown(p, button)
	case tea.MouseActionRelease:
		ev = core.PointerUp(p, button)
	case tea.MouseActionMotion:
		ev = core.PointerMove(p)
	default:
		return
	}
	m.bus.Publish(events.Input{InputEvent: ev})
}

// play mounts game id, stopping whatever ran before.
func (m *Model) play(id string) tea.Cmd {
	h, err := m.manager.Switch(id, m)
	if err != nil {
		m.err = err
		return m.quit()
	}
	m.mode = modePlay
	m.info, _ = registry.Info(id)
	m.logger.Debug("playing", "game", id, "session", h.SessionID())
	return m.sched.Take()
}

func (m *Model) quit() tea.Cmd {
	m.manager.Close()
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	m.quitting = true
	return tea.Quit
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(w, max(h-headerRows-footer, 0))
	if cur := m.manager.Current(); cur != nil {
		cur.Render()
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeMenu {
		return m.menu.View(m.width) + "\n" + centerText(m.help.View(m.menu.keys), m.width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.statusLine(),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// statusLine shows the title, the score and restart prompts.
func (m *Model) statusLine() string {
	s := m.summary
	score := fmt.Sprintf("Score %d", s.Score)
	if m.info.Opponent != "" {
		score = fmt.Sprintf("You %d : %d %s", s.Score, s.OpponentScore, m.info.Opponent)
	}

	line := titleStyle.Render(m.info.Title) + "  " + score
	switch {
	case s.IsWon:
		line += "  " + positiveStyle.Render("YOU WIN! press r to play again")
	case s.IsOver:
		line += "  " + alertStyle.Render("GAME OVER - press r to restart")
	case s.Paused:
		line += "  " + dimStyle.Render("PAUSED - press p to resume")
	}
	return line
}

// Run starts the Bubble Tea program. An empty gameID opens the menu.
func Run(opts Options, gameID string) error {
	if gameID != "" && !registry.Exists(gameID) {
		return fmt.Errorf("tui: %w: %s", registry.ErrUnknownGame, gameID)
	}
	m := NewModel(opts, gameID)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	m.quit()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return m.Err()
}
