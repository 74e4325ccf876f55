// Package tcellui drives the arcade straight on a tcell screen. It is the
// second surface next to the Bubble Tea UI and shares nothing with it but
// the host and the draw commands.
package tcellui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pocket-arcade/internal/clock"
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/events"
	"github.com/vovakirdan/pocket-arcade/internal/host"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// statusRows is the line above the play area.
const statusRows = 1

// Options configures the tcell driver.
type Options struct {
	Config        *config.Store
	Logger        *log.Logger
	FrameInterval time.Duration
	// HoldWindow of zero means host.DefaultHoldWindow.
	HoldWindow    time.Duration
	Seed          int64
}

type colorPair struct {
	fg, bg core.Color
}

// Driver owns a tcell screen and the host drawing on it. All methods
// must be called from the goroutine running Loop.
type Driver struct {
	screen  tcell.Screen
	sched   *clock.LoopScheduler
	bus     *events.Bus
	manager *host.Manager
	logger  *log.Logger
	unsub   func()

	buf      *core.Screen
	viewport core.Viewport
	styles   map[colorPair]tcell.Style
	info     registry.GameInfo
	summary  events.Summary
	buttons  tcell.ButtonMask
}

// New creates a driver on an initialized screen.
func New(screen tcell.Screen, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Driver{
		screen: screen,
		sched:  clock.NewLoopScheduler(),
		bus:    events.NewBus(),
		logger: logger.WithPrefix("tcell"),
		styles: make(map[colorPair]tcell.Style),
	}
	d.manager = host.NewManager(host.Options{
		Scheduler:     d.sched,
		Bus:           d.bus,
		Logger:        logger,
		FrameInterval: opts.FrameInterval,
		HoldWindow:    opts.HoldWindow,
		Seed:          opts.Seed,
	}, opts.Config)
	d.unsub = d.bus.Subscribe(events.TopicSummary, func(ev events.Event) {
		if s, ok := ev.(events.Summary); ok {
			d.summary = s
		}
	})

	w, h := screen.Size()
	d.buf = core.NewScreen(w, max(h-statusRows, 0))
	return d
}

// Play mounts game id, replacing any running game.
func (d *Driver) Play(id string) error {
	info, ok := registry.Info(id)
	if !ok {
		return fmt.Errorf("tcellui: %w: %s", registry.ErrUnknownGame, id)
	}
	d.info = info
	if _, err := d.manager.Switch(id, d); err != nil {
		return err
	}
	return nil
}

// Host returns the mounted host, or nil.
func (d *Driver) Host() *host.Host {
	return d.manager.Current()
}

// Present implements host.Surface.
func (d *Driver) Present(f *core.Frame) {
	d.viewport = core.NewViewport(f.Width, f.Height, d.buf.Width(), d.buf.Height())
	d.viewport.Rasterize(f, d.buf)
	d.draw()
}

func (d *Driver) draw() {
	d.screen.Clear()
	d.drawStatus()
	for y := range d.buf.Height() {
		for x := range d.buf.Width() {
			c := d.buf.GetCell(x, y)
			d.screen.SetContent(x, y+statusRows, c.Rune, nil, d.style(c.Color, c.Bg))
		}
	}
	d.screen.Show()
}

func (d *Driver) drawStatus() {
	s := d.summary
	line := fmt.Sprintf("%s  Score %d", d.info.Title, s.Score)
	if d.info.Opponent != "" {
		line = fmt.Sprintf("%s  You %d : %d %s", d.info.Title, s.Score, s.OpponentScore, d.info.Opponent)
	}
	style := tcell.StyleDefault.Bold(true)
	switch {
	case s.IsWon:
		line += "  YOU WIN! r: again  q: quit"
		style = style.Foreground(tcell.ColorGreen)
	case s.IsOver:
		line += "  GAME OVER r: restart  q: quit"
		style = style.Foreground(tcell.ColorRed)
	case s.Paused:
		line += "  PAUSED p: resume"
		style = style.Foreground(tcell.ColorGray)
	}
	for i, r := range []rune(line) {
		d.screen.SetContent(i, 0, r, nil, style)
	}
}

// style maps core colors to a cached tcell style.
func (d *Driver) style(fg, bg core.Color) tcell.Style {
	key := colorPair{fg, bg}
	if st, ok := d.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault
	if code := fg.ANSI(); code >= 0 {
		st = st.Foreground(tcell.PaletteColor(code))
	}
	if code := bg.ANSI(); code >= 0 {
		st = st.Background(tcell.PaletteColor(code))
	}
	d.styles[key] = st
	return st
}

// Handle processes one terminal event. It reports whether the user asked
// to quit.
func (d *Driver) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		d.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		d.buf.Resize(w, max(h-statusRows, 0))
		d.screen.Sync()
		if cur := d.manager.Current(); cur != nil {
			cur.Render()
		}
	}
	return false
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	h := d.manager.Current()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		d.press(core.KeyUp)
	case tcell.KeyDown:
		d.press(core.KeyDown)
	case tcell.KeyLeft:
		d.press(core.KeyLeft)
	case tcell.KeyRight:
		d.press(core.KeyRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			d.press(core.KeySpace)
		case 'w':
			d.press(core.KeyUp)
		case 's':
			d.press(core.KeyDown)
		case 'a':
			d.press(core.KeyLeft)
		case 'd':
			d.press(core.KeyRight)
		case 'p':
			if h != nil {
				h.TogglePause()
			}
		case 'r':
			if h != nil {
				h.Restart()
			}
		}
	}
	return false
}

func (d *Driver) press(k core.Key) {
	d.bus.Publish(events.Input{InputEvent: core.KeyPress(k)})
}

// handleMouse turns tcell's button state into pointer down, move and up.
func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	const clicks = tcell.Button1 | tcell.Button2
	buttons := ev.Buttons() & clicks
	prev := d.buttons
	d.buttons = buttons

	x, y := ev.Position()
	row := y - statusRows
	if !d.viewport.InWorld(x, row) {
		return
	}
	p := d.viewport.ToWorld(x, row)

	var out core.InputEvent
	switch {
	case buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		out = core.PointerDown(p, core.ButtonLeft)
	case buttons&tcell.Button2 != 0 && prev&tcell.Button2 == 0:
		out = core.PointerDown(p, core.ButtonRight)
	case buttons == 0 && prev&tcell.Button2 != 0:
		out = core.PointerUp(p, core.ButtonRight)
	case buttons == 0 && prev != 0:
		out = core.PointerUp(p, core.ButtonLeft)
	default:
		out = core.PointerMove(p)
	}
	d.bus.Publish(events.Input{InputEvent: out})
}

// Loop runs the event loop until the user quits or ctx is done. Terminal
// events and clock ticks are both handled on the calling goroutine.
func (d *Driver) Loop(ctx context.Context) error {
	evs := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evs <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-d.sched.C():
			fn()
		case ev := <-evs:
			if d.Handle(ev) {
				return nil
			}
		}
	}
}

// Close stops the host and releases the scheduler.
func (d *Driver) Close() {
	d.manager.Close()
	if d.unsub != nil {
		d.unsub()
		d.unsub = nil
	}
	d.sched.Close()
}

// Run plays game id on a fresh terminal screen until the user quits.
func Run(ctx context.Context, opts Options, id string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	d := New(screen, opts)
	defer d.Close()
	if err := d.Play(id); err != nil {
		return err
	}
	return d.Loop(ctx)
}
