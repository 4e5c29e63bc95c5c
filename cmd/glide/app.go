package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/glide/internal/config"
	"github.com/dshills/glide/internal/easing"
	"github.com/dshills/glide/internal/event"
	"github.com/dshills/glide/internal/hook"
	"github.com/dshills/glide/internal/logging"
	"github.com/dshills/glide/internal/scroll"
	"github.com/dshills/glide/internal/script"
	"github.com/dshills/glide/internal/viewport"
)

// termDriver adapts a tcell screen and a viewport to the scheduler's
// driver interface.
type termDriver struct {
	screen tcell.Screen
	vp     *viewport.Viewport
}

// ScrollForward implements scroll.Driver.
func (d *termDriver) ScrollForward(units int) {
	d.vp.ScrollForward(units)
}

// ScrollBackward implements scroll.Driver.
func (d *termDriver) ScrollBackward(units int) {
	d.vp.ScrollBackward(units)
}

// MoveCursorLine implements scroll.Driver.
func (d *termDriver) MoveCursorLine(delta int) {
	d.vp.MoveCursorLine(delta)
}

// PendingInput implements scroll.Driver. Any queued terminal event cancels
// the animation at the next step boundary.
func (d *termDriver) PendingInput() bool {
	return d.screen.HasPendingEvent()
}

// WindowHeight implements scroll.Driver.
func (d *termDriver) WindowHeight() int {
	return d.vp.Height()
}

// app owns the screen, the viewport and the scheduler for one session.
type app struct {
	screen tcell.Screen
	vp     *viewport.Viewport
	sched  *scroll.Scheduler
	engine *script.Engine
	log    *logging.Logger

	lines []string
	title string
	cfg   config.ScrollConfig
	kind  easing.Kind

	// drawMu serializes drawing between the event loop and timer callbacks.
	drawMu sync.Mutex
}

func newApp(lines []string, title string, cfg config.ScrollConfig, logger *logging.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)

	width, height := screen.Size()
	vp := viewport.New(width, height-1)
	vp.SetContentLines(len(lines))

	a := &app{
		screen: screen,
		vp:     vp,
		log:    logger,
		lines:  lines,
		title:  title,
		cfg:    cfg,
		kind:   easing.ParseKind(cfg.Easing),
	}

	hooks := hook.NewManager()
	if cfg.HookScript != "" {
		engine, err := script.Load(cfg.HookScript, logger)
		if err != nil {
			screen.Fini()
			return nil, err
		}
		engine.Install(hooks)
		a.engine = engine
	}

	bus := event.NewBus()
	if _, err := bus.SubscribeFunc("scroll.*", func(ev event.Envelope) {
		logger.Debug("event %s: %+v", ev.Topic, ev.Payload)
	}); err != nil {
		screen.Fini()
		return nil, err
	}

	sched, err := scroll.New(scroll.Config{
		Driver:    &termDriver{screen: screen, vp: vp},
		Refresher: a,
		Hooks:     hooks,
		Bus:       bus,
		Logger:    logger,
		Defaults: scroll.Defaults{
			Duration: cfg.Duration,
			Easing:   a.kind,
		},
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.sched = sched

	return a, nil
}

// NotifyPostStep implements scroll.Refresher.
func (a *app) NotifyPostStep() {
	a.draw()
}

func (a *app) close() {
	if a.engine != nil {
		a.engine.Close()
	}
	a.screen.Fini()
}

// loop runs the terminal event loop until the user quits.
func (a *app) loop() error {
	a.draw()

	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, height := ev.Size()
			a.sched.Interrupt()
			a.vp.Resize(width, height-1)
			a.screen.Sync()
			a.draw()

		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		}
	}
}

// handleKey dispatches one key event. Returns true to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		a.scrollBy(a.pageLines())
		return false
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		a.scrollBy(-a.pageLines())
		return false
	case tcell.KeyCtrlD:
		a.scrollBy(a.pageLines() / 2)
		return false
	case tcell.KeyCtrlU:
		a.scrollBy(-a.pageLines() / 2)
		return false
	case tcell.KeyDown:
		a.moveLine(1)
		return false
	case tcell.KeyUp:
		a.moveLine(-1)
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'j':
		a.moveLine(1)
	case 'k':
		a.moveLine(-1)
	case 'g':
		a.jumpTo(0)
	case 'G':
		a.jumpTo(a.vp.MaxTopLine())
	}
	return false
}

// pageLines returns a one-page displacement keeping one line of context.
func (a *app) pageLines() int {
	n := a.vp.Height() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// scrollBy animates a scroll, or jumps when animation is disabled.
func (a *app) scrollBy(lines int) {
	if !a.cfg.Enabled {
		a.sched.Interrupt()
		if lines >= 0 {
			a.vp.ScrollForward(lines)
		} else {
			a.vp.ScrollBackward(-lines)
		}
		if a.cfg.MoveCursor {
			a.vp.MoveCursorLine(lines)
		}
		a.draw()
		return
	}

	reason := "scroll-down"
	if lines < 0 {
		reason = "scroll-up"
	}
	a.sched.Start(lines, scroll.Options{
		Duration:     a.cfg.Duration,
		Easing:       a.kind,
		ViewportOnly: !a.cfg.MoveCursor,
		Info:         reason,
	})
}

// moveLine moves the cursor a single line without animation, scrolling the
// viewport when the cursor leaves it.
func (a *app) moveLine(delta int) {
	a.sched.Interrupt()
	a.vp.MoveCursorLine(delta)
	if !a.vp.IsVisible(a.vp.CursorLine()) {
		if delta > 0 {
			a.vp.ScrollForward(delta)
		} else {
			a.vp.ScrollBackward(-delta)
		}
	}
	a.draw()
}

// jumpTo moves the viewport without animation.
func (a *app) jumpTo(line int) {
	a.sched.Interrupt()
	a.vp.ScrollTo(line)
	a.vp.SetCursorLine(line)
	a.draw()
}

// draw renders the visible lines and the status bar.
func (a *app) draw() {
	a.drawMu.Lock()
	defer a.drawMu.Unlock()

	width, height := a.screen.Size()
	a.screen.Clear()

	first, _ := a.vp.VisibleRange()
	for row := 0; row < height-1; row++ {
		idx := first + row
		if idx >= len(a.lines) {
			break
		}
		drawText(a.screen, 0, row, width, a.lines[idx], tcell.StyleDefault)
	}

	status := fmt.Sprintf(" %s  line %d/%d  [%s %s] ",
		a.title, first+1, len(a.lines), a.kind, a.cfg.Duration)
	drawText(a.screen, 0, height-1, width, status, tcell.StyleDefault.Reverse(true))

	cursor := a.vp.CursorLine()
	if a.vp.IsVisible(cursor) {
		a.screen.ShowCursor(0, cursor-first)
	} else {
		a.screen.HideCursor()
	}

	a.screen.Show()
}

// drawText writes a string clipped to the given width.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
