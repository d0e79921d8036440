package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-rotsim/internal/driver"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/rivo/tview"
)

const inputBuffer = 64

// Terminal is a full-screen front end for a single local game.
type Terminal struct {
	presets game.Presets
	preset  string

	driver *driver.FrameDriver
	ctrl   *sim.Controller
	input  chan func()
	app    *tview.Application
	view   *view

	screen     tcell.Screen
	ctrlOpts   []sim.ControllerOpt
	driverOpts []driver.FrameDriverOpt
}

func NewTerminal(c *skill.Catalog, opts ...TerminalOpt) (*Terminal, error) {
	t := &Terminal{
		input: make(chan func(), inputBuffer),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.app = tview.NewApplication()
	if t.screen != nil {
		t.app.SetScreen(t.screen)
	}
	t.view = newView(t.app)
	t.driver = driver.NewFrameDriver(t.driverOpts...)
	t.ctrl = sim.NewController(c, t.view, t.driver, t.ctrlOpts...)

	if t.preset != "" {
		p, err := t.presets.Get(t.preset)
		if err != nil {
			return nil, fmt.Errorf("applying preset: %w", err)
		}
		t.ctrl.ApplyPreset(p)
	}

	t.view.setMode(t.ctrl.TickMode(), t.ctrl.Running())
	t.view.skills.SetSelectedFunc(func(row, _ int) {
		if id := t.view.skillAt(row); id != "" {
			t.post(t.useSkill(id))
		}
	})

	return t, nil
}

// Start runs the screen until the user quits or ctx is cancelled.
func (t *Terminal) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driverDone := make(chan error, 1)
	go func() {
		driverDone <- t.driver.Start(ctx)
	}()
	go t.forward(ctx)

	go func() {
		<-ctx.Done()
		t.app.Stop()
	}()

	t.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			cancel()
			return nil
		}
		work, ok := t.keyWork(ev)
		if !ok {
			return ev
		}
		t.post(work)
		return nil
	})

	slog.InfoContext(ctx, "terminal started", "session", t.ctrl.Session())
	defer slog.InfoContext(ctx, "terminal stopped", "session", t.ctrl.Session())

	if err := t.app.SetRoot(t.view.layout(), true).Run(); err != nil {
		return fmt.Errorf("running terminal: %w", err)
	}

	cancel()
	return <-driverDone
}

// post queues work for the control goroutine without holding up the UI
// goroutine. Input beyond the buffer is dropped.
func (t *Terminal) post(work func()) {
	select {
	case t.input <- work:
	default:
		slog.Debug("dropping terminal input", "reason", "input buffer full")
	}
}

// forward hands queued input to the control goroutine in the order it was
// pressed.
func (t *Terminal) forward(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case work := <-t.input:
			if err := t.driver.Post(ctx, work); err != nil {
				slog.Debug("dropping terminal input", "error", err)
				return
			}
		}
	}
}

// keyWork maps a key press to the work it causes on the control goroutine.
func (t *Terminal) keyWork(ev *tcell.EventKey) (func(), bool) {
	switch ev.Key() {
	case tcell.KeyRight:
		return func() { t.ctrl.HandleKeyboardEvent(ev) }, true
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r := ev.Rune(); {
	case r == ' ':
		return func() { t.ctrl.HandleKeyboardEvent(ev) }, true
	case r == 'f':
		return t.ctrl.RequestFastForward, true
	case r == 'r':
		return t.ctrl.RequestRestart, true
	case r == 'm':
		return t.cycleMode, true
	case r >= '1' && r <= '9':
		n := int(r - '1')
		return func() {
			buttons := t.ctrl.SkillButtons()
			if n < len(buttons) {
				t.useSkill(buttons[n].Skill)()
			}
		}, true
	}
	return nil, false
}

func (t *Terminal) useSkill(id string) func() {
	return func() {
		if err := t.ctrl.RequestUseSkill(id); err != nil {
			slog.Warn("using skill", "skill", id, "error", err)
		}
	}
}

// cycleMode moves to the next tick mode.
func (t *Terminal) cycleMode() {
	modes := sim.TickModes()
	next := modes[0]
	for i, m := range modes {
		if m == t.ctrl.TickMode() {
			next = modes[(i+1)%len(modes)]
			break
		}
	}
	t.ctrl.SetTickMode(next)
	t.view.setMode(next, t.ctrl.Running())
}
