package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/resource"
	"github.com/pixil98/go-rotsim/internal/skill"
)

const (
	DefaultSkillExpiry = 500 * time.Millisecond
	DefaultTickMode    = RealTimeAutoPause
)

type queuedRequest struct {
	skill       string
	timeInQueue time.Duration
}

// Controller drives one game session. It owns the game state and must only be
// used from the goroutine that delivers its frames.
type Controller struct {
	session string
	catalog *skill.Catalog
	config  game.Config
	game    *game.State

	view   View
	sinks  []LogSink
	frames FrameSource

	stepSize    func() time.Duration
	skillExpiry time.Duration

	tickMode      TickMode
	shouldLoop    bool
	loopRunning   bool
	generation    uint64
	lastAttempted string
	queue         []queuedRequest
}

// NewController starts a fresh game on c and draws it to view.
func NewController(c *skill.Catalog, view View, frames FrameSource, opts ...ControllerOpt) *Controller {
	ctrl := &Controller{
		session:     uuid.NewString(),
		catalog:     c,
		config:      game.DefaultConfig(),
		view:        view,
		frames:      frames,
		stepSize:    func() time.Duration { return game.DefaultStepSize },
		skillExpiry: DefaultSkillExpiry,
		tickMode:    DefaultTickMode,
	}

	for _, opt := range opts {
		opt(ctrl)
	}

	ctrl.RequestRestart()
	return ctrl
}

func (c *Controller) Session() string {
	return c.session
}

func (c *Controller) Game() *game.State {
	return c.game
}

func (c *Controller) Config() game.Config {
	return c.config
}

func (c *Controller) TickMode() TickMode {
	return c.tickMode
}

func (c *Controller) StepSize() time.Duration {
	return c.stepSize()
}

// Running reports whether a real-time loop is currently advancing the game.
func (c *Controller) Running() bool {
	return c.loopRunning
}

// Queued is the number of skill requests waiting for the real-time loop.
func (c *Controller) Queued() int {
	return len(c.queue)
}

// AddLogSink registers another consumer of the log.
func (c *Controller) AddLogSink(s LogSink) {
	c.sinks = append(c.sinks, s)
}

func (c *Controller) log(cat Category, sev Severity, text string) {
	e := LogEntry{
		ID:       uuid.New(),
		Session:  c.session,
		Category: cat,
		Severity: sev,
		Time:     c.game.Time,
		Text:     text,
	}
	c.view.AppendLogEntry(e)
	for _, s := range c.sinks {
		s.AppendLogEntry(e)
	}
}

func (c *Controller) refresh() {
	c.view.RenderStatus(buildStatus(c.game))
	c.view.RenderSkillButtons(c.SkillButtons())
}

// SkillButtons evaluates every displayed skill.
func (c *Controller) SkillButtons() []skill.Availability {
	ids := c.catalog.Displayed()
	out := make([]skill.Availability, 0, len(ids))
	for _, id := range ids {
		a, err := c.game.SkillAvailability(id)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Status is the current status projection.
func (c *Controller) Status() Status {
	return buildStatus(c.game)
}

// RequestTick advances the game by dt and logs the wait unless suppressed.
// Non-positive durations do nothing.
func (c *Controller) RequestTick(dt time.Duration, suppressLog bool) {
	if dt <= 0 {
		return
	}
	c.game.Tick(dt)
	c.refresh()
	if !suppressLog {
		c.log(CategoryAction, SeverityGrey, render("wait", messageData{Wait: seconds(dt)}))
	}
}

// RequestStep advances the game by the step size scaled by factor. Scaled
// sizes that do not fit a time.Duration do nothing.
func (c *Controller) RequestStep(factor float64) {
	d := float64(c.stepSize()) * factor
	if !(d > 0) || d >= float64(math.MaxInt64) {
		return
	}
	c.RequestTick(time.Duration(d), false)
}

// SetStepSize replaces the step size. Non-positive sizes are ignored.
func (c *Controller) SetStepSize(d time.Duration) {
	if d <= 0 {
		return
	}
	c.stepSize = func() time.Duration { return d }
}

// SetTickMode switches mode, stopping any running loop and dropping queued
// requests. The game is kept.
func (c *Controller) SetTickMode(mode TickMode) {
	c.tickMode = mode
	c.shouldLoop = false
	c.lastAttempted = ""
	c.queue = nil
	c.cancelLoops()
}

// SetConfigAndRestart restarts with new tuning values. A positive step
// replaces the step size.
func (c *Controller) SetConfigAndRestart(cfg game.Config, step time.Duration) {
	c.SetStepSize(step)
	c.config = cfg
	c.RequestRestart()
}

// ApplyPreset restarts with the tuning values of p.
func (c *Controller) ApplyPreset(p game.Preset) {
	c.SetConfigAndRestart(p.Config(), p.Step())
}

// RequestRestart throws the game away and starts a fresh one from the current
// config. Running loops stop and queued requests are dropped.
func (c *Controller) RequestRestart() {
	c.lastAttempted = ""
	c.queue = nil
	c.cancelLoops()
	c.game = game.NewState(c.catalog, c.config)
	c.refresh()
	c.PlayPause(false)

	reset := render("reset", messageData{GCD: seconds(c.config.GCD())})
	c.log(CategoryAction, SeverityGrey, reset)
	c.log(CategoryEvent, SeverityGrey, reset)
}

// SkillInfo evaluates a single skill.
func (c *Controller) SkillInfo(name string) (skill.Availability, error) {
	return c.game.SkillAvailability(name)
}

// ResourceValue reads the current value of a resource.
func (c *Controller) ResourceValue(kind resource.Kind) (int, error) {
	r, err := c.game.Resources.Get(kind)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}

// RequestUseSkill uses a skill now, or queues it while the real-time loop is
// running. Asking again for a skill that was just reported as blocked waits
// for it first.
func (c *Controller) RequestUseSkill(name string) error {
	sk, ok := c.catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", game.ErrUnknownSkill, name)
	}

	if c.tickMode == RealTime && c.shouldLoop {
		c.queue = append(c.queue, queuedRequest{skill: sk.ID})
		return nil
	}

	c.useSkill(sk.ID, sk.ID == c.lastAttempted, false)
	return nil
}

func (c *Controller) useSkill(id string, waitFirst bool, suppressLog bool) bool {
	a, err := c.game.SkillAvailability(id)
	if err != nil {
		return false
	}

	if waitFirst {
		c.RequestTick(a.TimeTillAvailable, false)
		a, _ = c.game.SkillAvailability(id)
		c.lastAttempted = ""
	}

	text, sev := c.statusMessage(id, a)
	if !suppressLog || a.Status == skill.Ready {
		c.log(CategoryAction, sev, text)
		if a.Status == skill.Ready {
			c.log(CategoryEvent, sev, text)
		}
	}

	switch a.Status {
	case skill.Ready:
		c.game.UseSkillIfAvailable(id)
		c.refresh()
		c.afterUse()
		return true
	case skill.Blocked:
		c.lastAttempted = id
	case skill.InsufficientResource, skill.RequirementsNotMet:
	}
	return false
}

func (c *Controller) afterUse() {
	switch c.tickMode {
	case AutoFastForward:
		c.fastForward()
	case RealTimeAutoPause:
		c.shouldLoop = true
		c.runLoop(func() bool {
			return c.game.TimeTillAnySkillAvailable(c.catalog.Displayed()) > 0
		})
	case RealTime, Manual:
	}
}

func (c *Controller) statusMessage(id string, a skill.Availability) (string, Severity) {
	data := messageData{
		Name:        a.Name,
		Description: a.Description,
		Wait:        seconds(a.TimeTillAvailable),
	}

	switch a.Status {
	case skill.Ready:
		return render("ready", data), SeverityText
	case skill.Blocked:
		return render("blocked", data), SeverityWarning
	case skill.InsufficientResource:
		if sk, ok := c.catalog.Lookup(id); ok && sk.Cost != nil {
			if spec, ok := c.catalog.Resource(sk.Cost.Resource); ok {
				data.Resource = label(spec.Label, string(spec.Kind))
			}
		}
		return render("insufficient", data), SeverityError
	case skill.RequirementsNotMet:
		return render("requirements", data), SeverityError
	default:
		return a.Status.String(), SeverityError
	}
}

// RequestPlayPause toggles the real-time loop.
func (c *Controller) RequestPlayPause() {
	c.PlayPause(!c.shouldLoop)
}

// PlayPause starts or stops the real-time loop. Asking for the current state
// does nothing. Pausing drops queued requests.
func (c *Controller) PlayPause(play bool) {
	if c.shouldLoop == play {
		return
	}
	c.shouldLoop = play
	if !play {
		c.queue = nil
	}

	if play {
		c.log(CategoryAction, SeveritySuccess, render("play", messageData{}))
		c.runLoop(func() bool {
			return c.shouldLoop
		})
	} else {
		c.log(CategoryAction, SeveritySuccess, render("pause", messageData{}))
	}
}

// RequestFastForward jumps to the next moment a displayed skill is usable.
func (c *Controller) RequestFastForward() {
	c.fastForward()
}

func (c *Controller) fastForward() {
	c.RequestTick(c.game.TimeTillAnySkillAvailable(c.catalog.Displayed()), false)
}

// cancelLoops invalidates every running loop. They stop at their next frame
// without touching the game.
func (c *Controller) cancelLoops() {
	c.generation++
	if c.loopRunning {
		c.loopRunning = false
		c.view.NotifyRealTimeRunning(false)
	}
}

// runLoop advances the game by wall-clock time once per frame for as long as
// cond holds. Starting a loop cancels any older one.
func (c *Controller) runLoop(cond func() bool) {
	c.generation++
	gen := c.generation
	current := func() bool {
		return gen == c.generation
	}

	var prev time.Time
	var frame func(now time.Time)
	frame = func(now time.Time) {
		if !current() {
			return
		}
		if prev.IsZero() {
			prev = now
		}
		dt := now.Sub(prev)
		prev = now

		c.processQueue(dt)
		if !current() {
			return
		}
		c.RequestTick(dt, true)

		if cond() {
			c.frames.RequestFrame(frame)
			return
		}
		c.shouldLoop = false
		c.loopRunning = false
		c.view.NotifyRealTimeRunning(false)
	}

	c.loopRunning = true
	c.view.NotifyRealTimeRunning(true)
	c.frames.RequestFrame(frame)
}

// processQueue tries every queued request once. Requests leave the queue when
// they succeed or once they have waited for the expiry time; expired ones
// leave without a trace in the log.
func (c *Controller) processQueue(dt time.Duration) {
	kept := c.queue[:0]
	for _, q := range c.queue {
		used := c.useSkill(q.skill, false, true)
		q.timeInQueue += dt
		if used || q.timeInQueue >= c.skillExpiry {
			continue
		}
		kept = append(kept, q)
	}
	c.queue = kept
}
