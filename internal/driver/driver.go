package driver

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultFrameLength = time.Second / 60
)

var ErrStopped = errors.New("driver stopped")

// FrameDriver owns a single control goroutine. Work posted from other
// goroutines and frame callbacks both run there, one at a time, so whatever
// they touch needs no locking.
type FrameDriver struct {
	frameLength time.Duration
	now         func() time.Time

	work chan func()
	done chan struct{}

	// frames is only touched on the control goroutine.
	frames []func(time.Time)
}

func NewFrameDriver(opts ...FrameDriverOpt) *FrameDriver {
	d := &FrameDriver{
		frameLength: DefaultFrameLength,
		now:         time.Now,
		work:        make(chan func()),
		done:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// RequestFrame schedules fn for the next frame. It must be called on the
// control goroutine.
func (d *FrameDriver) RequestFrame(fn func(now time.Time)) {
	d.frames = append(d.frames, fn)
}

// Post hands fn to the control goroutine without waiting for it to run.
func (d *FrameDriver) Post(ctx context.Context, fn func()) error {
	select {
	case d.work <- fn:
		return nil
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Call runs fn on the control goroutine and waits for it to finish.
func (d *FrameDriver) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	err := d.Post(ctx, func() {
		defer close(finished)
		fn()
	})
	if err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-d.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start runs the control goroutine until ctx is cancelled. The frame ticker
// only runs while a frame is pending.
func (d *FrameDriver) Start(ctx context.Context) error {
	defer close(d.done)

	var ticker *time.Ticker
	var tick <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		switch {
		case len(d.frames) > 0 && ticker == nil:
			ticker = time.NewTicker(d.frameLength)
			tick = ticker.C
		case len(d.frames) == 0 && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}

		select {
		case <-ctx.Done():
			return nil
		case fn := <-d.work:
			fn()
		case <-tick:
			d.Frame(d.now())
		}
	}
}

// Frame runs every callback requested before it started. Callbacks requested
// while it runs wait for the next frame.
func (d *FrameDriver) Frame(now time.Time) {
	frames := d.frames
	d.frames = nil
	for _, fn := range frames {
		fn(now)
	}
}

// Pending is the number of callbacks waiting for a frame.
func (d *FrameDriver) Pending() int {
	return len(d.frames)
}
