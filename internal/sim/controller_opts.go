package sim

import (
	"time"

	"github.com/pixil98/go-rotsim/internal/game"
)

type ControllerOpt func(*Controller)

func WithSession(id string) ControllerOpt {
	return func(c *Controller) {
		c.session = id
	}
}

func WithConfig(cfg game.Config) ControllerOpt {
	return func(c *Controller) {
		c.config = cfg
	}
}

// WithStepSize makes the controller read its step size from fn on every step.
func WithStepSize(fn func() time.Duration) ControllerOpt {
	return func(c *Controller) {
		c.stepSize = fn
	}
}

func WithSkillExpiry(d time.Duration) ControllerOpt {
	return func(c *Controller) {
		c.skillExpiry = d
	}
}

func WithTickMode(mode TickMode) ControllerOpt {
	return func(c *Controller) {
		c.tickMode = mode
	}
}

func WithLogSinks(sinks ...LogSink) ControllerOpt {
	return func(c *Controller) {
		c.sinks = append(c.sinks, sinks...)
	}
}
