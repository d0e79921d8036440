package console

import (
	"github.com/pixil98/go-rotsim/internal/driver"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/sim"
)

type SessionOpt func(*Session)

// WithPresets sets the tuning presets "restart <name>" can pick from.
func WithPresets(p game.Presets) SessionOpt {
	return func(s *Session) {
		s.presets = p
	}
}

// WithWidth sets the column the output is wrapped at.
func WithWidth(width int) SessionOpt {
	return func(s *Session) {
		if width > 0 {
			s.out.width = width
		}
	}
}

// WithColor colours log lines by severity.
func WithColor(color bool) SessionOpt {
	return func(s *Session) {
		s.color = color
	}
}

func WithControllerOpts(opts ...sim.ControllerOpt) SessionOpt {
	return func(s *Session) {
		s.ctrlOpts = append(s.ctrlOpts, opts...)
	}
}

func WithDriverOpts(opts ...driver.FrameDriverOpt) SessionOpt {
	return func(s *Session) {
		s.driverOpts = append(s.driverOpts, opts...)
	}
}
