package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-rotsim/internal/driver"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/sim"
)

type TerminalOpt func(*Terminal)

// WithPreset starts the game with the named preset from presets.
func WithPreset(presets game.Presets, name string) TerminalOpt {
	return func(t *Terminal) {
		t.presets = presets
		t.preset = name
	}
}

// WithScreen draws to screen instead of the process terminal.
func WithScreen(screen tcell.Screen) TerminalOpt {
	return func(t *Terminal) {
		t.screen = screen
	}
}

func WithControllerOpts(opts ...sim.ControllerOpt) TerminalOpt {
	return func(t *Terminal) {
		t.ctrlOpts = append(t.ctrlOpts, opts...)
	}
}

func WithDriverOpts(opts ...driver.FrameDriverOpt) TerminalOpt {
	return func(t *Terminal) {
		t.driverOpts = append(t.driverOpts, opts...)
	}
}
