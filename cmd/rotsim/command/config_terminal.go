package command

import (
	"github.com/pixil98/go-rotsim/internal/driver"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/pixil98/go-rotsim/internal/terminal"
)

// TerminalConfig turns on the full-screen front end on the process terminal.
type TerminalConfig struct {
	Enabled bool   `json:"enabled"`
	Preset  string `json:"preset"`
}

func (c *TerminalConfig) BuildTerminal(
	catalog *skill.Catalog,
	presets game.Presets,
	ctrlOpts []sim.ControllerOpt,
	driverOpts []driver.FrameDriverOpt,
) (*terminal.Terminal, error) {
	opts := []terminal.TerminalOpt{
		terminal.WithControllerOpts(ctrlOpts...),
		terminal.WithDriverOpts(driverOpts...),
	}
	if c.Preset != "" {
		opts = append(opts, terminal.WithPreset(presets, c.Preset))
	}
	return terminal.NewTerminal(catalog, opts...)
}
