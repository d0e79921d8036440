package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-rotsim/assets"
	"github.com/pixil98/go-rotsim/internal/game"
)

// PresetsConfig points at a TOML file of presets. The embedded presets are
// used when Path is empty.
type PresetsConfig struct {
	Path string `json:"path"`
}

func (c *PresetsConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("presets: invalid path %q: %w", c.Path, err)
	}
	return nil
}

// checkBuiltIn fails unless the embedded presets have name.
func (c *PresetsConfig) checkBuiltIn(name string) error {
	p, err := assets.DefaultPresets()
	if err != nil {
		return fmt.Errorf("presets: %w", err)
	}
	if _, err := p.Get(name); err != nil {
		return fmt.Errorf("terminal.preset: %w", err)
	}
	return nil
}

func (c *PresetsConfig) BuildPresets() (game.Presets, error) {
	if c.Path == "" {
		return assets.DefaultPresets()
	}
	return game.LoadPresets(c.Path)
}
