package game

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pixil98/go-errors"
)

const DefaultStepSize = 500 * time.Millisecond

// Preset is a named set of tuning values that a restart can switch to.
// Unset fields fall back to the defaults.
type Preset struct {
	StepSize              time.Duration `toml:"step_size"`
	SpellSpeed            int           `toml:"spell_speed"`
	CasterTax             time.Duration `toml:"caster_tax"`
	SlideCastDuration     time.Duration `toml:"slide_cast"`
	AnimationLock         time.Duration `toml:"animation_lock"`
	TimeTillFirstManaTick time.Duration `toml:"first_mana_tick"`
}

// Config returns the tuning values of the preset.
func (p Preset) Config() Config {
	c := DefaultConfig()
	if p.SpellSpeed != 0 {
		c.SpellSpeed = p.SpellSpeed
	}
	if p.CasterTax != 0 {
		c.CasterTax = p.CasterTax
	}
	if p.SlideCastDuration != 0 {
		c.SlideCastDuration = p.SlideCastDuration
	}
	if p.AnimationLock != 0 {
		c.AnimationLock = p.AnimationLock
	}
	if p.TimeTillFirstManaTick != 0 {
		c.TimeTillFirstManaTick = p.TimeTillFirstManaTick
	}
	return c
}

// Step returns the preset step size, or the default.
func (p Preset) Step() time.Duration {
	if p.StepSize > 0 {
		return p.StepSize
	}
	return DefaultStepSize
}

// Presets is a table of presets keyed by name.
type Presets map[string]Preset

type presetFile struct {
	Presets Presets `toml:"presets"`
}

// LoadPresets reads a TOML file of [presets.<name>] tables.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets %s: %w", path, err)
	}
	return ParsePresets(string(data))
}

// ParsePresets decodes and validates TOML preset tables.
func ParsePresets(data string) (Presets, error) {
	var f presetFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	if err := f.Presets.Validate(); err != nil {
		return nil, err
	}
	return f.Presets, nil
}

func (p Presets) Validate() error {
	el := errors.NewErrorList()
	for _, name := range p.Names() {
		if err := p[name].Config().Validate(); err != nil {
			el.Add(fmt.Errorf("preset %s: %w", name, err))
		}
		if p[name].StepSize < 0 {
			el.Add(fmt.Errorf("preset %s: step_size cannot be negative", name))
		}
	}
	return el.Err()
}

// Get looks up a preset by name.
func (p Presets) Get(name string) (Preset, error) {
	pr, ok := p[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return pr, nil
}

func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
