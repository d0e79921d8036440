package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rotsim/internal/driver"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/sim"
)

// SimulationConfig holds the starting tuning values of every session.
// Durations are Go duration strings; empty fields keep their defaults.
type SimulationConfig struct {
	TickMode      string `json:"tick_mode"`
	StepSize      string `json:"step_size"`
	SkillExpiry   string `json:"skill_expiry"`
	FrameLength   string `json:"frame_length"`
	SpellSpeed    int    `json:"spell_speed"`
	CasterTax     string `json:"caster_tax"`
	SlideCast     string `json:"slide_cast"`
	AnimationLock string `json:"animation_lock"`
	FirstManaTick string `json:"first_mana_tick"`
}

func (c *SimulationConfig) validate() error {
	el := errors.NewErrorList()

	if c.TickMode != "" {
		var m sim.TickMode
		if err := m.UnmarshalText([]byte(c.TickMode)); err != nil {
			el.Add(fmt.Errorf("parsing simulation.tick_mode: %w", err))
		}
	}

	for name, v := range map[string]string{
		"step_size":    c.StepSize,
		"skill_expiry": c.SkillExpiry,
		"frame_length": c.FrameLength,
	} {
		d, err := parseOptionalDuration(v)
		if err != nil {
			el.Add(fmt.Errorf("parsing simulation.%s: %w", name, err))
		} else if v != "" && d <= 0 {
			el.Add(fmt.Errorf("simulation.%s must be positive", name))
		}
	}

	cfg, err := c.gameConfig()
	if err != nil {
		el.Add(err)
	} else if err := cfg.Validate(); err != nil {
		el.Add(fmt.Errorf("simulation: %w", err))
	}

	return el.Err()
}

func (c *SimulationConfig) gameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	if c.SpellSpeed != 0 {
		cfg.SpellSpeed = c.SpellSpeed
	}

	el := errors.NewErrorList()
	for name, field := range map[string]struct {
		value string
		dst   *time.Duration
	}{
		"caster_tax":      {c.CasterTax, &cfg.CasterTax},
		"slide_cast":      {c.SlideCast, &cfg.SlideCastDuration},
		"animation_lock":  {c.AnimationLock, &cfg.AnimationLock},
		"first_mana_tick": {c.FirstManaTick, &cfg.TimeTillFirstManaTick},
	} {
		if field.value == "" {
			continue
		}
		d, err := time.ParseDuration(field.value)
		if err != nil {
			el.Add(fmt.Errorf("parsing simulation.%s: %w", name, err))
			continue
		}
		*field.dst = d
	}

	return cfg, el.Err()
}

// ControllerOpts turns the simulation settings into options for a new
// controller.
func (c *SimulationConfig) ControllerOpts() ([]sim.ControllerOpt, error) {
	cfg, err := c.gameConfig()
	if err != nil {
		return nil, err
	}
	opts := []sim.ControllerOpt{sim.WithConfig(cfg)}

	if c.TickMode != "" {
		var m sim.TickMode
		if err := m.UnmarshalText([]byte(c.TickMode)); err != nil {
			return nil, fmt.Errorf("parsing simulation.tick_mode: %w", err)
		}
		opts = append(opts, sim.WithTickMode(m))
	}

	step, err := parseOptionalDuration(c.StepSize)
	if err != nil {
		return nil, fmt.Errorf("parsing simulation.step_size: %w", err)
	}
	if step > 0 {
		opts = append(opts, sim.WithStepSize(func() time.Duration { return step }))
	}

	expiry, err := parseOptionalDuration(c.SkillExpiry)
	if err != nil {
		return nil, fmt.Errorf("parsing simulation.skill_expiry: %w", err)
	}
	if expiry > 0 {
		opts = append(opts, sim.WithSkillExpiry(expiry))
	}

	return opts, nil
}

func (c *SimulationConfig) DriverOpts() ([]driver.FrameDriverOpt, error) {
	frame, err := parseOptionalDuration(c.FrameLength)
	if err != nil {
		return nil, fmt.Errorf("parsing simulation.frame_length: %w", err)
	}
	if frame > 0 {
		return []driver.FrameDriverOpt{driver.WithFrameLength(frame)}, nil
	}
	return nil, nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
