package console

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pixil98/go-rotsim/internal/display"
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/resource"
	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
)

// restArgs lets the last parameter take the rest of the line.
const restArgs = -1

type command struct {
	usage       string
	description string
	minArgs     int
	maxArgs     int
	run         func(s *Session, args []string) error
}

func commandTable() map[string]command {
	return map[string]command{
		"use": {
			usage:       "use <skill|number>",
			description: "Use a skill now, or queue it while real-time control is running.",
			minArgs:     1,
			maxArgs:     restArgs,
			run:         (*Session).use,
		},
		"tick": {
			usage:       "tick <duration>",
			description: "Advance the clock, e.g. 1.5s or 250ms. A bare number is seconds.",
			minArgs:     1,
			maxArgs:     1,
			run:         (*Session).tick,
		},
		"step": {
			usage:       "step [factor]",
			description: "Advance the clock by the step size, optionally scaled.",
			maxArgs:     1,
			run:         (*Session).step,
		},
		"play": {
			usage:       "play",
			description: "Start real-time control.",
			run: func(s *Session, _ []string) error {
				s.ctrl.PlayPause(true)
				return nil
			},
		},
		"pause": {
			usage:       "pause",
			description: "Stop real-time control.",
			run: func(s *Session, _ []string) error {
				s.ctrl.PlayPause(false)
				return nil
			},
		},
		"ff": {
			usage:       "ff",
			description: "Fast-forward to the next moment any skill can be used.",
			run: func(s *Session, _ []string) error {
				s.ctrl.RequestFastForward()
				return nil
			},
		},
		"mode": {
			usage:       "mode [name]",
			description: "Show or change how the clock moves.",
			maxArgs:     1,
			run:         (*Session).mode,
		},
		"restart": {
			usage:       "restart [preset]",
			description: "Start a fresh game, optionally with a tuning preset.",
			maxArgs:     1,
			run:         (*Session).restart,
		},
		"skills": {
			usage:       "skills",
			description: "List the skills by number.",
			run:         (*Session).skills,
		},
		"status": {
			usage:       "status",
			description: "Show resources, locks and buffs.",
			run:         (*Session).status,
		},
		"info": {
			usage:       "info <skill|number>",
			description: "Explain whether a skill can be used right now.",
			minArgs:     1,
			maxArgs:     restArgs,
			run:         (*Session).info,
		},
		"value": {
			usage:       "value <resource>",
			description: "Show the current value of a resource.",
			minArgs:     1,
			maxArgs:     1,
			run:         (*Session).value,
		},
		"stepsize": {
			usage:       "stepsize [duration]",
			description: "Show or change the step size.",
			maxArgs:     1,
			run:         (*Session).stepSize,
		},
		"help": {
			usage:       "help [command]",
			description: "List the commands, or explain one.",
			maxArgs:     1,
			run:         (*Session).help,
		},
		"quit": {
			usage:       "quit",
			description: "Leave the simulator.",
			run: func(s *Session, _ []string) error {
				s.quit = true
				return nil
			},
		},
	}
}

// exec parses and runs one input line. It must run on the control goroutine.
func (s *Session) exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	name := strings.ToLower(parts[0])
	cmd, ok := s.commands[name]
	if !ok {
		return NewUserError("Unknown command: %s", parts[0])
	}

	args := parts[1:]
	if len(args) < cmd.minArgs {
		return NewUserError("Usage: %s", cmd.usage)
	}
	if cmd.maxArgs != restArgs && len(args) > cmd.maxArgs {
		return NewUserError("Usage: %s", cmd.usage)
	}

	return cmd.run(s, args)
}

// resolveSkill accepts a menu number or a skill name.
func (s *Session) resolveSkill(args []string) string {
	if len(args) == 1 {
		if i, err := strconv.Atoi(args[0]); err == nil {
			if id := s.menu.Select(i); id != "" {
				return id
			}
		}
	}
	return strings.Join(args, " ")
}

func (s *Session) use(args []string) error {
	err := s.ctrl.RequestUseSkill(s.resolveSkill(args))
	if errors.Is(err, game.ErrUnknownSkill) {
		return NewUserError("There is no skill called %q.", strings.Join(args, " "))
	}
	return err
}

func (s *Session) tick(args []string) error {
	d, err := parseDuration(args[0])
	if err != nil {
		return err
	}
	s.ctrl.RequestTick(d, false)
	return nil
}

func (s *Session) step(args []string) error {
	factor := 1.0
	if len(args) == 1 {
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil || !(f > 0) {
			return NewUserError("%q is not a positive number.", args[0])
		}
		if float64(s.ctrl.StepSize())*f > float64(maxDuration) {
			return tooLong()
		}
		factor = f
	}
	s.ctrl.RequestStep(factor)
	return nil
}

func (s *Session) mode(args []string) error {
	if len(args) == 1 {
		var m sim.TickMode
		if err := m.UnmarshalText([]byte(strings.ToLower(args[0]))); err != nil {
			return NewUserError("Unknown mode %q.", args[0])
		}
		s.ctrl.SetTickMode(m)
	}

	names := make([]string, 0, len(sim.TickModes()))
	for _, m := range sim.TickModes() {
		names = append(names, m.String())
	}
	return s.out.println(
		fmt.Sprintf("Tick mode: %s", s.ctrl.TickMode()),
		fmt.Sprintf("Modes: %s", strings.Join(names, ", ")),
	)
}

func (s *Session) restart(args []string) error {
	if len(args) == 0 {
		s.ctrl.RequestRestart()
		return nil
	}

	p, err := s.presets.Get(strings.ToLower(args[0]))
	if err != nil {
		return NewUserError("Unknown preset %q. Presets: %s", args[0], strings.Join(s.presets.Names(), ", "))
	}
	s.ctrl.ApplyPreset(p)
	return nil
}

func (s *Session) skills(_ []string) error {
	s.menu = newMenu(s.ctrl.SkillButtons(), s.out.width)
	return s.out.println(s.menu.Lines()...)
}

func (s *Session) status(_ []string) error {
	st := s.ctrl.Status()

	lines := []string{fmt.Sprintf("Time: %.3fs  Mode: %s", st.Time.Seconds(), s.ctrl.TickMode())}
	groups := []struct {
		title  string
		gauges []sim.Gauge
	}{
		{"Resources", st.Resources},
		{"Locks", st.Locks},
		{"Enemy", st.EnemyBuffs},
		{"Self", st.SelfBuffs},
	}
	for _, g := range groups {
		if len(g.gauges) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("-- %s --", g.title))
		for _, gauge := range g.gauges {
			lines = append(lines, gaugeLine(gauge))
		}
	}
	return s.out.println(lines...)
}

func gaugeLine(g sim.Gauge) string {
	name := g.Label
	if name == string(g.Kind) {
		name = display.KindLabel(name)
	}

	line := fmt.Sprintf("%s %s %5d/%d", display.Column(name, 16), display.Bar(g.Value, g.Max, 10), g.Value, g.Max)
	switch {
	case g.Countdown > 0 && g.Total > 0:
		line += fmt.Sprintf("  %.2fs/%.2fs", g.Countdown.Seconds(), g.Total.Seconds())
	case g.Countdown > 0:
		line += fmt.Sprintf("  %.2fs", g.Countdown.Seconds())
	}
	return line
}

func (s *Session) info(args []string) error {
	a, err := s.ctrl.SkillInfo(s.resolveSkill(args))
	if errors.Is(err, game.ErrUnknownSkill) {
		return NewUserError("There is no skill called %q.", strings.Join(args, " "))
	}
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%s: %s", a.Name, a.Status)
	if a.Description != "" {
		line += fmt.Sprintf(" (%s)", a.Description)
	}
	if a.Status == skill.Blocked {
		line += fmt.Sprintf(", ready in %.3fs", a.TimeTillAvailable.Seconds())
	}
	return s.out.println(line)
}

func (s *Session) value(args []string) error {
	kind := resource.Kind(strings.ToLower(args[0]))
	v, err := s.ctrl.ResourceValue(kind)
	if errors.Is(err, resource.ErrUnknownResourceKind) {
		return NewUserError("There is no resource called %q.", args[0])
	}
	if err != nil {
		return err
	}

	spec, ok := s.catalog.Resource(kind)
	if !ok {
		return s.out.println(fmt.Sprintf("%s: %d", display.KindLabel(string(kind)), v))
	}
	name := spec.Label
	if name == "" {
		name = display.KindLabel(string(kind))
	}
	return s.out.println(fmt.Sprintf("%s: %d/%d", name, v, spec.Max))
}

func (s *Session) stepSize(args []string) error {
	if len(args) == 1 {
		d, err := parseDuration(args[0])
		if err != nil {
			return err
		}
		s.ctrl.SetStepSize(d)
	}
	return s.out.println(fmt.Sprintf("Step size: %s", s.ctrl.StepSize()))
}

func (s *Session) help(args []string) error {
	if len(args) == 1 {
		cmd, ok := s.commands[strings.ToLower(args[0])]
		if !ok {
			return NewUserError("Command %q is unknown.", args[0])
		}
		return s.out.println(cmd.description, fmt.Sprintf("Usage: %s", cmd.usage))
	}

	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	slices.Sort(names)

	lines := []string{"Available commands:"}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s %s", display.Column(s.commands[name].usage, 24), s.commands[name].description))
	}
	return s.out.println(lines...)
}

// maxDuration bounds a single tick or step.
const maxDuration = 24 * time.Hour

// parseDuration reads a Go duration or a bare number of seconds.
func parseDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		secs, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(secs) {
			return 0, NewUserError("%q is not a valid duration.", raw)
		}
		if secs > maxDuration.Seconds() {
			return 0, tooLong()
		}
		d = time.Duration(secs * float64(time.Second))
	}
	if d <= 0 {
		return 0, NewUserError("Duration must be positive.")
	}
	if d > maxDuration {
		return 0, tooLong()
	}
	return d, nil
}

func tooLong() *UserError {
	return NewUserError("Duration must be at most %s.", maxDuration)
}
