package skill

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rotsim/internal/resource"
)

// Type separates spells, which are cast and share the global cooldown, from
// abilities, which are instant and weave between spells.
type Type string

const (
	TypeSpell   Type = "spell"
	TypeAbility Type = "ability"
)

// Op is how an effect changes its resource.
type Op string

const (
	OpAdd Op = "add"
	OpSet Op = "set"
)

// Group places a resource or cooldown in one of the status panels.
type Group string

const (
	GroupHidden     Group = ""
	GroupResources  Group = "resources"
	GroupLocks      Group = "locks"
	GroupEnemyBuffs Group = "enemy"
	GroupSelfBuffs  Group = "self"
)

func (g Group) validate() error {
	switch g {
	case GroupHidden, GroupResources, GroupLocks, GroupEnemyBuffs, GroupSelfBuffs:
		return nil
	default:
		return fmt.Errorf("unknown group %q", g)
	}
}

// Cost is the amount of a resource a skill consumes.
type Cost struct {
	Resource resource.Kind `json:"resource" yaml:"resource"`
	Amount   int           `json:"amount" yaml:"amount"`
}

// Requirement is a job-state precondition. Max is optional.
type Requirement struct {
	Resource resource.Kind `json:"resource" yaml:"resource"`
	Min      int           `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *int          `json:"max,omitempty" yaml:"max,omitempty"`
}

func (r Requirement) unmet(value int) []string {
	var need []string
	if value < r.Min {
		need = append(need, fmt.Sprintf("%s>=%d", r.Resource, r.Min))
	}
	if r.Max != nil && value > *r.Max {
		need = append(need, fmt.Sprintf("%s<=%d", r.Resource, *r.Max))
	}
	return need
}

// Effect changes a resource when the skill is used. A non-zero Duration makes
// it a timed buff: the resource falls back to zero once the duration passes.
type Effect struct {
	Resource resource.Kind `json:"resource" yaml:"resource"`
	Op       Op            `json:"op" yaml:"op" jsonschema:"enum=add,enum=set"`
	Amount   int           `json:"amount" yaml:"amount"`
	Duration Duration      `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Skill is one catalog entry.
type Skill struct {
	// ID is the asset identifier, filled in when the catalog is built.
	ID string `json:"-" yaml:"-"`

	Name     string          `json:"name" yaml:"name" jsonschema:"minLength=1"`
	Type     Type            `json:"type" yaml:"type" jsonschema:"enum=spell,enum=ability"`
	Order    int             `json:"order" yaml:"order"`
	CastTime Duration        `json:"cast_time,omitempty" yaml:"cast_time,omitempty"`
	Cooldown resource.Kind   `json:"cooldown" yaml:"cooldown"`
	Cost     *Cost           `json:"cost,omitempty" yaml:"cost,omitempty"`
	Requires []Requirement   `json:"requires,omitempty" yaml:"requires,omitempty"`
	Gates    []resource.Kind `json:"gates,omitempty" yaml:"gates,omitempty"`
	Effects  []Effect        `json:"effects,omitempty" yaml:"effects,omitempty"`
}

func (s *Skill) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	switch s.Type {
	case TypeSpell:
	case TypeAbility:
		if s.CastTime != 0 {
			el.Add(fmt.Errorf("abilities cannot have a cast time"))
		}
	default:
		el.Add(fmt.Errorf("unknown type %q", s.Type))
	}
	if s.CastTime < 0 {
		el.Add(fmt.Errorf("cast_time cannot be negative"))
	}
	if s.Cooldown == "" {
		el.Add(fmt.Errorf("cooldown is required"))
	}
	if s.Cost != nil && s.Cost.Amount <= 0 {
		el.Add(fmt.Errorf("cost amount must be positive"))
	}
	for i, e := range s.Effects {
		if e.Op != OpAdd && e.Op != OpSet {
			el.Add(fmt.Errorf("effect %d: unknown op %q", i, e.Op))
		}
		if e.Duration < 0 {
			el.Add(fmt.Errorf("effect %d: duration cannot be negative", i))
		}
	}

	return el.Err()
}

// IsSpell reports whether the skill is cast rather than used instantly.
func (s *Skill) IsSpell() bool {
	return s.Type == TypeSpell
}

// Regen is a recurring change applied to a resource for the whole game.
// FirstDelay defaults to the configured time till the first resource tick.
type Regen struct {
	Amount     int      `json:"amount" yaml:"amount"`
	Period     Duration `json:"period" yaml:"period"`
	FirstDelay Duration `json:"first_delay,omitempty" yaml:"first_delay,omitempty"`
}

// ResourceSpec is a row of the resource table.
type ResourceSpec struct {
	Kind resource.Kind `json:"-" yaml:"-"`

	Label   string `json:"label" yaml:"label"`
	Group   Group  `json:"group,omitempty" yaml:"group,omitempty" jsonschema:"enum=resources,enum=locks,enum=enemy,enum=self"`
	Order   int    `json:"order" yaml:"order"`
	Max     int    `json:"max" yaml:"max" jsonschema:"minimum=1"`
	Initial int    `json:"initial" yaml:"initial"`
	Regen   *Regen `json:"regen,omitempty" yaml:"regen,omitempty"`
}

func (r *ResourceSpec) Validate() error {
	el := errors.NewErrorList()

	if r.Max < 1 {
		el.Add(fmt.Errorf("max must be at least 1"))
	}
	if r.Initial < 0 || r.Initial > r.Max {
		el.Add(fmt.Errorf("initial must be between 0 and max"))
	}
	if r.Regen != nil && r.Regen.Period <= 0 {
		el.Add(fmt.Errorf("regen period must be positive"))
	}
	el.Add(r.Group.validate())

	return el.Err()
}

// CooldownSpec is a row of the cooldown table. SpeedScaled recasts are
// adjusted by spell speed when a game is created.
type CooldownSpec struct {
	Kind resource.Kind `json:"-" yaml:"-"`

	Label       string   `json:"label" yaml:"label"`
	Group       Group    `json:"group,omitempty" yaml:"group,omitempty" jsonschema:"enum=resources,enum=locks,enum=enemy,enum=self"`
	Order       int      `json:"order" yaml:"order"`
	MaxStacks   int      `json:"max_stacks" yaml:"max_stacks" jsonschema:"minimum=1"`
	Recast      Duration `json:"recast" yaml:"recast"`
	SpeedScaled bool     `json:"speed_scaled,omitempty" yaml:"speed_scaled,omitempty"`
}

func (c *CooldownSpec) Validate() error {
	el := errors.NewErrorList()

	if c.MaxStacks < 1 {
		el.Add(fmt.Errorf("max_stacks must be at least 1"))
	}
	if c.Recast <= 0 {
		el.Add(fmt.Errorf("recast must be positive"))
	}
	el.Add(c.Group.validate())

	return el.Err()
}
