package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-rotsim/internal/resource"
	"github.com/pixil98/go-rotsim/internal/skill"
)

// State is one run of the simulation. It is created fresh on every restart and
// only changes through Tick and UseSkillIfAvailable.
type State struct {
	Time      time.Duration
	Resources *resource.Store
	Cooldowns *resource.CooldownStore

	config  Config
	catalog *skill.Catalog

	// lockLengths remembers the full length of the latest lock per kind so a
	// countdown can be drawn against it.
	lockLengths map[resource.Kind]time.Duration
}

// NewState builds the initial state for a catalog: every resource at its
// initial value with its regen scheduled, every cooldown full.
func NewState(c *skill.Catalog, cfg Config) *State {
	s := &State{
		Resources:   resource.NewStore(),
		Cooldowns:   resource.NewCooldownStore(),
		config:      cfg,
		catalog:     c,
		lockLengths: map[resource.Kind]time.Duration{},
	}

	// Catalog kinds are unique, so registration cannot fail.
	for _, spec := range c.Resources() {
		r := &resource.Resource{
			Kind:  spec.Kind,
			Value: spec.Initial,
			Max:   spec.Max,
		}
		if spec.Regen != nil {
			first := spec.Regen.FirstDelay.Std()
			if first == 0 {
				first = cfg.TimeTillFirstManaTick
			}
			r.Pending = append(r.Pending, resource.PendingChange{
				Delay:  first,
				Amount: spec.Regen.Amount,
				Period: spec.Regen.Period.Std(),
			})
		}
		if err := s.Resources.Register(r); err != nil {
			panic(err)
		}
	}

	for _, spec := range c.Cooldowns() {
		recast := spec.Recast.Std()
		if spec.SpeedScaled {
			recast = cfg.AdjustedCastTime(recast)
		}
		if err := s.Cooldowns.Register(resource.NewCooldown(spec.Kind, spec.MaxStacks, recast)); err != nil {
			panic(err)
		}
	}

	return s
}

func (s *State) Config() Config {
	return s.config
}

func (s *State) Catalog() *skill.Catalog {
	return s.catalog
}

// Tick advances the game by dt. Resources move before cooldowns.
func (s *State) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.Resources.Advance(dt)
	s.Cooldowns.Advance(dt)
	s.Time += dt
}

func (s *State) Value(kind resource.Kind) int {
	return s.Resources.Value(kind)
}

func (s *State) TimeTillAvailable(kind resource.Kind, amount int) time.Duration {
	return s.Resources.TimeTillAvailable(kind, amount)
}

func (s *State) TimeTillNextStackAvailable(kind resource.Kind) time.Duration {
	return s.Cooldowns.TimeTillNextStackAvailable(kind)
}

// LockLength is the full length of the most recent lock placed on kind.
func (s *State) LockLength(kind resource.Kind) time.Duration {
	return s.lockLengths[kind]
}

func (s *State) lookup(name string) (*skill.Skill, error) {
	sk, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSkill, name)
	}
	return sk, nil
}

// SkillAvailability evaluates a skill against the current state.
func (s *State) SkillAvailability(name string) (skill.Availability, error) {
	sk, err := s.lookup(name)
	if err != nil {
		return skill.Availability{}, err
	}
	return skill.Evaluate(s, sk), nil
}

// UseSkillIfAvailable applies the skill if it is Ready and reports whether it
// did. Nothing changes when it is not.
func (s *State) UseSkillIfAvailable(name string) bool {
	sk, err := s.lookup(name)
	if err != nil {
		return false
	}
	if skill.Evaluate(s, sk).Status != skill.Ready {
		return false
	}

	if sk.Cost != nil {
		s.Resources.Add(sk.Cost.Resource, -sk.Cost.Amount)
	}
	s.Cooldowns.Use(sk.Cooldown)

	if castTime := s.castTime(sk); castTime > 0 {
		s.lock(resource.NotCasterTaxed, castTime+s.config.CasterTax)
		s.lock(resource.Movement, castTime-s.config.SlideCastDuration)
	} else {
		s.lock(resource.NotAnimationLocked, s.config.AnimationLock)
	}

	for _, e := range sk.Effects {
		s.apply(e)
	}
	return true
}

// castTime is the effective cast time of sk. Using a spell while Triplecast or
// Swiftcast is up consumes one stack and makes it instant, Triplecast first.
func (s *State) castTime(sk *skill.Skill) time.Duration {
	if !sk.IsSpell() || sk.CastTime == 0 {
		return 0
	}
	for _, k := range []resource.Kind{resource.Triplecast, resource.Swiftcast} {
		if s.catalog.HasResource(k) && s.Resources.Value(k) > 0 {
			s.Resources.Add(k, -1)
			if s.Resources.Value(k) == 0 {
				s.Resources.ClearPending(k)
			}
			return 0
		}
	}
	return s.config.AdjustedCastTime(sk.CastTime.Std())
}

// lock drops kind to zero and restores it after d.
func (s *State) lock(kind resource.Kind, d time.Duration) {
	if d <= 0 {
		return
	}
	s.Resources.Set(kind, 0)
	s.Resources.ClearPending(kind)
	s.Resources.Schedule(kind, resource.PendingChange{Delay: d, Amount: 1})
	s.lockLengths[kind] = d
}

func (s *State) apply(e skill.Effect) {
	if e.Duration > 0 {
		s.Resources.ClearPending(e.Resource)
	}

	switch e.Op {
	case skill.OpAdd:
		s.Resources.Add(e.Resource, e.Amount)
	case skill.OpSet:
		s.Resources.Set(e.Resource, e.Amount)
	}

	if e.Duration > 0 {
		s.Resources.Schedule(e.Resource, resource.PendingChange{
			Delay:  e.Duration.Std(),
			Amount: -s.Resources.Max(e.Resource),
		})
	}
}

// TimeTillAnySkillAvailable is the shortest wait until one of the named skills
// can be used. Skills that are short on resources or requirements are ignored,
// and so are names outside the catalog. If none of them is Ready or Blocked
// the result is zero.
func (s *State) TimeTillAnySkillAvailable(names []string) time.Duration {
	found := false
	var soonest time.Duration
	for _, name := range names {
		a, err := s.SkillAvailability(name)
		if err != nil {
			continue
		}
		switch a.Status {
		case skill.Ready:
			return 0
		case skill.Blocked:
			if !found || a.TimeTillAvailable < soonest {
				soonest = a.TimeTillAvailable
				found = true
			}
		case skill.InsufficientResource, skill.RequirementsNotMet:
		}
	}
	return soonest
}

// Snapshot is a deep copy of everything Tick and UseSkillIfAvailable can
// change. Two snapshots compare with reflect.DeepEqual.
type Snapshot struct {
	Time      time.Duration
	Resources []resource.Resource
	Cooldowns []resource.CooldownState
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Time:      s.Time,
		Resources: s.Resources.Snapshot(),
		Cooldowns: s.Cooldowns.Snapshot(),
	}
}
