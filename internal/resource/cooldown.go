package resource

import (
	"fmt"
	"slices"
	"time"
)

// Cooldown is a recast timer holding up to MaxStacks charges. Charges come
// back one at a time, one Recast apart.
type Cooldown struct {
	Kind      Kind
	MaxStacks int
	Recast    time.Duration

	stacks    int
	untilNext time.Duration
}

// NewCooldown creates a cooldown with every charge available.
func NewCooldown(kind Kind, maxStacks int, recast time.Duration) *Cooldown {
	return &Cooldown{
		Kind:      kind,
		MaxStacks: maxStacks,
		Recast:    recast,
		stacks:    maxStacks,
	}
}

// Stacks is the number of charges ready to use.
func (c *Cooldown) Stacks() int {
	return c.stacks
}

// TimeTillNextStackAvailable is zero while a charge is ready, otherwise the
// time until one comes back.
func (c *Cooldown) TimeTillNextStackAvailable() time.Duration {
	if c.stacks > 0 {
		return 0
	}
	return c.untilNext
}

// TimeTillNextStack is the recharge progress, reported even when other
// charges are still ready. Zero when the cooldown is full.
func (c *Cooldown) TimeTillNextStack() time.Duration {
	return c.untilNext
}

// Use consumes one charge. It returns false and changes nothing when no
// charge is ready.
func (c *Cooldown) Use() bool {
	if c.stacks == 0 {
		return false
	}
	if c.stacks == c.MaxStacks {
		c.untilNext = c.Recast
	}
	c.stacks--
	if c.Recast <= 0 {
		c.stacks = c.MaxStacks
		c.untilNext = 0
	}
	return true
}

func (c *Cooldown) advance(dt time.Duration) {
	if dt < 0 || c.stacks >= c.MaxStacks {
		return
	}
	c.untilNext -= dt
	for c.untilNext <= 0 && c.stacks < c.MaxStacks {
		c.stacks++
		if c.stacks < c.MaxStacks {
			c.untilNext += c.Recast
		} else {
			c.untilNext = 0
		}
	}
}

// CooldownState is a value copy of a cooldown.
type CooldownState struct {
	Kind      Kind
	Stacks    int
	MaxStacks int
	UntilNext time.Duration
}

// CooldownStore holds the cooldowns of one game. Like Store, its accessors
// panic on unregistered kinds.
type CooldownStore struct {
	cooldowns map[Kind]*Cooldown
	order     []Kind
}

func NewCooldownStore() *CooldownStore {
	return &CooldownStore{
		cooldowns: map[Kind]*Cooldown{},
	}
}

func (s *CooldownStore) Register(c *Cooldown) error {
	if _, ok := s.cooldowns[c.Kind]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, c.Kind)
	}
	s.cooldowns[c.Kind] = c
	s.order = append(s.order, c.Kind)
	return nil
}

func (s *CooldownStore) Get(kind Kind) (*Cooldown, error) {
	c, ok := s.cooldowns[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResourceKind, kind)
	}
	return c, nil
}

func (s *CooldownStore) mustGet(kind Kind) *Cooldown {
	c, err := s.Get(kind)
	if err != nil {
		panic(err)
	}
	return c
}

func (s *CooldownStore) Kinds() []Kind {
	return slices.Clone(s.order)
}

func (s *CooldownStore) StacksAvailable(kind Kind) int {
	return s.mustGet(kind).Stacks()
}

func (s *CooldownStore) TimeTillNextStackAvailable(kind Kind) time.Duration {
	return s.mustGet(kind).TimeTillNextStackAvailable()
}

func (s *CooldownStore) TimeTillNextStack(kind Kind) time.Duration {
	return s.mustGet(kind).TimeTillNextStack()
}

func (s *CooldownStore) Use(kind Kind) bool {
	return s.mustGet(kind).Use()
}

// Advance moves every cooldown forward by dt.
func (s *CooldownStore) Advance(dt time.Duration) {
	for _, k := range s.order {
		s.cooldowns[k].advance(dt)
	}
}

func (s *CooldownStore) Snapshot() []CooldownState {
	snap := make([]CooldownState, 0, len(s.order))
	for _, k := range s.order {
		c := s.cooldowns[k]
		snap = append(snap, CooldownState{
			Kind:      c.Kind,
			Stacks:    c.stacks,
			MaxStacks: c.MaxStacks,
			UntilNext: c.untilNext,
		})
	}
	return snap
}
