package resource

import (
	"math"
	"slices"
	"time"
)

// Kind identifies a resource or a cooldown. The set of kinds is fixed by the
// catalog a game is built from.
type Kind string

func (k Kind) String() string {
	return string(k)
}

// Kinds the engine reads or writes directly, independent of any skill data.
const (
	Mana               Kind = "mana"
	NotCasterTaxed     Kind = "not_caster_taxed"
	NotAnimationLocked Kind = "not_animation_locked"
	Movement           Kind = "movement"
	Triplecast         Kind = "triplecast"
	Swiftcast          Kind = "swiftcast"
	GCD                Kind = "cd_gcd"
)

// Never is reported when no scheduled change will make a resource available.
const Never = time.Duration(math.MaxInt64)

// maxProjectedFirings bounds how far TimeTillAvailable looks ahead through
// recurring changes.
const maxProjectedFirings = 1024

// PendingChange is a scheduled mutation of a resource value.
type PendingChange struct {
	// Delay is the time remaining until the change fires.
	Delay time.Duration
	// Amount is added to the value when the change fires.
	Amount int
	// Period reschedules the change after each firing when positive.
	Period time.Duration
}

// Recurring reports whether the change reschedules itself after firing.
func (pc PendingChange) Recurring() bool {
	return pc.Period > 0
}

// Resource is a bounded quantity with an ordered list of pending changes.
// Changes due at the same instant fire in the order they were scheduled.
type Resource struct {
	Kind    Kind
	Value   int
	Max     int
	Pending []PendingChange
}

// Available reports whether the current value covers amount.
func (r *Resource) Available(amount int) bool {
	return r.Value >= amount
}

// TimeTillReady is the time until the earliest one-shot pending change fires,
// or zero when none is scheduled.
func (r *Resource) TimeTillReady() time.Duration {
	var next time.Duration
	found := false
	for _, pc := range r.Pending {
		if pc.Recurring() {
			continue
		}
		if !found || pc.Delay < next {
			next = pc.Delay
			found = true
		}
	}
	return max(next, 0)
}

// NextChange is the time until any pending change, recurring or not, fires.
func (r *Resource) NextChange() time.Duration {
	if len(r.Pending) == 0 {
		return 0
	}
	next := r.Pending[0].Delay
	for _, pc := range r.Pending[1:] {
		next = min(next, pc.Delay)
	}
	return max(next, 0)
}

// TimeTillAvailable projects the pending changes forward and returns how long
// it takes for the value to reach amount.
func (r *Resource) TimeTillAvailable(amount int) time.Duration {
	if r.Available(amount) {
		return 0
	}

	proj := r.clone()
	var elapsed time.Duration
	for range maxProjectedFirings {
		if len(proj.Pending) == 0 {
			return Never
		}
		step := proj.NextChange()
		proj.advance(step)
		elapsed += step
		if proj.Available(amount) {
			return elapsed
		}
	}
	return Never
}

func (r *Resource) set(v int) {
	r.Value = min(max(v, 0), r.Max)
}

func (r *Resource) add(delta int) {
	r.set(r.Value + delta)
}

func (r *Resource) schedule(pc PendingChange) {
	r.Pending = append(r.Pending, pc)
}

func (r *Resource) advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	for i := range r.Pending {
		r.Pending[i].Delay -= dt
	}

	for {
		i := r.due()
		if i < 0 {
			return
		}
		pc := r.Pending[i]
		r.Pending = slices.Delete(r.Pending, i, i+1)
		r.add(pc.Amount)
		if pc.Recurring() {
			pc.Delay += pc.Period
			r.Pending = append(r.Pending, pc)
		}
	}
}

// due picks the overdue change with the earliest fire time, preferring the
// one scheduled first on ties. Returns -1 when nothing is due.
func (r *Resource) due() int {
	idx := -1
	for i, pc := range r.Pending {
		if pc.Delay > 0 {
			continue
		}
		if idx < 0 || pc.Delay < r.Pending[idx].Delay {
			idx = i
		}
	}
	return idx
}

func (r *Resource) clone() *Resource {
	c := *r
	c.Pending = slices.Clone(r.Pending)
	return &c
}
