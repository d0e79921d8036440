package resource

import (
	"fmt"
	"slices"
	"time"
)

// Store holds the timed resources of one game. It is not safe for concurrent
// use; a game is only ever mutated from its control goroutine.
//
// Accessors other than Get panic on kinds that were never registered. Catalogs
// are checked against their resource table when loaded, so reaching one of
// those panics means the table itself is broken.
type Store struct {
	resources map[Kind]*Resource
	order     []Kind
}

func NewStore() *Store {
	return &Store{
		resources: map[Kind]*Resource{},
	}
}

// Register adds a resource to the store.
func (s *Store) Register(r *Resource) error {
	if _, ok := s.resources[r.Kind]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, r.Kind)
	}
	r.set(r.Value)
	s.resources[r.Kind] = r
	s.order = append(s.order, r.Kind)
	return nil
}

// Get returns the resource registered under kind.
func (s *Store) Get(kind Kind) (*Resource, error) {
	r, ok := s.resources[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResourceKind, kind)
	}
	return r, nil
}

func (s *Store) mustGet(kind Kind) *Resource {
	r, err := s.Get(kind)
	if err != nil {
		panic(err)
	}
	return r
}

// Kinds lists registered kinds in registration order.
func (s *Store) Kinds() []Kind {
	return slices.Clone(s.order)
}

func (s *Store) Value(kind Kind) int {
	return s.mustGet(kind).Value
}

func (s *Store) Max(kind Kind) int {
	return s.mustGet(kind).Max
}

func (s *Store) Available(kind Kind, amount int) bool {
	return s.mustGet(kind).Available(amount)
}

func (s *Store) TimeTillReady(kind Kind) time.Duration {
	return s.mustGet(kind).TimeTillReady()
}

func (s *Store) NextChange(kind Kind) time.Duration {
	return s.mustGet(kind).NextChange()
}

func (s *Store) TimeTillAvailable(kind Kind, amount int) time.Duration {
	return s.mustGet(kind).TimeTillAvailable(amount)
}

// Set overwrites the value of kind, clamped to its capacity.
func (s *Store) Set(kind Kind, v int) {
	s.mustGet(kind).set(v)
}

// Add applies delta to the value of kind, clamped to its capacity.
func (s *Store) Add(kind Kind, delta int) {
	s.mustGet(kind).add(delta)
}

// Schedule appends a pending change to kind.
func (s *Store) Schedule(kind Kind, pc PendingChange) {
	s.mustGet(kind).schedule(pc)
}

// ClearPending drops every pending change on kind, recurring ones included.
func (s *Store) ClearPending(kind Kind) {
	s.mustGet(kind).Pending = nil
}

// Advance moves every resource forward by dt, firing whatever falls due.
func (s *Store) Advance(dt time.Duration) {
	for _, k := range s.order {
		s.resources[k].advance(dt)
	}
}

// Snapshot returns deep copies of every resource in registration order.
func (s *Store) Snapshot() []Resource {
	snap := make([]Resource, 0, len(s.order))
	for _, k := range s.order {
		snap = append(snap, *s.resources[k].clone())
	}
	return snap
}
