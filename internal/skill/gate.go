package skill

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pixil98/go-rotsim/internal/resource"
)

// Reader is the read-only view of a game that the gate evaluates against.
type Reader interface {
	Value(kind resource.Kind) int
	TimeTillAvailable(kind resource.Kind, amount int) time.Duration
	TimeTillNextStackAvailable(kind resource.Kind) time.Duration
}

// lockGates apply to every skill: nothing can be used mid-cast or while the
// previous instant is still animating.
var lockGates = []resource.Kind{
	resource.NotCasterTaxed,
	resource.NotAnimationLocked,
}

// Evaluate decides whether sk can be used. Checks run in a fixed order and
// the first failure wins: requirements, then cost, then timing.
func Evaluate(r Reader, sk *Skill) Availability {
	a := Availability{
		Skill: sk.ID,
		Name:  sk.Name,
	}

	var unmet []string
	for _, req := range sk.Requires {
		unmet = append(unmet, req.unmet(r.Value(req.Resource))...)
	}
	if len(unmet) > 0 {
		a.Status = RequirementsNotMet
		a.Description = strings.Join(unmet, ", ")
		return a
	}

	if sk.Cost != nil {
		if have := r.Value(sk.Cost.Resource); have < sk.Cost.Amount {
			a.Status = InsufficientResource
			a.Description = fmt.Sprintf("%s %d/%d", sk.Cost.Resource, have, sk.Cost.Amount)
			return a
		}
	}

	// A gate nothing will ever refill cannot be waited out.
	wait := r.TimeTillNextStackAvailable(sk.Cooldown)
	var stuck []string
	for _, g := range slices.Concat(lockGates, sk.Gates) {
		w := r.TimeTillAvailable(g, 1)
		if w == resource.Never {
			stuck = append(stuck, string(g)+" never available")
			continue
		}
		wait = max(wait, w)
	}
	if wait == resource.Never {
		stuck = append(stuck, string(sk.Cooldown)+" never available")
	}
	if len(stuck) > 0 {
		a.Status = RequirementsNotMet
		a.Description = strings.Join(stuck, ", ")
		return a
	}
	if wait > 0 {
		a.Status = Blocked
		a.TimeTillAvailable = wait
		return a
	}

	a.Status = Ready
	return a
}
