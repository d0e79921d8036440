package skill

import "time"

// Status is the outcome of evaluating a skill against the current state.
type Status int

const (
	Ready Status = iota
	Blocked
	InsufficientResource
	RequirementsNotMet
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Blocked:
		return "blocked"
	case InsufficientResource:
		return "insufficient resource"
	case RequirementsNotMet:
		return "requirements not met"
	default:
		return "unknown"
	}
}

// Availability describes whether a skill can be used right now. It is
// recomputed on demand and never stored.
type Availability struct {
	Skill  string
	Name   string
	Status Status
	// TimeTillAvailable is only meaningful when Status is Blocked.
	TimeTillAvailable time.Duration
	// Description names the unmet requirements or the short resource.
	Description string
}
