package sim

import (
	"time"

	"github.com/pixil98/go-rotsim/internal/resource"
	"github.com/pixil98/go-rotsim/internal/skill"
)

// View is what a controller draws to.
type View interface {
	AppendLogEntry(LogEntry)
	RenderStatus(Status)
	RenderSkillButtons([]skill.Availability)
	NotifyRealTimeRunning(bool)
}

// LogSink receives a copy of every log entry.
type LogSink interface {
	AppendLogEntry(LogEntry)
}

// FrameSource calls back once per requested frame with the frame time. Frames
// must be delivered on the goroutine that owns the controller.
type FrameSource interface {
	RequestFrame(func(now time.Time))
}

// Gauge is one line of the status display.
type Gauge struct {
	Kind  resource.Kind
	Label string
	Value int
	Max   int
	// Countdown is the time till the next change worth showing: a buff
	// expiring, a lock lifting, a charge or regen tick coming back.
	Countdown time.Duration
	// Total is the full length of Countdown when it is known.
	Total time.Duration
}

// Status is the grouped projection of a game for display.
type Status struct {
	Time       time.Duration
	Resources  []Gauge
	Locks      []Gauge
	EnemyBuffs []Gauge
	SelfBuffs  []Gauge
}
