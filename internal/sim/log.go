package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category separates the action log, which records every attempt, from the
// event log, which only records what actually happened.
type Category int

const (
	CategoryAction Category = iota
	CategoryEvent
)

func (c Category) String() string {
	switch c {
	case CategoryAction:
		return "action"
	case CategoryEvent:
		return "event"
	default:
		return "unknown"
	}
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type Severity int

const (
	SeverityText Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
	SeverityGrey
)

func (s Severity) String() string {
	switch s {
	case SeverityText:
		return "text"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityGrey:
		return "grey"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LogEntry is one line of a session log.
type LogEntry struct {
	ID       uuid.UUID     `json:"id"`
	Session  string        `json:"session"`
	Category Category      `json:"category"`
	Severity Severity      `json:"severity"`
	Time     time.Duration `json:"time"`
	Text     string        `json:"text"`
}

// String prefixes the text with the simulated time.
func (e LogEntry) String() string {
	return fmt.Sprintf("%.3fs: %s", e.Time.Seconds(), e.Text)
}
