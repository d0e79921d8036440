package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-rotsim/internal/sim"
)

// SubjectPrefix is the root of every subject the simulator publishes on.
const SubjectPrefix = "rotsim"

// FeedSubject matches every log entry of every session.
const FeedSubject = SubjectPrefix + ".>"

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

// LogPublisher is a log sink that publishes every entry as JSON on
// rotsim.<session>.log.<category>.
type LogPublisher struct {
	pub Publisher
}

func NewLogPublisher(pub Publisher) *LogPublisher {
	return &LogPublisher{pub: pub}
}

func (p *LogPublisher) AppendLogEntry(e sim.LogEntry) {
	data, err := json.Marshal(e)
	if err != nil {
		slog.Error("encoding log entry", "session", e.Session, "error", err)
		return
	}

	err = p.pub.Publish(LogSubject(e.Session, e.Category), data)
	switch {
	case errors.Is(err, ErrNotStarted):
		slog.Debug("bus not up, dropping log entry", "session", e.Session)
	case err != nil:
		slog.Warn("publishing log entry", "session", e.Session, "error", err)
	}
}

// LogSubject is the subject a session's log entries of one category go to.
func LogSubject(session string, cat sim.Category) string {
	return fmt.Sprintf("%s.%s.log.%s", SubjectPrefix, subjectToken(session), cat)
}

var tokenReplacer = strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_")

// subjectToken makes s safe to use as a single subject token.
func subjectToken(s string) string {
	if s == "" {
		return "_"
	}
	return tokenReplacer.Replace(s)
}

// SessionFromSubject extracts the session token from a log subject.
func SessionFromSubject(subject string) (string, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) != 4 || parts[0] != SubjectPrefix || parts[2] != "log" {
		return "", false
	}
	return parts[1], true
}
