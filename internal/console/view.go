package console

import (
	"log/slog"

	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
)

const ansiReset = "\x1b[0m"

var severityColors = map[sim.Severity]string{
	sim.SeveritySuccess: "\x1b[32m",
	sim.SeverityWarning: "\x1b[33m",
	sim.SeverityError:   "\x1b[31m",
	sim.SeverityGrey:    "\x1b[90m",
}

// textView prints the action log as it happens. Status and skills are only
// printed when asked for.
type textView struct {
	out   *lineWriter
	color bool
}

func (v *textView) AppendLogEntry(e sim.LogEntry) {
	if e.Category != sim.CategoryAction {
		return
	}
	if err := v.out.println(v.paint(e.Severity, e.String())); err != nil {
		slog.Warn("writing log entry", "session", e.Session, "error", err)
	}
}

func (v *textView) RenderStatus(sim.Status) {}

func (v *textView) RenderSkillButtons([]skill.Availability) {}

func (v *textView) NotifyRealTimeRunning(bool) {}

func (v *textView) paint(sev sim.Severity, text string) string {
	c, ok := severityColors[sev]
	if !v.color || !ok {
		return text
	}
	return c + text + ansiReset
}
