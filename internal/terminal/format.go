package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-rotsim/internal/display"
	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/rivo/tview"
)

const barWidth = 12

var severityTags = map[sim.Severity]string{
	sim.SeverityText:    "",
	sim.SeveritySuccess: "green",
	sim.SeverityWarning: "yellow",
	sim.SeverityError:   "red",
	sim.SeverityGrey:    "gray",
}

// entryLine renders a log entry with tview colour tags.
func entryLine(e sim.LogEntry) string {
	text := tview.Escape(e.String())
	if tag := severityTags[e.Severity]; tag != "" {
		return fmt.Sprintf("[%s]%s[-]", tag, text)
	}
	return text
}

func statusText(st sim.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[::b]Time[::-] %.3fs\n", st.Time.Seconds())

	groups := []struct {
		title  string
		gauges []sim.Gauge
	}{
		{"Resources", st.Resources},
		{"Locks", st.Locks},
		{"Enemy", st.EnemyBuffs},
		{"Self", st.SelfBuffs},
	}
	for _, g := range groups {
		if len(g.gauges) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n[::b]%s[::-]\n", g.title)
		for _, gauge := range g.gauges {
			b.WriteString(gaugeLine(gauge))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func gaugeLine(g sim.Gauge) string {
	name := g.Label
	if name == string(g.Kind) {
		name = display.KindLabel(name)
	}

	line := fmt.Sprintf("%s %s %d/%d", display.Column(name, 14), tview.Escape(display.Bar(g.Value, g.Max, barWidth)), g.Value, g.Max)
	if g.Countdown > 0 {
		line += fmt.Sprintf(" [gray]%.2fs[-]", g.Countdown.Seconds())
	}
	return line
}

// skillCell is the text and colour of a skill's row in the skill table.
func skillCell(n int, a skill.Availability) (string, tcell.Color) {
	label := a.Name
	if n <= 9 {
		label = fmt.Sprintf("%d %s", n, a.Name)
	}

	switch a.Status {
	case skill.Ready:
		return label, tcell.ColorGreen
	case skill.Blocked:
		return fmt.Sprintf("%s (%.1fs)", label, a.TimeTillAvailable.Seconds()), tcell.ColorYellow
	case skill.InsufficientResource:
		return label, tcell.ColorRed
	default:
		return label, tcell.ColorGray
	}
}

func footerText(mode sim.TickMode, running bool) string {
	state := "paused"
	if running {
		state = "[green]running[-]"
	}
	return fmt.Sprintf(" %s | %s | 1-9/enter use  space %s  right step  f ff  m mode  r restart  q quit",
		mode, state, spaceHint(mode))
}

func spaceHint(mode sim.TickMode) string {
	switch mode {
	case sim.RealTime:
		return "play/pause"
	case sim.Manual:
		return "fast-forward"
	default:
		return "-"
	}
}
