package console

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-rotsim/internal/display"
	"github.com/pixil98/go-rotsim/internal/skill"
)

const defaultMenuRowCount = 6

// menu numbers the skills so they can be used by number.
type menu struct {
	ids  []string
	rows []string
}

func newMenu(buttons []skill.Availability, rowLength int) *menu {
	m := &menu{ids: make([]string, len(buttons))}
	for i, b := range buttons {
		m.ids[i] = b.Skill
	}
	if len(buttons) == 0 {
		return m
	}

	// Column width is the longest entry plus room for the number, the
	// status mark and spacing (nn. <name>*  ).
	colWidth := 1
	for _, b := range buttons {
		colWidth = max(colWidth, len(b.Name)+8)
	}

	// Fill columns first, left to right. Use more rows than the default when
	// the columns don't fit on one line.
	numCols := max(rowLength/colWidth, 1)
	numRows := max((len(buttons)+numCols-1)/numCols, defaultMenuRowCount)

	rows := make([]string, numRows)
	for i, b := range buttons {
		entry := fmt.Sprintf("%2d. %s", i+1, display.Column(b.Name+mark(b.Status), colWidth-6))
		rows[i%numRows] += entry + "  "
	}

	for _, r := range rows {
		if r != "" {
			m.rows = append(m.rows, r)
		}
	}
	return m
}

// mark flags a skill's status in the menu.
func mark(s skill.Status) string {
	switch s {
	case skill.Ready:
		return "*"
	case skill.Blocked:
		return "~"
	default:
		return ""
	}
}

// Select returns the skill id at position i, counting from 1, or "".
func (m *menu) Select(i int) string {
	if i < 1 || i > len(m.ids) {
		return ""
	}
	return m.ids[i-1]
}

func (m *menu) Lines() []string {
	lines := slices.Clone(m.rows)
	return append(lines, "(* ready, ~ waiting on a cooldown or lock)")
}
