package console

import (
	"strings"
	"testing"

	"github.com/pixil98/go-rotsim/internal/display"
	"github.com/pixil98/go-rotsim/internal/skill"
	"github.com/pixil98/go-testutil"
)

func TestMenu(t *testing.T) {
	buttons := []skill.Availability{
		{Skill: "fire", Name: "Fire", Status: skill.Ready},
		{Skill: "blizzard", Name: "Blizzard", Status: skill.Blocked},
		{Skill: "despair", Name: "Despair", Status: skill.RequirementsNotMet},
	}

	tests := map[string]struct {
		rowLength int
		expRows   int
		expFirst  string
	}{
		"one column per row": {
			rowLength: 10,
			expRows:   3,
			expFirst:  " 1. Fire*",
		},
		"wide rows fill the first column first": {
			rowLength: 80,
			expRows:   3,
			expFirst:  " 1. Fire*",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newMenu(buttons, tt.rowLength)

			testutil.AssertEqual(t, "rows", len(m.rows), tt.expRows)
			if !strings.HasPrefix(m.rows[0], tt.expFirst) {
				t.Errorf("first row %q does not start with %q", m.rows[0], tt.expFirst)
			}
			if !strings.Contains(m.rows[1], " 2. Blizzard~") {
				t.Errorf("second row %q missing blocked mark", m.rows[1])
			}
			if strings.Contains(m.rows[2], "Despair*") || strings.Contains(m.rows[2], "Despair~") {
				t.Errorf("third row %q should not be marked", m.rows[2])
			}
		})
	}
}

func TestMenu_Select(t *testing.T) {
	m := newMenu([]skill.Availability{
		{Skill: "fire", Name: "Fire"},
		{Skill: "blizzard", Name: "Blizzard"},
	}, display.DefaultWidth)

	tests := map[string]struct {
		i   int
		exp string
	}{
		"first":    {i: 1, exp: "fire"},
		"last":     {i: 2, exp: "blizzard"},
		"zero":     {i: 0, exp: ""},
		"past end": {i: 3, exp: ""},
		"negative": {i: -1, exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "selection", m.Select(tt.i), tt.exp)
		})
	}
}

func TestMenu_LinesDoesNotGrowRows(t *testing.T) {
	m := newMenu([]skill.Availability{{Skill: "fire", Name: "Fire"}}, display.DefaultWidth)

	m.Lines()
	lines := m.Lines()
	testutil.AssertEqual(t, "lines", len(lines), 2)
	testutil.AssertEqual(t, "rows", len(m.rows), 1)
}
