package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTitle(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"underscores": {in: "ley_lines", exp: "Ley Lines"},
		"dashes":      {in: "between-the-lines", exp: "Between The Lines"},
		"single":      {in: "mana", exp: "Mana"},
		"empty":       {in: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "title", Title(tt.in), tt.exp)
		})
	}
}

func TestKindLabel(t *testing.T) {
	testutil.AssertEqual(t, "cooldown", KindLabel("cd_swiftcast"), "Swiftcast CD")
	testutil.AssertEqual(t, "resource", KindLabel("astral_fire"), "Astral Fire")
}

func TestBar(t *testing.T) {
	tests := map[string]struct {
		value, total, width int
		exp                 string
	}{
		"empty":     {value: 0, total: 3, width: 6, exp: "[......]"},
		"partial":   {value: 2, total: 3, width: 6, exp: "[####..]"},
		"full":      {value: 3, total: 3, width: 6, exp: "[######]"},
		"overflow":  {value: 9, total: 3, width: 6, exp: "[######]"},
		"zero max":  {value: 1, total: 0, width: 6, exp: ""},
		"underflow": {value: -1, total: 3, width: 3, exp: "[...]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "bar", Bar(tt.value, tt.total, tt.width), tt.exp)
		})
	}
}

func TestColumn(t *testing.T) {
	testutil.AssertEqual(t, "pad", Column("MP", 5), "MP   ")
	testutil.AssertEqual(t, "exact", Column("Fire", 4), "Fire")
	testutil.AssertEqual(t, "truncate", Column("Blizzard III", 6), "Blizz~")
}

func TestWrapWidth(t *testing.T) {
	testutil.AssertEqual(t, "wrap", WrapWidth("use skill [Fire IV]", 10), "use skill\n[Fire IV]")
}
