package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

const testPresets = `
[presets.default]

[presets.slow]
step_size = "250ms"
spell_speed = 1268
first_mana_tick = "300ms"
`

func TestParsePresets(t *testing.T) {
	p, err := ParsePresets(testPresets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "count", len(p.Names()), 2)
	testutil.AssertEqual(t, "first name", p.Names()[0], "default")

	def, err := p.Get("default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "default config", def.Config(), DefaultConfig())
	testutil.AssertEqual(t, "default step", def.Step(), DefaultStepSize)

	slow, err := p.Get("slow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "slow speed", slow.Config().SpellSpeed, 1268)
	testutil.AssertEqual(t, "slow mana tick", slow.Config().TimeTillFirstManaTick, 300*time.Millisecond)
	testutil.AssertEqual(t, "slow caster tax", slow.Config().CasterTax, DefaultCasterTax)
	testutil.AssertEqual(t, "slow step", slow.Step(), 250*time.Millisecond)

	_, err = p.Get("fast")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestParsePresets_Errors(t *testing.T) {
	tests := map[string]struct {
		data   string
		expErr string
	}{
		"bad toml": {
			data:   "[presets.slow\n",
			expErr: "parsing presets",
		},
		"bad duration": {
			data:   "[presets.slow]\ncaster_tax = \"soon\"\n",
			expErr: "parsing presets",
		},
		"negative step": {
			data:   "[presets.slow]\nstep_size = \"-1s\"\n",
			expErr: "preset slow: step_size cannot be negative",
		},
		"negative spell speed": {
			data:   "[presets.slow]\nspell_speed = -5\n",
			expErr: "spell_speed must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePresets(tt.data)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(testPresets), 0o644); err != nil {
		t.Fatalf("writing presets: %v", err)
	}

	p, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "count", len(p), 2)

	_, err = LoadPresets(filepath.Join(t.TempDir(), "missing.toml"))
	testutil.AssertErrorContains(t, err, "reading presets")
}
