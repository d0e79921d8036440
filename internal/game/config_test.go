package game

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestConfig_AdjustedCastTime(t *testing.T) {
	tests := map[string]struct {
		speed int
		base  time.Duration
		exp   time.Duration
	}{
		"base speed":       {speed: 400, base: 2500 * time.Millisecond, exp: 2500 * time.Millisecond},
		"default gcd":      {speed: 1300, base: 2500 * time.Millisecond, exp: 2340 * time.Millisecond},
		"slower gear":      {speed: 1268, base: 2500 * time.Millisecond, exp: 2350 * time.Millisecond},
		"long cast":        {speed: 1300, base: 2800 * time.Millisecond, exp: 2620 * time.Millisecond},
		"below base speed": {speed: 210, base: 2500 * time.Millisecond, exp: 2530 * time.Millisecond},
		"zero base":        {speed: 1300, base: 0, exp: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			c.SpellSpeed = tt.speed
			testutil.AssertEqual(t, "cast time", c.AdjustedCastTime(tt.base), tt.exp)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		config Config
		expErr string
	}{
		"defaults": {
			config: DefaultConfig(),
		},
		"zero spell speed": {
			config: Config{},
			expErr: "spell_speed must be positive",
		},
		"negative caster tax": {
			config: Config{SpellSpeed: 400, CasterTax: -time.Millisecond},
			expErr: "caster_tax cannot be negative",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}
