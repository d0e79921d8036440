package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

const (
	DefaultCasterTax             = 60 * time.Millisecond
	DefaultSlideCastDuration     = 500 * time.Millisecond
	DefaultAnimationLock         = 660 * time.Millisecond
	DefaultSpellSpeed            = 1300
	DefaultTimeTillFirstManaTick = 1200 * time.Millisecond

	// BaseGCD is the unscaled global cooldown.
	BaseGCD = 2500 * time.Millisecond

	baseSpellSpeed = 400
)

// Config holds the tuning values of a game. It never changes for the life of
// a State; a different Config means a restart.
type Config struct {
	CasterTax             time.Duration
	SlideCastDuration     time.Duration
	AnimationLock         time.Duration
	SpellSpeed            int
	TimeTillFirstManaTick time.Duration
}

func DefaultConfig() Config {
	return Config{
		CasterTax:             DefaultCasterTax,
		SlideCastDuration:     DefaultSlideCastDuration,
		AnimationLock:         DefaultAnimationLock,
		SpellSpeed:            DefaultSpellSpeed,
		TimeTillFirstManaTick: DefaultTimeTillFirstManaTick,
	}
}

func (c Config) Validate() error {
	el := errors.NewErrorList()

	if c.SpellSpeed < 1 {
		el.Add(fmt.Errorf("spell_speed must be positive"))
	}
	if c.CasterTax < 0 {
		el.Add(fmt.Errorf("caster_tax cannot be negative"))
	}
	if c.SlideCastDuration < 0 {
		el.Add(fmt.Errorf("slide_cast cannot be negative"))
	}
	if c.AnimationLock < 0 {
		el.Add(fmt.Errorf("animation_lock cannot be negative"))
	}
	if c.TimeTillFirstManaTick < 0 {
		el.Add(fmt.Errorf("first_mana_tick cannot be negative"))
	}

	return el.Err()
}

// AdjustedCastTime scales a base cast or recast time by spell speed. The
// result is truncated to a multiple of 10ms.
func (c Config) AdjustedCastTime(base time.Duration) time.Duration {
	mod := ceilDiv(130*int64(baseSpellSpeed-c.SpellSpeed), 1900)
	ms := (1000 + mod) * base.Milliseconds() / 1000
	return time.Duration(ms/10*10) * time.Millisecond
}

// GCD is the global cooldown at this spell speed.
func (c Config) GCD() time.Duration {
	return c.AdjustedCastTime(BaseGCD)
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
