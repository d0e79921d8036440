package skill

import (
	"testing"
	"time"

	"github.com/pixil98/go-rotsim/internal/resource"
	"github.com/pixil98/go-testutil"
)

// fakeReader answers gate queries from fixed tables.
type fakeReader struct {
	values map[resource.Kind]int
	waits  map[resource.Kind]time.Duration
	stacks map[resource.Kind]time.Duration
}

func (f *fakeReader) Value(kind resource.Kind) int {
	return f.values[kind]
}

func (f *fakeReader) TimeTillAvailable(kind resource.Kind, amount int) time.Duration {
	if f.values[kind] >= amount {
		return 0
	}
	return f.waits[kind]
}

func (f *fakeReader) TimeTillNextStackAvailable(kind resource.Kind) time.Duration {
	return f.stacks[kind]
}

func fireIV() *Skill {
	return &Skill{
		ID:       "fire-iv",
		Name:     "Fire IV",
		Type:     TypeSpell,
		CastTime: Duration(2800 * time.Millisecond),
		Cooldown: resource.GCD,
		Cost:     &Cost{Resource: resource.Mana, Amount: 800},
		Requires: []Requirement{
			{Resource: "astral_fire", Min: 1},
			{Resource: "enochian", Min: 1},
		},
	}
}

func TestEvaluate(t *testing.T) {
	one := 1

	tests := map[string]struct {
		skill     *Skill
		reader    *fakeReader
		expStatus Status
		expWait   time.Duration
		expDesc   string
	}{
		"requirements win over everything": {
			skill: fireIV(),
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.Mana: 0, "enochian": 1},
				stacks: map[resource.Kind]time.Duration{resource.GCD: time.Second},
			},
			expStatus: RequirementsNotMet,
			expDesc:   "astral_fire>=1",
		},
		"every unmet requirement is named": {
			skill:     fireIV(),
			reader:    &fakeReader{},
			expStatus: RequirementsNotMet,
			expDesc:   "astral_fire>=1, enochian>=1",
		},
		"upper bound requirement": {
			skill: &Skill{
				ID:       "umbral-soul",
				Name:     "Umbral Soul",
				Type:     TypeSpell,
				Cooldown: resource.GCD,
				Requires: []Requirement{{Resource: "astral_fire", Max: &one}},
			},
			reader: &fakeReader{
				values: map[resource.Kind]int{"astral_fire": 3, resource.NotCasterTaxed: 1, resource.NotAnimationLocked: 1},
			},
			expStatus: RequirementsNotMet,
			expDesc:   "astral_fire<=1",
		},
		"cost checked before timing": {
			skill: fireIV(),
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.Mana: 400, "astral_fire": 3, "enochian": 1},
				stacks: map[resource.Kind]time.Duration{resource.GCD: time.Second},
			},
			expStatus: InsufficientResource,
			expDesc:   "mana 400/800",
		},
		"blocked by the longest gate": {
			skill: fireIV(),
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.Mana: 10000, "astral_fire": 3, "enochian": 1, resource.NotAnimationLocked: 1},
				waits:  map[resource.Kind]time.Duration{resource.NotCasterTaxed: 2600 * time.Millisecond},
				stacks: map[resource.Kind]time.Duration{resource.GCD: 2500 * time.Millisecond},
			},
			expStatus: Blocked,
			expWait:   2600 * time.Millisecond,
		},
		"blocked by cooldown refill": {
			skill: fireIV(),
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.Mana: 10000, "astral_fire": 3, "enochian": 1, resource.NotCasterTaxed: 1, resource.NotAnimationLocked: 1},
				stacks: map[resource.Kind]time.Duration{resource.GCD: 2500 * time.Millisecond},
			},
			expStatus: Blocked,
			expWait:   2500 * time.Millisecond,
		},
		"blocked by skill gate": {
			skill: &Skill{
				ID:       "ley-lines",
				Name:     "Ley Lines",
				Type:     TypeAbility,
				Cooldown: "cd_ley_lines",
				Gates:    []resource.Kind{resource.Movement},
			},
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.NotCasterTaxed: 1, resource.NotAnimationLocked: 1},
				waits:  map[resource.Kind]time.Duration{resource.Movement: 300 * time.Millisecond},
			},
			expStatus: Blocked,
			expWait:   300 * time.Millisecond,
		},
		"gate that never refills": {
			skill: &Skill{
				ID:       "paradox",
				Name:     "Paradox",
				Type:     TypeSpell,
				Cooldown: resource.GCD,
				Gates:    []resource.Kind{"charge"},
			},
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.NotCasterTaxed: 1, resource.NotAnimationLocked: 1},
				waits:  map[resource.Kind]time.Duration{"charge": resource.Never},
				stacks: map[resource.Kind]time.Duration{resource.GCD: time.Second},
			},
			expStatus: RequirementsNotMet,
			expDesc:   "charge never available",
		},
		"ready": {
			skill: fireIV(),
			reader: &fakeReader{
				values: map[resource.Kind]int{resource.Mana: 800, "astral_fire": 1, "enochian": 1, resource.NotCasterTaxed: 1, resource.NotAnimationLocked: 1},
			},
			expStatus: Ready,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := Evaluate(tt.reader, tt.skill)

			testutil.AssertEqual(t, "skill", a.Skill, tt.skill.ID)
			testutil.AssertEqual(t, "status", a.Status, tt.expStatus)
			testutil.AssertEqual(t, "wait", a.TimeTillAvailable, tt.expWait)
			testutil.AssertEqual(t, "description", a.Description, tt.expDesc)
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := map[Status]string{
		Ready:                "ready",
		Blocked:              "blocked",
		InsufficientResource: "insufficient resource",
		RequirementsNotMet:   "requirements not met",
		Status(42):           "unknown",
	}
	for s, exp := range tests {
		testutil.AssertEqual(t, exp, s.String(), exp)
	}
}
