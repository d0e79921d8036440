package skill

import (
	"testing"
	"time"

	"github.com/pixil98/go-rotsim/internal/resource"
	"github.com/pixil98/go-testutil"
)

func testTables() (map[string]*ResourceSpec, map[string]*CooldownSpec, map[string]*Skill) {
	resources := map[string]*ResourceSpec{
		"mana":                 {Label: "MP", Group: GroupResources, Max: 10000, Initial: 10000},
		"astral_fire":          {Label: "AF", Group: GroupResources, Order: 1, Max: 3},
		"not_caster_taxed":     {Group: GroupLocks, Max: 1, Initial: 1},
		"not_animation_locked": {Group: GroupLocks, Max: 1, Initial: 1},
		"movement":             {Group: GroupLocks, Max: 1, Initial: 1},
	}
	cooldowns := map[string]*CooldownSpec{
		"cd_gcd": {Label: "GCD", Group: GroupLocks, MaxStacks: 1, Recast: Duration(2500 * time.Millisecond), SpeedScaled: true},
	}
	skills := map[string]*Skill{
		"fire": {
			Name: "Fire", Type: TypeSpell, Order: 2, CastTime: Duration(2500 * time.Millisecond),
			Cooldown: resource.GCD,
			Cost:     &Cost{Resource: resource.Mana, Amount: 800},
			Effects:  []Effect{{Resource: "astral_fire", Op: OpAdd, Amount: 1}},
		},
		"blizzard": {
			Name: "Blizzard", Type: TypeSpell, Order: 1, CastTime: Duration(2500 * time.Millisecond),
			Cooldown: resource.GCD,
			Effects:  []Effect{{Resource: "astral_fire", Op: OpSet, Amount: 0}},
		},
	}
	return resources, cooldowns, skills
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(testTables())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "displayed count", len(c.Displayed()), 2)
	testutil.AssertEqual(t, "first displayed", c.Displayed()[0], "blizzard")
	testutil.AssertEqual(t, "first resource", c.Resources()[0].Kind, resource.Mana)
	testutil.AssertEqual(t, "cooldown kind", c.Cooldowns()[0].Kind, resource.GCD)
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := NewCatalog(testTables())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		input string
		expID string
		expOK bool
	}{
		"by id":          {input: "fire", expID: "fire", expOK: true},
		"by name":        {input: "Blizzard", expID: "blizzard", expOK: true},
		"case and space": {input: "  FIRE ", expID: "fire", expOK: true},
		"unknown":        {input: "flare", expOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sk, ok := c.Lookup(tt.input)
			testutil.AssertEqual(t, "ok", ok, tt.expOK)
			if ok {
				testutil.AssertEqual(t, "id", sk.ID, tt.expID)
			}
		})
	}
}

func TestNewCatalog_UnknownKinds(t *testing.T) {
	tests := map[string]struct {
		mutate func(map[string]*ResourceSpec, map[string]*CooldownSpec, map[string]*Skill)
		expErr string
	}{
		"effect on unknown resource": {
			mutate: func(_ map[string]*ResourceSpec, _ map[string]*CooldownSpec, s map[string]*Skill) {
				s["fire"].Effects = append(s["fire"].Effects, Effect{Resource: "umbral_ice", Op: OpSet})
			},
			expErr: "unknown resource kind: umbral_ice",
		},
		"unknown cooldown": {
			mutate: func(_ map[string]*ResourceSpec, _ map[string]*CooldownSpec, s map[string]*Skill) {
				s["fire"].Cooldown = "cd_manafont"
			},
			expErr: "unknown resource kind: cd_manafont",
		},
		"unknown requirement": {
			mutate: func(_ map[string]*ResourceSpec, _ map[string]*CooldownSpec, s map[string]*Skill) {
				s["blizzard"].Requires = []Requirement{{Resource: "enochian", Min: 1}}
			},
			expErr: "unknown resource kind: enochian",
		},
		"missing engine resource": {
			mutate: func(r map[string]*ResourceSpec, _ map[string]*CooldownSpec, _ map[string]*Skill) {
				delete(r, "movement")
			},
			expErr: "unknown resource kind: movement",
		},
		"kind in both tables": {
			mutate: func(r map[string]*ResourceSpec, c map[string]*CooldownSpec, _ map[string]*Skill) {
				c["mana"] = &CooldownSpec{MaxStacks: 1, Recast: Duration(time.Second)}
			},
			expErr: "both a resource and a cooldown",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, c, s := testTables()
			tt.mutate(r, c, s)

			_, err := NewCatalog(r, c, s)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestSkill_Validate(t *testing.T) {
	tests := map[string]struct {
		skill  *Skill
		expErr string
	}{
		"valid": {
			skill: &Skill{Name: "Fire", Type: TypeSpell, Cooldown: resource.GCD},
		},
		"missing name": {
			skill:  &Skill{Type: TypeSpell, Cooldown: resource.GCD},
			expErr: "name is required",
		},
		"ability with cast time": {
			skill:  &Skill{Name: "Swiftcast", Type: TypeAbility, Cooldown: "cd_swiftcast", CastTime: Duration(time.Second)},
			expErr: "abilities cannot have a cast time",
		},
		"bad op": {
			skill:  &Skill{Name: "Fire", Type: TypeSpell, Cooldown: resource.GCD, Effects: []Effect{{Resource: "astral_fire", Op: "mul"}}},
			expErr: "unknown op",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.skill.Validate()
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

func TestResourceSpec_Validate(t *testing.T) {
	err := (&ResourceSpec{Max: 1, Initial: 2, Group: "sideways"}).Validate()
	testutil.AssertErrorContains(t, err, "initial must be between 0 and max")
	testutil.AssertErrorContains(t, err, "unknown group")

	err = (&CooldownSpec{MaxStacks: 0}).Validate()
	testutil.AssertErrorContains(t, err, "max_stacks must be at least 1")
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("2.8s")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "duration", d.Std(), 2800*time.Millisecond)

	err := d.UnmarshalText([]byte("soon"))
	testutil.AssertErrorContains(t, err, "parsing duration")
}
