package sim

import (
	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-rotsim/internal/skill"
)

// buildStatus projects every displayed resource and cooldown of g into its
// status group.
func buildStatus(g *game.State) Status {
	st := Status{Time: g.Time}

	for _, spec := range g.Catalog().Resources() {
		gauge := Gauge{
			Kind:  spec.Kind,
			Label: label(spec.Label, string(spec.Kind)),
			Value: g.Resources.Value(spec.Kind),
			Max:   spec.Max,
		}
		if spec.Regen != nil {
			gauge.Countdown = g.Resources.NextChange(spec.Kind)
			gauge.Total = spec.Regen.Period.Std()
		} else {
			gauge.Countdown = g.Resources.TimeTillReady(spec.Kind)
			gauge.Total = g.LockLength(spec.Kind)
		}
		st.add(spec.Group, gauge)
	}

	for _, spec := range g.Catalog().Cooldowns() {
		cd, err := g.Cooldowns.Get(spec.Kind)
		if err != nil {
			continue
		}
		st.add(spec.Group, Gauge{
			Kind:      spec.Kind,
			Label:     label(spec.Label, string(spec.Kind)),
			Value:     cd.Stacks(),
			Max:       cd.MaxStacks,
			Countdown: cd.TimeTillNextStackAvailable(),
			Total:     cd.Recast,
		})
	}

	return st
}

func (st *Status) add(group skill.Group, g Gauge) {
	switch group {
	case skill.GroupResources:
		st.Resources = append(st.Resources, g)
	case skill.GroupLocks:
		st.Locks = append(st.Locks, g)
	case skill.GroupEnemyBuffs:
		st.EnemyBuffs = append(st.EnemyBuffs, g)
	case skill.GroupSelfBuffs:
		st.SelfBuffs = append(st.SelfBuffs, g)
	case skill.GroupHidden:
	}
}

func label(l, fallback string) string {
	if l == "" {
		return fallback
	}
	return l
}
