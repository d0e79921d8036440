package skill

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rotsim/internal/resource"
)

// engineKinds are written by the engine itself and must be in every
// resource table.
var engineKinds = []resource.Kind{
	resource.NotCasterTaxed,
	resource.NotAnimationLocked,
	resource.Movement,
}

// Catalog is the resolved set of resources, cooldowns and skills a game is
// built from. It is read-only once created.
type Catalog struct {
	resources map[resource.Kind]*ResourceSpec
	cooldowns map[resource.Kind]*CooldownSpec
	skills    map[string]*Skill
	names     map[string]string
}

// NewCatalog indexes the three tables by asset id and checks every kind a
// skill refers to against them.
func NewCatalog(resources map[string]*ResourceSpec, cooldowns map[string]*CooldownSpec, skills map[string]*Skill) (*Catalog, error) {
	c := &Catalog{
		resources: make(map[resource.Kind]*ResourceSpec, len(resources)),
		cooldowns: make(map[resource.Kind]*CooldownSpec, len(cooldowns)),
		skills:    make(map[string]*Skill, len(skills)),
		names:     make(map[string]string, len(skills)),
	}

	for id, r := range resources {
		r.Kind = resource.Kind(id)
		c.resources[r.Kind] = r
	}
	for id, cd := range cooldowns {
		cd.Kind = resource.Kind(id)
		if _, dup := c.resources[cd.Kind]; dup {
			return nil, fmt.Errorf("%s is both a resource and a cooldown", id)
		}
		c.cooldowns[cd.Kind] = cd
	}
	for id, sk := range skills {
		sk.ID = id
		c.skills[id] = sk
		c.names[normalize(id)] = id
		c.names[normalize(sk.Name)] = id
	}

	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) resolve() error {
	el := errors.NewErrorList()

	for _, k := range engineKinds {
		if !c.HasResource(k) {
			el.Add(fmt.Errorf("resource table: %w: %s", resource.ErrUnknownResourceKind, k))
		}
	}

	for _, sk := range c.Skills() {
		el.Add(c.resolveSkill(sk))
	}

	return el.Err()
}

func (c *Catalog) resolveSkill(sk *Skill) error {
	el := errors.NewErrorList()

	check := func(what string, k resource.Kind) {
		if !c.HasResource(k) {
			el.Add(fmt.Errorf("skill %q %s: %w: %s", sk.ID, what, resource.ErrUnknownResourceKind, k))
		}
	}

	if _, ok := c.cooldowns[sk.Cooldown]; !ok {
		el.Add(fmt.Errorf("skill %q cooldown: %w: %s", sk.ID, resource.ErrUnknownResourceKind, sk.Cooldown))
	}
	if sk.Cost != nil {
		check("cost", sk.Cost.Resource)
	}
	for _, req := range sk.Requires {
		check("requirement", req.Resource)
	}
	for _, g := range sk.Gates {
		check("gate", g)
	}
	for _, e := range sk.Effects {
		check("effect", e.Resource)
	}

	return el.Err()
}

// Lookup finds a skill by asset id or display name, ignoring case and
// treating spaces and underscores like dashes.
func (c *Catalog) Lookup(name string) (*Skill, bool) {
	id, ok := c.names[normalize(name)]
	if !ok {
		return nil, false
	}
	return c.skills[id], true
}

func (c *Catalog) HasResource(kind resource.Kind) bool {
	_, ok := c.resources[kind]
	return ok
}

// Resource returns the table row for kind.
func (c *Catalog) Resource(kind resource.Kind) (*ResourceSpec, bool) {
	r, ok := c.resources[kind]
	return r, ok
}

// Skills lists every skill in display order.
func (c *Catalog) Skills() []*Skill {
	out := make([]*Skill, 0, len(c.skills))
	for _, sk := range c.skills {
		out = append(out, sk)
	}
	slices.SortFunc(out, func(a, b *Skill) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Displayed lists the ids of every skill in display order.
func (c *Catalog) Displayed() []string {
	skills := c.Skills()
	ids := make([]string, len(skills))
	for i, sk := range skills {
		ids[i] = sk.ID
	}
	return ids
}

func (c *Catalog) Resources() []*ResourceSpec {
	out := make([]*ResourceSpec, 0, len(c.resources))
	for _, r := range c.resources {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *ResourceSpec) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Kind, b.Kind))
	})
	return out
}

func (c *Catalog) Cooldowns() []*CooldownSpec {
	out := make([]*CooldownSpec, 0, len(c.cooldowns))
	for _, cd := range c.cooldowns {
		out = append(out, cd)
	}
	slices.SortFunc(out, func(a, b *CooldownSpec) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.Kind, b.Kind))
	})
	return out
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}
