package metadoc

import (
	"cmp"
	"slices"
)

// Group is a named bucket of parameters.
type Group struct {
	compare func(a, b *Parameter) int

	// Name is the group name as written in the sources.
	Name string
	// Class disambiguates identically named groups (airframe vehicle
	// class). It is empty for the parameter dialect.
	Class string
	// DisplayName is Name, suffixed with " (Class)" when another group
	// shares the same Name. It is set by [Session.Groups].
	DisplayName string

	params []*Parameter

	NoCodeGeneration bool
}

func newGroup(name, class string, compare func(a, b *Parameter) int) *Group {
	return &Group{
		Name:        name,
		Class:       class,
		DisplayName: name,
		compare:     compare,
	}
}

// Parameters returns the group's parameters in display order.
func (g *Group) Parameters() []*Parameter {
	params := slices.Clone(g.params)
	slices.SortStableFunc(params, g.compare)

	return params
}

// Len returns the number of parameters in the group.
func (g *Group) Len() int {
	return len(g.params)
}

func (g *Group) add(p *Parameter) {
	g.params = append(g.params, p)
}

// orderGroups sorts groups by name, then stably by class, then stably by
// descending priority, and resolves display names.
func orderGroups(groups []*Group, priority Priority) {
	slices.SortFunc(groups, func(a, b *Group) int {
		return cmp.Compare(a.Name, b.Name)
	})
	slices.SortStableFunc(groups, func(a, b *Group) int {
		return cmp.Compare(a.Class, b.Class)
	})
	slices.SortStableFunc(groups, func(a, b *Group) int {
		return cmp.Compare(priority[b.Name], priority[a.Name])
	})

	count := make(map[string]int, len(groups))
	for _, g := range groups {
		count[g.Name]++
	}

	for _, g := range groups {
		g.DisplayName = g.Name
		if count[g.Name] > 1 {
			g.DisplayName = g.Name + " (" + g.Class + ")"
		}
	}
}
