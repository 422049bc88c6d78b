package engine

import (
	"slices"

	"github.com/lixenwraith/glyphstage/core"
)

// GroupIndex maps each capability tag to the ordered set of member entities
// Membership mirrors component attachment; stores join and leave on Set and Remove
type GroupIndex struct {
	members [core.GroupCount][]core.Entity
	present [core.GroupCount]map[core.Entity]struct{}
}

// NewGroupIndex creates an empty index for every tag
func NewGroupIndex() *GroupIndex {
	g := &GroupIndex{}
	for i := range g.present {
		g.present[i] = make(map[core.Entity]struct{})
	}
	return g
}

// Join appends e to the tag; joining twice keeps the original position
func (g *GroupIndex) Join(tag core.Group, e core.Entity) {
	if _, ok := g.present[tag][e]; ok {
		return
	}
	g.present[tag][e] = struct{}{}
	g.members[tag] = append(g.members[tag], e)
}

// Leave removes e from the tag, preserving the order of the rest
func (g *GroupIndex) Leave(tag core.Group, e core.Entity) {
	if _, ok := g.present[tag][e]; !ok {
		return
	}
	delete(g.present[tag], e)
	if i := slices.Index(g.members[tag], e); i >= 0 {
		g.members[tag] = slices.Delete(g.members[tag], i, i+1)
	}
}

// Members returns a snapshot of the tag in insertion order
// Callers may iterate it while queuing deletions
func (g *GroupIndex) Members(tag core.Group) []core.Entity {
	return slices.Clone(g.members[tag])
}

// Has reports membership
func (g *GroupIndex) Has(tag core.Group, e core.Entity) bool {
	_, ok := g.present[tag][e]
	return ok
}

// Count returns the member count of the tag
func (g *GroupIndex) Count(tag core.Group) int {
	return len(g.members[tag])
}

// Clear empties every tag
func (g *GroupIndex) Clear() {
	for i := range g.members {
		g.members[i] = nil
		clear(g.present[i])
	}
}
