package engine

import "github.com/lixenwraith/glyphstage/core"

// QueryBuilder provides a fluent interface for intersecting groups
// Results keep the insertion order of the primary group
type QueryBuilder struct {
	world    *World
	primary  core.Group
	filters  []core.Group
	executed bool
	results  []core.Entity
}

// Query creates a QueryBuilder over the members of primary
//
// Example:
//
//	entities := world.Query(core.GroupMovement).
//	    With(core.GroupTransform).
//	    Execute()
func (w *World) Query(primary core.Group) *QueryBuilder {
	return &QueryBuilder{
		world:   w,
		primary: primary,
		filters: make([]core.Group, 0, 4),
	}
}

// With restricts results to entities that are also members of tag
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(tag core.Group) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.filters = append(qb.filters, tag)
	return qb
}

// Execute returns the snapshot of matching entities
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	groups := qb.world.Groups
	candidates := groups.Members(qb.primary)
	for _, tag := range qb.filters {
		filtered := candidates[:0]
		for _, e := range candidates {
			if groups.Has(tag, e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
