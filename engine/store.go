package engine

import (
	"slices"

	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/parameter"
)

// Store is a generic container for a specific component type T
// Components are held by pointer so systems mutate them in place
// Entity order is insertion order and survives removals
type Store[T any] struct {
	components map[core.Entity]*T
	entities   []core.Entity
	group      core.Group
	groups     *GroupIndex
}

// NewStore creates a component store mirrored into group on the given index
func NewStore[T any](group core.Group, groups *GroupIndex) *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]*T),
		entities:   make([]core.Entity, 0, parameter.StoreInitialCapacity),
		group:      group,
		groups:     groups,
	}
}

// Set attaches or replaces the component for an entity and returns the stored pointer
// Values implementing Clone() T are cloned so templates never alias
func (s *Store[T]) Set(e core.Entity, val T) *T {
	if c, ok := any(val).(interface{ Clone() T }); ok {
		val = c.Clone()
	}
	if ptr, exists := s.components[e]; exists {
		*ptr = val
		return ptr
	}
	ptr := &val
	s.components[e] = ptr
	s.entities = append(s.entities, e)
	s.groups.Join(s.group, e)
	return ptr
}

// Get retrieves the component for an entity
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	ptr, ok := s.components[e]
	return ptr, ok
}

// MustGet retrieves the component or panics; used where absence is an invariant violation
func (s *Store[T]) MustGet(e core.Entity) *T {
	ptr, ok := s.components[e]
	if !ok {
		panic("engine: entity " + e.String() + " in group " + s.group.String() + " has no component")
	}
	return ptr
}

// Remove detaches the component and leaves the group
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
	s.groups.Leave(s.group, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns a snapshot of entities in insertion order
func (s *Store[T]) All() []core.Entity {
	return slices.Clone(s.entities)
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components; group membership is reset by the owner
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]*T)
	s.entities = s.entities[:0]
}
