package system

import (
	"cmp"
	"slices"
	"time"

	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
)

// BehaviorSystem runs per-node update callbacks ordered by process priority
// Equal priorities run in node registration order
type BehaviorSystem struct {
	engine.SystemBase
}

// NewBehaviorSystem creates the behavior task
func NewBehaviorSystem(world *engine.World) *BehaviorSystem {
	return &BehaviorSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BehaviorSystem) Name() string { return "behavior" }

func (s *BehaviorSystem) Priority() int { return parameter.PriorityBehavior }

// Update snapshots the behavior group so callbacks may create and queue entities freely
func (s *BehaviorSystem) Update(dt time.Duration) {
	entities := s.World.Query(core.GroupNode).With(core.GroupBehavior).Execute()
	slices.SortStableFunc(entities, func(a, b core.Entity) int {
		return cmp.Compare(s.Component.Node.MustGet(a).ProcessPriority, s.Component.Node.MustGet(b).ProcessPriority)
	})
	for _, e := range entities {
		// Destroyed by an earlier callback this tick
		b, ok := s.Component.Behavior.Get(e)
		if !ok || b.OnUpdate == nil {
			continue
		}
		b.OnUpdate(e, dt)
	}
}
