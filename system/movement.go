package system

import (
	"time"

	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/vmath"
)

// DirectionSource supplies the current movement intent, components in [-1, 1]
type DirectionSource interface {
	Direction() vmath.Vec2
}

// MovementSystem moves every movement-group entity along the input direction
type MovementSystem struct {
	engine.SystemBase
	input DirectionSource
}

// NewMovementSystem creates the movement task reading from input
func NewMovementSystem(world *engine.World, input DirectionSource) *MovementSystem {
	return &MovementSystem{
		SystemBase: engine.NewSystemBase(world),
		input:      input,
	}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

// Update applies position += direction × speed × dt
func (s *MovementSystem) Update(dt time.Duration) {
	if s.input == nil {
		return
	}
	dir := s.input.Direction()
	if dir.IsZero() {
		return
	}
	secs := dt.Seconds()
	for _, e := range s.World.Query(core.GroupMovement).With(core.GroupTransform).Execute() {
		m := s.Component.Movement.MustGet(e)
		t := s.Component.Transform.MustGet(e)
		t.Position = t.Position.Add(dir.Scale(m.Speed * secs))
	}
}
