package system

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/vmath"
)

// TweenSystem advances position tweens and writes them to global positions
type TweenSystem struct {
	engine.SystemBase
}

// NewTweenSystem creates the tween task
func NewTweenSystem(world *engine.World) *TweenSystem {
	return &TweenSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *TweenSystem) Name() string { return "tween" }

func (s *TweenSystem) Priority() int { return parameter.PriorityTween }

// TweenPosition eases e's global position from its current value to target
// Replaces any tween already attached; nil easing is linear
func TweenPosition(w *engine.World, e core.Entity, target vmath.Vec2, duration time.Duration, easing ease.TweenFunc) {
	if easing == nil {
		easing = ease.Linear
	}
	start := GlobalPosition(w, e)
	secs := float32(duration.Seconds())
	w.Components.Tween.Set(e, component.TweenComponent{
		X: gween.New(float32(start.X), float32(target.X), secs, easing),
		Y: gween.New(float32(start.Y), float32(target.Y), secs, easing),
	})
}

// IsTweening reports whether e has an unfinished tween
func IsTweening(w *engine.World, e core.Entity) bool {
	t, ok := w.Components.Tween.Get(e)
	return ok && !t.Done
}

// Update samples each unfinished tween; finished tweens stay attached with Done set
func (s *TweenSystem) Update(dt time.Duration) {
	secs := float32(dt.Seconds())
	for _, e := range s.World.Query(core.GroupTween).With(core.GroupTransform).Execute() {
		tw := s.Component.Tween.MustGet(e)
		if tw.Done {
			continue
		}
		pos, done := tw.Sample(secs)
		SetGlobalPosition(s.World, e, pos)
		tw.Done = done
	}
}
