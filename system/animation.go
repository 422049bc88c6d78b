package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
)

// AnimationSystem applies one frame per tick to every playing entity in the animated group
type AnimationSystem struct {
	engine.SystemBase
}

// NewAnimationSystem creates the animation frame task
func NewAnimationSystem(world *engine.World) *AnimationSystem {
	return &AnimationSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AnimationSystem) Name() string { return "animation" }

func (s *AnimationSystem) Priority() int { return parameter.PriorityAnimation }

func (s *AnimationSystem) Update(time.Duration) {
	Advance(s.World)
}

// Play starts the named clip from its first frame
// Unknown names and empty clips leave the entity Idle
func Play(w *engine.World, e core.Entity, name string) {
	play(w.Components.Animated.MustGet(e), name, false)
}

// PlayBackwards starts the named clip from its last frame
func PlayBackwards(w *engine.World, e core.Entity, name string) {
	play(w.Components.Animated.MustGet(e), name, true)
}

// StopAnimation returns the entity to Idle, keeping the last applied frame on its texture
func StopAnimation(w *engine.World, e core.Entity) {
	a := w.Components.Animated.MustGet(e)
	a.Current = nil
	a.CurrentName = ""
	a.FrameIndex = 0
	a.State = component.AnimationIdle
}

func play(a *component.AnimatedComponent, name string, reversed bool) {
	a.FrameIndex = 0
	a.Reversed = reversed
	clip, ok := a.Animations[name]
	if !ok || clip.Len() == 0 {
		a.Current = nil
		a.CurrentName = ""
		a.State = component.AnimationIdle
		return
	}
	a.Current = clip
	a.CurrentName = name
	a.State = component.AnimationPlaying
}

// Advance runs one animation tick over the animated group
// Panics if an animated entity has no texture
func Advance(w *engine.World) {
	for _, e := range w.Groups.Members(core.GroupAnimated) {
		a := w.Components.Animated.MustGet(e)
		tex, ok := w.Components.Texture.Get(e)
		if !ok {
			panic(fmt.Sprintf("system: animated entity %s has no texture", e))
		}
		if a.State != component.AnimationPlaying {
			continue
		}
		step(a, tex)
	}
}

// step copies the current frame into the texture, then moves the index
// The last frame either wraps (repeat) or finishes playback with the index left on it
func step(a *component.AnimatedComponent, tex *component.TextureComponent) {
	n := a.Current.Len()
	if n == 0 {
		a.State = component.AnimationIdle
		return
	}
	idx := a.FrameIndex
	if a.Reversed {
		idx = n - 1 - idx
	}
	tex.Rows = component.CloneRows(a.Current.Frames[idx])

	if a.FrameIndex >= n-1 {
		if a.Repeat {
			a.FrameIndex = 0
		} else {
			a.FrameIndex = n - 1
			a.State = component.AnimationFinished
		}
		return
	}
	a.FrameIndex++
}
