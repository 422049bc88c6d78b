// Package prefab builds common entity shapes from plain option structs
package prefab

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/system"
	"github.com/lixenwraith/glyphstage/vmath"
)

// Node2D describes a positioned node
type Node2D struct {
	Parent          core.Entity
	ProcessPriority int
	Position        vmath.Vec2
	Rotation        float64
	TopLevel        bool
}

// Sprite describes a textured node; zero Color means terminal default, nil Hitbox means no collider
type Sprite struct {
	Node2D
	Rows         []string
	Hidden       bool
	Centered     bool
	ZIndex       int
	Transparency rune
	Color        tcell.Color
	Hitbox       *component.Hitbox
}

// AnimatedSprite describes a sprite with named clips; Play starts a clip immediately
type AnimatedSprite struct {
	Sprite
	Animations component.AnimationSet
	Repeat     bool
	Play       string
}

// Camera describes a camera node; zero Mode means CameraFixed
type Camera struct {
	Node2D
	Mode component.CameraMode
}

// NewNode2D creates a node with a transform
// On a parent error the entity is destroyed and nothing is left behind
func NewNode2D(w *engine.World, o Node2D) (core.Entity, error) {
	e := w.CreateEntity()
	if err := w.SetParent(e, o.Parent); err != nil {
		w.DestroyEntity(e)
		return core.None, err
	}
	w.SetProcessPriority(e, o.ProcessPriority)
	w.Components.Transform.Set(e, component.TransformComponent{
		Position: o.Position,
		Rotation: o.Rotation,
		TopLevel: o.TopLevel,
	})
	return e, nil
}

// NewSprite creates a node with texture, and color and collider when set
func NewSprite(w *engine.World, o Sprite) (core.Entity, error) {
	e, err := NewNode2D(w, o.Node2D)
	if err != nil {
		return core.None, err
	}
	attachSprite(w, e, o)
	return e, nil
}

func attachSprite(w *engine.World, e core.Entity, o Sprite) {
	tex := component.NewTexture(o.Rows...)
	tex.WithVisible(!o.Hidden).
		WithCentered(o.Centered).
		WithZIndex(o.ZIndex).
		WithTransparency(o.Transparency)
	w.Components.Texture.Set(e, tex)

	if o.Color != tcell.ColorDefault {
		w.Components.Color.Set(e, component.ColorComponent{Color: o.Color})
	}
	if o.Hitbox != nil {
		w.Components.Collider.Set(e, component.ColliderComponent{Hitbox: *o.Hitbox})
	}
}

// NewAnimatedSprite creates a sprite with playback state
func NewAnimatedSprite(w *engine.World, o AnimatedSprite) (core.Entity, error) {
	e, err := NewSprite(w, o.Sprite)
	if err != nil {
		return core.None, err
	}
	w.Components.Animated.Set(e, component.AnimatedComponent{
		Animations: o.Animations,
		Repeat:     o.Repeat,
	})
	if o.Play != "" {
		system.Play(w, e, o.Play)
	}
	return e, nil
}

// NewCamera creates a camera node; it still has to be made current
func NewCamera(w *engine.World, o Camera) (core.Entity, error) {
	e, err := NewNode2D(w, o.Node2D)
	if err != nil {
		return core.None, err
	}
	mode := o.Mode
	if mode == 0 {
		mode = component.CameraFixed
	}
	w.Components.Camera.Set(e, component.CameraComponent{Mode: mode})
	return e, nil
}
