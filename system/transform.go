package system

import (
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

// GlobalPosition resolves e's position in world space
// The walk stops at a TopLevel ancestor (its own position included), at the root,
// or at an ancestor without a transform; e itself being TopLevel returns its local position
func GlobalPosition(w *engine.World, e core.Entity) vmath.Vec2 {
	t := w.Components.Transform.MustGet(e)
	acc := t.Position
	if t.TopLevel {
		return acc
	}
	for p := w.Parent(e); p != core.None; p = w.Parent(p) {
		pt, ok := w.Components.Transform.Get(p)
		if !ok {
			break
		}
		acc = pt.Position.Add(acc.Rotated(pt.Rotation))
		if pt.TopLevel {
			break
		}
	}
	return acc
}

// GlobalRotation is the sum of local rotations along the same walk as GlobalPosition
func GlobalRotation(w *engine.World, e core.Entity) float64 {
	t := w.Components.Transform.MustGet(e)
	if t.TopLevel {
		return t.Rotation
	}
	return t.Rotation + ancestorRotation(w, e)
}

// SetGlobalPosition moves e so that GlobalPosition returns v
// The world-space delta is rotated into the parent frame before being added to the local position
func SetGlobalPosition(w *engine.World, e core.Entity, v vmath.Vec2) {
	t := w.Components.Transform.MustGet(e)
	delta := v.Sub(GlobalPosition(w, e))
	if !t.TopLevel {
		delta = delta.Rotated(-ancestorRotation(w, e))
	}
	t.Position = t.Position.Add(delta)
}

// SetGlobalRotation adds the difference between r and the current global rotation to the local rotation
func SetGlobalRotation(w *engine.World, e core.Entity, r float64) {
	t := w.Components.Transform.MustGet(e)
	t.Rotation += r - GlobalRotation(w, e)
}

// ancestorRotation sums the rotation of every ancestor visited by the position walk
func ancestorRotation(w *engine.World, e core.Entity) float64 {
	var sum float64
	for p := w.Parent(e); p != core.None; p = w.Parent(p) {
		pt, ok := w.Components.Transform.Get(p)
		if !ok {
			break
		}
		sum += pt.Rotation
		if pt.TopLevel {
			break
		}
	}
	return sum
}
