package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

// Corners returns the hitbox rectangle of e in world space, clockwise from the anchor corner
// The rectangle rotates around the global position by the global rotation
func Corners(w *engine.World, e core.Entity) [4]vmath.Vec2 {
	return corners(w, e, &collider(w, e).Hitbox)
}

func corners(w *engine.World, e core.Entity, hb *component.Hitbox) [4]vmath.Vec2 {
	pos := GlobalPosition(w, e)
	rot := GlobalRotation(w, e)
	var offset vmath.Vec2
	if hb.Centered {
		offset = hb.Size.Scale(-0.5)
	}
	local := [4]vmath.Vec2{
		offset,
		offset.Add(vmath.Vec2{X: hb.Size.X}),
		offset.Add(hb.Size),
		offset.Add(vmath.Vec2{Y: hb.Size.Y}),
	}
	var out [4]vmath.Vec2
	for i, c := range local {
		out[i] = pos.Add(c.Rotated(rot))
	}
	return out
}

// IsCollidingWith runs the separating axis test between the hitboxes of a and b
// On each axis the ranges are separated when maxA-marginA < minB or maxB-marginB < minA,
// so touching edges collide at zero margin and the result is symmetric in a and b
func IsCollidingWith(w *engine.World, a, b core.Entity) bool {
	ha := &collider(w, a).Hitbox
	hbb := &collider(w, b).Hitbox
	if ha.Disabled || hbb.Disabled {
		return false
	}
	ca := corners(w, a, ha)
	cb := corners(w, b, hbb)

	axes := [4]vmath.Vec2{}
	n := 0
	for _, rot := range [2]float64{GlobalRotation(w, a), GlobalRotation(w, b)} {
		x := vmath.Vec2{X: 1}.Rotated(rot)
		axes[n] = x
		axes[n+1] = x.Perpendicular()
		n += 2
	}

	for _, axis := range axes {
		minA, maxA := project(ca, axis)
		minB, maxB := project(cb, axis)
		if maxA-ha.Margin < minB || maxB-hbb.Margin < minA {
			return false
		}
	}
	return true
}

// GetColliders returns every other collider group member overlapping e, in group order
func GetColliders(w *engine.World, e core.Entity) []core.Entity {
	var hits []core.Entity
	for _, other := range w.Groups.Members(core.GroupCollider) {
		if other == e {
			continue
		}
		if IsCollidingWith(w, e, other) {
			hits = append(hits, other)
		}
	}
	return hits
}

// IsColliding reports whether e overlaps any other collider; stops at the first hit
func IsColliding(w *engine.World, e core.Entity) bool {
	for _, other := range w.Groups.Members(core.GroupCollider) {
		if other == e {
			continue
		}
		if IsCollidingWith(w, e, other) {
			return true
		}
	}
	return false
}

func collider(w *engine.World, e core.Entity) *component.ColliderComponent {
	c, ok := w.Components.Collider.Get(e)
	if !ok {
		panic(fmt.Sprintf("system: collider %s has no collider data", e))
	}
	return c
}

func project(pts [4]vmath.Vec2, axis vmath.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
