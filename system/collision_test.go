package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

func spawnBox(w *engine.World, x, y float64, hb component.Hitbox) core.Entity {
	e := spawn(w, x, y)
	w.Components.Collider.Set(e, component.ColliderComponent{Hitbox: hb})
	return e
}

func unit() component.Hitbox {
	return component.Hitbox{Size: vmath.V2(1, 1)}
}

func TestCollisionPairs(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float64
		a      component.Hitbox
		bx, by float64
		b      component.Hitbox
		rotA   float64
		want   bool
	}{
		{"same position", 0, 0, unit(), 0, 0, unit(), 0, true},
		{"overlap", 0, 0, unit(), 0.5, 0.5, unit(), 0, true},
		{"flush edges", 0, 0, unit(), 1, 0, unit(), 0, true},
		{"separated x", 0, 0, unit(), 3, 0, unit(), 0, false},
		{"separated y", 0, 0, unit(), 0, 2.5, unit(), 0, false},
		{"margin breaks flush", 0, 0, component.Hitbox{Size: vmath.V2(1, 1), Margin: 0.5}, 1, 0, unit(), 0, false},
		{"margin keeps deep overlap", 0, 0, component.Hitbox{Size: vmath.V2(1, 1), Margin: 0.25}, 0.5, 0, unit(), 0, true},
		{"disabled", 0, 0, component.Hitbox{Size: vmath.V2(1, 1), Disabled: true}, 0, 0, unit(), 0, false},
		{"centered", 0, 0, component.Hitbox{Size: vmath.V2(2, 2), Centered: true}, -1.5, -1.5, unit(), 0, true},
		{"centered apart", 0, 0, component.Hitbox{Size: vmath.V2(2, 2), Centered: true}, 1.5, 0, unit(), 0, false},
		{"rotated diamond misses", 0, 0, component.Hitbox{Size: vmath.V2(2, 2)}, 1.2, 0, unit(), math.Pi / 4, false},
		{"unrotated square hits", 0, 0, component.Hitbox{Size: vmath.V2(2, 2)}, 1.2, 0, unit(), 0, true},
		{"zero size inside", 0.5, 0.5, component.Hitbox{}, 0, 0, unit(), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			a := spawnBox(w, tt.ax, tt.ay, tt.a)
			transform(w, a).Rotation = tt.rotA
			b := spawnBox(w, tt.bx, tt.by, tt.b)

			assert.Equal(t, tt.want, IsCollidingWith(w, a, b))
			assert.Equal(t, tt.want, IsCollidingWith(w, b, a), "symmetry")
		})
	}
}

func TestCollisionSymmetryGrid(t *testing.T) {
	w := engine.NewWorld()
	a := spawnBox(w, 0, 0, component.Hitbox{Size: vmath.V2(2, 1), Margin: 0.2})
	b := spawnBox(w, 0, 0, component.Hitbox{Size: vmath.V2(1, 3), Centered: true})

	for x := -4.0; x <= 4; x += 0.25 {
		for y := -4.0; y <= 4; y += 0.25 {
			transform(w, b).Position = vmath.V2(x, y)
			transform(w, b).Rotation = x * y
			assert.Equal(t, IsCollidingWith(w, a, b), IsCollidingWith(w, b, a), "b at (%v, %v)", x, y)
		}
	}
}

func TestCornersFollowHierarchy(t *testing.T) {
	w := engine.NewWorld()
	p := spawn(w, 10, 10)
	c := spawnChild(t, w, p, 1, 0)
	w.Components.Collider.Set(c, component.ColliderComponent{Hitbox: component.Hitbox{Size: vmath.V2(2, 1)}})

	assert.Equal(t, [4]vmath.Vec2{
		vmath.V2(11, 10), vmath.V2(13, 10), vmath.V2(13, 11), vmath.V2(11, 11),
	}, Corners(w, c))
}

func TestGetCollidersAndIsColliding(t *testing.T) {
	w := engine.NewWorld()
	probe := spawnBox(w, 0, 0, component.Hitbox{Size: vmath.V2(2, 2)})
	far := spawnBox(w, 10, 10, unit())
	near1 := spawnBox(w, 1, 1, unit())
	near2 := spawnBox(w, 0, 1.5, unit())

	assert.Equal(t, []core.Entity{near1, near2}, GetColliders(w, probe))
	assert.True(t, IsColliding(w, probe))
	assert.Empty(t, GetColliders(w, far))
	assert.False(t, IsColliding(w, far))

	// Queued colliders still participate until the flush
	w.QueueFree(near1)
	assert.Contains(t, GetColliders(w, probe), near1)
	w.FlushQueued()
	assert.Equal(t, []core.Entity{near2}, GetColliders(w, probe))
}

func TestCollisionWithoutColliderDataPanics(t *testing.T) {
	w := engine.NewWorld()
	a := spawnBox(w, 0, 0, unit())
	stray := spawn(w, 0, 0)
	w.Groups.Join(core.GroupCollider, stray)

	assert.Panics(t, func() { GetColliders(w, a) })
	assert.Panics(t, func() { IsColliding(w, a) })
}
