package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

func TestRootGlobalEqualsLocal(t *testing.T) {
	w := engine.NewWorld()
	e := spawn(w, 3, -2)
	transform(w, e).Rotation = 0.7

	assert.Equal(t, vmath.V2(3, -2), GlobalPosition(w, e))
	assert.Equal(t, 0.7, GlobalRotation(w, e))
}

func TestChildGlobalPosition(t *testing.T) {
	tests := []struct {
		name      string
		parentPos vmath.Vec2
		parentRot float64
		childPos  vmath.Vec2
		want      vmath.Vec2
	}{
		{"unrotated", vmath.V2(10, 5), 0, vmath.V2(2, 3), vmath.V2(12, 8)},
		{"quarter turn", vmath.V2(10, 0), math.Pi / 2, vmath.V2(1, 0), vmath.V2(10, 1)},
		{"half turn", vmath.V2(0, 0), math.Pi, vmath.V2(2, 1), vmath.V2(-2, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			p := spawn(w, tt.parentPos.X, tt.parentPos.Y)
			transform(w, p).Rotation = tt.parentRot
			c := spawnChild(t, w, p, tt.childPos.X, tt.childPos.Y)

			got := GlobalPosition(w, c)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.parentRot, GlobalRotation(w, c), 1e-12)
		})
	}
}

func TestSetGlobalPositionRoundTrip(t *testing.T) {
	w := engine.NewWorld()
	p := spawn(w, 10, 5)
	c := spawnChild(t, w, p, 2, 3)

	SetGlobalPosition(w, c, vmath.V2(7, -4))

	assert.Equal(t, vmath.V2(7, -4), GlobalPosition(w, c))
	assert.Equal(t, vmath.V2(-3, -9), transform(w, c).Position)
}

func TestSetGlobalPositionRoundTripFractional(t *testing.T) {
	w := engine.NewWorld()
	p := spawn(w, 0.1, 0.7)
	c := spawnChild(t, w, p, 0.2, 0.35)

	for i := range 1000 {
		target := vmath.V2(float64(i)*0.013-6.5, 3.3-float64(i)*0.007)
		SetGlobalPosition(w, c, target)
		got := GlobalPosition(w, c)
		assert.InDelta(t, target.X, got.X, 1e-9)
		assert.InDelta(t, target.Y, got.Y, 1e-9)
	}
}

func TestSetGlobalPositionUnderRotatedParent(t *testing.T) {
	w := engine.NewWorld()
	g := spawn(w, 1, 1)
	transform(w, g).Rotation = 0.4
	p := spawnChild(t, w, g, 4, 0)
	transform(w, p).Rotation = 1.1
	c := spawnChild(t, w, p, 2, 3)

	target := vmath.V2(-6, 2.5)
	SetGlobalPosition(w, c, target)

	got := GlobalPosition(w, c)
	assert.InDelta(t, target.X, got.X, 1e-9)
	assert.InDelta(t, target.Y, got.Y, 1e-9)
}

func TestSetGlobalRotationRoundTrip(t *testing.T) {
	w := engine.NewWorld()
	p := spawn(w, 0, 0)
	transform(w, p).Rotation = 0.5
	c := spawnChild(t, w, p, 1, 1)

	SetGlobalRotation(w, c, 2)

	assert.InDelta(t, 2.0, GlobalRotation(w, c), 1e-12)
	assert.InDelta(t, 1.5, transform(w, c).Rotation, 1e-12)
}

func TestTopLevelAncestorTruncatesWalk(t *testing.T) {
	w := engine.NewWorld()
	root := spawn(w, 100, 100)
	transform(w, root).Rotation = 1
	mid := spawnChild(t, w, root, 5, 0)
	transform(w, mid).TopLevel = true
	leaf := spawnChild(t, w, mid, 1, 2)

	before := GlobalPosition(w, leaf)
	transform(w, root).Position = vmath.V2(-50, 7)
	transform(w, root).Rotation = 2

	assert.Equal(t, before, GlobalPosition(w, leaf))
	assert.Equal(t, vmath.V2(6, 2), GlobalPosition(w, leaf))
	assert.Equal(t, 0.0, GlobalRotation(w, leaf))
}

func TestTopLevelSelfUsesLocal(t *testing.T) {
	w := engine.NewWorld()
	p := spawn(w, 9, 9)
	c := spawnChild(t, w, p, 1, 1)
	transform(w, c).TopLevel = true

	assert.Equal(t, vmath.V2(1, 1), GlobalPosition(w, c))

	SetGlobalPosition(w, c, vmath.V2(4, 4))
	assert.Equal(t, vmath.V2(4, 4), transform(w, c).Position)
}

func TestWalkStopsAtAncestorWithoutTransform(t *testing.T) {
	w := engine.NewWorld()
	top := spawn(w, 50, 50)
	bare := w.CreateEntity()
	assert.NoError(t, w.SetParent(bare, top))
	c := spawnChild(t, w, bare, 1, 2)

	assert.Equal(t, vmath.V2(1, 2), GlobalPosition(w, c))
}

func TestGlobalPositionPanicsWithoutTransform(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	assert.Panics(t, func() { GlobalPosition(w, e) })
}
