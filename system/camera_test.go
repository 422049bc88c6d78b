package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

func spawnCamera(w *engine.World, x, y float64, mode component.CameraMode) core.Entity {
	e := spawn(w, x, y)
	w.Components.Camera.Set(e, component.CameraComponent{Mode: mode})
	return e
}

func TestCameraLazyDefault(t *testing.T) {
	w := engine.NewWorld()
	s := NewCameraSystem(w, nil)

	cam := s.Current()
	assert.Equal(t, cam, s.Current())
	assert.True(t, s.IsCurrent(cam))
	assert.Equal(t, component.CameraFixed, w.Components.Camera.MustGet(cam).Mode)
	assert.Equal(t, vmath.Vec2Zero, s.Origin(vmath.Vec2i{X: 10, Y: 10}))

	w.QueueFree(cam)
	w.FlushQueued()
	replacement := s.Current()
	assert.NotEqual(t, cam, replacement)
	assert.True(t, w.IsAlive(replacement))
}

func TestCameraSetCurrent(t *testing.T) {
	w := engine.NewWorld()
	s := NewCameraSystem(w, nil)
	cam := spawnCamera(w, 3, 4, component.CameraFixed)
	plain := spawn(w, 0, 0)

	require.NoError(t, s.SetCurrent(cam))
	assert.True(t, s.IsCurrent(cam))
	assert.Equal(t, vmath.V2(3, 4), s.Origin(vmath.Vec2i{X: 10, Y: 10}))

	assert.ErrorIs(t, s.SetCurrent(plain), ErrNotCamera)
	assert.True(t, s.IsCurrent(cam))

	require.NoError(t, s.SetCurrent(core.None))
	assert.NotEqual(t, cam, s.Current())
}

func TestCameraOriginModes(t *testing.T) {
	viewport := vmath.Vec2i{X: 20, Y: 10}
	tests := []struct {
		name     string
		mode     component.CameraMode
		centered bool
		want     vmath.Vec2
	}{
		{"fixed", component.CameraFixed, false, vmath.V2(10, 5)},
		{"centered", component.CameraCentered, false, vmath.V2(0, 0)},
		{"include size", component.CameraFixed | component.CameraIncludeSize, false, vmath.V2(12, 6)},
		{"include size on centered texture", component.CameraIncludeSize, true, vmath.V2(10, 5)},
		{"centered with size", component.CameraCentered | component.CameraIncludeSize, false, vmath.V2(2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			s := NewCameraSystem(w, nil)
			owner := spawn(w, 10, 5)
			tex := component.NewTexture("abcd", "efgh")
			tex.Centered = tt.centered
			w.Components.Texture.Set(owner, tex)
			cam := w.CreateEntity()
			w.Components.Transform.Set(cam, component.TransformComponent{})
			w.Components.Camera.Set(cam, component.CameraComponent{Mode: tt.mode})
			require.NoError(t, w.SetParent(cam, owner))
			require.NoError(t, s.SetCurrent(cam))

			assert.Equal(t, tt.want, s.Origin(viewport))
		})
	}
}

func TestCameraScrollTo(t *testing.T) {
	w := engine.NewWorld()
	s := NewCameraSystem(w, nil)
	cam := s.Current()

	s.ScrollTo(vmath.V2(10, 4), time.Second, nil)
	assert.True(t, s.Scrolling())

	s.Update(500 * time.Millisecond)
	assert.Equal(t, vmath.V2(5, 2), GlobalPosition(w, cam))

	s.Update(600 * time.Millisecond)
	assert.Equal(t, vmath.V2(10, 4), GlobalPosition(w, cam))
	assert.False(t, s.Scrolling())

	s.ScrollTo(vmath.V2(-1, -1), 0, nil)
	assert.Equal(t, vmath.V2(-1, -1), GlobalPosition(w, cam))
}

func TestCameraScrollDroppedWithDestroyedCamera(t *testing.T) {
	w := engine.NewWorld()
	s := NewCameraSystem(w, nil)
	cam := s.Current()

	s.ScrollTo(vmath.V2(10, 0), time.Second, nil)
	require.True(t, s.Scrolling())
	w.QueueFree(cam)
	w.FlushQueued()

	assert.NotPanics(t, func() { s.Update(100 * time.Millisecond) })
	assert.False(t, s.Scrolling())
	replacement := s.Current()
	assert.NotEqual(t, cam, replacement)
	assert.Equal(t, vmath.Vec2Zero, GlobalPosition(w, replacement))
}

func TestCameraFollowDeadZone(t *testing.T) {
	w := engine.NewWorld()
	s := NewCameraSystem(w, nil)
	s.SetViewport(func() vmath.Vec2i { return vmath.Vec2i{X: 20, Y: 10} })
	cam := s.Current()
	player := spawn(w, 10, 5)
	s.Follow(player, vmath.Vec2i{X: 2, Y: 2})

	s.Update(0)
	assert.Equal(t, vmath.Vec2Zero, GlobalPosition(w, cam))

	transform(w, player).Position = vmath.V2(25, 0)
	s.Update(0)
	assert.Equal(t, vmath.V2(8, -2), GlobalPosition(w, cam))

	w.DestroyEntity(player)
	s.Update(0)
	assert.Equal(t, vmath.V2(8, -2), GlobalPosition(w, cam))
}
