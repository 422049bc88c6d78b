package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/vmath"
)

// ErrNotCamera is returned when designating an entity without camera and transform components
var ErrNotCamera = errors.New("entity is not a camera")

// CameraSystem owns the current camera designation and derives the render origin from it
// Exactly one camera is current; a FIXED default at the origin is created lazily when none is
type CameraSystem struct {
	engine.SystemBase
	logger *zap.Logger

	current  core.Entity
	scroll   *component.TweenComponent
	follow   core.Entity
	margin   vmath.Vec2i
	viewport func() vmath.Vec2i
}

// NewCameraSystem creates camera system; viewport may be nil until a screen is attached
func NewCameraSystem(world *engine.World, logger *zap.Logger) *CameraSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CameraSystem{
		SystemBase: engine.NewSystemBase(world),
		logger:     logger,
		margin:     vmath.Vec2i{X: parameter.CameraDeadZoneMarginX, Y: parameter.CameraDeadZoneMarginY},
	}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera // After all position updates, before flush and render
}

// SetViewport installs the viewport source used by Follow
func (s *CameraSystem) SetViewport(fn func() vmath.Vec2i) {
	s.viewport = fn
}

// Current returns the current camera, creating the default if none is designated or it was destroyed
func (s *CameraSystem) Current() core.Entity {
	if s.current != core.None && s.World.IsAlive(s.current) && s.Component.Camera.Has(s.current) {
		return s.current
	}
	e := s.World.CreateEntity()
	s.Component.Transform.Set(e, component.TransformComponent{})
	s.Component.Camera.Set(e, component.CameraComponent{Mode: component.CameraFixed})
	s.current = e
	s.scroll = nil
	s.logger.Debug("default camera created", zap.Stringer("entity", e))
	return e
}

// SetCurrent designates e as the current camera; None drops the designation
func (s *CameraSystem) SetCurrent(e core.Entity) error {
	if e == core.None {
		s.current = core.None
		s.scroll = nil
		return nil
	}
	if !s.Component.Camera.Has(e) || !s.Component.Transform.Has(e) {
		return fmt.Errorf("set current camera %s: %w", e, ErrNotCamera)
	}
	if e != s.current {
		s.scroll = nil
	}
	s.current = e
	return nil
}

// IsCurrent reports whether e is the designated camera
func (s *CameraSystem) IsCurrent(e core.Entity) bool {
	return e != core.None && s.current == e && s.World.IsAlive(e)
}

// Origin returns the world-space point drawn at the top-left viewport cell
func (s *CameraSystem) Origin(viewport vmath.Vec2i) vmath.Vec2 {
	cam := s.Current()
	mode := s.Component.Camera.MustGet(cam).Mode
	origin := GlobalPosition(s.World, cam)

	if mode.Has(component.CameraCentered) {
		origin = origin.Sub(viewport.Float().Scale(0.5))
	}
	if mode.Has(component.CameraIncludeSize) {
		if tex, ok := s.Component.Texture.Get(s.World.Parent(cam)); ok && !tex.Centered {
			origin = origin.Add(tex.Size().Float().Scale(0.5))
		}
	}
	return origin
}

// ScrollTo eases the current camera's global position to target over duration
// A non-positive duration moves immediately; nil easing is linear
func (s *CameraSystem) ScrollTo(target vmath.Vec2, duration time.Duration, easing ease.TweenFunc) {
	cam := s.Current()
	if duration <= 0 {
		s.scroll = nil
		SetGlobalPosition(s.World, cam, target)
		return
	}
	if easing == nil {
		easing = ease.Linear
	}
	start := GlobalPosition(s.World, cam)
	secs := float32(duration.Seconds())
	s.scroll = &component.TweenComponent{
		X: gween.New(float32(start.X), float32(target.X), secs, easing),
		Y: gween.New(float32(start.Y), float32(target.Y), secs, easing),
	}
}

// Scrolling reports whether a ScrollTo is in flight
func (s *CameraSystem) Scrolling() bool {
	return s.scroll != nil
}

// Follow keeps target inside the viewport dead zone; None disables following
func (s *CameraSystem) Follow(target core.Entity, margin vmath.Vec2i) {
	s.follow = target
	s.margin = margin
}

// Update advances an in-flight scroll, then applies follow
func (s *CameraSystem) Update(dt time.Duration) {
	// Current drops the scroll when it replaces a destroyed camera
	cam := s.Current()
	if s.scroll != nil {
		pos, done := s.scroll.Sample(float32(dt.Seconds()))
		SetGlobalPosition(s.World, cam, pos)
		if done {
			s.scroll = nil
		}
	}
	if s.follow != core.None && s.viewport != nil {
		if !s.World.IsAlive(s.follow) {
			s.follow = core.None
			return
		}
		s.updateFollow(s.viewport())
	}
}

// updateFollow shifts the camera minimally to bring the target back into the dead zone
func (s *CameraSystem) updateFollow(viewport vmath.Vec2i) {
	cam := s.Current()
	target := GlobalPosition(s.World, s.follow).Sub(s.Origin(viewport)).Round()

	// Clamp margins to half viewport to ensure dead zone exists
	marginX := min(s.margin.X, viewport.X/2)
	marginY := min(s.margin.Y, viewport.Y/2)

	deadZoneLeft := marginX
	deadZoneRight := viewport.X - marginX - 1
	deadZoneTop := marginY
	deadZoneBottom := viewport.Y - marginY - 1

	var shiftX, shiftY int
	if target.X < deadZoneLeft {
		shiftX = target.X - deadZoneLeft
	} else if target.X > deadZoneRight {
		shiftX = target.X - deadZoneRight
	}
	if target.Y < deadZoneTop {
		shiftY = target.Y - deadZoneTop
	} else if target.Y > deadZoneBottom {
		shiftY = target.Y - deadZoneBottom
	}

	if shiftX != 0 || shiftY != 0 {
		shift := vmath.Vec2i{X: shiftX, Y: shiftY}.Float()
		SetGlobalPosition(s.World, cam, GlobalPosition(s.World, cam).Add(shift))
	}
}
