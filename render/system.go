package render

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
)

// RenderSystem refreshes the screen once per tick
// Write errors are logged and kept; the loop keeps running
type RenderSystem struct {
	engine.SystemBase
	screen  *Screen
	camera  Camera
	lastErr error
}

// NewRenderSystem binds a screen and camera to the world
func NewRenderSystem(world *engine.World, screen *Screen, camera Camera) *RenderSystem {
	return &RenderSystem{
		SystemBase: engine.NewSystemBase(world),
		screen:     screen,
		camera:     camera,
	}
}

func (s *RenderSystem) Name() string { return "render" }

func (s *RenderSystem) Priority() int { return parameter.PriorityRender }

func (s *RenderSystem) Update(time.Duration) {
	if err := s.screen.Refresh(s.World, s.camera); err != nil {
		if s.lastErr == nil {
			s.screen.logger.Error("render failed", zap.Error(err))
		}
		s.lastErr = err
		return
	}
	s.lastErr = nil
}

// Err returns the error of the most recent frame, nil after a successful frame
func (s *RenderSystem) Err() error {
	return s.lastErr
}
