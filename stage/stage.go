// Package stage assembles a world, frame loop, screen and the standard systems from a Config
package stage

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/glyphstage/asset"
	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/config"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/render"
	"github.com/lixenwraith/glyphstage/system"
)

// Stage is one running scene: the world plus everything that ticks it
type Stage struct {
	World     *engine.World
	Engine    *engine.Engine
	Screen    *render.Screen
	Camera    *system.CameraSystem
	Animation *system.AnimationSystem
	Render    *render.RenderSystem
	Assets    *asset.Loader

	// Animations is loaded from the configured manifest, empty when none is set
	Animations component.AnimationSet

	logger *zap.Logger
}

type options struct {
	logger *zap.Logger
	out    io.Writer
	source engine.TimeSource
	input  system.DirectionSource
	sizer  func() (int, int)
}

// Option configures stage construction
type Option func(*options)

// WithLogger shares l with the engine, screen and camera
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOutput replaces stdout as the screen destination
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithTimeSource replaces the wall clock
func WithTimeSource(s engine.TimeSource) Option {
	return func(o *options) { o.source = s }
}

// WithInput enables the movement system driven by src
func WithInput(src system.DirectionSource) Option {
	return func(o *options) { o.input = src }
}

// WithSizer replaces the terminal size query
func WithSizer(fn func() (int, int)) Option {
	return func(o *options) { o.sizer = fn }
}

// New builds a stage and registers behavior, movement, tween, animation, camera and render tasks
func New(cfg *config.Config, opts ...Option) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: zap.NewNop(), out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	loader, err := asset.NewLoader(cfg.Assets.TextureRoot, cfg.Assets.AnimationRoot)
	if err != nil {
		return nil, err
	}
	animations := component.AnimationSet{}
	if cfg.Assets.Manifest != "" {
		if animations, err = loader.LoadManifest(cfg.Assets.Manifest); err != nil {
			return nil, err
		}
	}

	screenOpts := []render.Option{
		render.WithSize(cfg.Screen.Width, cfg.Screen.Height),
		render.WithAutoResize(cfg.Screen.AutoResize),
		render.WithMargin(cfg.Screen.Margin),
		render.WithColorMode(cfg.ColorMode()),
		render.WithLogger(o.logger),
	}
	if o.sizer != nil {
		screenOpts = append(screenOpts, render.WithSizer(o.sizer))
	}
	screen, err := render.NewScreen(o.out, screenOpts...)
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}

	world := engine.NewWorld()
	engineOpts := []engine.Option{engine.WithLogger(o.logger)}
	if o.source != nil {
		engineOpts = append(engineOpts, engine.WithTimeSource(o.source))
	}
	eng, err := engine.New(world, cfg.FPS, engineOpts...)
	if err != nil {
		return nil, err
	}

	camera := system.NewCameraSystem(world, o.logger)
	camera.SetViewport(screen.Viewport)

	s := &Stage{
		World:      world,
		Engine:     eng,
		Screen:     screen,
		Camera:     camera,
		Animation:  system.NewAnimationSystem(world),
		Render:     render.NewRenderSystem(world, screen, camera),
		Assets:     loader,
		Animations: animations,
		logger:     o.logger,
	}

	systems := []engine.System{
		system.NewBehaviorSystem(world),
		system.NewTweenSystem(world),
		s.Animation,
		camera,
		s.Render,
	}
	if o.input != nil {
		systems = append(systems, system.NewMovementSystem(world, o.input))
	}
	for _, sys := range systems {
		if err := eng.AddSystem(sys); err != nil {
			return nil, fmt.Errorf("register %s: %w", sys.Name(), err)
		}
	}
	return s, nil
}

// Run hides the cursor, loops until Stop, then restores the terminal region
func (s *Stage) Run() (err error) {
	if err := s.Screen.Startup(); err != nil {
		return fmt.Errorf("screen startup: %w", err)
	}
	defer func() {
		if cerr := s.Screen.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("screen cleanup: %w", cerr)
		}
	}()
	return s.Engine.Run()
}

// Stop ends the loop at the top of the next tick; safe from any goroutine
func (s *Stage) Stop() {
	s.Engine.Stop()
}

// Tick runs one frame without the loop
func (s *Stage) Tick() {
	s.Engine.Tick()
}

// Logger returns the stage logger
func (s *Stage) Logger() *zap.Logger {
	return s.logger
}
