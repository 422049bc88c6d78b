package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/glyphstage/parameter"
)

// Engine drives the frame loop: one tick runs every registered task once in priority order
// The loop never stops itself; only Stop clears the running flag
type Engine struct {
	World *World
	Clock *Clock

	tasks   *TaskTable
	logger  *zap.Logger
	source  TimeSource
	running atomic.Bool
	frames  uint64
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger; default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTimeSource replaces the wall clock, used by tests
func WithTimeSource(s TimeSource) Option {
	return func(e *Engine) {
		e.source = s
	}
}

// New creates an engine over world with the built-in flush and clock tasks registered
func New(world *World, fps int, opts ...Option) (*Engine, error) {
	e := &Engine{
		World:  world,
		tasks:  NewTaskTable(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	clock, err := NewClock(fps, e.source)
	if err != nil {
		return nil, fmt.Errorf("engine clock: %w", err)
	}
	e.Clock = clock

	if err := e.Register(parameter.PriorityFlush, "flush", e.flush); err != nil {
		return nil, err
	}
	if err := e.Register(parameter.PriorityClock, "clock", e.tick); err != nil {
		return nil, err
	}
	return e, nil
}

// Register adds a frame task
func (e *Engine) Register(priority int, name string, fn TaskFunc) error {
	if err := e.tasks.Register(priority, name, fn); err != nil {
		return err
	}
	e.logger.Debug("task registered", zap.String("task", name), zap.Int("priority", priority))
	return nil
}

// AddSystem registers a system's Update as a frame task
func (e *Engine) AddSystem(s System) error {
	return e.Register(s.Priority(), s.Name(), s.Update)
}

// RemoveTask unregisters a task by name
func (e *Engine) RemoveTask(name string) bool {
	return e.tasks.Remove(name)
}

// Tasks returns the registered tasks in execution order
func (e *Engine) Tasks() []Task {
	return e.tasks.Tasks()
}

// Tick runs every task once with the current frame delta
func (e *Engine) Tick() {
	e.tasks.Run(e.Clock.Delta())
	e.frames++
}

// Run loops until Stop is called
// Stop takes effect at the top of the next tick; a panicking task propagates
func (e *Engine) Run() error {
	e.running.Store(true)
	e.logger.Info("loop started", zap.Int("fps", e.Clock.FPS()), zap.Int("tasks", e.tasks.Len()))
	for e.running.Load() {
		e.Tick()
	}
	e.logger.Info("loop stopped", zap.Uint64("frames", e.frames))
	return nil
}

// Stop clears the running flag
func (e *Engine) Stop() {
	e.running.Store(false)
}

// IsRunning reports whether the loop is active
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// Delta returns the duration of the previous frame
func (e *Engine) Delta() time.Duration {
	return e.Clock.Delta()
}

// FrameCount returns the number of completed ticks
func (e *Engine) FrameCount() uint64 {
	return e.frames
}

// Logger returns the engine logger for tasks that want to share it
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

func (e *Engine) flush(time.Duration) {
	if n := e.World.FlushQueued(); n > 0 {
		e.logger.Debug("queued entities flushed", zap.Int("count", n), zap.Uint64("frame", e.frames))
	}
}

func (e *Engine) tick(time.Duration) {
	e.Clock.Tick()
	if e.Clock.Overrun() {
		e.logger.Warn("frame overrun",
			zap.Duration("delta", e.Clock.Delta()),
			zap.Duration("target", e.Clock.Interval()),
			zap.Uint64("frame", e.frames))
	}
}
