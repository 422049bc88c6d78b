package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/vmath"
)

// KeyState records when each key was last pressed
// Terminals deliver presses only, so a key reads as held until the hold window elapses
// Written by the reader goroutine, read by the frame loop
type KeyState struct {
	mu         sync.Mutex
	source     engine.TimeSource
	hold       time.Duration
	last       map[Binding]time.Time
	directions DirectionMap
}

// NewKeyState creates a key table; nil source means wall clock, hold <= 0 uses the default window
func NewKeyState(source engine.TimeSource, hold time.Duration) *KeyState {
	if source == nil {
		source = engine.NewTimeProvider()
	}
	if hold <= 0 {
		hold = parameter.KeyHoldWindow
	}
	return &KeyState{
		source:     source,
		hold:       hold,
		last:       make(map[Binding]time.Time),
		directions: DefaultDirections(),
	}
}

// SetDirections replaces the direction bindings
func (s *KeyState) SetDirections(m DirectionMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directions = m
}

// Press records events at the current time
func (s *KeyState) Press(events ...Event) {
	now := s.source.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		s.last[bindingOf(ev)] = now
	}
}

// Release forgets a binding immediately
func (s *KeyState) Release(b Binding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.last, b)
}

// Reset forgets every press
func (s *KeyState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.last)
}

// IsPressed reports whether the character was pressed within the hold window
func (s *KeyState) IsPressed(r rune) bool {
	return s.isHeld(RuneBinding(r))
}

// IsKeyPressed reports whether the special key was pressed within the hold window
func (s *KeyState) IsKeyPressed(k tcell.Key) bool {
	return s.isHeld(KeyBinding(k))
}

func (s *KeyState) isHeld(b Binding) bool {
	now := s.source.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heldLocked(b, now)
}

func (s *KeyState) heldLocked(b Binding, now time.Time) bool {
	t, ok := s.last[b]
	return ok && now.Sub(t) < s.hold
}

// Direction sums the held direction bindings, each axis clamped to [-1, 1]
func (s *KeyState) Direction() vmath.Vec2 {
	now := s.source.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	var dir vmath.Vec2
	for b, v := range s.directions {
		if s.heldLocked(b, now) {
			dir = dir.Add(v)
		}
	}
	dir.X = max(-1, min(1, dir.X))
	dir.Y = max(-1, min(1, dir.Y))
	return dir
}
