package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

func newTestState() (*KeyState, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return NewKeyState(clock, 100*time.Millisecond), clock
}

func TestKeyStateHoldWindow(t *testing.T) {
	s, clock := newTestState()

	assert.False(t, s.IsPressed('a'))
	s.Press(Event{Key: tcell.KeyRune, Rune: 'a'})
	assert.True(t, s.IsPressed('a'))
	assert.False(t, s.IsPressed('b'))

	clock.Advance(99 * time.Millisecond)
	assert.True(t, s.IsPressed('a'))

	clock.Advance(time.Millisecond)
	assert.False(t, s.IsPressed('a'))
}

func TestKeyStateRepeatExtendsHold(t *testing.T) {
	s, clock := newTestState()

	s.Press(Event{Key: tcell.KeyUp})
	clock.Advance(80 * time.Millisecond)
	s.Press(Event{Key: tcell.KeyUp})
	clock.Advance(80 * time.Millisecond)
	assert.True(t, s.IsKeyPressed(tcell.KeyUp))
	assert.False(t, s.IsKeyPressed(tcell.KeyDown))
}

func TestKeyStateReleaseAndReset(t *testing.T) {
	s, _ := newTestState()

	s.Press(Event{Key: tcell.KeyRune, Rune: 'x'}, Event{Key: tcell.KeyEnter})
	s.Release(RuneBinding('x'))
	assert.False(t, s.IsPressed('x'))
	assert.True(t, s.IsKeyPressed(tcell.KeyEnter))

	s.Reset()
	assert.False(t, s.IsKeyPressed(tcell.KeyEnter))
}

func TestKeyStateDirection(t *testing.T) {
	s, clock := newTestState()
	assert.Equal(t, vmath.Vec2{}, s.Direction())

	s.Press(Event{Key: tcell.KeyRune, Rune: 'd'})
	assert.Equal(t, vmath.V2(1, 0), s.Direction())

	// Same axis from two bindings stays clamped
	s.Press(Event{Key: tcell.KeyRight}, Event{Key: tcell.KeyRune, Rune: 'w'})
	assert.Equal(t, vmath.V2(1, -1), s.Direction())

	// Opposites cancel
	s.Press(Event{Key: tcell.KeyRune, Rune: 's'})
	assert.Equal(t, vmath.V2(1, 0), s.Direction())

	clock.Advance(time.Second)
	assert.Equal(t, vmath.Vec2{}, s.Direction())
}

func TestKeyStateCustomDirections(t *testing.T) {
	s, _ := newTestState()
	s.SetDirections(DirectionMap{RuneBinding('i'): vmath.V2(0, -1)})

	s.Press(Event{Key: tcell.KeyRune, Rune: 'w'})
	assert.Equal(t, vmath.Vec2{}, s.Direction())

	s.Press(Event{Key: tcell.KeyRune, Rune: 'i'})
	assert.Equal(t, vmath.V2(0, -1), s.Direction())
}
