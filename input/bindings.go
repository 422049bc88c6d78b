package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphstage/vmath"
)

// Binding identifies a key either by rune (Key == tcell.KeyRune) or by special key
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// RuneBinding binds a printable character
func RuneBinding(r rune) Binding { return Binding{Key: tcell.KeyRune, Rune: r} }

// KeyBinding binds a special key
func KeyBinding(k tcell.Key) Binding { return Binding{Key: k} }

// DirectionMap maps bindings to unit direction contributions
type DirectionMap map[Binding]vmath.Vec2

// DefaultDirections binds WASD, hjkl and the arrow keys; screen y grows downward
func DefaultDirections() DirectionMap {
	up, down := vmath.V2(0, -1), vmath.V2(0, 1)
	left, right := vmath.V2(-1, 0), vmath.V2(1, 0)
	return DirectionMap{
		RuneBinding('w'): up,
		RuneBinding('s'): down,
		RuneBinding('a'): left,
		RuneBinding('d'): right,
		RuneBinding('W'): up,
		RuneBinding('S'): down,
		RuneBinding('A'): left,
		RuneBinding('D'): right,

		RuneBinding('k'): up,
		RuneBinding('j'): down,
		RuneBinding('h'): left,
		RuneBinding('l'): right,

		KeyBinding(tcell.KeyUp):    up,
		KeyBinding(tcell.KeyDown):  down,
		KeyBinding(tcell.KeyLeft):  left,
		KeyBinding(tcell.KeyRight): right,
	}
}

// bindingOf returns the table key for an event, modifiers ignored
func bindingOf(ev Event) Binding {
	if ev.Key == tcell.KeyRune {
		return RuneBinding(ev.Rune)
	}
	return KeyBinding(ev.Key)
}
