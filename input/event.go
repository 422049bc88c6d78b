package input

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrKeyboardUnavailable is returned by NewKeyboard when keyboard support is compiled out
// or the platform has no raw terminal input
var ErrKeyboardUnavailable = errors.New("keyboard input unavailable")

// ErrNotTerminal is returned when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Event is one decoded key press
// Key is tcell.KeyRune for printable input, with the character in Rune
type Event struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}
