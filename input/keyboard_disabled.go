//go:build !unix || nokeyboard

package input

import "context"

// Keyboard is unavailable in this build
type Keyboard struct {
	*KeyState
}

// NewKeyboard always fails with ErrKeyboardUnavailable
func NewKeyboard(_ *KeyState) (*Keyboard, error) {
	return nil, ErrKeyboardUnavailable
}

// SetHandler is a no-op
func (k *Keyboard) SetHandler(func(Event)) {}

// Run returns ErrKeyboardUnavailable
func (k *Keyboard) Run(context.Context) error { return ErrKeyboardUnavailable }

// Close is a no-op
func (k *Keyboard) Close() error { return nil }
