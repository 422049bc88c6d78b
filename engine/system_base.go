package engine

import "time"

// System is a built-in frame task bound to a world
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt time.Duration)
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Component *ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Component: &w.Components,
	}
}
