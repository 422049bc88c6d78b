package parameter

import "time"

// Frame Loop Timing
const (
	// DefaultFPS is the target logical frame rate
	DefaultFPS = 16

	// MaxFPS bounds configured frame rates
	MaxFPS = 240
)

// ECS Limits
const (
	// StoreInitialCapacity is the preallocated entity slice size per component store
	StoreInitialCapacity = 64
)

// Keyboard
const (
	// KeyHoldWindow is how long a key counts as pressed after its last press
	// Must exceed the terminal auto-repeat interval to bridge repeats
	KeyHoldWindow = 150 * time.Millisecond

	// KeyPollTimeout bounds a single stdin poll so Run observes cancellation
	KeyPollTimeout = 100 * time.Millisecond

	// KeyReadBufferSize is the stdin read chunk size
	KeyReadBufferSize = 256
)
