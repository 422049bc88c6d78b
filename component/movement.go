package component

// MovementComponent moves an entity along the keyboard direction
// Speed is in cells per second
type MovementComponent struct {
	Speed float64
}
