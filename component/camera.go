package component

// CameraMode selects how the render origin is derived from the camera transform
type CameraMode uint8

const (
	// CameraFixed uses the raw global position as the top-left corner
	CameraFixed CameraMode = 1 << iota
	// CameraCentered places the global position at the viewport center
	CameraCentered
	// CameraIncludeSize offsets by half the parent texture when that texture is not centered
	CameraIncludeSize
)

// Has reports whether all bits of flag are set
func (m CameraMode) Has(flag CameraMode) bool {
	return m&flag == flag
}

// CameraComponent designates an entity as a potential render camera
type CameraComponent struct {
	Mode CameraMode
}

func (c *CameraComponent) WithMode(mode CameraMode) *CameraComponent {
	c.Mode = mode
	return c
}
