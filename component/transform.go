package component

import "github.com/lixenwraith/glyphstage/vmath"

// TransformComponent holds local position and rotation relative to the parent
// TopLevel truncates ancestor resolution at this node for both position and rotation
type TransformComponent struct {
	Position vmath.Vec2
	Rotation float64 // Radians
	TopLevel bool
}

func (t *TransformComponent) WithPosition(p vmath.Vec2) *TransformComponent {
	t.Position = p
	return t
}

func (t *TransformComponent) WithRotation(r float64) *TransformComponent {
	t.Rotation = r
	return t
}

func (t *TransformComponent) WithTopLevel(state bool) *TransformComponent {
	t.TopLevel = state
	return t
}
