package component

import "github.com/lixenwraith/glyphstage/vmath"

// Hitbox is a rectangle anchored at the entity's global position
// Margin shrinks the far edge of each projected range; flush edges collide at zero margin
type Hitbox struct {
	Size     vmath.Vec2
	Centered bool
	Disabled bool
	Margin   float64
}

// ColliderComponent marks an entity as a collision participant
type ColliderComponent struct {
	Hitbox Hitbox
}

func (c *ColliderComponent) WithSize(size vmath.Vec2) *ColliderComponent {
	c.Hitbox.Size = size
	return c
}

func (c *ColliderComponent) WithCentered(state bool) *ColliderComponent {
	c.Hitbox.Centered = state
	return c
}

func (c *ColliderComponent) WithDisabled(state bool) *ColliderComponent {
	c.Hitbox.Disabled = state
	return c
}

func (c *ColliderComponent) WithMargin(margin float64) *ColliderComponent {
	c.Hitbox.Margin = margin
	return c
}
