package component

import "github.com/gdamore/tcell/v2"

// ColorComponent holds an optional foreground color
// tcell.ColorDefault means no explicit color
type ColorComponent struct {
	Color tcell.Color
}

func (c *ColorComponent) WithColor(color tcell.Color) *ColorComponent {
	c.Color = color
	return c
}

// HasColor reports whether an explicit color is set
func (c *ColorComponent) HasColor() bool {
	return c.Color != tcell.ColorDefault
}
