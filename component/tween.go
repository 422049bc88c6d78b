package component

import (
	"github.com/tanema/gween"

	"github.com/lixenwraith/glyphstage/vmath"
)

// TweenComponent drives the entity's global position along a pair of eased tweens
// Done is set once both axes finish; the component stays attached until replaced
type TweenComponent struct {
	X, Y *gween.Tween
	Done bool
}

// Sample advances both axes by dt seconds and returns the eased position
func (t *TweenComponent) Sample(dt float32) (vmath.Vec2, bool) {
	x, xDone := t.X.Update(dt)
	y, yDone := t.Y.Update(dt)
	return vmath.Vec2{X: float64(x), Y: float64(y)}, xDone && yDone
}
