package system

import (
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
)

// IsGloballyVisible reports whether e and every textured ancestor above it are visible
// The walk ends at the first ancestor without a texture; entities without a texture are never visible
func IsGloballyVisible(w *engine.World, e core.Entity) bool {
	tex, ok := w.Components.Texture.Get(e)
	if !ok || !tex.Visible {
		return false
	}
	for p := w.Parent(e); p != core.None; p = w.Parent(p) {
		pt, ok := w.Components.Texture.Get(p)
		if !ok {
			return true
		}
		if !pt.Visible {
			return false
		}
	}
	return true
}
