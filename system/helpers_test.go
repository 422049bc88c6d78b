package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/vmath"
)

func spawn(w *engine.World, x, y float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.Set(e, component.TransformComponent{Position: vmath.V2(x, y)})
	return e
}

func spawnChild(t *testing.T, w *engine.World, parent core.Entity, x, y float64) core.Entity {
	t.Helper()
	e := spawn(w, x, y)
	require.NoError(t, w.SetParent(e, parent))
	return e
}

func transform(w *engine.World, e core.Entity) *component.TransformComponent {
	return w.Components.Transform.MustGet(e)
}
