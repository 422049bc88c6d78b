package component

import (
	"time"

	"github.com/lixenwraith/glyphstage/core"
)

// BehaviorComponent attaches per-node update logic run by the behavior task
type BehaviorComponent struct {
	OnUpdate func(e core.Entity, dt time.Duration)
}
