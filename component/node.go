package component

import "github.com/lixenwraith/glyphstage/core"

// NodeComponent is carried by every entity; it holds hierarchy and update ordering
// Parent is changed through World.SetParent so cycles are rejected
type NodeComponent struct {
	Parent          core.Entity
	ProcessPriority int
}
