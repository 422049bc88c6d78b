package core

// Group is a capability tag; membership mirrors which components an entity carries
type Group uint8

const (
	GroupNode Group = iota
	GroupTransform
	GroupTexture
	GroupColor
	GroupAnimated
	GroupCollider
	GroupCamera
	GroupBehavior
	GroupMovement
	GroupTween

	GroupCount // Sentinel, keep last
)

var groupNames = [GroupCount]string{
	GroupNode:      "node",
	GroupTransform: "transform",
	GroupTexture:   "texture",
	GroupColor:     "color",
	GroupAnimated:  "animated",
	GroupCollider:  "collider",
	GroupCamera:    "camera",
	GroupBehavior:  "behavior",
	GroupMovement:  "movement",
	GroupTween:     "tween",
}

func (g Group) String() string {
	if g < GroupCount {
		return groupNames[g]
	}
	return "unknown"
}
