package parameter

// Frame Task Priorities (lower runs first)
const (
	PriorityBehavior  = 10
	PriorityMovement  = 20
	PriorityTween     = 30
	PriorityAnimation = 50
	PriorityCamera    = 60 // After all position updates
	PriorityFlush     = 70 // Queued deletions, before render
	PriorityRender    = 80
	PriorityClock     = 90 // Paces the loop, always last
)
