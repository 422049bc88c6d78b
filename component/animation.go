package component

// AnimationState is the playback state of an animated entity
type AnimationState uint8

const (
	AnimationIdle AnimationState = iota
	AnimationPlaying
	AnimationFinished
)

func (s AnimationState) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationPlaying:
		return "playing"
	case AnimationFinished:
		return "finished"
	}
	return "unknown"
}

// Animation is an ordered, immutable sequence of glyph grids
type Animation struct {
	Frames [][]string
}

// Len returns the frame count
func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Frames)
}

// AnimationSet maps clip names to clips; clips are shared read-only between entities
type AnimationSet map[string]*Animation

// AnimatedComponent holds per-entity playback state
// FrameIndex always stays within [0, Current.Len())
type AnimatedComponent struct {
	Animations  AnimationSet
	Current     *Animation
	CurrentName string
	FrameIndex  int
	State       AnimationState
	Repeat      bool
	Reversed    bool
}

// Clone copies the set map; clip data itself is immutable and shared
func (a AnimatedComponent) Clone() AnimatedComponent {
	if a.Animations != nil {
		set := make(AnimationSet, len(a.Animations))
		for name, clip := range a.Animations {
			set[name] = clip
		}
		a.Animations = set
	}
	return a
}

func (a *AnimatedComponent) WithAnimations(set AnimationSet) *AnimatedComponent {
	a.Animations = set
	return a
}

func (a *AnimatedComponent) WithRepeat(state bool) *AnimatedComponent {
	a.Repeat = state
	return a
}

// IsPlaying reports whether frames are still being applied
func (a *AnimatedComponent) IsPlaying() bool {
	return a.State == AnimationPlaying
}
