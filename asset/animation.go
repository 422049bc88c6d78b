package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/lixenwraith/glyphstage/component"
)

// ErrNoFrames is returned when an animation would have no frames
var ErrNoFrames = errors.New("animation has no frames")

// LoadAnimation builds a clip from every regular file in dir, in lexicographic name order
func LoadAnimation(dir string, opts ...Option) (*component.Animation, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load animation: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("load animation %s: %w", dir, ErrNoFrames)
	}
	slices.Sort(names)

	frames := make([][]string, 0, len(names))
	for _, name := range names {
		rows, err := LoadTexture(filepath.Join(dir, name), WithFill(false))
		if err != nil {
			return nil, fmt.Errorf("load animation %s: %w", dir, err)
		}
		frames = append(frames, rows)
	}
	return process(frames, buildOptions(opts)), nil
}

// AnimationFromFrames builds a clip from in-memory frames; the result never aliases frames
func AnimationFromFrames(frames [][]string, opts ...Option) (*component.Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return process(frames, buildOptions(opts)), nil
}

func process(frames [][]string, o options) *component.Animation {
	out := make([][]string, len(frames))
	for i, frame := range frames {
		out[i] = o.apply(frame)
	}
	if o.reverse {
		slices.Reverse(out)
	}
	return &component.Animation{Frames: out}
}
