package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/glyphstage/component"
)

// ErrRootNotFound is returned by NewLoader when a configured root is missing
var ErrRootNotFound = errors.New("asset root not found")

// Loader resolves texture and animation names against fixed roots
type Loader struct {
	TextureRoot   string
	AnimationRoot string
}

// NewLoader validates both roots up front; an empty root means the working directory
func NewLoader(textureRoot, animationRoot string) (*Loader, error) {
	for _, root := range []string{textureRoot, animationRoot} {
		if root == "" {
			continue
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
		}
	}
	return &Loader{TextureRoot: textureRoot, AnimationRoot: animationRoot}, nil
}

// Texture loads a texture relative to TextureRoot
func (l *Loader) Texture(name string, opts ...Option) ([]string, error) {
	return LoadTexture(filepath.Join(l.TextureRoot, name), opts...)
}

// Animation loads a frame directory relative to AnimationRoot
func (l *Loader) Animation(name string, opts ...Option) (*component.Animation, error) {
	return LoadAnimation(filepath.Join(l.AnimationRoot, name), opts...)
}

// LoadManifest reads a YAML manifest and loads every clip it names
func (l *Loader) LoadManifest(path string) (component.AnimationSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	return l.AnimationSet(m)
}

// AnimationSet loads every clip in m, failing on the first error
func (l *Loader) AnimationSet(m *Manifest) (component.AnimationSet, error) {
	set := make(component.AnimationSet, len(m.Animations))
	for name, entry := range m.Animations {
		clip, err := l.Animation(entry.Path, entry.options()...)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", name, err)
		}
		set[name] = clip
	}
	return set, nil
}
