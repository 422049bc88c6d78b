package asset

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned for structurally invalid manifests
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest names the clips of one animation set
type Manifest struct {
	Animations map[string]ManifestEntry `yaml:"animations"`
}

// ManifestEntry describes one clip; Fill defaults to true when omitted
type ManifestEntry struct {
	Path     string `yaml:"path"`
	Reverse  bool   `yaml:"reverse"`
	FlipH    bool   `yaml:"flip_h"`
	FlipV    bool   `yaml:"flip_v"`
	Fill     *bool  `yaml:"fill"`
	FillChar string `yaml:"fill_char"`
}

// ParseManifest decodes and validates a YAML manifest
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	for name, entry := range m.Animations {
		if entry.Path == "" {
			return nil, fmt.Errorf("%w: animation %q has no path", ErrInvalidManifest, name)
		}
		if entry.FillChar != "" && utf8.RuneCountInString(entry.FillChar) != 1 {
			return nil, fmt.Errorf("%w: animation %q fill_char must be one character", ErrInvalidManifest, name)
		}
	}
	return &m, nil
}

func (e ManifestEntry) options() []Option {
	opts := []Option{WithReverse(e.Reverse), WithFlipH(e.FlipH), WithFlipV(e.FlipV)}
	if e.Fill != nil {
		opts = append(opts, WithFill(*e.Fill))
	}
	if e.FillChar != "" {
		r, _ := utf8.DecodeRuneInString(e.FillChar)
		opts = append(opts, WithFillChar(r))
	}
	return opts
}
