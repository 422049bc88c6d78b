package asset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned for texture files that are not UTF-8
var ErrInvalidEncoding = errors.New("texture is not valid UTF-8")

// LoadTexture reads a UTF-8 text file, one row per line
func LoadTexture(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	defer f.Close()

	rows, err := ReadTexture(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return rows, nil
}

// ReadTexture decodes rows from r
func ReadTexture(r io.Reader, opts ...Option) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	return buildOptions(opts).apply(SplitLines(string(data))), nil
}
