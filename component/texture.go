package component

import (
	"unicode/utf8"

	"github.com/lixenwraith/glyphstage/vmath"
)

// TextureComponent is a per-entity glyph grid
// Rows may be ragged until filled; Transparency 0 disables the marker
type TextureComponent struct {
	Rows         []string
	Visible      bool
	Centered     bool
	ZIndex       int
	Transparency rune
}

// NewTexture returns a visible texture owning a copy of rows
func NewTexture(rows ...string) TextureComponent {
	return TextureComponent{
		Rows:    CloneRows(rows),
		Visible: true,
	}
}

// Clone deep-copies the rows so templates never alias per-entity data
func (t TextureComponent) Clone() TextureComponent {
	t.Rows = CloneRows(t.Rows)
	return t
}

func (t *TextureComponent) WithRows(rows []string) *TextureComponent {
	t.Rows = rows
	return t
}

// WithLine replaces the texture with a single row
func (t *TextureComponent) WithLine(line string) *TextureComponent {
	t.Rows = []string{line}
	return t
}

func (t *TextureComponent) WithVisible(state bool) *TextureComponent {
	t.Visible = state
	return t
}

func (t *TextureComponent) WithCentered(state bool) *TextureComponent {
	t.Centered = state
	return t
}

func (t *TextureComponent) WithZIndex(z int) *TextureComponent {
	t.ZIndex = z
	return t
}

func (t *TextureComponent) WithTransparency(r rune) *TextureComponent {
	t.Transparency = r
	return t
}

func (t *TextureComponent) Hide() { t.Visible = false }

func (t *TextureComponent) Show() { t.Visible = true }

// Size returns (longest row in runes, row count)
func (t *TextureComponent) Size() vmath.Vec2i {
	return TextureSize(t.Rows)
}

// TextureSize computes the bounding size of a glyph grid in O(rows·length)
func TextureSize(rows []string) vmath.Vec2i {
	if len(rows) == 0 {
		return vmath.Vec2iZero
	}
	longest := 0
	for _, row := range rows {
		longest = max(longest, utf8.RuneCountInString(row))
	}
	return vmath.Vec2i{X: longest, Y: len(rows)}
}

// CloneRows copies a row slice; nil stays nil
func CloneRows(rows []string) []string {
	if rows == nil {
		return nil
	}
	out := make([]string, len(rows))
	copy(out, rows)
	return out
}
