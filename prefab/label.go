package prefab

import (
	"strings"

	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
)

// LabelOptions describes a text sprite; zero tab and newline fields take the package defaults
type LabelOptions struct {
	Sprite
	Text    string
	Newline string
	TabSize int
	TabChar rune
	TabFill rune
}

// Label keeps a sprite's rows in sync with a text value
type Label struct {
	world   *engine.World
	Entity  core.Entity
	newline string
	tabSize int
	tabChar rune
	tabFill rune
}

// NewLabel creates a label sprite; Text overrides Rows when non-empty
func NewLabel(w *engine.World, o LabelOptions) (*Label, error) {
	e, err := NewSprite(w, o.Sprite)
	if err != nil {
		return nil, err
	}
	l := &Label{
		world:   w,
		Entity:  e,
		newline: o.Newline,
		tabSize: o.TabSize,
		tabChar: o.TabChar,
		tabFill: o.TabFill,
	}
	if l.newline == "" {
		l.newline = parameter.DefaultNewline
	}
	if l.tabSize <= 0 {
		l.tabSize = parameter.DefaultTabSize
	}
	if l.tabChar == 0 {
		l.tabChar = parameter.DefaultTabChar
	}
	if l.tabFill == 0 {
		l.tabFill = parameter.DefaultTabFill
	}
	if o.Text != "" {
		l.SetText(o.Text)
	}
	return l, nil
}

func (l *Label) tabRun() string {
	return strings.Repeat(string(l.tabFill), l.tabSize)
}

// SetText splits text on the newline marker and expands tabs
func (l *Label) SetText(text string) {
	rows := strings.Split(text, l.newline)
	for i, row := range rows {
		rows[i] = strings.ReplaceAll(row, string(l.tabChar), l.tabRun())
	}
	l.world.Components.Texture.MustGet(l.Entity).Rows = rows
}

// Text joins the rows and collapses tab runs back into tab characters
func (l *Label) Text() string {
	joined := strings.Join(l.world.Components.Texture.MustGet(l.Entity).Rows, l.newline)
	return strings.ReplaceAll(joined, l.tabRun(), string(l.tabChar))
}
