package prefab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
)

// ErrPanelTooSmall is returned for panel sizes below two cells
var ErrPanelTooSmall = errors.New("panel too small")

// PanelStyle holds the border glyphs
type PanelStyle struct {
	UpperLeft   rune
	UpperRight  rune
	BottomLeft  rune
	BottomRight rune
	Left        rune
	Right       rune
	Top         rune
	Bottom      rune
}

// DefaultPanelStyle draws with plain ASCII
var DefaultPanelStyle = PanelStyle{
	UpperLeft:   '+',
	UpperRight:  '+',
	BottomLeft:  '+',
	BottomRight: '+',
	Left:        '|',
	Right:       '|',
	Top:         '-',
	Bottom:      '-',
}

// DoublePanelStyle draws with box-drawing double lines
var DoublePanelStyle = PanelStyle{
	UpperLeft:   '╔',
	UpperRight:  '╗',
	BottomLeft:  '╚',
	BottomRight: '╝',
	Left:        '║',
	Right:       '║',
	Top:         '═',
	Bottom:      '═',
}

// PanelOptions describes a bordered frame; zero Width/Height take the defaults, zero Style is ASCII
// Sprite.Rows is ignored
type PanelOptions struct {
	Sprite
	Width  int
	Height int
	Style  PanelStyle
}

// Panel is a sprite whose texture is a generated border
// Content drawn inside needs a higher ZIndex or later registration
type Panel struct {
	world  *engine.World
	Entity core.Entity
	style  PanelStyle
	width  int
	height int
}

// NewPanel validates the size before creating anything
func NewPanel(w *engine.World, o PanelOptions) (*Panel, error) {
	width, height := o.Width, o.Height
	if width == 0 {
		width = parameter.DefaultPanelWidth
	}
	if height == 0 {
		height = parameter.DefaultPanelHeight
	}
	if err := checkPanelSize(width, height); err != nil {
		return nil, err
	}
	style := o.Style
	if style == (PanelStyle{}) {
		style = DefaultPanelStyle
	}

	o.Sprite.Rows = nil
	e, err := NewSprite(w, o.Sprite)
	if err != nil {
		return nil, err
	}
	p := &Panel{world: w, Entity: e, style: style, width: width, height: height}
	p.regenerate()
	return p, nil
}

func checkPanelSize(width, height int) error {
	if width < parameter.MinPanelSize || height < parameter.MinPanelSize {
		return fmt.Errorf("%w: %dx%d, need at least %d", ErrPanelTooSmall, width, height, parameter.MinPanelSize)
	}
	return nil
}

// Width returns the panel width in cells
func (p *Panel) Width() int { return p.width }

// Height returns the panel height in cells
func (p *Panel) Height() int { return p.height }

// Style returns the border glyphs
func (p *Panel) Style() PanelStyle { return p.style }

// SetWidth resizes the panel; the texture is unchanged on error
func (p *Panel) SetWidth(width int) error {
	if err := checkPanelSize(width, p.height); err != nil {
		return err
	}
	p.width = width
	p.regenerate()
	return nil
}

// SetHeight resizes the panel; the texture is unchanged on error
func (p *Panel) SetHeight(height int) error {
	if err := checkPanelSize(p.width, height); err != nil {
		return err
	}
	p.height = height
	p.regenerate()
	return nil
}

// SetStyle swaps the border glyphs
func (p *Panel) SetStyle(style PanelStyle) {
	p.style = style
	p.regenerate()
}

func (p *Panel) regenerate() {
	s := p.style
	inner := p.width - 2
	rows := make([]string, 0, p.height)
	rows = append(rows, string(s.UpperLeft)+strings.Repeat(string(s.Top), inner)+string(s.UpperRight))
	middle := string(s.Left) + strings.Repeat(" ", inner) + string(s.Right)
	for range p.height - 2 {
		rows = append(rows, middle)
	}
	rows = append(rows, string(s.BottomLeft)+strings.Repeat(string(s.Bottom), inner)+string(s.BottomRight))
	p.world.Components.Texture.MustGet(p.Entity).Rows = rows
}
