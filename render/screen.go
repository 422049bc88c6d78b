package render

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/system"
	"github.com/lixenwraith/glyphstage/terminal"
	"github.com/lixenwraith/glyphstage/vmath"
)

var (
	// ErrInvalidSize is returned for non-positive screen dimensions
	ErrInvalidSize = errors.New("invalid screen size")
	// ErrInvalidMargin is returned for negative margins
	ErrInvalidMargin = errors.New("invalid screen margin")
)

// Camera supplies the world-space point drawn at the top-left viewport cell
type Camera interface {
	Origin(viewport vmath.Vec2i) vmath.Vec2
}

// Screen composites visible textures into a cell buffer and writes it as ANSI in place
// Not safe for concurrent use; owned by the frame loop
type Screen struct {
	out    io.Writer
	logger *zap.Logger

	width      int
	height     int
	autoResize bool
	margin     int
	mode       terminal.ColorMode
	sizer      func() (int, int)

	buf      *Buffer
	frame    bytes.Buffer
	lastRows int
}

// Option configures a Screen
type Option func(*Screen) error

// WithSize sets the configured viewport size
func WithSize(width, height int) Option {
	return func(s *Screen) error { return s.SetSize(width, height) }
}

// WithAutoResize follows the terminal size instead of the configured size
func WithAutoResize(state bool) Option {
	return func(s *Screen) error {
		s.SetAutoResize(state)
		return nil
	}
}

// WithMargin sets the cells kept free at the right and bottom terminal edges
func WithMargin(margin int) Option {
	return func(s *Screen) error { return s.SetMargin(margin) }
}

// WithColorMode selects how RGB colors are encoded
func WithColorMode(mode terminal.ColorMode) Option {
	return func(s *Screen) error {
		s.SetColorMode(mode)
		return nil
	}
}

// WithSizer replaces the terminal size query
func WithSizer(fn func() (int, int)) Option {
	return func(s *Screen) error {
		s.SetSizer(fn)
		return nil
	}
}

// WithLogger sets the logger; default is a no-op logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Screen) error {
		if l != nil {
			s.logger = l
		}
		return nil
	}
}

// NewScreen creates a screen writing to out
// When out is a terminal its size bounds the viewport; other writers never clip below the configured size
func NewScreen(out io.Writer, opts ...Option) (*Screen, error) {
	s := &Screen{
		out:    out,
		logger: zap.NewNop(),
		width:  parameter.DefaultScreenWidth,
		height: parameter.DefaultScreenHeight,
		margin: parameter.DefaultScreenMargin,
		mode:   terminal.ColorMode256,
		buf:    NewBuffer(0, 0),
	}
	s.sizer = s.defaultSizer()
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Screen) defaultSizer() func() (int, int) {
	if f, ok := s.out.(*os.File); ok {
		fd := int(f.Fd())
		return func() (int, int) { return terminal.Size(fd) }
	}
	return func() (int, int) { return math.MaxInt32, math.MaxInt32 }
}

// SetSize changes the configured viewport size, failing on non-positive values
func (s *Screen) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s.width, s.height = width, height
	return nil
}

// Size returns the configured viewport size
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// SetAutoResize toggles following the terminal size
func (s *Screen) SetAutoResize(state bool) {
	s.autoResize = state
}

// SetMargin sets the cells subtracted from the terminal size on each axis
func (s *Screen) SetMargin(margin int) error {
	if margin < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMargin, margin)
	}
	s.margin = margin
	return nil
}

// SetColorMode selects how RGB colors are encoded
func (s *Screen) SetColorMode(mode terminal.ColorMode) {
	s.mode = mode
}

// SetSizer replaces the terminal size query; nil restores the default
func (s *Screen) SetSizer(fn func() (int, int)) {
	if fn == nil {
		fn = s.defaultSizer()
	}
	s.sizer = fn
}

// Viewport returns the effective render region for this frame
func (s *Screen) Viewport() vmath.Vec2i {
	tw, th := s.sizer()
	avail := vmath.Vec2i{X: max(tw-s.margin, 0), Y: max(th-s.margin, 0)}
	if s.autoResize {
		return avail
	}
	return vmath.Vec2i{X: s.width, Y: s.height}.Min(avail)
}

// Clear resizes the buffer to the current viewport and blanks it
func (s *Screen) Clear() {
	vp := s.Viewport()
	if vp.X != s.buf.Width() || vp.Y != s.buf.Height() {
		s.buf.Resize(vp.X, vp.Y)
		s.logger.Debug("screen resized", zap.Int("width", vp.X), zap.Int("height", vp.Y))
		return
	}
	s.buf.Clear()
}

// Cell returns the buffered cell at (x, y)
func (s *Screen) Cell(x, y int) (Cell, bool) {
	return s.buf.Get(x, y)
}

// RenderAll draws every visible texture in ascending z-index, ties in registration order
func (s *Screen) RenderAll(w *engine.World, cam Camera) {
	origin := cam.Origin(vmath.Vec2i{X: s.buf.Width(), Y: s.buf.Height()})

	entities := w.Query(core.GroupTexture).With(core.GroupTransform).Execute()
	slices.SortStableFunc(entities, func(a, b core.Entity) int {
		return cmp.Compare(w.Components.Texture.MustGet(a).ZIndex, w.Components.Texture.MustGet(b).ZIndex)
	})

	for _, e := range entities {
		if !system.IsGloballyVisible(w, e) {
			continue
		}
		s.renderTexture(w, e, origin)
	}
}

func (s *Screen) renderTexture(w *engine.World, e core.Entity, origin vmath.Vec2) {
	tex := w.Components.Texture.MustGet(e)
	color := tcell.ColorDefault
	if c, ok := w.Components.Color.Get(e); ok {
		color = c.Color
	}

	pos := system.GlobalPosition(w, e).Sub(origin)
	rot := system.GlobalRotation(w, e)
	var anchor vmath.Vec2
	if tex.Centered {
		anchor = tex.Size().Float().Scale(0.5)
	}

	for y, row := range tex.Rows {
		x := 0
		for _, glyph := range row {
			if tex.Transparency != 0 && glyph == tex.Transparency {
				x++
				continue
			}
			offset := vmath.Vec2{X: float64(x), Y: float64(y)}.Sub(anchor)
			cell := pos.Add(offset.Rotated(rot)).Round()
			s.buf.Set(cell.X, cell.Y, glyph, color)
			x++
		}
	}
}

// Refresh clears, renders and writes one frame
func (s *Screen) Refresh(w *engine.World, cam Camera) error {
	s.Clear()
	s.RenderAll(w, cam)
	return s.Show()
}

// Show serializes the buffer and writes it in a single call
// The cursor returns to the top-left of the previous frame before drawing
func (s *Screen) Show() error {
	buf := &s.frame
	buf.Reset()

	buf.WriteByte('\r')
	if s.lastRows > 0 {
		terminal.WriteCursorUp(buf, s.lastRows-1)
	}

	current := tcell.ColorDefault
	for y := 0; y < s.buf.Height(); y++ {
		if y > 0 {
			buf.WriteByte('\n')
		}
		for _, cell := range s.buf.Row(y) {
			if cell.Color != current {
				terminal.WriteReset(buf)
				if cell.Color != tcell.ColorDefault {
					terminal.WriteForeground(buf, cell.Color, s.mode)
				}
				current = cell.Color
			}
			buf.WriteRune(cell.Glyph)
		}
	}
	terminal.WriteReset(buf)
	s.lastRows = s.buf.Height()

	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("screen write: %w", err)
	}
	return nil
}

// Startup hides the cursor
func (s *Screen) Startup() error {
	s.frame.Reset()
	terminal.WriteCursorHide(&s.frame)
	_, err := s.out.Write(s.frame.Bytes())
	return err
}

// Cleanup erases the drawn region, resets colors and shows the cursor
func (s *Screen) Cleanup() error {
	buf := &s.frame
	buf.Reset()
	if s.lastRows > 0 {
		buf.WriteByte('\r')
		terminal.WriteCursorUp(buf, s.lastRows-1)
		for y := 0; y < s.lastRows; y++ {
			if y > 0 {
				buf.WriteByte('\n')
			}
			terminal.WriteEraseLine(buf)
		}
		buf.WriteByte('\r')
		terminal.WriteCursorUp(buf, s.lastRows-1)
	}
	terminal.WriteReset(buf)
	terminal.WriteCursorShow(buf)
	s.lastRows = 0
	_, err := s.out.Write(buf.Bytes())
	return err
}
