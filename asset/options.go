package asset

import "github.com/lixenwraith/glyphstage/parameter"

// options controls post-processing of loaded glyph grids
// Fill runs before flips so mirrored rows stay aligned
type options struct {
	fill     bool
	fillChar rune
	flipH    bool
	flipV    bool
	reverse  bool
}

// Option configures a texture or animation load
type Option func(*options)

func defaultOptions() options {
	return options{fill: true, fillChar: parameter.DefaultFillChar}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFill toggles rectangularizing ragged rows
func WithFill(state bool) Option {
	return func(o *options) { o.fill = state }
}

// WithFillChar sets the padding glyph
func WithFillChar(r rune) Option {
	return func(o *options) { o.fillChar = r }
}

// WithFlipH mirrors rows left to right
func WithFlipH(state bool) Option {
	return func(o *options) { o.flipH = state }
}

// WithFlipV reverses row order
func WithFlipV(state bool) Option {
	return func(o *options) { o.flipV = state }
}

// WithReverse reverses frame order; ignored for single textures
func WithReverse(state bool) Option {
	return func(o *options) { o.reverse = state }
}

// apply returns a processed copy of rows
func (o options) apply(rows []string) []string {
	if o.fill {
		rows = FillLines(rows, o.fillChar)
	}
	if o.flipH {
		rows = FlipLinesH(rows)
	}
	if o.flipV {
		rows = FlipLinesV(rows)
	}
	if !o.fill && !o.flipH && !o.flipV {
		rows = append([]string{}, rows...)
	}
	return rows
}
