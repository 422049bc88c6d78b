package render

import "github.com/gdamore/tcell/v2"

// Cell is one screen position: a glyph plus an optional foreground color
type Cell struct {
	Glyph rune
	Color tcell.Color
}

// blankCell fills cleared buffers
var blankCell = Cell{Glyph: ' ', Color: tcell.ColorDefault}

// Buffer is a width×height cell grid rebuilt every frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Width returns the column count
func (b *Buffer) Width() int { return b.width }

// Height returns the row count
func (b *Buffer) Height() int { return b.height }

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell; out of bounds writes are dropped
func (b *Buffer) Set(x, y int, glyph rune, color tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Glyph: glyph, Color: color}
}

// Get returns the cell at (x, y)
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Row returns the cells of row y, aliasing the buffer
func (b *Buffer) Row(y int) []Cell {
	return b.cells[y*b.width : (y+1)*b.width]
}
