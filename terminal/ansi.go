package terminal

import (
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiEraseLine  = []byte("\x1b[2K")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B m
)

// ByteWriter is satisfied by *bufio.Writer and *bytes.Buffer
type ByteWriter interface {
	io.Writer
	io.ByteWriter
}

// WriteInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w ByteWriter, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteReset writes SGR 0
func WriteReset(w ByteWriter) {
	w.Write(csiReset)
}

// WriteCursorUp moves the cursor up n rows; n <= 0 writes nothing
func WriteCursorUp(w ByteWriter, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	WriteInt(w, n)
	w.WriteByte('A')
}

// WriteCursorHide hides the cursor
func WriteCursorHide(w ByteWriter) {
	w.Write(csiCursorHide)
}

// WriteCursorShow shows the cursor
func WriteCursorShow(w ByteWriter) {
	w.Write(csiCursorShow)
}

// WriteEraseLine clears the whole current line
func WriteEraseLine(w ByteWriter) {
	w.Write(csiEraseLine)
}

// WriteForeground writes the SGR sequence selecting c as foreground
// Palette 0-7 use 30-37, 8-15 use 90-97, higher indices 38;5;N
// RGB colors use 38;2;R;G;B in truecolor mode and the nearest palette index otherwise
// ColorDefault and invalid colors write SGR 39
func WriteForeground(w ByteWriter, c tcell.Color, mode ColorMode) {
	if !c.Valid() {
		w.Write(csi)
		w.Write([]byte("39m"))
		return
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		if mode == ColorModeTrueColor {
			w.Write(csiFgRGB)
			WriteInt(w, int(r))
			w.WriteByte(';')
			WriteInt(w, int(g))
			w.WriteByte(';')
			WriteInt(w, int(b))
			w.WriteByte('m')
			return
		}
		writePalette(w, int(RGBTo256(RGB{uint8(r), uint8(g), uint8(b)})))
		return
	}
	writePalette(w, int(c&^tcell.ColorValid))
}

func writePalette(w ByteWriter, idx int) {
	switch {
	case idx < 8:
		w.Write(csi)
		WriteInt(w, 30+idx)
		w.WriteByte('m')
	case idx < 16:
		w.Write(csi)
		WriteInt(w, 90+idx-8)
		w.WriteByte('m')
	default:
		w.Write(csiFg256)
		WriteInt(w, idx)
		w.WriteByte('m')
	}
}

// EmergencyReset restores a usable terminal after a crash
// Best-effort; write errors are ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiReset)
	w.Write([]byte("\r\n"))

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	resetTerminalMode()
}
