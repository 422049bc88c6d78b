//go:build !unix

package terminal

import "golang.org/x/term"

// Size returns the terminal size in cells as (columns, rows), 80x24 when unknown
func Size(fd int) (int, int) {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

func resetTerminalMode() {}

// EnableOutputProcessing is a no-op without termios
func EnableOutputProcessing(int) error { return nil }
