package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/glyphstage/terminal"
)

// handleCrash restores the terminal, prints the panic with its stack and exits
func handleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()
	os.Stderr.Sync()

	// \r\n keeps the trace readable if the terminal is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGLYPHSTAGE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// guarded wraps an errgroup function with panic recovery
func guarded(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		return fn()
	}
}
