//go:build unix && !nokeyboard

package input

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/terminal"
)

// Keyboard reads raw stdin on its own goroutine and records presses in the embedded KeyState
type Keyboard struct {
	*KeyState

	fd      int
	oldTerm *term.State
	parser  Parser

	mu      sync.Mutex
	handler func(Event)
	closed  bool
}

// NewKeyboard puts stdin into raw mode
// Close must be called to restore the terminal
func NewKeyboard(state *KeyState) (*Keyboard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	// The compositor separates rows with bare newlines
	if err := terminal.EnableOutputProcessing(fd); err != nil {
		term.Restore(fd, old)
		return nil, fmt.Errorf("output processing: %w", err)
	}
	if state == nil {
		state = NewKeyState(nil, 0)
	}
	return &Keyboard{KeyState: state, fd: fd, oldTerm: old}, nil
}

// SetHandler registers a callback invoked on the reader goroutine for every event
func (k *Keyboard) SetHandler(fn func(Event)) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.handler = fn
}

// Run polls stdin until ctx is cancelled or input ends
func (k *Keyboard) Run(ctx context.Context) error {
	buf := make([]byte, parameter.KeyReadBufferSize)
	timeout := int(parameter.KeyPollTimeout.Milliseconds())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fds := []unix.PollFd{{Fd: int32(k.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("poll stdin: %w", err)
		}
		if n == 0 {
			// Timeout: a lone ESC is a real escape press
			k.dispatch(k.parser.Flush())
			continue
		}

		rn, err := unix.Read(k.fd, buf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return fmt.Errorf("read stdin: %w", err)
		}
		if rn == 0 {
			return nil // EOF
		}
		k.dispatch(k.parser.Feed(buf[:rn]))
	}
}

func (k *Keyboard) dispatch(events []Event) {
	if len(events) == 0 {
		return
	}
	k.Press(events...)

	k.mu.Lock()
	fn := k.handler
	k.mu.Unlock()
	if fn == nil {
		return
	}
	for _, ev := range events {
		fn(ev)
	}
}

// Close restores the terminal mode, safe to call more than once
func (k *Keyboard) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return nil
	}
	k.closed = true
	return term.Restore(k.fd, k.oldTerm)
}
