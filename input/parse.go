package input

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Parser decodes raw terminal bytes into key events
// Incomplete escape and UTF-8 sequences are held until more bytes arrive
type Parser struct {
	buf []byte
}

// Feed appends data and returns every complete event in order
func (p *Parser) Feed(data []byte) []Event {
	p.buf = append(p.buf, data...)
	events, consumed := parse(p.buf)
	p.buf = append(p.buf[:0], p.buf[consumed:]...)
	return events
}

// Flush emits a lone pending ESC as KeyEscape; other partial input is dropped
func (p *Parser) Flush() []Event {
	defer func() { p.buf = p.buf[:0] }()
	if len(p.buf) == 1 && p.buf[0] == 0x1b {
		return []Event{{Key: tcell.KeyEscape}}
	}
	return nil
}

// Pending reports whether bytes are buffered awaiting completion
func (p *Parser) Pending() bool {
	return len(p.buf) > 0
}

// parse decodes data and returns the events and bytes consumed (stop on incomplete sequence)
func parse(data []byte) ([]Event, int) {
	var events []Event
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			events = append(events, Event{Key: tcell.KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			if i+1 >= n {
				return events, i // Wait for more data
			}
			consumed, ev, ok := parseEscape(data[i:])
			if consumed == 0 {
				return events, i
			}
			if ok {
				events = append(events, ev)
			}
			i += consumed
			continue
		}

		if b < 0x20 {
			events = append(events, parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			events = append(events, Event{Key: tcell.KeyBackspace2})
			i++
			continue
		}

		// UTF-8 multibyte
		if !utf8.FullRune(data[i:]) {
			return events, i
		}
		r, size := utf8.DecodeRune(data[i:])
		if r != utf8.RuneError {
			events = append(events, Event{Key: tcell.KeyRune, Rune: r})
		}
		i += size
	}
	return events, i
}

// parseEscape attempts to parse an escape sequence, returns 0 consumed on incomplete
// ok is false for recognized-but-unknown sequences that are swallowed
func parseEscape(data []byte) (int, Event, bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Key: tcell.KeyEscape, Mod: tcell.ModAlt}, true
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		ev := parseControl(data[1])
		ev.Mod |= tcell.ModAlt
		return 2, ev, true
	case data[1] < 0x7f:
		return 2, Event{Key: tcell.KeyRune, Rune: rune(data[1]), Mod: tcell.ModAlt}, true
	}
	// ESC followed by non-ASCII: report the escape alone
	return 1, Event{Key: tcell.KeyEscape}, true
}

// parseCSI parses ESC [ params final
func parseCSI(data []byte) (int, Event, bool) {
	maxScan := min(len(data), 16)
	end := 2
	for ; end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed: drop the introducer only
			return 2, Event{}, false
		}
	}

	last := data[end-1]
	if end <= 2 || !((last >= 'A' && last <= 'Z') || (last >= 'a' && last <= 'z') || last == '~') {
		if len(data) >= 16 {
			return 2, Event{}, false
		}
		return 0, Event{}, false // Incomplete
	}

	key, mod, ok := lookupCSI(data[2:end])
	return end, Event{Key: key, Mod: mod}, ok
}

// parseSS3 parses ESC O final, returns length even for unknown sequences
func parseSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	key, ok := ss3Keys[data[2]]
	return 3, Event{Key: key}, ok
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Key: tcell.KeyCtrlSpace}
	case 0x08:
		return Event{Key: tcell.KeyBackspace}
	case 0x09:
		return Event{Key: tcell.KeyTab}
	case 0x0a, 0x0d:
		return Event{Key: tcell.KeyEnter}
	case 0x1b:
		return Event{Key: tcell.KeyEscape}
	case 0x1c:
		return Event{Key: tcell.KeyCtrlBackslash}
	case 0x1d:
		return Event{Key: tcell.KeyCtrlRightSq}
	case 0x1e:
		return Event{Key: tcell.KeyCtrlCarat}
	case 0x1f:
		return Event{Key: tcell.KeyCtrlUnderscore}
	}
	// Ctrl+A = 0x01 … Ctrl+Z = 0x1A
	return Event{Key: tcell.KeyCtrlA + tcell.Key(b-1), Mod: tcell.ModCtrl}
}

var csiFinalKeys = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
	'Z': tcell.KeyBacktab,
}

var csiTildeKeys = map[int]tcell.Key{
	1:  tcell.KeyHome,
	2:  tcell.KeyInsert,
	3:  tcell.KeyDelete,
	4:  tcell.KeyEnd,
	5:  tcell.KeyPgUp,
	6:  tcell.KeyPgDn,
	7:  tcell.KeyHome,
	8:  tcell.KeyEnd,
	11: tcell.KeyF1,
	12: tcell.KeyF2,
	13: tcell.KeyF3,
	14: tcell.KeyF4,
	15: tcell.KeyF5,
	17: tcell.KeyF6,
	18: tcell.KeyF7,
	19: tcell.KeyF8,
	20: tcell.KeyF9,
	21: tcell.KeyF10,
	23: tcell.KeyF11,
	24: tcell.KeyF12,
}

var ss3Keys = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
	'P': tcell.KeyF1,
	'Q': tcell.KeyF2,
	'R': tcell.KeyF3,
	'S': tcell.KeyF4,
}

// lookupCSI resolves "params final" such as "A", "1;5C" or "3~"
func lookupCSI(seq []byte) (tcell.Key, tcell.ModMask, bool) {
	final := seq[len(seq)-1]
	params := parseParams(seq[:len(seq)-1])

	var mod tcell.ModMask
	if len(params) >= 2 {
		mod = xtermModifier(params[1])
	}

	if final == '~' {
		if len(params) == 0 {
			return 0, 0, false
		}
		key, ok := csiTildeKeys[params[0]]
		return key, mod, ok
	}
	key, ok := csiFinalKeys[final]
	if final == 'Z' {
		mod = 0
	}
	return key, mod, ok
}

// parseParams splits ";"-separated decimal parameters; non-digits end a parameter
func parseParams(b []byte) []int {
	if len(b) == 0 {
		return nil
	}
	params := []int{0}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
			params[len(params)-1] = params[len(params)-1]*10 + int(c-'0')
		case c == ';':
			params = append(params, 0)
		}
	}
	return params
}

// xtermModifier decodes the xterm modifier parameter (1 + bitmask)
func xtermModifier(p int) tcell.ModMask {
	if p < 2 {
		return 0
	}
	bits := p - 1
	var mod tcell.ModMask
	if bits&1 != 0 {
		mod |= tcell.ModShift
	}
	if bits&2 != 0 {
		mod |= tcell.ModAlt
	}
	if bits&4 != 0 {
		mod |= tcell.ModCtrl
	}
	return mod
}
