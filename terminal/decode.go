package terminal

import "unicode/utf8"

// decodeInput parses the leading event in data
// Returns bytes consumed and the event; consumed is 0 when data holds an incomplete sequence
func decodeInput(data []byte) (int, Event) {
	if len(data) == 0 {
		return 0, Event{}
	}

	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b < 0x20 || b == 0x7f:
		return 1, decodeControl(b)
	case b < 0x80:
		return 1, Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}
	}

	need := utf8SeqLen(b)
	if need == 0 {
		// Stray continuation byte
		return 1, Event{Type: EventKey, Key: KeyNone}
	}
	if len(data) < need {
		return 0, Event{}
	}
	r, size := utf8.DecodeRune(data[:need])
	if r == utf8.RuneError {
		return size, Event{Type: EventKey, Key: KeyNone}
	}
	return size, Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// decodeAll parses every complete event in data and returns the unconsumed tail
func decodeAll(data []byte) ([]Event, []byte) {
	var events []Event
	for len(data) > 0 {
		n, ev := decodeInput(data)
		if n == 0 {
			break
		}
		data = data[n:]
		events = append(events, ev)
	}
	return events, data
}

// utf8SeqLen returns expected UTF-8 sequence length from the lead byte
func utf8SeqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// decodeEscape handles a sequence starting with ESC
// A lone ESC is a complete Escape key press
func decodeEscape(data []byte) (int, Event) {
	if len(data) == 1 {
		return 1, Event{Type: EventKey, Key: KeyEscape}
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		// SS3 arrows sent in application cursor mode
		if len(data) < 3 {
			return 0, Event{}
		}
		if k, ok := finalKeys[data[2]]; ok {
			return 3, Event{Type: EventKey, Key: k}
		}
		return 3, Event{Type: EventKey, Key: KeyNone}
	case 0x1b:
		return 1, Event{Type: EventKey, Key: KeyEscape}
	}

	// Alt+key
	n, ev := decodeInput(data[1:])
	if n == 0 {
		return 0, Event{}
	}
	ev.Modifiers |= ModAlt
	return n + 1, ev
}

// finalKeys maps CSI/SS3 final bytes to navigation keys
var finalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// tildeKeys maps CSI <n> ~ parameters to keys
var tildeKeys = map[int]Key{
	1: KeyHome,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// decodeCSI handles ESC [ params final
func decodeCSI(data []byte) (int, Event) {
	params := [2]int{}
	idx := 0
	for i := 2; i < len(data); i++ {
		c := data[i]
		switch {
		case c >= '0' && c <= '9':
			params[idx] = params[idx]*10 + int(c-'0')
		case c == ';':
			if idx < len(params)-1 {
				idx++
			}
		case c >= 0x40 && c <= 0x7e:
			ev := Event{Type: EventKey, Key: KeyNone}
			if c == '~' {
				if k, ok := tildeKeys[params[0]]; ok {
					ev.Key = k
				}
			} else if k, ok := finalKeys[c]; ok {
				ev.Key = k
			}
			if idx > 0 {
				ev.Modifiers = csiModifier(params[1])
			}
			return i + 1, ev
		default:
			// Unsupported intermediate byte, swallow through it
		}
	}
	return 0, Event{}
}

// csiModifier decodes the xterm modifier parameter (1 + bitmask)
func csiModifier(p int) Modifier {
	if p < 2 {
		return ModNone
	}
	bits := p - 1
	var mod Modifier
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// decodeControl maps C0 control bytes
func decodeControl(b byte) Event {
	switch b {
	case 0x03:
		return Event{Type: EventKey, Key: KeyCtrlC, Modifiers: ModCtrl}
	case 0x04:
		return Event{Type: EventKey, Key: KeyCtrlD, Modifiers: ModCtrl}
	case 0x11:
		return Event{Type: EventKey, Key: KeyCtrlQ, Modifiers: ModCtrl}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0d, 0x0a:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x08, 0x7f:
		return Event{Type: EventKey, Key: KeyBackspace}
	}
	return Event{Type: EventKey, Key: KeyNone, Modifiers: ModCtrl}
}
