package input

import (
	"maps"

	"github.com/lixenwraith/ascii3d/terminal"
)

// KeyTable maps decoded keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	Keys map[terminal.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]Intent{
			terminal.KeyUp:    IntentRotateUp,
			terminal.KeyDown:  IntentRotateDown,
			terminal.KeyLeft:  IntentRotateLeft,
			terminal.KeyRight: IntentRotateRight,
			terminal.KeyCtrlC: IntentQuit,
			terminal.KeyCtrlQ: IntentQuit,
		},
		Runes: map[rune]Intent{
			// wasd
			'w': IntentRotateUp,
			's': IntentRotateDown,
			'a': IntentRotateLeft,
			'd': IntentRotateRight,

			// vi
			'k': IntentRotateUp,
			'j': IntentRotateDown,
			'h': IntentRotateLeft,
			'l': IntentRotateRight,

			'z': IntentRollLeft,
			'x': IntentRollRight,

			'.': IntentSpeedDown,
			'/': IntentSpeedUp,

			'm': IntentMenu,
			'q': IntentQuit,

			'1': IntentSelectCube,
			'2': IntentSelectSphere,
			'3': IntentSelectPyramid,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup decodes a terminal event into an intent
// Non-key events yield IntentNone; unbound keys yield IntentUnknown
func (kt *KeyTable) Lookup(ev terminal.Event) Intent {
	switch ev.Type {
	case terminal.EventKey:
	case terminal.EventClosed:
		return IntentQuit
	default:
		return IntentNone
	}

	if ev.Key == terminal.KeyRune {
		if in, ok := kt.Runes[ev.Rune]; ok {
			return in
		}
		return IntentUnknown
	}
	if in, ok := kt.Keys[ev.Key]; ok {
		return in
	}
	return IntentUnknown
}
