package terminal

import (
	"fmt"
	"strings"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventClosed // Input closed
)

// Event represents a decoded terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize
}

// Terminal is the display and keyboard collaborator of the frame loop
type Terminal interface {
	// Init enters raw mode, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Draw writes a row-major frame of width*height glyphs at the top-left corner
	// followed by footer lines, without clearing the screen first
	Draw(cells []rune, width, height int, footer []string)

	// DrawText clears the screen and writes lines from the top-left corner
	DrawText(lines []string)

	// PollEvent returns the next pending event without blocking
	PollEvent() (Event, bool)
}

// Backend names accepted by Open
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Open creates an uninitialized terminal for the named backend
func Open(backend string) (Terminal, error) {
	switch strings.ToLower(backend) {
	case "", BackendTcell:
		return NewTcell()
	case BackendANSI:
		return NewANSI()
	}
	return nil, fmt.Errorf("unknown terminal backend %q", backend)
}
