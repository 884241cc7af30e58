package terminal

import (
	"io"
	"os"
)

// ANSI escape sequences
var (
	csiCursorHome    = []byte("\x1b[H")
	csiClear         = []byte("\x1b[2J")
	csiClearLine     = []byte("\x1b[K")
	csiCursorHide    = []byte("\x1b[?25l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenOn   = []byte("\x1b[?1049h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOff   = []byte("\x1b[?7l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiSGR0          = []byte("\x1b[0m")
	csiRIS           = []byte("\x1bc")
	crlf             = []byte("\r\n")
)

// EmergencyReset restores terminal state without relying on a live backend
// Used from panic recovery before the process exits
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
