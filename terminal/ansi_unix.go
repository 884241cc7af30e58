//go:build unix

package terminal

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ansiTerminal drives the tty directly with escape sequences
type ansiTerminal struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
	w       *bufio.Writer

	pending []byte
	queue   []Event
	readBuf []byte

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSI creates an escape-sequence terminal on stdin/stdout
func NewANSI() (Terminal, error) {
	return &ansiTerminal{
		in:      os.Stdin,
		out:     os.Stdout,
		inFd:    int(os.Stdin.Fd()),
		outFd:   int(os.Stdout.Fd()),
		readBuf: make([]byte, 256),
	}, nil
}

func (t *ansiTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if !term.IsTerminal(t.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	t.oldTerm = old

	t.w = bufio.NewWriterSize(t.out, 64*1024)
	t.w.Write(csiAltScreenOn)
	t.w.Write(csiCursorHide)
	t.w.Write(csiAutoWrapOff)
	t.w.Write(csiClear)
	t.w.Write(csiCursorHome)
	if err := t.w.Flush(); err != nil {
		term.Restore(t.inFd, t.oldTerm)
		return fmt.Errorf("terminal write: %w", err)
	}

	t.initialized = true
	return nil
}

func (t *ansiTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.w.Write(csiSGR0)
	t.w.Write(csiAutoWrapOn)
	t.w.Write(csiCursorShow)
	t.w.Write(csiAltScreenExit)
	t.w.Flush()

	if t.oldTerm != nil {
		term.Restore(t.inFd, t.oldTerm)
	}
	t.finalized = true
}

func (t *ansiTerminal) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (t *ansiTerminal) Draw(cells []rune, width, height int, footer []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	cols, rows := t.Size()
	writeFrame(t.w, cells, width, height, footer, cols, rows)
	t.w.Flush()
}

func (t *ansiTerminal) DrawText(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.w.Write(csiClear)
	t.w.Write(csiCursorHome)
	for i, line := range lines {
		if i > 0 {
			t.w.Write(crlf)
		}
		t.w.WriteString(line)
	}
	t.w.Flush()
}

// PollEvent drains stdin with a zero-timeout poll and returns one queued event
func (t *ansiTerminal) PollEvent() (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.queue) == 0 && t.initialized && !t.finalized {
		t.fill()
	}
	if len(t.queue) == 0 {
		return Event{}, false
	}
	ev := t.queue[0]
	t.queue = t.queue[1:]
	return ev, true
}

// fill reads whatever input is immediately available and decodes it
func (t *ansiTerminal) fill() {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
			t.queue = append(t.queue, Event{Type: EventClosed})
			return
		}
		t.flushPending()
		return
	}

	rn, err := unix.Read(t.inFd, t.readBuf)
	if err != nil {
		if err != unix.EINTR && err != unix.EAGAIN {
			t.queue = append(t.queue, Event{Type: EventClosed})
		}
		return
	}
	if rn == 0 {
		t.queue = append(t.queue, Event{Type: EventClosed})
		return
	}

	t.pending = append(t.pending, t.readBuf[:rn]...)
	events, rest := decodeAll(t.pending)
	t.queue = append(t.queue, events...)
	t.pending = append(t.pending[:0], rest...)
}

// flushPending resolves an incomplete sequence once no more bytes are coming
func (t *ansiTerminal) flushPending() {
	if len(t.pending) == 0 {
		return
	}
	if t.pending[0] == 0x1b {
		t.queue = append(t.queue, Event{Type: EventKey, Key: KeyEscape})
	}
	t.pending = t.pending[:0]
}

// writeFrame emits cursor-home then frame rows clipped to cols x rows, then footer
func writeFrame(w *bufio.Writer, cells []rune, width, height int, footer []string, cols, rows int) {
	w.Write(csiCursorHome)
	line := 0
	for y := 0; y < height && line < rows; y++ {
		if y > 0 {
			w.Write(crlf)
		}
		row := cells[y*width : (y+1)*width]
		if cols < len(row) {
			row = row[:cols]
		}
		for _, r := range row {
			w.WriteRune(r)
		}
		line++
	}
	for _, f := range footer {
		if line >= rows {
			break
		}
		w.Write(crlf)
		n := 0
		for _, r := range f {
			if n >= cols {
				break
			}
			w.WriteRune(r)
			n++
		}
		w.Write(csiClearLine)
		line++
	}
}
