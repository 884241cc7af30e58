package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellKeys maps tcell key codes to decoded keys
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlQ:      KeyCtrlQ,
}

// tcellTerminal implements Terminal on a tcell.Screen
type tcellTerminal struct {
	screen tcell.Screen
	style  tcell.Style

	events chan Event
	done   chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell creates a tcell-backed terminal on the controlling tty
func NewTcell() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTcellTerminal(screen), nil
}

// newTcellTerminal wraps an existing screen; tests pass a simulation screen
func newTcellTerminal(screen tcell.Screen) *tcellTerminal {
	return &tcellTerminal{
		screen: screen,
		style:  tcell.StyleDefault,
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true

	go t.pump()
	return nil
}

// pump forwards tcell events until the screen is finalized
func (t *tcellTerminal) pump() {
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		out, ok := convertTcellEvent(ev)
		if !ok {
			continue
		}
		select {
		case t.events <- out:
		case <-t.done:
			return
		}
	}
}

// convertTcellEvent maps key and resize events; others are dropped
func convertTcellEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		var mod Modifier
		if e.Modifiers()&tcell.ModShift != 0 {
			mod |= ModShift
		}
		if e.Modifiers()&tcell.ModAlt != 0 {
			mod |= ModAlt
		}
		if e.Modifiers()&tcell.ModCtrl != 0 {
			mod |= ModCtrl
		}
		if e.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune(), Modifiers: mod}, true
		}
		if k, ok := tcellKeys[e.Key()]; ok {
			return Event{Type: EventKey, Key: k, Modifiers: mod}, true
		}
		return Event{Type: EventKey, Key: KeyNone, Modifiers: mod}, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	close(t.done)
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) Draw(cells []rune, width, height int, footer []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized || len(cells) < width*height {
		return
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, r := range row {
			t.screen.SetContent(x, y, r, nil, t.style)
		}
	}
	for i, line := range footer {
		t.drawLine(height+i, line)
	}
	t.screen.Show()
}

// drawLine writes s at row y and blanks the rest of the row
func (t *tcellTerminal) drawLine(y int, s string) {
	w, _ := t.screen.Size()
	x := 0
	for _, r := range s {
		if x >= w {
			break
		}
		t.screen.SetContent(x, y, r, nil, t.style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, t.style)
	}
}

func (t *tcellTerminal) DrawText(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.screen.Clear()
	for y, line := range lines {
		t.drawLine(y, line)
	}
	t.screen.Show()
}

func (t *tcellTerminal) PollEvent() (Event, bool) {
	select {
	case ev := <-t.events:
		return ev, true
	default:
		return Event{}, false
	}
}
