package engine

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/ascii3d/input"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/terminal"
)

// App alternates between the shape menu and rendering sessions
type App struct {
	term     terminal.Terminal
	keys     *input.KeyTable
	renderer *Renderer
	feedback Feedback
	cfg      SessionConfig

	state  RenderState
	status AppState
}

// NewApp creates the app; initial is StateMenu or StateRendering (skip the menu)
func NewApp(term terminal.Terminal, keys *input.KeyTable, renderer *Renderer, feedback Feedback, initial RenderState, status AppState, cfg SessionConfig) *App {
	return &App{
		term:     term,
		keys:     keys,
		renderer: renderer,
		feedback: feedback,
		cfg:      cfg,
		state:    initial,
		status:   status,
	}
}

// State returns a copy of the render state
func (a *App) State() RenderState {
	return a.state
}

// Run blocks until quit or ctx cancellation
func (a *App) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			a.status = StateTerminated
		}

		switch a.status {
		case StateMenu:
			a.status = a.menu(ctx)
		case StateRendering:
			s := NewSession(a.term, a.keys, a.renderer, a.feedback, &a.state, a.cfg)
			a.status = s.Run(ctx)
		default:
			log.Printf("app: terminated")
			return
		}
	}
}

// menuLines is the shape selection screen
func menuLines() []string {
	lines := []string{
		"===== Shape Rotation Program =====",
		"Choose a shape to rotate:",
	}
	for _, k := range shape.Kinds {
		lines = append(lines, menuEntry(k))
	}
	return append(lines, "q. Quit", "", "Enter your choice: ")
}

func menuEntry(k shape.Kind) string {
	name := k.String()
	return fmt.Sprintf("%d. %s%s", int(k)+1, strings.ToUpper(name[:1]), name[1:])
}

// menu shows the selection screen and polls until a shape is chosen or quit
func (a *App) menu(ctx context.Context) AppState {
	a.term.DrawText(menuLines())

	poll := a.cfg.Interval
	if poll <= 0 {
		poll = time.Millisecond
	}

	for {
		for {
			ev, ok := a.term.PollEvent()
			if !ok {
				break
			}
			switch a.keys.Lookup(ev) {
			case input.IntentSelectCube:
				return a.selectShape(shape.KindCube)
			case input.IntentSelectSphere:
				return a.selectShape(shape.KindSphere)
			case input.IntentSelectPyramid:
				return a.selectShape(shape.KindPyramid)
			case input.IntentQuit:
				return StateTerminated
			}
		}
		if !sleepCtx(ctx, poll) {
			return StateTerminated
		}
	}
}

func (a *App) selectShape(k shape.Kind) AppState {
	a.state.Shape = k
	log.Printf("menu: selected %s", k)
	return StateRendering
}
