package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/ascii3d/input"
	"github.com/lixenwraith/ascii3d/parameter"
	"github.com/lixenwraith/ascii3d/terminal"
)

// AppState is the top-level mode of the program
type AppState uint8

const (
	StateRendering AppState = iota
	StateMenu
	StateTerminated
)

func (s AppState) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateMenu:
		return "menu"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("AppState(%d)", uint8(s))
}

// Feedback receives audible cues for applied intents
type Feedback interface {
	PlayTick()
	PlayBuzz()
}

type nopFeedback struct{}

func (nopFeedback) PlayTick() {}
func (nopFeedback) PlayBuzz() {}

// SessionConfig tunes the frame loop
type SessionConfig struct {
	Interval  time.Duration // Pause between frames; zero renders back to back
	SpeedStep float64
	ShowHelp  bool // Controls text below the grid when the terminal has room
}

// Session drives one shape: render, output, drain input, apply, sleep
type Session struct {
	term     terminal.Terminal
	keys     *input.KeyTable
	renderer *Renderer
	feedback Feedback
	cfg      SessionConfig

	state  *RenderState
	status AppState

	stats frameStats
}

// NewSession binds collaborators to a state owned by the caller
// feedback may be nil
func NewSession(term terminal.Terminal, keys *input.KeyTable, renderer *Renderer, feedback Feedback, state *RenderState, cfg SessionConfig) *Session {
	if feedback == nil {
		feedback = nopFeedback{}
	}
	return &Session{
		term:     term,
		keys:     keys,
		renderer: renderer,
		feedback: feedback,
		cfg:      cfg,
		state:    state,
		status:   StateRendering,
	}
}

// Status returns the current session state
func (s *Session) Status() AppState {
	return s.status
}

// Apply mutates render state or session status for one intent
func (s *Session) Apply(in input.Intent) {
	switch in {
	case input.IntentMenu:
		s.status = StateMenu
		return
	case input.IntentQuit:
		s.status = StateTerminated
		return
	}

	switch s.state.Apply(in, s.cfg.SpeedStep) {
	case OutcomeRotated:
		s.feedback.PlayTick()
	case OutcomeSpeedRefused:
		s.feedback.PlayBuzz()
	}
}

// Step renders and outputs one frame, then applies all pending input
// Input after a status change is left queued for the next consumer
func (s *Session) Step() Frame {
	frame := s.renderer.RenderFrame(*s.state)
	s.term.Draw(frame.Cells, frame.Width, frame.Height, s.footer(frame.Height))
	s.stats.record(frame)

	for s.status == StateRendering {
		ev, ok := s.term.PollEvent()
		if !ok {
			break
		}
		s.Apply(s.keys.Lookup(ev))
	}
	return frame
}

// Run loops until menu, quit or ctx cancellation and returns the resulting state
func (s *Session) Run(ctx context.Context) AppState {
	log.Printf("session: %s start, speed %.2f", s.state.Shape, s.state.Speed)

	for s.status == StateRendering {
		if ctx.Err() != nil {
			s.status = StateTerminated
			break
		}
		s.Step()
		s.stats.maybeLog(time.Now())

		if !sleepCtx(ctx, s.cfg.Interval) {
			s.status = StateTerminated
		}
	}

	log.Printf("session: %s end → %s", s.state.Shape, s.status)
	return s.status
}

// footer returns help lines if they fit below a grid of gridHeight rows
func (s *Session) footer(gridHeight int) []string {
	if !s.cfg.ShowHelp {
		return nil
	}
	lines := helpLines(s.state.Speed)
	if _, h := s.term.Size(); h < gridHeight+len(lines) {
		return nil
	}
	return lines
}

// helpLines mirrors the controls printed under every frame
func helpLines(speed float64) []string {
	return []string{
		"Controls:",
		"  Up/Down (w/s, k/j): rotate around X axis",
		"  Left/Right (a/d, h/l): rotate around Y axis",
		"  z/x: roll around Z axis",
		fmt.Sprintf("  '.' decrease / '/' increase rotation speed (%.2f)", speed),
		"  'm': back to menu   'q': quit",
	}
}

// sleepCtx waits d or until ctx is done; false means cancelled
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// frameStats aggregates per-frame counters for periodic debug logging
type frameStats struct {
	frames   int
	samples  int
	accepted int
	since    time.Time
}

func (f *frameStats) record(frame Frame) {
	f.frames++
	f.samples += frame.Stats.Samples
	f.accepted += frame.Stats.Accepted
}

func (f *frameStats) maybeLog(now time.Time) {
	if f.since.IsZero() {
		f.since = now
		return
	}
	elapsed := now.Sub(f.since)
	if elapsed < parameter.StatsLogInterval || f.frames == 0 {
		return
	}
	log.Printf("frame: fps=%.1f samples/frame=%d accepted/frame=%d",
		float64(f.frames)/elapsed.Seconds(), f.samples/f.frames, f.accepted/f.frames)
	*f = frameStats{since: now}
}
