// Package audio plays short feedback tones through gopxl/beep.
// All operations are no-ops until Initialize succeeds, so a missing audio
// device never affects rendering.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ascii3d/parameter"
)

// Config holds tone parameters
type Config struct {
	SampleRate    int
	BufferLength  time.Duration
	Volume        float64
	TickFrequency float64
	TickDuration  time.Duration
	BuzzFrequency float64
	BuzzDuration  time.Duration
}

// DefaultConfig returns tone parameters from compile-time defaults
func DefaultConfig() Config {
	return Config{
		SampleRate:    parameter.AudioSampleRate,
		BufferLength:  parameter.AudioBufferDuration,
		Volume:        parameter.AudioVolume,
		TickFrequency: parameter.TickFrequency,
		TickDuration:  parameter.TickDuration,
		BuzzFrequency: parameter.BuzzFrequency,
		BuzzDuration:  parameter.BuzzDuration,
	}
}

// SoundManager mixes feedback tones onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	sr          beep.SampleRate
	mixer       *beep.Mixer
	lastTick    time.Time
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; callers treat failure as "audio disabled"
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.sr, sm.sr.N(sm.cfg.BufferLength)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether tones reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close that allows re-init; clearing the mixer silences output
	sm.initialized = false
}

// PlayTick plays the rotation tick; ticks closer together than one tick length are dropped
func (sm *SoundManager) PlayTick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	now := time.Now()
	if now.Sub(sm.lastTick) < sm.cfg.TickDuration {
		return
	}
	sm.lastTick = now

	s, err := newTone(sm.sr, sm.cfg.TickFrequency, sm.cfg.TickDuration, sm.cfg.Volume)
	if err != nil {
		return
	}
	sm.add(s)
}

// PlayBuzz plays the low buzz signalling a limit was hit
func (sm *SoundManager) PlayBuzz() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := newBuzz(sm.sr, sm.cfg.BuzzFrequency, sm.cfg.BuzzDuration, sm.cfg.Volume)
	if err != nil {
		return
	}
	sm.add(s)
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// newTone builds a finite sine tone with a linear fade-out
func newTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	n := sr.N(d)
	return beep.Take(n, fade(gain(sine, volume), n)), nil
}

// newBuzz layers the fundamental with two harmonics for a harsher tone
func newBuzz(sr beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	mix := &beep.Mixer{}
	for i, amp := range []float64{0.6, 0.3, 0.15} {
		sine, err := generators.SineTone(sr, freq*float64(i+1))
		if err != nil {
			return nil, fmt.Errorf("buzz harmonic %d: %w", i+1, err)
		}
		mix.Add(gain(sine, amp))
	}
	n := sr.N(d)
	return beep.Take(n, fade(gain(mix, volume), n)), nil
}

// gain scales a streamer linearly; effects.Gain multiplies by 1+Gain
func gain(s beep.Streamer, factor float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: factor - 1}
}

// fade applies a linear ramp from full level to silence over total samples
func fade(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			level := math.Max(0, 1-float64(pos)/float64(total))
			samples[i][0] *= level
			samples[i][1] *= level
			pos++
		}
		return n, ok
	})
}
