package engine

import (
	"github.com/lixenwraith/ascii3d/input"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/vmath"
)

// RenderState is the mutable view state owned by the running app
// Orientation and speed persist across shape selections
type RenderState struct {
	Orientation vmath.Orientation
	Shape       shape.Kind
	Speed       float64
}

// Outcome reports what an applied intent changed, used for feedback
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeRotated
	OutcomeSpeedChanged
	OutcomeSpeedRefused // Speed down at the floor
)

// Apply mutates orientation or speed for intent
// SpeedDown is refused unless the result stays at least half a step,
// so accumulated float error cannot drive speed to zero
func (s *RenderState) Apply(in input.Intent, step float64) Outcome {
	v := s.Speed
	switch in {
	case input.IntentRotateUp:
		s.Orientation = s.Orientation.Add(-v, 0, 0)
	case input.IntentRotateDown:
		s.Orientation = s.Orientation.Add(v, 0, 0)
	case input.IntentRotateRight:
		s.Orientation = s.Orientation.Add(0, v, 0)
	case input.IntentRotateLeft:
		s.Orientation = s.Orientation.Add(0, -v, 0)
	case input.IntentRollRight:
		s.Orientation = s.Orientation.Add(0, 0, v)
	case input.IntentRollLeft:
		s.Orientation = s.Orientation.Add(0, 0, -v)
	case input.IntentSpeedUp:
		s.Speed += step
		return OutcomeSpeedChanged
	case input.IntentSpeedDown:
		if s.Speed-step >= step/2 {
			s.Speed -= step
			return OutcomeSpeedChanged
		}
		return OutcomeSpeedRefused
	default:
		return OutcomeNone
	}
	return OutcomeRotated
}
