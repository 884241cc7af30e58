package parameter

import "time"

// Audio Feedback
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// TickFrequency and TickDuration define the rotation feedback tone
	TickFrequency = 880.0
	TickDuration  = 25 * time.Millisecond

	// BuzzFrequency and BuzzDuration define the limit-reached tone
	BuzzFrequency = 120.0
	BuzzDuration  = 120 * time.Millisecond

	// AudioVolume is the linear gain applied to generated tones
	AudioVolume = 0.2
)
