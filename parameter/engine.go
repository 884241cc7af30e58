package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the pause between rendered frames (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// StatsLogInterval is how often frame statistics are written to the debug log
	StatsLogInterval = 1 * time.Second

	// EventQueueSize is the capacity of the buffered input event channel
	EventQueueSize = 256
)
