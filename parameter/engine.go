package parameter

import "time"

// Animation Loop Timing
const (
	// FrameUpdateInterval is the default wall-clock interval between frames (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// DefaultFrameCount is the number of frames the headless renderer emits
	DefaultFrameCount = 20
)
