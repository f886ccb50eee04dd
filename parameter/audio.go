package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume when config leaves it unset
	AudioDefaultVolume = 0.5
)

// Cue throttling: collisions in dense scenes would otherwise stack into noise
const (
	// CueRateLimit is the sustained number of cues per second
	CueRateLimit = 20
	// CueBurst is the number of cues allowed back-to-back
	CueBurst = 4
)

// Reflect cue: short sine ping
const (
	ReflectCueFreq     = 880.0
	ReflectCueDuration = 60 * time.Millisecond
	ReflectCueAttack   = 3 * time.Millisecond
	ReflectCueRelease  = 40 * time.Millisecond
)

// Stop cue: low square thud
const (
	StopCueFreq     = 110.0
	StopCueDuration = 90 * time.Millisecond
	StopCueAttack   = 2 * time.Millisecond
	StopCueRelease  = 60 * time.Millisecond
)

// Wrap cue: noise whoosh
const (
	WrapCueDuration = 70 * time.Millisecond
	WrapCueAttack   = 20 * time.Millisecond
	WrapCueRelease  = 40 * time.Millisecond
)
