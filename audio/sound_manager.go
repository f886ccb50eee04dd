package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/ascii-motion/config"
	"github.com/lixenwraith/ascii-motion/parameter"
	"golang.org/x/time/rate"
)

// SoundManager plays collision cues through the speaker mixer
// Cues are rate limited so a scene full of collisions does not saturate the mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	limiter     *rate.Limiter
	sink        func(beep.Streamer)
	initialized bool
}

// NewSoundManager creates a manager from audio config; call Initialize before Play
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	sm := &SoundManager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(cfg.SampleRate),
		volume:  cfg.Volume,
		limiter: rate.NewLimiter(rate.Limit(parameter.CueRateLimit), parameter.CueBurst),
	}
	sm.sink = sm.enqueue
	return sm
}

// Initialize opens the speaker and starts playing the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// enqueue adds a streamer to the live mixer under the speaker lock
func (sm *SoundManager) enqueue(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Play queues a cue, returning false if it was dropped by the limiter or audio is not running
func (sm *SoundManager) Play(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.limiter.Allow() {
		return false
	}

	streamer, err := CreateCue(c, sm.rate, sm.volume)
	if err != nil {
		return false
	}
	sm.sink(streamer)
	return true
}

// Close clears queued cues and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Silent is a Player that drops every cue
type Silent struct{}

func (Silent) Play(Cue) bool { return false }
func (Silent) Close()        {}

// NewPlayer returns a running SoundManager when audio is enabled and the speaker opens,
// otherwise Silent together with the initialization error
func NewPlayer(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		return Silent{}, err
	}
	return sm, nil
}
