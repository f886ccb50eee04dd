package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/ascii-motion/parameter"
)

// waveform is the raw signal a cue is cut from
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// cueShape describes one collision cue: a waveform cut to duration with a linear fade in and out
type cueShape struct {
	wave     waveform
	freq     float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

var cueShapes = [cueCount]cueShape{
	CueReflect: {
		wave:     waveSine,
		freq:     parameter.ReflectCueFreq,
		duration: parameter.ReflectCueDuration,
		attack:   parameter.ReflectCueAttack,
		release:  parameter.ReflectCueRelease,
	},
	CueStop: {
		wave:     waveSquare,
		freq:     parameter.StopCueFreq,
		duration: parameter.StopCueDuration,
		attack:   parameter.StopCueAttack,
		release:  parameter.StopCueRelease,
	},
	CueWrap: {
		wave:     waveNoise,
		duration: parameter.WrapCueDuration,
		attack:   parameter.WrapCueAttack,
		release:  parameter.WrapCueRelease,
	},
}

// source returns an endless streamer of the shape's waveform
func (s cueShape) source(sr beep.SampleRate) (beep.Streamer, error) {
	switch s.wave {
	case waveSine:
		return generators.SineTone(sr, s.freq)
	case waveSquare:
		return generators.SquareTone(sr, s.freq)
	default:
		return whiteNoise(), nil
	}
}

// whiteNoise streams uniform noise in [-1, 1) forever
func whiteNoise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// ramp applies a linear fade in over attack samples and fade out over the last release samples
type ramp struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newRamp(s beep.Streamer, total, attack, release int) *ramp {
	return &ramp{streamer: s, total: total, attack: attack, release: release}
}

// gain returns the amplitude factor at sample pos
func (r *ramp) gain(pos int) float64 {
	switch {
	case r.attack > 0 && pos < r.attack:
		return float64(pos) / float64(r.attack)
	case r.release > 0 && pos >= r.total-r.release:
		return math.Max(0, float64(r.total-pos)/float64(r.release))
	default:
		return 1
	}
}

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := r.gain(r.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

func (r *ramp) Err() error { return r.streamer.Err() }

// newVolume scales s linearly by vol; math.Log2(0) is -Inf so zero volume goes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCue builds the finite streamer for a collision cue at the given master volume
func CreateCue(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	if c < 0 || c >= cueCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, c)
	}
	shape := cueShapes[c]

	src, err := shape.source(sr)
	if err != nil {
		return nil, fmt.Errorf("cue %s: %w", c, err)
	}

	total := sr.N(shape.duration)
	shaped := newRamp(beep.Take(total, src), total, sr.N(shape.attack), sr.N(shape.release))
	return newVolume(shaped, volume), nil
}
