package audio

import (
	"errors"

	"github.com/lixenwraith/ascii-motion/physics"
)

// Cue identifies a collision sound
type Cue int

const (
	CueReflect Cue = iota // Edge bounce
	CueStop               // Edge halt
	CueWrap               // Toroidal wrap
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueReflect:
		return "reflect"
	case CueStop:
		return "stop"
	case CueWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// CueFor maps a collision kind to its cue; CollisionNone has none
func CueFor(c physics.Collision) (Cue, bool) {
	switch c {
	case physics.CollisionReflect:
		return CueReflect, true
	case physics.CollisionStop:
		return CueStop, true
	case physics.CollisionWrap:
		return CueWrap, true
	default:
		return 0, false
	}
}

// Player plays collision cues without blocking the caller
type Player interface {
	Play(c Cue) bool
	Close()
}

// Sentinel errors
var (
	ErrUnknownCue = errors.New("unknown cue")
)
