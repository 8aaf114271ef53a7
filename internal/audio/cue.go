// Package audio plays short synthesized cues for game events.
package audio

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CuePass
	CueFail
	CuePowerUp
	CueExpire
)

// Cues lists every cue.
var Cues = [...]Cue{CueStart, CuePass, CueFail, CuePowerUp, CueExpire}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CuePass:
		return "pass"
	case CueFail:
		return "fail"
	case CuePowerUp:
		return "powerup"
	case CueExpire:
		return "expire"
	default:
		return "unknown"
	}
}

// Sink receives cues. The TUI plays through a Sink so sessions without
// audio can pass Nop.
type Sink interface {
	Play(Cue)
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
