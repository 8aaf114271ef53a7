// Package speaker plays audio cues on the system sound device. It is kept
// apart from package audio so only local play links the device backend.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	bspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/colordash/internal/audio"
)

// bufferLen is the device buffer, traded against cue latency.
const bufferLen = 50 * time.Millisecond

// Player mixes cues into the system speaker. It implements audio.Sink.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

var _ audio.Sink = (*Player)(nil)

// New creates a player at the given volume (0 to 1). Call Init before
// the first Play.
func New(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := bspeaker.Init(audio.SampleRate, audio.SampleRate.N(bufferLen)); err != nil {
		return fmt.Errorf("speaker: cannot open device: %w", err)
	}
	bspeaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue. Overlapping cues are mixed. No-op before Init.
func (p *Player) Play(c audio.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := audio.CueStreamer(c, audio.SampleRate, p.volume)
	if s == nil {
		return
	}

	bspeaker.Lock()
	p.mixer.Add(s)
	bspeaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	bspeaker.Clear()
	bspeaker.Close()
	p.initialized = false
}
