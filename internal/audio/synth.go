package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// SampleRate is used for every cue.
	SampleRate = beep.SampleRate(44100)

	noteGap = 20 * time.Millisecond
	fadeLen = 5 * time.Millisecond
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueStart:   {{440, 80 * time.Millisecond}, {880, 80 * time.Millisecond}},
	CuePass:    {{660, 60 * time.Millisecond}},
	CueFail:    {{220, 150 * time.Millisecond}, {110, 250 * time.Millisecond}},
	CuePowerUp: {{523.25, 70 * time.Millisecond}, {659.25, 70 * time.Millisecond}, {783.99, 70 * time.Millisecond}},
	CueExpire:  {{783.99, 80 * time.Millisecond}, {523.25, 80 * time.Millisecond}},
}

// CueLength returns the number of samples a cue streams at rate.
func CueLength(c Cue, rate beep.SampleRate) int {
	notes := cueNotes[c]
	n := 0
	for i, nt := range notes {
		if i > 0 {
			n += rate.N(noteGap)
		}
		n += rate.N(nt.dur)
	}
	return n
}

// CueStreamer builds the finite streamer for a cue at the given volume
// (0 to 1). Returns nil for an unknown cue.
func CueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, 2*len(notes))
	for i, nt := range notes {
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(noteGap)))
		}
		tone, err := generators.SineTone(rate, nt.freq)
		if err != nil {
			// Frequency above Nyquist; keep timing with silence.
			parts = append(parts, beep.Silence(rate.N(nt.dur)))
			continue
		}
		n := rate.N(nt.dur)
		parts = append(parts, &fade{streamer: beep.Take(n, tone), total: n, edge: rate.N(fadeLen)})
	}

	return withVolume(beep.Seq(parts...), volume)
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// fade ramps a note in and out over edge samples to avoid clicks.
type fade struct {
	streamer beep.Streamer
	total    int
	edge     int
	pos      int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.edge > 0 {
			in := float64(f.pos) / float64(f.edge)
			out := float64(f.total-f.pos) / float64(f.edge)
			gain = math.Min(1, math.Min(in, out))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
