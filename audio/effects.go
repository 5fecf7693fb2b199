package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-frequency wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		val := waveValue(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		// Keep phase in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveValue(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release ramps over a total length of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := envelopeGain(e.position, e.attackSamples, e.releaseSamples, e.totalSamples)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// envelopeGain is the attack/release gain at sample pos
func envelopeGain(pos, attack, release, total int) float64 {
	vol := 1.0
	if attack > 0 && pos < attack {
		vol = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		r := float64(total-pos) / float64(release)
		if r < vol {
			vol = r
		}
	}
	if vol < 0 {
		vol = 0
	}
	return vol
}

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ChimeKind selects the two-note chime played at phase boundaries
type ChimeKind int

const (
	// ChimeOut rises, played when motion leaves the rest position
	ChimeOut ChimeKind = iota
	// ChimeBack falls, played when motion returns to rest
	ChimeBack
)

// CreateChime builds a short two-note sine chime at linear gain vol
func CreateChime(kind ChimeKind, rate beep.SampleRate, vol float64) beep.Streamer {
	lo, hi := chimeLowHz, chimeHighHz
	if kind == ChimeBack {
		lo, hi = hi, lo
	}

	n1 := NewOscillator(lo, chimeNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, chimeNoteDuration, chimeAttack, chimeRelease, rate)

	n2 := NewOscillator(hi, chimeNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, chimeNoteDuration, chimeAttack, chimeRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*chimeAmplitude)
}
