package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/vmath"
)

const (
	sampleRate     = beep.SampleRate(48000)
	speakerBuffer  = 100 * time.Millisecond
	toneFreqMinHz  = 220.0
	toneFreqMaxHz  = 660.0
	toneFreqLowHz  = 55.0 // clamp for curves undershooting 0
	toneFreqHighHz = 1760.0
	toneAmplitude  = 0.15
	toneFade       = 10 * time.Millisecond

	chimeLowHz        = 659.25 // E5
	chimeHighHz       = 987.77 // B5
	chimeNoteDuration = 90 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 60 * time.Millisecond
	chimeAmplitude    = 0.2
)

// CurveTone is a sine sweep whose pitch follows a curve over a fixed duration
// Curve value 0 maps to toneFreqMinHz and 1 to toneFreqMaxHz; values outside
// [0,1] extrapolate so overshoot is audible, clamped to a listenable band
type CurveTone struct {
	lut   *curve.LUT
	rate  beep.SampleRate
	total int
	fade  int
	pos   int
	phase float64
}

// NewCurveTone bakes c and prepares a sweep lasting d
func NewCurveTone(rate beep.SampleRate, c curve.Curve, d time.Duration) *CurveTone {
	if c == nil {
		c = curve.Linear
	}
	total := rate.N(d)
	fade := rate.N(toneFade)
	if fade > total/2 {
		fade = total / 2
	}
	return &CurveTone{
		lut:   curve.Bake(c, curve.DefaultLUTSize),
		rate:  rate,
		total: total,
		fade:  fade,
	}
}

// Len returns the tone length in samples
func (g *CurveTone) Len() int {
	return g.total
}

// FrequencyAt returns the pitch at normalized time t
func (g *CurveTone) FrequencyAt(t float64) float64 {
	return vmath.Clamp(vmath.Lerp(toneFreqMinHz, toneFreqMaxHz, g.lut.At(t)), toneFreqLowHz, toneFreqHighHz)
}

func (g *CurveTone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}

		t := 1.0
		if g.total > 1 {
			t = float64(g.pos) / float64(g.total-1)
		}
		freq := g.FrequencyAt(t)

		// Fade both ends to avoid clicks
		amp := toneAmplitude * envelopeGain(g.pos, g.fade, g.fade, g.total)
		sample := amp * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *CurveTone) Err() error {
	return nil
}
