package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	logxi "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tween/curve"
)

// SoundManager plays curve sweeps and phase chimes through the speaker
// Every method is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	sweep       *beep.Ctrl
	volume      float64
	initialized bool
	log         logxi.Logger
}

// NewSoundManager creates an uninitialized sound manager at full volume
func NewSoundManager(log logxi.Logger) *SoundManager {
	if log == nil {
		log = logxi.NullLog
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		master: newVolume(mixer, 1),
		volume: 1,
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}

	speaker.Play(sm.master)
	sm.initialized = true
	sm.log.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
// beep has no speaker Close, clearing the mixer leaves it silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	retire(sm.sweep)
	sm.sweep = nil
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
	sm.log.Debug("audio cleaned up")
}

// SetVolume sets master gain in [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volume = v
	next := newVolume(sm.mixer, v)

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Volume = next.Volume
	sm.master.Silent = next.Silent
}

// Volume returns master gain
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// PlayCurve sweeps a tone shaped by c over d, replacing any sweep in progress
func (sm *SoundManager) PlayCurve(c curve.Curve, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || d <= 0 {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewCurveTone(sampleRate, c, d)}

	speaker.Lock()
	retire(sm.sweep)
	sm.sweep = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopCurve silences the current sweep
func (sm *SoundManager) StopCurve() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.sweep == nil {
		return
	}
	speaker.Lock()
	retire(sm.sweep)
	sm.sweep = nil
	speaker.Unlock()
}

// retire silences ctrl and detaches its streamer so the mixer drops it on the next pass
// A paused Ctrl alone streams silence indefinitely; callers hold speaker.Lock
func retire(ctrl *beep.Ctrl) {
	if ctrl == nil {
		return
	}
	ctrl.Paused = true
	ctrl.Streamer = nil
}

// PlayChime plays a short two-note chime
func (sm *SoundManager) PlayChime(kind ChimeKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(CreateChime(kind, sampleRate, 1))
	speaker.Unlock()
}
