package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/lixenwraith/tween/audio"
	"github.com/lixenwraith/tween/config"
	"github.com/lixenwraith/tween/core"
	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/engine"
	"github.com/lixenwraith/tween/phase"
	"github.com/lixenwraith/tween/render"
	"github.com/lixenwraith/tween/vmath"
)

// demo owns the animation stack and the interactive state around it
// Frames arrive on the clock goroutine; input and drawing run on the main loop
type demo struct {
	screen tcell.Screen
	log    logxi.Logger
	sound  *audio.SoundManager
	view   *render.DemoView

	clock    *engine.TickerClock
	time     *engine.PausableClock
	animator *engine.Animator
	cycle    *phase.Cycle

	// Picker and graph transitions run on wall time so they still move while the demo is paused
	ui *engine.Animator

	entries  []curve.Entry
	interval time.Duration

	mu       sync.Mutex
	frame    phase.Frame
	entryIdx int
	durIdx   int
	picker   bool // accepting picker input
	selected int
	soundOn  bool

	pickerShown bool // drawn, including while sliding out
	pickerSlide float64
	graphFade   float64
	pickerGen   uint64
	pickerAnim  *engine.Handle
}

// graphHiddenFade dims the graph to 5% while the picker covers it
const graphHiddenFade = 0.95

// pickerCurve returns c for picker transitions when it lands on 1, otherwise EaseInOut
// Curves ending elsewhere, like shake, would leave the picker off its rest position
func pickerCurve(c curve.Curve) curve.Curve {
	if c == nil || c.End() != 1 {
		return curve.EaseInOut
	}
	return c
}

func newDemo(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager, log logxi.Logger) *demo {
	d := &demo{
		screen:   screen,
		log:      log,
		sound:    sound,
		view:     render.NewDemoView(),
		entries:  curve.Catalog.Entries(),
		interval: frameInterval(cfg.Demo.FPS),
		soundOn:  cfg.Demo.Sound,
	}

	d.entryIdx = indexOfCurve(d.entries, cfg.Demo.Curve)
	d.durIdx = nearestDuration(cfg.Demo.Duration.Duration)

	d.clock = engine.NewTickerClock(d.interval)
	d.clock.SetPanicHandler(core.HandleCrash)
	d.time = engine.NewPausableClock()
	d.animator = engine.NewAnimator(d.clock, d.time)

	uiClock := engine.NewTickerClock(d.interval)
	uiClock.SetPanicHandler(core.HandleCrash)
	d.ui = engine.NewAnimator(uiClock, nil)

	entry := d.entries[d.entryIdx]
	d.cycle = phase.NewCycle(d.animator, phase.Settings{
		Name:     entry.Name,
		Curve:    entry.Curve,
		Duration: cfg.Demo.Duration.Duration,
		Rest:     cfg.Demo.Rest.Duration,
	}, d.onFrame)
	d.cycle.SetLogger(log)
	d.cycle.OnPhase(d.onPhase)
	return d
}

// run blocks until the user quits
func (d *demo) run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	// Input polling runs on its own goroutine with crash recovery
	core.Go(func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	d.cycle.Start()
	defer d.cycle.Stop()
	defer d.animator.CancelAll()
	defer d.ui.CancelAll()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case ev := <-events:
			if !d.handleEvent(ev) {
				d.log.Info("quit")
				return
			}
			d.draw()
		case <-ticker.C:
			d.draw()
		}
	}
}

func (d *demo) onFrame(f phase.Frame) {
	d.mu.Lock()
	d.frame = f
	d.mu.Unlock()
}

// onPhase plays the phase chime and, while sound is on, the curve's tone sweep
func (d *demo) onPhase(p phase.Phase, s phase.Settings) {
	d.mu.Lock()
	on := d.soundOn
	d.mu.Unlock()
	if !on {
		return
	}

	if p.IsReverting() {
		d.sound.PlayChime(audio.ChimeBack)
	} else {
		d.sound.PlayChime(audio.ChimeOut)
	}
	d.sound.PlayCurve(s.Curve, s.Duration)
}

func (d *demo) status() render.Status {
	pending := d.cycle.Settings()

	d.mu.Lock()
	defer d.mu.Unlock()
	return render.Status{
		Entry:    d.entries[d.entryIdx],
		Duration: pending.Duration,
		Paused:   d.time.IsPaused(),
		Sound:    d.soundOn,
		Picker:   d.pickerShown,
		Selected: d.selected,
		Entries:  d.entries,

		PickerSlide: d.pickerSlide,
		GraphFade:   d.graphFade,
	}
}

func (d *demo) draw() {
	st := d.status()
	d.mu.Lock()
	f := d.frame
	d.mu.Unlock()

	d.view.Draw(d.screen, f, st)
	d.screen.Show()
}

// handleEvent applies one terminal event, returning false to quit
func (d *demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		return true
	case *tcell.EventKey:
		return d.handleKey(ev)
	}
	return true
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	d.mu.Lock()
	picker := d.picker
	d.mu.Unlock()

	if picker {
		return d.handlePickerKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		d.stepCurve(-1)
	case tcell.KeyRight:
		d.stepCurve(1)
	case tcell.KeyUp:
		d.stepDuration(1)
	case tcell.KeyDown:
		d.stepDuration(-1)
	case tcell.KeyEnter:
		d.setPicker(true)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			d.togglePause()
		case 's', 'S':
			d.toggleSound()
		}
	}
	return true
}

func (d *demo) handlePickerKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		d.setPicker(false)
	case tcell.KeyUp:
		d.mu.Lock()
		d.selected = (d.selected - 1 + len(d.entries)) % len(d.entries)
		d.mu.Unlock()
	case tcell.KeyDown:
		d.mu.Lock()
		d.selected = (d.selected + 1) % len(d.entries)
		d.mu.Unlock()
	case tcell.KeyEnter:
		d.mu.Lock()
		d.entryIdx = d.selected
		d.applyCurveLocked()
		d.mu.Unlock()
		d.setPicker(false)
	}
	return true
}

// setPicker slides the picker in or out and fades the graph the other way
// Both run for half the phase duration on the phase curve, or EaseInOut when it does not end at 1.
// A transition interrupted midway starts the next one from the current position.
func (d *demo) setPicker(open bool) {
	settings := d.cycle.Settings()
	duration := settings.Duration / 2
	c := pickerCurve(settings.Curve)

	d.mu.Lock()
	if d.picker == open {
		d.mu.Unlock()
		return
	}
	d.picker = open
	wasShown := d.pickerShown
	if open {
		d.pickerShown = true
		d.selected = d.entryIdx
	}
	d.pickerGen++
	gen := d.pickerGen
	fromSlide, toSlide := d.pickerSlide, 1.0
	fromFade, toFade := d.graphFade, 0.0
	if open {
		if !wasShown {
			fromSlide = 1
		}
		toSlide, toFade = 0, graphHiddenFade
	}
	d.pickerSlide, d.graphFade = fromSlide, fromFade
	prev := d.pickerAnim
	d.pickerAnim = nil
	d.mu.Unlock()

	prev.Cancel()

	h := d.ui.Animate(duration, c,
		func(progress float64) {
			d.mu.Lock()
			defer d.mu.Unlock()
			if gen != d.pickerGen {
				return
			}
			d.pickerSlide = vmath.Lerp(fromSlide, toSlide, progress)
			d.graphFade = vmath.Lerp(fromFade, toFade, progress)
		},
		func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if gen != d.pickerGen {
				return
			}
			d.pickerSlide, d.graphFade = toSlide, toFade
			if !open {
				d.pickerShown = false
			}
			d.pickerAnim = nil
		},
	)

	d.mu.Lock()
	if gen == d.pickerGen && h.State() == engine.Running {
		d.pickerAnim = h
	}
	d.mu.Unlock()
	d.log.Debug("picker transition", "open", open, "duration", duration.String())
}

func (d *demo) stepCurve(delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entryIdx = (d.entryIdx + delta + len(d.entries)) % len(d.entries)
	d.applyCurveLocked()
}

func (d *demo) applyCurveLocked() {
	e := d.entries[d.entryIdx]
	d.cycle.SetCurve(e.Name, e.Curve)
	d.log.Debug("curve selected", "curve", e.Name)
}

func (d *demo) stepDuration(delta int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := d.durIdx + delta
	if next < 0 || next >= len(config.DemoDurations) {
		return
	}
	d.durIdx = next
	d.cycle.SetDuration(config.DemoDurations[next])
	d.log.Debug("duration selected", "duration", config.DemoDurations[next].String())
}

// togglePause freezes animation time; the sweep is cut since audio cannot pause in step
func (d *demo) togglePause() {
	if d.time.Toggle() {
		d.sound.StopCurve()
		d.log.Debug("paused")
		return
	}
	d.log.Debug("resumed")
}

func (d *demo) toggleSound() {
	d.mu.Lock()
	d.soundOn = !d.soundOn
	on := d.soundOn
	d.mu.Unlock()

	if !on {
		d.sound.StopCurve()
	}
}

func indexOfCurve(entries []curve.Entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return 0
}

// nearestDuration returns the DemoDurations index closest to d
func nearestDuration(d time.Duration) int {
	best := 0
	for i, v := range config.DemoDurations {
		if absDuration(v-d) < absDuration(config.DemoDurations[best]-d) {
			best = i
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
