package phase

import (
	"sync"
	"time"

	logxi "github.com/mgutz/logxi/v1"

	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/engine"
)

// DefaultRest is the pause between phases
const DefaultRest = 500 * time.Millisecond

// Settings parameterize one phase; changes take effect when the next phase begins
type Settings struct {
	Name     string
	Curve    curve.Curve
	Duration time.Duration
	Rest     time.Duration
}

// Cycle drives the four phases back to back on a shared Animator
// Each phase and each rest between phases is its own animation
type Cycle struct {
	animator *engine.Animator
	log      logxi.Logger
	onFrame  func(Frame)
	onPhase  func(Phase, Settings)

	mu       sync.Mutex
	pending  Settings
	current  Settings
	phase    Phase
	running  bool
	handle   *engine.Handle
	gen      uint64 // bumped by Start/Stop, stale callbacks compare against it
	step     uint64 // bumped per scheduled animation, guards handle bookkeeping
	phaseNum uint64
}

// NewCycle creates a stopped cycle; onFrame receives every phase frame and may be nil
func NewCycle(animator *engine.Animator, settings Settings, onFrame func(Frame)) *Cycle {
	return &Cycle{
		animator: animator,
		log:      logxi.NullLog,
		onFrame:  onFrame,
		pending:  normalize(settings),
		phase:    Forward,
	}
}

func normalize(s Settings) Settings {
	if s.Curve == nil {
		s.Curve = curve.Linear
	}
	if s.Duration < 0 {
		s.Duration = 0
	}
	if s.Rest < 0 {
		s.Rest = 0
	}
	return s
}

// SetLogger routes phase transitions to l
func (c *Cycle) SetLogger(l logxi.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l == nil {
		l = logxi.NullLog
	}
	c.log = l
}

// OnPhase registers a hook called as each phase begins, before its first frame
func (c *Cycle) OnPhase(fn func(Phase, Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPhase = fn
}

// Start begins the cycle at Forward; no-op while running
func (c *Cycle) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.gen++
	c.phase = Forward
	gen := c.gen
	c.mu.Unlock()

	c.begin(gen)
}

// Stop cancels the phase or rest in flight; no frames are delivered afterwards
// from the goroutine running ticks
func (c *Cycle) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.gen++
	h := c.handle
	c.handle = nil
	c.mu.Unlock()

	h.Cancel()
	c.log.Debug("cycle stopped")
}

// SetCurve replaces the curve used from the next phase on
func (c *Cycle) SetCurve(name string, cv curve.Curve) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cv == nil {
		cv = curve.Linear
	}
	c.pending.Name = name
	c.pending.Curve = cv
}

// SetDuration replaces the phase duration from the next phase on
func (c *Cycle) SetDuration(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.pending.Duration = d
}

// SetRest replaces the pause between phases from the next rest on
func (c *Cycle) SetRest(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.pending.Rest = d
}

// Settings returns the settings the next phase will use
func (c *Cycle) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Current returns the settings of the phase in flight
func (c *Cycle) Current() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Phase returns the current phase
func (c *Cycle) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Running reports whether the cycle is active
func (c *Cycle) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Phases returns how many phases have begun since creation
func (c *Cycle) Phases() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phaseNum
}

// begin snapshots pending settings and animates the current phase
func (c *Cycle) begin(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.current = c.pending
	c.phaseNum++
	c.step++
	step := c.step
	p := c.phase
	s := c.current
	log := c.log
	onPhase := c.onPhase
	c.mu.Unlock()

	log.Debug("phase begin", "phase", p.String(), "curve", s.Name, "duration", s.Duration.String())
	if onPhase != nil {
		onPhase(p, s)
	}

	end := s.Curve.End()
	h := c.animator.Animate(s.Duration, s.Curve,
		func(progress float64) {
			c.frame(gen, Frame{Phase: p, Progress: progress, T: p.Apply(progress, end)})
		},
		func() {
			c.rest(gen)
		},
	)
	c.track(gen, step, h)
}

// rest waits the pending rest duration, then advances to the next phase
// A zero rest still takes one tick so zero-length phases cannot recurse
func (c *Cycle) rest(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.step++
	step := c.step
	d := c.pending.Rest
	c.mu.Unlock()

	if d <= 0 {
		d = time.Nanosecond
	}
	h := c.animator.Animate(d, curve.Linear, nil, func() {
		c.advance(gen)
	})
	c.track(gen, step, h)
}

func (c *Cycle) advance(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.phase = c.phase.Next()
	c.mu.Unlock()

	c.begin(gen)
}

func (c *Cycle) frame(gen uint64, f Frame) {
	c.mu.Lock()
	live := gen == c.gen
	c.mu.Unlock()

	if live && c.onFrame != nil {
		c.onFrame(f)
	}
}

// track records h as the cancellable animation unless a later step replaced it
func (c *Cycle) track(gen, step uint64, h *engine.Handle) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		h.Cancel()
		return
	}
	if step == c.step {
		c.handle = h
	}
	c.mu.Unlock()
}
