package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tween/curve"
)

// State is the lifecycle state of one animation
type State int32

const (
	Running State = iota
	Completed
	Cancelled
)

// String returns the lowercase state name
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// animation is owned by the Animator while running
// Only state is mutable from outside the tick; last is tick-private
type animation struct {
	id         uint64
	duration   time.Duration
	curve      curve.Curve
	start      time.Time
	onProgress func(float64)
	onComplete func()

	state atomic.Int32
	last  float64

	done     chan struct{}
	doneOnce sync.Once
}

func newAnimation(duration time.Duration, c curve.Curve, onProgress func(float64), onComplete func()) *animation {
	if c == nil {
		c = curve.Linear
	}
	return &animation{
		duration:   duration,
		curve:      c,
		onProgress: onProgress,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
}

// State returns the current lifecycle state
func (anim *animation) State() State {
	return State(anim.state.Load())
}

// advance returns normalized time for now, clamped to [0,1] and never below the
// previously delivered value
func (anim *animation) advance(now time.Time) float64 {
	nt := float64(now.Sub(anim.start)) / float64(anim.duration)
	if nt < 0 {
		nt = 0
	}
	if nt > 1 {
		nt = 1
	}
	if nt < anim.last {
		nt = anim.last
	}
	anim.last = nt
	return nt
}

func (anim *animation) deliver(progress float64) {
	if anim.onProgress != nil {
		anim.onProgress(progress)
	}
}

func (anim *animation) complete() {
	if anim.onComplete != nil {
		anim.onComplete()
	}
}

// finish releases waiters once the animation reaches a terminal state
func (anim *animation) finish() {
	anim.doneOnce.Do(func() {
		close(anim.done)
	})
}

// Handle is the caller's reference to an animation, used to cancel or await it
// The Animator keeps ownership; a Handle never extends an animation's life
type Handle struct {
	anim  *animation
	owner *Animator
}

// Cancel stops the animation; no callbacks fire for it once Cancel returns on the
// goroutine delivering ticks, and none after the next tick from any other goroutine.
// Idempotent and a no-op after completion.
func (h *Handle) Cancel() {
	if h == nil || h.anim == nil {
		return
	}
	h.owner.cancel(h.anim)
}

// State returns the animation's lifecycle state
func (h *Handle) State() State {
	return h.anim.State()
}

// ID returns the animator-unique animation identifier
func (h *Handle) ID() uint64 {
	return h.anim.id
}

// Duration returns the requested duration
func (h *Handle) Duration() time.Duration {
	return h.anim.duration
}

// Done is closed when the animation completes or is cancelled
func (h *Handle) Done() <-chan struct{} {
	return h.anim.done
}

// Wait blocks until the animation reaches a terminal state or ctx is done
// Returns the state observed and ctx.Err() if the wait was abandoned
func (h *Handle) Wait(ctx context.Context) (State, error) {
	select {
	case <-h.anim.done:
		return h.State(), nil
	case <-ctx.Done():
		return h.State(), ctx.Err()
	}
}
