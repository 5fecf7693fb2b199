package engine

import (
	"context"
	"sync"
	"time"

	"github.com/lixenwraith/tween/curve"
)

// Animator converts wall-clock time into curve-shaped progress delivered once per tick
//
// Active animations and the frame clock subscription are the only shared state.
// Callbacks never run while the active set lock is held, so Animate and Cancel
// may be called from inside any onProgress or onComplete.
type Animator struct {
	clock FrameClock
	time  TimeProvider

	mu         sync.Mutex
	active     []*animation
	nextID     uint64
	subscribed bool

	// Serializes tick processing when more than one tick source overlaps
	tickMu sync.Mutex
}

// NewAnimator creates an animator driven by clock and sampling timeProvider
// nil arguments fall back to a DefaultFPS ticker and the monotonic system clock
func NewAnimator(clock FrameClock, timeProvider TimeProvider) *Animator {
	if clock == nil {
		clock = NewTickerClockFPS(DefaultFPS)
	}
	if timeProvider == nil {
		timeProvider = NewMonotonicTimeProvider()
	}
	return &Animator{
		clock: clock,
		time:  timeProvider,
	}
}

// Animate starts an animation and returns its cancellation handle
//
// onProgress receives c(normalizedTime) once per tick; onComplete runs exactly once
// after the final onProgress with normalized time 1. Either callback may be nil.
// A non-positive duration delivers onProgress(c(1)) and onComplete synchronously
// before Animate returns, without touching the frame clock.
func (a *Animator) Animate(duration time.Duration, c curve.Curve, onProgress func(float64), onComplete func()) *Handle {
	anim := newAnimation(duration, c, onProgress, onComplete)

	if duration <= 0 {
		a.mu.Lock()
		a.nextID++
		anim.id = a.nextID
		a.mu.Unlock()

		h := &Handle{anim: anim, owner: a}
		anim.deliver(anim.curve(1))
		if anim.state.CompareAndSwap(int32(Running), int32(Completed)) {
			anim.complete()
			anim.finish()
		}
		return h
	}

	anim.start = a.time.Now()

	a.mu.Lock()
	a.nextID++
	anim.id = a.nextID
	a.active = append(a.active, anim)
	if !a.subscribed {
		a.subscribed = true
		a.clock.Start(a.tick)
	}
	a.mu.Unlock()

	return &Handle{anim: anim, owner: a}
}

// AnimateContext is Animate with cancellation bound to ctx
// A context that is already done yields a cancelled handle and no callbacks
func (a *Animator) AnimateContext(ctx context.Context, duration time.Duration, c curve.Curve, onProgress func(float64), onComplete func()) *Handle {
	if ctx.Err() != nil {
		anim := newAnimation(duration, c, onProgress, onComplete)
		anim.state.Store(int32(Cancelled))
		anim.finish()
		return &Handle{anim: anim, owner: a}
	}

	h := a.Animate(duration, c, onProgress, onComplete)
	if ctx.Done() == nil || h.State() != Running {
		return h
	}

	stop := context.AfterFunc(ctx, h.Cancel)
	go func() {
		<-h.Done()
		stop()
	}()
	return h
}

// CancelAll cancels every active animation
func (a *Animator) CancelAll() {
	a.mu.Lock()
	snapshot := make([]*animation, len(a.active))
	copy(snapshot, a.active)
	a.mu.Unlock()

	for _, anim := range snapshot {
		a.cancel(anim)
	}
}

// Active returns the number of running animations
func (a *Animator) Active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.active)
}

// Subscribed reports whether the animator currently holds the frame clock
func (a *Animator) Subscribed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.subscribed
}

// tick processes one frame for every animation active at its start
// Animations started during the tick begin on the next one
func (a *Animator) tick() {
	a.tickMu.Lock()
	defer a.tickMu.Unlock()

	now := a.time.Now()

	a.mu.Lock()
	snapshot := make([]*animation, len(a.active))
	copy(snapshot, a.active)
	a.mu.Unlock()

	for _, anim := range snapshot {
		// Cancelled earlier in this tick, possibly by another animation's callback
		if anim.State() != Running {
			continue
		}

		nt := anim.advance(now)
		anim.deliver(anim.curve(nt))

		if nt < 1 {
			continue
		}
		// onProgress may have cancelled it
		if anim.state.CompareAndSwap(int32(Running), int32(Completed)) {
			a.remove(anim)
			anim.complete()
			anim.finish()
		}
	}
}

// cancel moves a running animation to Cancelled and drops it from the active set
func (a *Animator) cancel(anim *animation) {
	if !anim.state.CompareAndSwap(int32(Running), int32(Cancelled)) {
		return
	}
	anim.finish()
	a.remove(anim)
}

// remove deletes anim from the active set, releasing the clock when empty
func (a *Animator) remove(anim *animation) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, other := range a.active {
		if other == anim {
			copy(a.active[i:], a.active[i+1:])
			a.active[len(a.active)-1] = nil
			a.active = a.active[:len(a.active)-1]
			break
		}
	}

	if len(a.active) == 0 && a.subscribed {
		a.subscribed = false
		a.clock.Stop()
	}
}
