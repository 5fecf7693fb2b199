package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameClock is a periodic tick source with a single subscriber
// Start subscribes tick; a second Start while running is ignored.
// Stop unsubscribes and must be safe to call from inside tick.
type FrameClock interface {
	Start(tick func())
	Stop()
}

// DefaultFPS is the tick rate used when none is configured
const DefaultFPS = 60

// TickerClock drives ticks from a goroutine at a fixed interval
// Deadlines advance by whole intervals so ticks do not drift with callback cost
type TickerClock struct {
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	onPanic func(any)

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
}

// NewTickerClock creates a ticker clock with the given interval
// Non-positive intervals fall back to DefaultFPS
func NewTickerClock(interval time.Duration) *TickerClock {
	if interval <= 0 {
		interval = time.Second / DefaultFPS
	}
	return &TickerClock{interval: interval}
}

// NewTickerClockFPS creates a ticker clock running at fps ticks per second
func NewTickerClockFPS(fps int) *TickerClock {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return NewTickerClock(time.Second / time.Duration(fps))
}

// Interval returns the tick interval
func (c *TickerClock) Interval() time.Duration {
	return c.interval
}

// Ticks returns the number of ticks delivered since creation
func (c *TickerClock) Ticks() uint64 {
	return c.tickCount.Load()
}

// Running reports whether a subscriber is attached
func (c *TickerClock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Start begins ticking, first tick one interval from now
func (c *TickerClock) Start(tick func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	go c.loop(stop, tick, c.onPanic)
}

// SetPanicHandler installs fn to receive panics raised by tick on the clock goroutine
// Takes effect on the next Start; without a handler the panic is not recovered
func (c *TickerClock) SetPanicHandler(fn func(any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPanic = fn
}

// Stop signals the loop to exit without waiting for it
// Waiting would deadlock when called from within tick
func (c *TickerClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// loop runs one subscription until stop is closed
func (c *TickerClock) loop(stop <-chan struct{}, tick func(), onPanic func(any)) {
	if onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				onPanic(r)
			}
		}()
	}

	nextDeadline := time.Now().Add(c.interval)

	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		// Stop may have raced with the timer
		select {
		case <-stop:
			return
		default:
		}

		tick()
		c.tickCount.Add(1)

		now := time.Now()
		nextDeadline = nextDeadline.Add(c.interval)

		// Fell too far behind, resync instead of bursting
		maxBehind := c.interval * 2
		if now.Sub(nextDeadline) > maxBehind {
			nextDeadline = now.Add(c.interval)
		}

		sleep := nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// ManualClock delivers ticks only when Tick is called
// Used by tests and by simulations that step time explicitly
type ManualClock struct {
	mu   sync.Mutex
	tick func()

	starts atomic.Int32
	stops  atomic.Int32
}

// NewManualClock creates an idle manual clock
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Start records the subscriber
func (c *ManualClock) Start(tick func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tick != nil {
		return
	}
	c.tick = tick
	c.starts.Add(1)
}

// Stop drops the subscriber
func (c *ManualClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tick != nil {
		c.tick = nil
		c.stops.Add(1)
	}
}

// Tick delivers one tick if subscribed, returns false when idle
func (c *ManualClock) Tick() bool {
	c.mu.Lock()
	tick := c.tick
	c.mu.Unlock()

	if tick == nil {
		return false
	}
	tick()
	return true
}

// Running reports whether a subscriber is attached
func (c *ManualClock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick != nil
}

// Subscriptions returns how many times the clock was started and stopped
func (c *ManualClock) Subscriptions() (starts, stops int) {
	return int(c.starts.Load()), int(c.stops.Load())
}
