package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock is a TimeProvider that can be frozen
// Animations driven by it hold their progress while paused and resume where they left off
type PausableClock struct {
	mu sync.RWMutex

	// Base time tracking
	realStartTime time.Time // When clock was created (source time)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (source time)
	totalPausedTime time.Duration // Cumulative pause duration

	source TimeProvider
}

// NewPausableClock creates a pausable clock over the system monotonic clock
func NewPausableClock() *PausableClock {
	return NewPausableClockFrom(NewMonotonicTimeProvider())
}

// NewPausableClockFrom creates a pausable clock over an arbitrary source
func NewPausableClockFrom(source TimeProvider) *PausableClock {
	return &PausableClock{
		realStartTime: source.Now(),
		source:        source,
	}
}

// Now returns current clock time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}

	// Clock elapsed = source elapsed - total paused time
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns the underlying source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops clock advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.source.Now()
	}
}

// Resume continues clock advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	if pc.isPaused.Load() {
		pc.totalPausedTime += now.Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.isPaused.Store(false)
		return false
	}
	pc.pauseStartTime = now
	pc.isPaused.Store(true)
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time including an active pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// Elapsed returns clock time since creation, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.realStartTime)
}
