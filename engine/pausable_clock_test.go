package engine

import (
	"sync"
	"testing"
	"time"
)

func newMockPausable() (*PausableClock, *MockTimeProvider, time.Time) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	return NewPausableClockFrom(mock), mock, start
}

func TestPausableClockFreezes(t *testing.T) {
	pc, mock, start := newMockPausable()

	mock.Advance(time.Second)
	if got := pc.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Expected clock to follow source while running, got %v", got)
	}

	pc.Pause()
	if !pc.IsPaused() {
		t.Fatal("Expected paused")
	}
	mock.Advance(5 * time.Second)
	if got := pc.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Expected frozen time while paused, got %v", got)
	}
	if got := pc.GetTotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected active pause counted, got %v", got)
	}

	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s elapsed excluding pause, got %v", got)
	}
	if got := pc.RealTime(); !got.Equal(start.Add(7 * time.Second)) {
		t.Errorf("Expected real time unaffected by pause, got %v", got)
	}
}

func TestPausableClockIdempotent(t *testing.T) {
	pc, mock, _ := newMockPausable()

	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	if got := pc.GetTotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected second Pause ignored, got total pause %v", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc, mock, _ := newMockPausable()

	if !pc.Toggle() {
		t.Error("Expected first toggle to pause")
	}
	mock.Advance(time.Second)
	if pc.Toggle() {
		t.Error("Expected second toggle to resume")
	}
	if got := pc.GetTotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s paused, got %v", got)
	}
}

func TestPausableClockConcurrentToggle(t *testing.T) {
	pc := NewPausableClock()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pc.Toggle()
				_ = pc.Now()
			}
		}()
	}
	wg.Wait()

	// 800 toggles leave the clock running
	if pc.IsPaused() {
		t.Error("Expected even number of toggles to leave clock running")
	}
	if pc.GetTotalPauseDuration() < 0 {
		t.Error("Expected non-negative pause total")
	}
}
