package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewMockTimeProvider(start)
	pc := NewPausableClock(src)

	src.Advance(time.Second)
	if got := pc.Now().Sub(start); got != time.Second {
		t.Fatalf("Expected 1s game time, got %v", got)
	}

	pc.Pause()
	src.Advance(5 * time.Second)
	if got := pc.Now().Sub(start); got != time.Second {
		t.Errorf("Game time must freeze while paused, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s ongoing pause, got %v", got)
	}

	pc.Resume()
	src.Advance(time.Second)
	if got := pc.Now().Sub(start); got != 2*time.Second {
		t.Errorf("Expected 2s game time after resume, got %v", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(time.Unix(0, 0)))

	if !pc.TogglePause() || !pc.IsPaused() {
		t.Error("First toggle should pause")
	}
	if pc.TogglePause() || pc.IsPaused() {
		t.Error("Second toggle should resume")
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)

	if got := mock.Now(); !got.Equal(start.Add(90 * time.Minute)) {
		t.Errorf("Expected %v, got %v", start.Add(90*time.Minute), got)
	}
}
