package core

import (
	"testing"
	"time"
)

func TestStopwatchWaitingIgnoresTicks(t *testing.T) {
	var sw Stopwatch
	sw.Tick(time.Second)

	if sw.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed while waiting, got %v", sw.Elapsed())
	}
	if sw.IsRunning() {
		t.Error("Zero-value stopwatch should not be running")
	}
}

func TestStopwatchRestartAccumulates(t *testing.T) {
	var sw Stopwatch
	sw.Restart()
	sw.Tick(500 * time.Millisecond)
	sw.Tick(700 * time.Millisecond)

	if got := sw.Elapsed(); got != 1200*time.Millisecond {
		t.Errorf("Expected 1.2s, got %v", got)
	}

	sw.Restart()
	if sw.Elapsed() != 0 || !sw.IsRunning() {
		t.Errorf("Restart should zero and keep running, got %v running=%v", sw.Elapsed(), sw.IsRunning())
	}
}

func TestStopwatchResetStops(t *testing.T) {
	var sw Stopwatch
	sw.Restart()
	sw.Tick(3 * time.Second)
	sw.Reset()
	sw.Tick(3 * time.Second)

	if sw.Elapsed() != 0 {
		t.Errorf("Reset stopwatch must stay at zero, got %v", sw.Elapsed())
	}
	if sw.State != StopwatchWaiting {
		t.Errorf("Expected waiting state, got %v", sw.State)
	}
}

func TestStopwatchStopStart(t *testing.T) {
	var sw Stopwatch
	sw.Start()
	sw.Tick(time.Second)
	sw.Stop()
	sw.Tick(time.Second)

	if sw.Elapsed() != time.Second {
		t.Errorf("Stopped stopwatch should freeze at 1s, got %v", sw.Elapsed())
	}

	sw.Start()
	sw.Tick(time.Second)
	if sw.Elapsed() != 2*time.Second {
		t.Errorf("Start after stop should continue, got %v", sw.Elapsed())
	}
}

func TestStopwatchNegativeTick(t *testing.T) {
	var sw Stopwatch
	sw.Restart()
	sw.Tick(-time.Second)
	if sw.Elapsed() != 0 {
		t.Errorf("Negative tick must be ignored, got %v", sw.Elapsed())
	}
}
