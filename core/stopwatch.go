package core

import "time"

// StopwatchState is the run state of a Stopwatch
type StopwatchState uint8

const (
	// StopwatchWaiting has never started or was reset; Elapsed is zero
	StopwatchWaiting StopwatchState = iota
	// StopwatchRunning accumulates ticked time
	StopwatchRunning
	// StopwatchEnded keeps its elapsed time frozen until started again
	StopwatchEnded
)

// Stopwatch measures game time fed to it through Tick
// Value type: copy-in, copy-out through component stores
type Stopwatch struct {
	State   StopwatchState
	elapsed time.Duration
}

// Elapsed returns accumulated time, zero while waiting
func (sw Stopwatch) Elapsed() time.Duration {
	if sw.State == StopwatchWaiting {
		return 0
	}
	return sw.elapsed
}

// IsRunning reports whether ticks currently accumulate
func (sw Stopwatch) IsRunning() bool {
	return sw.State == StopwatchRunning
}

// Tick advances a running stopwatch by dt
func (sw *Stopwatch) Tick(dt time.Duration) {
	if sw.State != StopwatchRunning || dt <= 0 {
		return
	}
	sw.elapsed += dt
}

// Start runs the stopwatch, continuing from a stopped value
func (sw *Stopwatch) Start() {
	switch sw.State {
	case StopwatchWaiting:
		sw.Restart()
	case StopwatchEnded:
		sw.State = StopwatchRunning
	}
}

// Stop freezes the elapsed time
func (sw *Stopwatch) Stop() {
	if sw.State == StopwatchRunning {
		sw.State = StopwatchEnded
	}
}

// Reset zeroes and stops the stopwatch
func (sw *Stopwatch) Reset() {
	sw.State = StopwatchWaiting
	sw.elapsed = 0
}

// Restart zeroes the stopwatch and keeps it running
func (sw *Stopwatch) Restart() {
	sw.State = StopwatchRunning
	sw.elapsed = 0
}
