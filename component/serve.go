package component

import "github.com/lixenwraith/vi-pong/core"

// ServePhase is the serve scheduler state of a ball
type ServePhase uint8

const (
	// ServeIdle ball is stationary and waits for the serve delay
	ServeIdle ServePhase = iota
	// ServeInPlay ball moves and is watched for boundary crossings
	ServeInPlay
)

// String returns phase name
func (p ServePhase) String() string {
	if p == ServeInPlay {
		return "in_play"
	}
	return "idle"
}

// ServeComponent tracks time since the last reset and the side the next serve goes to
type ServeComponent struct {
	Stopwatch core.Stopwatch
	ServeTo   core.Side
	Phase     ServePhase
}
