package parameter

import "time"

// Arena
const (
	// ArenaWidth is the horizontal extent, left edge at x=0 and right edge at x=ArenaWidth
	ArenaWidth = 100.0

	// ArenaHeight is the vertical extent, floor at y=0
	ArenaHeight = 100.0
)

// Ball
const (
	BallRadius = 2.0

	// BallVelocityX is the serve speed toward the right; serves to the left negate it
	BallVelocityX = 75.0

	// BallVelocityY is the vertical serve speed, never flipped by the serve side
	BallVelocityY = 50.0
)

// Serve
const (
	// ServeDelay is the wait between a reset and the automatic serve
	ServeDelay = 2 * time.Second

	// ScoreCueVolume is the playback volume of the score cue
	ScoreCueVolume = 1.0

	// ServeCueVolume is the playback volume of the launch tick
	ServeCueVolume = 0.6
)
