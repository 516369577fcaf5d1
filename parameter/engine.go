package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick's delta after a stall so balls do not tunnel
	MaxTickDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueCapacity is the initial capacity of the event queue; it grows past this on demand
	EventQueueCapacity = 256
)
