package event

import "github.com/lixenwraith/vi-pong/core"

// SoundRequestPayload contains the cue to play once
type SoundRequestPayload struct {
	SoundType core.SoundType
	Volume    float32
}

// PointScoredPayload carries the score state after a crossing
type PointScoredPayload struct {
	Entity  core.Entity
	Scorer  core.Side
	ServeTo core.Side
	Left    uint64
	Right   uint64
}

// BallServedPayload carries the launch velocity of a served ball
type BallServedPayload struct {
	Entity    core.Entity
	ServeTo   core.Side
	VelocityX float64
	VelocityY float64
}
