package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/core"
)

// ScoreBoard holds the match score
// Written only by the ticking goroutine; atomics let metrics read it concurrently
type ScoreBoard struct {
	left  atomic.Uint64
	right atomic.Uint64
}

// Award adds one point to side and returns its new value
func (sb *ScoreBoard) Award(side core.Side) uint64 {
	if side == core.SideLeft {
		return sb.left.Add(1)
	}
	return sb.right.Add(1)
}

// Left returns the left side's score
func (sb *ScoreBoard) Left() uint64 { return sb.left.Load() }

// Right returns the right side's score
func (sb *ScoreBoard) Right() uint64 { return sb.right.Load() }

// Get returns the score of side
func (sb *ScoreBoard) Get(side core.Side) uint64 {
	if side == core.SideLeft {
		return sb.left.Load()
	}
	return sb.right.Load()
}

// Total returns the number of points played
func (sb *ScoreBoard) Total() uint64 {
	return sb.left.Load() + sb.right.Load()
}

// Reset zeroes both sides, only on a match reset
func (sb *ScoreBoard) Reset() {
	sb.left.Store(0)
	sb.right.Store(0)
}
