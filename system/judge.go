package system

import "github.com/lixenwraith/vi-pong/core"

// Judge reports whether a ball at x with radius r has crossed a boundary of an arena of width w
// hit is the side whose boundary was crossed; the opponent of hit scores and the next serve goes to hit
// hit is meaningless when scored is false
// The left edge is checked first so a degenerate arena (w <= 2r) always awards to the right
// NaN coordinates never compare true and never score
func Judge(x, r, w float64) (hit core.Side, scored bool) {
	if x <= r {
		return core.SideLeft, true
	}
	if x >= w-r {
		return core.SideRight, true
	}
	return hit, false
}
