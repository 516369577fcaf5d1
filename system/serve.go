package system

import (
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

// ServeReady reports whether a waiting ball's stopwatch has reached the serve delay
// A stopped or reset stopwatch reads zero and is never ready for a positive delay
func ServeReady(serve *component.ServeComponent, delay time.Duration) bool {
	if serve.Phase != component.ServeIdle || !serve.Stopwatch.IsRunning() {
		return false
	}
	return serve.Stopwatch.Elapsed() >= delay
}

// Launch sets the serve velocity toward ServeTo and stops the serve stopwatch
// Serving left negates the horizontal component; vertical speed is unchanged
func Launch(ball *component.BallComponent, serve *component.ServeComponent, vx, vy float64) {
	if serve.ServeTo == core.SideLeft {
		vx = -vx
	}
	ball.VelocityX = vx
	ball.VelocityY = vy

	serve.Stopwatch.Reset()
	serve.Phase = component.ServeInPlay
}

// Rearm stops the ball and restarts the serve countdown toward side
func Rearm(ball *component.BallComponent, serve *component.ServeComponent, side core.Side) {
	ball.VelocityX = 0
	ball.VelocityY = 0

	serve.Stopwatch.Restart()
	serve.ServeTo = side
	serve.Phase = component.ServeIdle
}
