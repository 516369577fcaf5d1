package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

// BallSpec describes a ball to spawn
type BallSpec struct {
	X, Y    float64
	Radius  float64
	ServeTo core.Side

	// Running starts the serve stopwatch so the ball is served after the delay
	Running bool
}

// SpawnBall creates a stationary ball entity with position and serve state
func (w *World) SpawnBall(spec BallSpec) core.Entity {
	e := w.CreateEntity()

	w.Components.Position.SetComponent(e, component.PositionComponent{X: spec.X, Y: spec.Y})
	w.Components.Ball.SetComponent(e, component.BallComponent{Radius: spec.Radius})

	serve := component.ServeComponent{ServeTo: spec.ServeTo, Phase: component.ServeIdle}
	if spec.Running {
		serve.Stopwatch.Restart()
	}
	w.Components.Serve.SetComponent(e, serve)

	return e
}

// ResetPosition returns the re-serve point for a ball of radius r: centered, one diameter above the floor
func (w *World) ResetPosition(r float64) component.PositionComponent {
	return component.PositionComponent{X: w.Resources.Arena.Width / 2, Y: 2 * r}
}
