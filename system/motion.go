package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// MotionSystem integrates ball velocity and reflects balls off the floor and ceiling
// Horizontal edges are left to WinnerSystem
type MotionSystem struct {
	engine.SystemBase

	enabled bool
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(world *engine.World) engine.System {
	s := &MotionSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *MotionSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *MotionSystem) Name() string {
	return "motion"
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// EventTypes returns the event types MotionSystem handles
func (s *MotionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

// HandleEvent processes reset events
func (s *MotionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update moves every ball by velocity*dt
func (s *MotionSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.Resource.Time.DeltaTime.Seconds()
	if dt <= 0 {
		return
	}
	height := s.Resource.Arena.Height

	for _, entity := range s.Component.Ball.AllEntity() {
		ball, ok := s.Component.Ball.GetComponent(entity)
		if !ok || ball.IsStationary() {
			continue
		}
		pos, ok := s.Component.Position.GetComponent(entity)
		if !ok {
			continue
		}

		pos.X += ball.VelocityX * dt
		pos.Y += ball.VelocityY * dt

		// Reflect only when moving into the wall so a ball never sticks
		if pos.Y <= ball.Radius && ball.VelocityY < 0 {
			ball.VelocityY = -ball.VelocityY
		} else if pos.Y >= height-ball.Radius && ball.VelocityY > 0 {
			ball.VelocityY = -ball.VelocityY
		}

		s.Component.Ball.SetComponent(entity, ball)
		s.Component.Position.SetComponent(entity, pos)
	}
}
