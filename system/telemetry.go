package system

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// TelemetrySystem mirrors score and serve activity into the status registry
type TelemetrySystem struct {
	world *engine.World

	statLeft    *atomic.Int64
	statRight   *atomic.Int64
	statServes  *atomic.Int64
	statElapsed *status.AtomicFloat
	statLast    *status.AtomicString
}

// NewTelemetrySystem creates a telemetry system with cached metric pointers
func NewTelemetrySystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &TelemetrySystem{
		world:       world,
		statLeft:    reg.Ints.Get(status.KeyScoreLeft),
		statRight:   reg.Ints.Get(status.KeyScoreRight),
		statServes:  reg.Ints.Get(status.KeyServeCount),
		statElapsed: reg.Floats.Get(status.KeyServeElapsed),
		statLast:    reg.Strings.Get(status.KeyScoreLast),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TelemetrySystem) Init() {
	s.statLeft.Store(0)
	s.statRight.Store(0)
	s.statServes.Store(0)
	s.statElapsed.Set(0)
	s.statLast.Store("")
}

// Name returns system's name
func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

// Priority returns the system's priority
func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityDiagnostics
}

// EventTypes returns the event types TelemetrySystem handles
func (s *TelemetrySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventPointScored,
		event.EventBallServed,
	}
}

// HandleEvent records score and serve events
func (s *TelemetrySystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventPointScored:
		if payload, ok := ev.Payload.(*event.PointScoredPayload); ok {
			s.statLeft.Store(int64(payload.Left))
			s.statRight.Store(int64(payload.Right))
			s.statLast.Store(fmt.Sprintf("%s %d-%d", payload.Scorer, payload.Left, payload.Right))
		}
	case event.EventBallServed:
		s.statServes.Add(1)
	}
}

// Update publishes the longest pending serve wait in seconds
func (s *TelemetrySystem) Update() {
	var longest float64
	for _, entity := range s.world.Components.Serve.AllEntity() {
		serve, ok := s.world.Components.Serve.GetComponent(entity)
		if !ok {
			continue
		}
		if e := serve.Stopwatch.Elapsed().Seconds(); e > longest {
			longest = e
		}
	}
	s.statElapsed.Set(longest)
}
