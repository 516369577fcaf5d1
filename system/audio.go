package system

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct audio device access
type AudioSystem struct {
	world *engine.World

	enabled bool
}

// NewAudioSystem creates an audio system reading the player from world resources
// A nil player drops every request
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AudioSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityUI
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventSoundRequest,
		event.EventBallServed,
	}
}

// HandleEvent processes sound request events
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	player := s.player()
	if player == nil {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			player.PlayOnce(payload.SoundType, payload.Volume)
		}
	case event.EventBallServed:
		player.PlayOnce(core.SoundServe, parameter.ServeCueVolume)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}

func (s *AudioSystem) player() engine.AudioPlayer {
	if s.world.Resources.Audio == nil {
		return nil
	}
	return s.world.Resources.Audio.Player
}
