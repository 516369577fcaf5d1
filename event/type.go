package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameReset clears scores and recenters every ball
	// Trigger: host match reset | Consumer: WinnerSystem, AudioSystem | Payload: nil
	EventGameReset EventType = iota

	// EventSoundRequest requests one-shot audio playback
	// Trigger: WinnerSystem | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventPointScored signals a boundary crossing after the reset was applied
	// Trigger: WinnerSystem | Consumer: TelemetrySystem | Payload: *PointScoredPayload
	EventPointScored

	// EventBallServed signals a stationary ball was launched
	// Trigger: WinnerSystem | Consumer: TelemetrySystem, AudioSystem | Payload: *BallServedPayload
	EventBallServed
)

var eventNames = map[EventType]string{
	EventGameReset:    "GameReset",
	EventSoundRequest: "SoundRequest",
	EventPointScored:  "PointScored",
	EventBallServed:   "BallServed",
}

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a queued event stamped with the frame it was pushed on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
