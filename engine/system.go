package engine

import "github.com/lixenwraith/vi-pong/event"

// System is an interface that all systems must implement
type System interface {
	// Init resets session state for a new match
	Init()

	// Name returns the system's registry name
	Name() string

	// Priority orders systems, lower values run first
	Priority() int

	// Update runs one tick, reading delta time from Resources.Time
	Update()
}

// EventHandler processes specific event types
// Systems implementing it are registered on the scheduler's router
type EventHandler interface {
	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType

	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev event.GameEvent)
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}
