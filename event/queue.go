package event

import (
	"sync"

	"github.com/lixenwraith/vi-pong/parameter"
)

// EventQueue is a multi-producer FIFO of game events drained once per dispatch
// The buffer grows as needed; no event is dropped regardless of how many balls emit in one tick
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueCapacity),
	}
}

// Push appends ev; safe from any goroutine
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.pending = append(eq.pending, ev)
	eq.mu.Unlock()
}

// Consume appends every pending event to dst in FIFO order and returns it
func (eq *EventQueue) Consume(dst []GameEvent) []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	if len(eq.pending) == 0 {
		return dst
	}
	dst = append(dst, eq.pending...)
	// Drop payload references so consumed events can be collected
	clear(eq.pending)
	eq.pending = eq.pending[:0]
	return dst
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}
