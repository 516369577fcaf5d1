package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
)

// lifecycleStore is the type-erased view World uses to destroy entities and clear stores
type lifecycleStore interface {
	RemoveComponent(e core.Entity)
	ClearAllComponent()
}

// ComponentStore provides cached pointers to typed component stores
// Every ball entity carries all three components
type ComponentStore struct {
	Ball     *Store[component.BallComponent]
	Position *Store[component.PositionComponent]
	Serve    *Store[component.ServeComponent]

	all []lifecycleStore
}

// newComponentStore creates every store and registers it for lifecycle operations
func newComponentStore() ComponentStore {
	cs := ComponentStore{
		Ball:     NewStore[component.BallComponent](),
		Position: NewStore[component.PositionComponent](),
		Serve:    NewStore[component.ServeComponent](),
	}
	cs.all = []lifecycleStore{cs.Ball, cs.Position, cs.Serve}
	return cs
}
