package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// ClockScheduler drives a world on a fixed tick
// Each tick: dispatch pending events, run systems, dispatch events the systems emitted
type ClockScheduler struct {
	world  *World
	clock  *PausableClock
	router *EventRouter

	tickInterval time.Duration
	lastTick     time.Time
	mu           sync.Mutex

	// Non-blocking signal after each processed tick, consumed by the renderer
	updateDone chan struct{}

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler for world; clock may be nil for headless stepping
func NewClockScheduler(world *World, clock *PausableClock, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}

	cs := &ClockScheduler{
		world:        world,
		clock:        clock,
		router:       NewEventRouter(world.EventQueue()),
		tickInterval: tickInterval,
		updateDone:   make(chan struct{}, 1),
		stopChan:     make(chan struct{}),
		statTicks:    world.Resources.Status.Ints.Get(status.KeyEngineTicks),
	}
	if clock != nil {
		cs.lastTick = clock.Now()
	}
	return cs
}

// RegisterEventHandler adds an event handler to router, must be called before Start
func (cs *ClockScheduler) RegisterEventHandler(handler EventHandler) {
	cs.router.Register(handler)
}

// RegisterSystemHandlers registers every world system that also handles events
func (cs *ClockScheduler) RegisterSystemHandlers() {
	for _, s := range cs.world.Systems() {
		if h, ok := s.(EventHandler); ok {
			cs.router.Register(h)
		}
	}
}

// Updates returns the tick completion signal channel
func (cs *ClockScheduler) Updates() <-chan struct{} {
	return cs.updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.clock == nil {
		return
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.mu.Lock()
		cs.lastTick = cs.clock.Now()
		cs.mu.Unlock()

		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.Tick()
		}
	}
}

// Tick advances the world by the game time elapsed since the previous tick
// Paused clocks yield zero delta and the tick is skipped
func (cs *ClockScheduler) Tick() {
	if cs.clock == nil || cs.clock.IsPaused() {
		return
	}

	now := cs.clock.Now()
	cs.mu.Lock()
	dt := now.Sub(cs.lastTick)
	cs.lastTick = now
	cs.mu.Unlock()

	if dt <= 0 {
		return
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	cs.process(now, dt)
}

// Step runs exactly one tick with the given delta, independent of the clock
func (cs *ClockScheduler) Step(dt time.Duration) {
	var now time.Time
	if cs.clock != nil {
		now = cs.clock.Now()
	} else {
		now = cs.world.Resources.Time.GameTime.Add(dt)
	}
	cs.process(now, dt)
}

// DispatchEventsImmediately processes pending events under the world lock
func (cs *ClockScheduler) DispatchEventsImmediately() {
	cs.world.RunSafe(func() {
		cs.router.DispatchAll()
	})
}

func (cs *ClockScheduler) process(now time.Time, dt time.Duration) {
	cs.world.RunSafe(func() {
		frame := cs.world.advanceFrame()
		cs.world.Resources.Time.Update(now, dt, frame)

		// Input and host requests pushed since the last tick
		cs.router.DispatchAll()

		cs.world.UpdateLocked()

		// Feedback emitted by systems during this tick
		cs.router.DispatchAll()

		cs.statTicks.Store(frame)
	})

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
