package match

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/system"
)

// ErrMatchNotFound is returned for an unknown match id
var ErrMatchNotFound = errors.New("match not found")

// Options configures a new match; nil collaborators are skipped silently
type Options struct {
	Config    *config.Config
	Display   engine.ScoreDisplay
	Audio     engine.AudioPlayer
	Telemetry io.Writer

	// Clock drives Start; nil leaves the match step-only
	Clock *engine.PausableClock
}

// Match is one independent world with its own scoreboard and scheduler
type Match struct {
	ID        uuid.UUID
	World     *engine.World
	Scheduler *engine.ClockScheduler
	CreatedAt time.Time
}

// Snapshot is a point-in-time copy of match counters
type Snapshot struct {
	ID     uuid.UUID
	Left   uint64
	Right  uint64
	Serves int64
	Frame  int64
}

// NewMatch builds a world, registers the game systems and spawns the opening balls
func NewMatch(opts Options) *Match {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	w := engine.NewWorld()
	cfg.Apply(w)
	w.Resources.Display.Sink = opts.Display
	w.Resources.Audio.Player = opts.Audio
	w.Resources.Telemetry.Writer = opts.Telemetry

	w.AddSystem(system.NewMotionSystem(w))
	w.AddSystem(system.NewWinnerSystem(w))
	w.AddSystem(system.NewAudioSystem(w))
	w.AddSystem(system.NewTelemetrySystem(w))

	spawnBalls(w, cfg)

	scheduler := engine.NewClockScheduler(w, opts.Clock, cfg.Engine.TickInterval.Duration)
	scheduler.RegisterSystemHandlers()

	m := &Match{
		ID:        uuid.New(),
		World:     w,
		Scheduler: scheduler,
		CreatedAt: time.Now(),
	}
	log.Printf("[match] %s created, %d ball(s), kickoff %s", m.ID, cfg.Ball.Count, cfg.Kickoff())
	return m
}

// spawnBalls places balls on the center line, evenly spaced, alternating the opening serve side
func spawnBalls(w *engine.World, cfg *config.Config) {
	kickoff := cfg.Kickoff()
	height := cfg.Arena.Height
	for i := 0; i < cfg.Ball.Count; i++ {
		side := kickoff
		if i%2 == 1 {
			side = kickoff.Opponent()
		}
		w.SpawnBall(engine.BallSpec{
			X:       cfg.Arena.Width / 2,
			Y:       height * float64(i+1) / float64(cfg.Ball.Count+1),
			Radius:  cfg.Ball.Radius,
			ServeTo: side,
			Running: true,
		})
	}
}

// Step advances the match by exactly dt
func (m *Match) Step(dt time.Duration) {
	m.Scheduler.Step(dt)
}

// Reset zeroes the scoreboard and rearms every ball toward the kickoff side
func (m *Match) Reset() {
	m.World.PushEvent(event.EventGameReset, nil)
	m.Scheduler.DispatchEventsImmediately()
}

// Snapshot copies the current counters
func (m *Match) Snapshot() Snapshot {
	score := m.World.Resources.Score
	return Snapshot{
		ID:     m.ID,
		Left:   score.Left(),
		Right:  score.Right(),
		Serves: m.World.Resources.Status.Ints.Get(status.KeyServeCount).Load(),
		Frame:  m.World.FrameNumber(),
	}
}

// Score returns the current score of side
func (m *Match) Score(side core.Side) uint64 {
	return m.World.Resources.Score.Get(side)
}
