package system

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// WinnerSystem serves waiting balls and awards points on boundary crossings
// Per ball, the serve check runs before the boundary check within the same tick
type WinnerSystem struct {
	engine.SystemBase

	enabled bool
}

// NewWinnerSystem creates the scoring and serve system
func NewWinnerSystem(world *engine.World) engine.System {
	s := &WinnerSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *WinnerSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *WinnerSystem) Name() string {
	return "winner"
}

// Priority returns the system's priority
func (s *WinnerSystem) Priority() int {
	return parameter.PriorityWinner
}

// EventTypes returns the event types WinnerSystem handles
func (s *WinnerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
	}
}

// HandleEvent processes match reset
func (s *WinnerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		s.resetMatch()
	}
}

// Update advances serve stopwatches, launches ready balls and judges crossings
func (s *WinnerSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.Resource.Time.DeltaTime
	width := s.Resource.Arena.Width
	serveCfg := s.Resource.Serve

	for _, entity := range s.Component.Ball.AllEntity() {
		ball, ok := s.Component.Ball.GetComponent(entity)
		if !ok {
			continue
		}
		pos, ok := s.Component.Position.GetComponent(entity)
		if !ok {
			continue
		}
		serve, ok := s.Component.Serve.GetComponent(entity)
		if !ok {
			continue
		}

		serve.Stopwatch.Tick(dt)

		if ServeReady(&serve, serveCfg.Delay) {
			Launch(&ball, &serve, serveCfg.VelocityX, serveCfg.VelocityY)
			s.World.PushEvent(event.EventBallServed, &event.BallServedPayload{
				Entity:    entity,
				ServeTo:   serve.ServeTo,
				VelocityX: ball.VelocityX,
				VelocityY: ball.VelocityY,
			})
		}

		if hit, scored := Judge(pos.X, ball.Radius, width); scored {
			pos = s.score(entity, hit, &ball, &serve)
		}

		s.Component.Ball.SetComponent(entity, ball)
		s.Component.Position.SetComponent(entity, pos)
		s.Component.Serve.SetComponent(entity, serve)
	}
}

// score applies one crossing of hit's boundary and returns the reset position
func (s *WinnerSystem) score(entity core.Entity, hit core.Side, ball *component.BallComponent, serve *component.ServeComponent) component.PositionComponent {
	scorer := hit.Opponent()
	value := s.Resource.Score.Award(scorer)
	s.Resource.Display.SetText(core.ScoreLabel(scorer), strconv.FormatUint(value, 10))

	pos := s.World.ResetPosition(ball.Radius)
	Rearm(ball, serve, hit)

	left, right := s.Resource.Score.Left(), s.Resource.Score.Right()

	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{
		SoundType: core.SoundScore,
		Volume:    parameter.ScoreCueVolume,
	})
	s.World.PushEvent(event.EventPointScored, &event.PointScoredPayload{
		Entity:  entity,
		Scorer:  scorer,
		ServeTo: hit,
		Left:    left,
		Right:   right,
	})

	if w := s.Resource.Telemetry.Writer; w != nil {
		fmt.Fprintln(w, ScoreLine(left, right))
	}
	log.Printf("[winner] %s scores on entity %d, %d-%d, serve to %s", scorer, entity, left, right, hit)

	return pos
}

// resetMatch zeroes the scoreboard and rearms every ball toward the kickoff side
func (s *WinnerSystem) resetMatch() {
	s.Resource.Score.Reset()
	s.Resource.Display.SetText(core.LabelScoreLeft, "0")
	s.Resource.Display.SetText(core.LabelScoreRight, "0")

	kickoff := s.Resource.Serve.Kickoff
	for _, entity := range s.Component.Ball.AllEntity() {
		ball, ok := s.Component.Ball.GetComponent(entity)
		if !ok {
			continue
		}
		serve, _ := s.Component.Serve.GetComponent(entity)

		Rearm(&ball, &serve, kickoff)
		pos := s.World.ResetPosition(ball.Radius)

		s.Component.Ball.SetComponent(entity, ball)
		s.Component.Position.SetComponent(entity, pos)
		s.Component.Serve.SetComponent(entity, serve)
	}
	log.Printf("[winner] match reset, kickoff to %s", kickoff)
}

// ScoreLine formats the per-score telemetry line with centered fields
func ScoreLine(left, right uint64) string {
	return "Score: | " + center(strconv.FormatUint(left, 10), parameter.ScoreFieldWidth) +
		" | " + center(strconv.FormatUint(right, 10), parameter.ScoreFieldWidth) + " |"
}

// center pads s to width, extra padding goes right; longer strings are returned unchanged
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
