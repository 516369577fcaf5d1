package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Init()         {}
func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestWorldSystemsRunByPriority(t *testing.T) {
	w := NewWorld()
	var calls []string

	w.AddSystem(&recordingSystem{name: "late", priority: 30, log: &calls})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, log: &calls})
	w.AddSystem(&recordingSystem{name: "mid-a", priority: 20, log: &calls})
	w.AddSystem(&recordingSystem{name: "mid-b", priority: 20, log: &calls})

	w.Update()

	want := []string{"early", "mid-a", "mid-b", "late"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], calls[i])
		}
	}
}

func TestWorldSpawnBallAndDestroy(t *testing.T) {
	w := NewWorld()
	e := w.SpawnBall(BallSpec{X: 50, Y: 4, Radius: 2, ServeTo: core.SideLeft, Running: true})

	pos, ok := w.Components.Position.GetComponent(e)
	if !ok || pos.X != 50 || pos.Y != 4 {
		t.Fatalf("Unexpected position %+v ok=%v", pos, ok)
	}
	ball, _ := w.Components.Ball.GetComponent(e)
	if !ball.IsStationary() || ball.Radius != 2 {
		t.Errorf("Spawned ball should be stationary with radius 2, got %+v", ball)
	}
	serve, _ := w.Components.Serve.GetComponent(e)
	if serve.ServeTo != core.SideLeft || !serve.Stopwatch.IsRunning() || serve.Phase != component.ServeIdle {
		t.Errorf("Unexpected serve state %+v", serve)
	}

	w.DestroyEntity(e)
	if w.Components.Ball.HasComponent(e) || w.Components.Position.HasComponent(e) || w.Components.Serve.HasComponent(e) {
		t.Error("DestroyEntity must remove every component")
	}
}

func TestWorldClearResetsIDs(t *testing.T) {
	w := NewWorld()
	w.SpawnBall(BallSpec{Radius: 1})
	w.SpawnBall(BallSpec{Radius: 1})
	w.Clear()

	if w.Components.Ball.CountEntity() != 0 {
		t.Error("Expected no balls after clear")
	}
	if e := w.CreateEntity(); e != 1 {
		t.Errorf("Expected entity IDs to restart at 1, got %d", e)
	}
}

func TestWorldResetPosition(t *testing.T) {
	w := NewWorld()
	w.Resources.Arena.Width = 100
	pos := w.ResetPosition(5)
	if pos.X != 50 || pos.Y != 10 {
		t.Errorf("Expected (50,10), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestWorldPushEventStampsFrame(t *testing.T) {
	w := NewWorld()
	w.advanceFrame()
	w.advanceFrame()
	w.PushEvent(event.EventGameReset, nil)

	events := w.EventQueue().Consume(nil)
	if len(events) != 1 || events[0].Frame != 2 {
		t.Fatalf("Expected one event on frame 2, got %+v", events)
	}
}

func TestDisplayResourceNilSink(t *testing.T) {
	var d *DisplayResource
	d.SetText(core.LabelScoreLeft, "1") // must not panic

	d = &DisplayResource{}
	d.SetText(core.LabelScoreLeft, "1")
}
