package system

import (
	"bytes"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// fakeDisplay records every SetText call
type fakeDisplay struct {
	calls []displayCall
}

type displayCall struct {
	handle core.LabelHandle
	value  string
}

func (d *fakeDisplay) SetText(handle core.LabelHandle, value string) {
	d.calls = append(d.calls, displayCall{handle, value})
}

// fakePlayer records played cues
type fakePlayer struct {
	cues    []core.SoundType
	volumes []float32
}

func (p *fakePlayer) PlayOnce(cue core.SoundType, volume float32) bool {
	p.cues = append(p.cues, cue)
	p.volumes = append(p.volumes, volume)
	return true
}

func (p *fakePlayer) IsRunning() bool { return true }

type harness struct {
	world     *engine.World
	scheduler *engine.ClockScheduler
	display   *fakeDisplay
	player    *fakePlayer
	out       *bytes.Buffer
}

// newHarness builds a world of width 100 with winner and audio systems and attached fakes
func newHarness() *harness {
	w := engine.NewWorld()
	w.Resources.Arena.Width = 100
	w.Resources.Arena.Height = 100
	w.Resources.Serve.Delay = 2 * time.Second

	h := &harness{
		world:   w,
		display: &fakeDisplay{},
		player:  &fakePlayer{},
		out:     &bytes.Buffer{},
	}
	w.Resources.Display.Sink = h.display
	w.Resources.Audio.Player = h.player
	w.Resources.Telemetry.Writer = h.out

	w.AddSystem(NewWinnerSystem(w))
	w.AddSystem(NewAudioSystem(w))
	w.AddSystem(NewTelemetrySystem(w))

	h.scheduler = engine.NewClockScheduler(w, nil, 16*time.Millisecond)
	h.scheduler.RegisterSystemHandlers()
	return h
}

// ballInPlay spawns a moving ball at x with radius r
func (h *harness) ballInPlay(x, r float64) core.Entity {
	e := h.world.SpawnBall(engine.BallSpec{X: x, Y: 50, Radius: r})
	ball, _ := h.world.Components.Ball.GetComponent(e)
	ball.VelocityX, ball.VelocityY = 10, 10
	h.world.Components.Ball.SetComponent(e, ball)
	return e
}

func (h *harness) setX(e core.Entity, x float64) {
	pos, _ := h.world.Components.Position.GetComponent(e)
	pos.X = x
	h.world.Components.Position.SetComponent(e, pos)
}
