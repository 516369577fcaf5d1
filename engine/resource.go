package engine

import (
	"io"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// Resource holds per-world singletons, created by NewWorld and replaced by the host before the first tick
type Resource struct {
	Time  *TimeResource
	Arena *ArenaResource
	Serve *ServeResource
	Score *ScoreBoard

	// Telemetry
	Status    *status.Registry
	Telemetry *TelemetryResource

	// Bridged collaborators, nil sinks mean the side effect is skipped
	Display *DisplayResource
	Audio   *AudioResource
}

// newResource builds resources with defaults from parameter
func newResource() *Resource {
	return &Resource{
		Time: &TimeResource{},
		Arena: &ArenaResource{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Serve: &ServeResource{
			Delay:     parameter.ServeDelay,
			VelocityX: parameter.BallVelocityX,
			VelocityY: parameter.BallVelocityY,
			Kickoff:   core.SideRight,
		},
		Score:     &ScoreBoard{},
		Status:    status.NewRegistry(),
		Telemetry: &TelemetryResource{},
		Display:   &DisplayResource{},
		Audio:     &AudioResource{},
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// It is updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(gameTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ArenaResource is the immutable playing field, left edge x=0 and right edge x=Width
type ArenaResource struct {
	Width  float64
	Height float64
}

// ServeResource holds serve timing and base launch velocity
// Serving toward the right uses VelocityX as-is; serving left negates it
type ServeResource struct {
	Delay     time.Duration
	VelocityX float64
	VelocityY float64

	// Kickoff is the side the opening serve of a match goes to
	Kickoff core.Side
}

// TelemetryResource receives one formatted line per scoring event
// Nil Writer disables the line
type TelemetryResource struct {
	Writer io.Writer
}

// === Bridged Resources ===

// ScoreDisplay updates on-screen score labels
// Implementations must treat unknown handles as a no-op
type ScoreDisplay interface {
	SetText(handle core.LabelHandle, value string)
}

// DisplayResource wraps the score display sink
type DisplayResource struct {
	Sink ScoreDisplay
}

// SetText forwards to the sink when one is attached
func (d *DisplayResource) SetText(handle core.LabelHandle, value string) {
	if d == nil || d.Sink == nil {
		return
	}
	d.Sink.SetText(handle, value)
}

// AudioPlayer defines the minimal audio interface used by game systems
// PlayOnce returns false when the cue was dropped (no device, muted)
type AudioPlayer interface {
	PlayOnce(cue core.SoundType, volume float32) bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
