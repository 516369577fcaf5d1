package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Speaker entry points, replaced in tests to run without a device
var (
	speakerInit  = speaker.Init
	speakerPlay  = func(s beep.Streamer) { speaker.Play(s) }
	speakerClose = speaker.Close
)

// SoundManager plays one-shot cues through a single mixer attached to the speaker
// It satisfies engine.AudioPlayer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled config is not an error; the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	if err := speakerInit(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	speakerPlay(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayOnce queues cue at volume; returns false when the cue was dropped
func (sm *SoundManager) PlayOnce(cue core.SoundType, volume float32) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	streamer := GetSoundEffect(cue, sm.config)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, float64(volume)))
	speaker.Unlock()
	return true
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips mute state and returns true if now muted
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Close stops all cues and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speakerClose()
	sm.initialized = false
}

// Pending returns the number of cues still streaming
func (sm *SoundManager) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
