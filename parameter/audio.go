package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Score Sound
const (
	ScoreSoundNote1Duration = 90 * time.Millisecond
	ScoreSoundNote2Duration = 160 * time.Millisecond
	ScoreSoundAttack        = 4 * time.Millisecond
	ScoreSoundNote1Release  = 30 * time.Millisecond
	ScoreSoundNote2Release  = 110 * time.Millisecond
)

// Serve Sound
const (
	ServeSoundDuration = 40 * time.Millisecond
	ServeSoundAttack   = 2 * time.Millisecond
	ServeSoundRelease  = 20 * time.Millisecond
)
