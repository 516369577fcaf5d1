package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundScore SoundType = iota // Point scored chime
	SoundServe                  // Ball launched blip
	SoundTypeCount
)

// String returns the cue name used by audio config keys
func (s SoundType) String() string {
	switch s {
	case SoundScore:
		return "score"
	case SoundServe:
		return "serve"
	default:
		return "unknown"
	}
}
