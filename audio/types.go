package audio

import "errors"

// ErrNoAudioDevice is returned when the speaker cannot be opened
var ErrNoAudioDevice = errors.New("no audio output device")
