package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// drain streams s to completion and returns sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	var total int
	var peak float64
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		n, peak := drain(NewOscillator(100, 250*time.Millisecond, wave, rate))
		if n != 250 {
			t.Errorf("Wave %d: expected 250 samples, got %d", wave, n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: peak %v exceeds unit amplitude", wave, peak)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Attack starts silent, got %v", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Sustain is full scale, got %v", buf[50][0])
	}
	if buf[99][0] >= buf[80][0] {
		t.Errorf("Release must fade: %v >= %v", buf[99][0], buf[80][0])
	}
}

func TestCueDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		cue  core.SoundType
		want int
	}{
		{core.SoundScore, rate.N(parameter.ScoreSoundNote1Duration) + rate.N(parameter.ScoreSoundNote2Duration)},
		{core.SoundServe, rate.N(parameter.ServeSoundDuration)},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(GetSoundEffect(tt.cue, cfg))
			if n != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, n)
			}
			if peak == 0 {
				t.Error("Expected audible cue")
			}
		})
	}

	if GetSoundEffect(core.SoundTypeCount, cfg) != nil {
		t.Error("Unknown cue returns nil")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(CreateServeSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %v", peak)
	}
}
