package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes TOML strings such as "2s" or "16ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the full runtime configuration
type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	Ball    BallConfig    `toml:"ball"`
	Serve   ServeConfig   `toml:"serve"`
	Audio   AudioConfig   `toml:"audio"`
	Engine  EngineConfig  `toml:"engine"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ArenaConfig sizes the playing field in world units
type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// BallConfig describes balls spawned per match
type BallConfig struct {
	Radius    float64 `toml:"radius"`
	VelocityX float64 `toml:"velocity_x"`
	VelocityY float64 `toml:"velocity_y"`
	Count     int     `toml:"count"`
}

// ServeConfig controls serve timing
type ServeConfig struct {
	Delay   Duration `toml:"delay"`
	Kickoff string   `toml:"kickoff"`
}

// AudioConfig mirrors audio.AudioConfig for file decoding
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// EngineConfig controls tick and frame pacing
type EngineConfig struct {
	TickInterval  Duration `toml:"tick_interval"`
	FrameInterval Duration `toml:"frame_interval"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// Default returns configuration built from parameter constants
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  parameter.ArenaWidth,
			Height: parameter.ArenaHeight,
		},
		Ball: BallConfig{
			Radius:    parameter.BallRadius,
			VelocityX: parameter.BallVelocityX,
			VelocityY: parameter.BallVelocityY,
			Count:     1,
		},
		Serve: ServeConfig{
			Delay:   Duration{parameter.ServeDelay},
			Kickoff: core.SideRight.String(),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 1.0,
			SampleRate:   parameter.AudioSampleRate,
		},
		Engine: EngineConfig{
			TickInterval:  Duration{parameter.GameUpdateInterval},
			FrameInterval: Duration{parameter.FrameUpdateInterval},
		},
	}
}

// Load builds configuration from defaults, an optional TOML file and the environment
// A .env file in the working directory is loaded first if present; empty path skips the file
func Load(path string) (*Config, error) {
	// Missing .env is not an error
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from VI_PONG_* variables
func (c *Config) applyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"VI_PONG_ARENA_WIDTH", &c.Arena.Width},
		{"VI_PONG_ARENA_HEIGHT", &c.Arena.Height},
		{"VI_PONG_BALL_RADIUS", &c.Ball.Radius},
		{"VI_PONG_BALL_VELOCITY_X", &c.Ball.VelocityX},
		{"VI_PONG_BALL_VELOCITY_Y", &c.Ball.VelocityY},
	}
	for _, f := range floats {
		if v := os.Getenv(f.key); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f.key, err)
			}
			*f.dst = parsed
		}
	}

	if v := os.Getenv("VI_PONG_BALL_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: VI_PONG_BALL_COUNT: %v", ErrInvalidConfig, err)
		}
		c.Ball.Count = n
	}

	durations := []struct {
		key string
		dst *Duration
	}{
		{"VI_PONG_SERVE_DELAY", &c.Serve.Delay},
		{"VI_PONG_TICK_INTERVAL", &c.Engine.TickInterval},
		{"VI_PONG_FRAME_INTERVAL", &c.Engine.FrameInterval},
	}
	for _, d := range durations {
		if v := os.Getenv(d.key); v != "" {
			if err := d.dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, d.key, err)
			}
		}
	}

	if v := os.Getenv("VI_PONG_KICKOFF"); v != "" {
		c.Serve.Kickoff = v
	}
	if v := os.Getenv("VI_PONG_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}

	// Audio variables share the audio package's parsing
	ac := audio.ApplyEnv(c.AudioConfig())
	c.Audio.Enabled = ac.Enabled
	c.Audio.MasterVolume = ac.MasterVolume
	c.Audio.SampleRate = ac.SampleRate

	return nil
}

// Validate rejects configurations the engine cannot run
func (c *Config) Validate() error {
	switch {
	case !(c.Arena.Width > 0):
		return fmt.Errorf("%w: arena width must be positive, got %v", ErrInvalidConfig, c.Arena.Width)
	case !(c.Arena.Height > 0):
		return fmt.Errorf("%w: arena height must be positive, got %v", ErrInvalidConfig, c.Arena.Height)
	case !(c.Ball.Radius > 0):
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalidConfig, c.Ball.Radius)
	case c.Ball.Count < 1:
		return fmt.Errorf("%w: ball count must be at least 1, got %d", ErrInvalidConfig, c.Ball.Count)
	case c.Serve.Delay.Duration <= 0:
		return fmt.Errorf("%w: serve delay must be positive, got %v", ErrInvalidConfig, c.Serve.Delay)
	case c.Engine.TickInterval.Duration <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.Engine.TickInterval)
	case c.Engine.FrameInterval.Duration <= 0:
		return fmt.Errorf("%w: frame interval must be positive, got %v", ErrInvalidConfig, c.Engine.FrameInterval)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.Audio.SampleRate)
	}

	if _, ok := core.ParseSide(c.Serve.Kickoff); !ok {
		return fmt.Errorf("%w: kickoff must be left or right, got %q", ErrInvalidConfig, c.Serve.Kickoff)
	}
	return nil
}

// Kickoff returns the parsed opening serve side
func (c *Config) Kickoff() core.Side {
	side, _ := core.ParseSide(c.Serve.Kickoff)
	return side
}

// AudioConfig converts the audio section into the audio package's config
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// Apply copies arena and serve settings into world resources
func (c *Config) Apply(w *engine.World) {
	w.Resources.Arena.Width = c.Arena.Width
	w.Resources.Arena.Height = c.Arena.Height

	w.Resources.Serve.Delay = c.Serve.Delay.Duration
	w.Resources.Serve.VelocityX = c.Ball.VelocityX
	w.Resources.Serve.VelocityY = c.Ball.VelocityY
	w.Resources.Serve.Kickoff = c.Kickoff()
}
