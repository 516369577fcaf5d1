package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-pong.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Arena.Width != 100 || cfg.Ball.Radius != 2 || cfg.Serve.Delay.Duration != 2*time.Second {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.Kickoff() != core.SideRight {
		t.Errorf("Expected default kickoff right, got %s", cfg.Kickoff())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[arena]
width = 200.0
height = 80.0

[ball]
radius = 5.0
count = 3

[serve]
delay = "1500ms"
kickoff = "left"

[audio]
enabled = false

[engine]
tick_interval = "10ms"

[metrics]
addr = ":9100"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Arena.Width != 200 || cfg.Arena.Height != 80 {
		t.Errorf("Arena not decoded: %+v", cfg.Arena)
	}
	if cfg.Ball.Radius != 5 || cfg.Ball.Count != 3 {
		t.Errorf("Ball not decoded: %+v", cfg.Ball)
	}
	if cfg.Ball.VelocityX != 75 {
		t.Errorf("Unset keys keep defaults, got vx=%v", cfg.Ball.VelocityX)
	}
	if cfg.Serve.Delay.Duration != 1500*time.Millisecond || cfg.Kickoff() != core.SideLeft {
		t.Errorf("Serve not decoded: %+v", cfg.Serve)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio should be disabled")
	}
	if cfg.Engine.TickInterval.Duration != 10*time.Millisecond {
		t.Errorf("Tick not decoded: %v", cfg.Engine.TickInterval)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics addr not decoded: %q", cfg.Metrics.Addr)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[arena]\nwidth = 200.0\n")
	t.Setenv("VI_PONG_ARENA_WIDTH", "120")
	t.Setenv("VI_PONG_SERVE_DELAY", "3s")
	t.Setenv("VI_PONG_KICKOFF", "left")
	t.Setenv("VI_PONG_MASTER_VOLUME", "40")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 120 {
		t.Errorf("Expected env width 120, got %v", cfg.Arena.Width)
	}
	if cfg.Serve.Delay.Duration != 3*time.Second {
		t.Errorf("Expected env delay 3s, got %v", cfg.Serve.Delay)
	}
	if cfg.Kickoff() != core.SideLeft {
		t.Error("Expected env kickoff left")
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %v", cfg.Audio.MasterVolume)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		invalid bool
	}{
		{name: "bad toml", body: "[arena\nwidth = 1"},
		{name: "bad duration", body: "[serve]\ndelay = \"soon\""},
		{name: "zero width", body: "[arena]\nwidth = 0.0", invalid: true},
		{name: "negative radius", body: "[ball]\nradius = -1.0", invalid: true},
		{name: "no balls", body: "[ball]\ncount = 0", invalid: true},
		{name: "zero delay", body: "[serve]\ndelay = \"0s\"", invalid: true},
		{name: "bad kickoff", body: "[serve]\nkickoff = \"up\"", invalid: true},
		{name: "bad env float", env: map[string]string{"VI_PONG_BALL_RADIUS": "big"}, invalid: true},
		{name: "bad env duration", env: map[string]string{"VI_PONG_TICK_INTERVAL": "fast"}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Arena.Width = 40
	cfg.Serve.Delay = Duration{time.Second}
	cfg.Serve.Kickoff = "left"

	w := engine.NewWorld()
	cfg.Apply(w)

	if w.Resources.Arena.Width != 40 || w.Resources.Serve.Delay != time.Second || w.Resources.Serve.Kickoff != core.SideLeft {
		t.Errorf("Resources not applied: %+v %+v", w.Resources.Arena, w.Resources.Serve)
	}
}
