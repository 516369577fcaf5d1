package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/metrics"
	"github.com/lixenwraith/vi-pong/render"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/vi-pong.log")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal, printing score lines to stdout")
	durationFlag = flag.Duration("duration", 30*time.Second, "Simulated game time for -headless")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *headlessFlag {
		runHeadless(cfg, *durationFlag, os.Stdout)
		return
	}

	if err := runTerminal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runHeadless steps one match for duration of simulated time as fast as possible
func runHeadless(cfg *config.Config, duration time.Duration, out io.Writer) match.Snapshot {
	mg := match.NewManager()
	m := mg.Create(match.Options{Config: cfg, Telemetry: out})

	stopMetrics := startMetrics(cfg, mg)
	defer stopMetrics()

	tick := cfg.Engine.TickInterval.Duration
	for elapsed := time.Duration(0); elapsed < duration; elapsed += tick {
		mg.TickAll(tick)
	}

	snap := m.Snapshot()
	log.Printf("[main] headless run done: %d-%d after %d frames", snap.Left, snap.Right, snap.Frame)
	return snap
}

// runTerminal plays one match on the terminal until the user quits
func runTerminal(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting any panic from engine goroutines
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	scoreText := render.NewScoreText(screen)
	renderer := render.NewArenaRenderer(screen, scoreText)

	sound := audio.NewSoundManager(cfg.AudioConfig())
	var player engine.AudioPlayer
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] %v, continuing without audio", err)
	} else if sound.IsRunning() {
		player = sound
	}
	defer sound.Close()

	clock := engine.NewPausableClock(nil)
	mg := match.NewManager()
	m := mg.Create(match.Options{
		Config:    cfg,
		Display:   scoreText,
		Audio:     player,
		Telemetry: log.Writer(),
		Clock:     clock,
	})

	stopMetrics := startMetrics(cfg, mg)
	defer stopMetrics()

	m.Scheduler.Start()
	defer m.Scheduler.Stop()

	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	frame := time.NewTicker(cfg.Engine.FrameInterval.Duration)
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			case *tcell.EventKey:
				if quit := handleKey(ev, clock, m, sound, renderer); quit {
					return nil
				}
			}
		case <-frame.C:
			renderer.Render(m.World)
		}
	}
}

// handleKey applies one key press, returning true on quit
func handleKey(ev *tcell.EventKey, clock *engine.PausableClock, m *match.Match, sound *audio.SoundManager, renderer *render.ArenaRenderer) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'p':
		renderer.SetPaused(clock.TogglePause())
	case 'r':
		m.Reset()
		log.Printf("[main] match %s reset", m.ID)
	case 'm':
		if sound.IsRunning() {
			renderer.SetMuted(sound.ToggleMute())
		}
	}
	return false
}

// startMetrics serves Prometheus metrics when an address is configured
func startMetrics(cfg *config.Config, mg *match.Manager) func() {
	if cfg.Metrics.Addr == "" {
		return func() {}
	}

	srv := metrics.Serve(cfg.Metrics.Addr, metrics.NewRegistry(mg))
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[metrics] %v", err)
		}
	}
}
