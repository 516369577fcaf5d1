package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/match"
	"github.com/lixenwraith/vi-pong/render"
)

func TestRunHeadlessPrintsScores(t *testing.T) {
	var out bytes.Buffer
	snap := runHeadless(config.Default(), 10*time.Second, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if total := snap.Left + snap.Right; total == 0 || uint64(len(lines)) != total {
		t.Fatalf("Expected one line per point, got %d lines for %d points", len(lines), total)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "Score: | ") || !strings.HasSuffix(line, " |") {
			t.Errorf("Malformed score line %q", line)
		}
	}
}

func TestHandleKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	clock := engine.NewPausableClock(engine.NewMockTimeProvider(time.Unix(0, 0)))
	m := match.NewMatch(match.Options{})
	sound := audio.NewSoundManager(nil)
	renderer := render.NewArenaRenderer(screen, render.NewScoreText(screen))

	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	if handleKey(key('p'), clock, m, sound, renderer) || !clock.IsPaused() {
		t.Error("p should pause without quitting")
	}
	if handleKey(key('m'), clock, m, sound, renderer) || sound.IsMuted() {
		t.Error("m without an audio device is ignored")
	}
	if !handleKey(key('q'), clock, m, sound, renderer) {
		t.Error("q should quit")
	}
	if !handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), clock, m, sound, renderer) {
		t.Error("Esc should quit")
	}
}
