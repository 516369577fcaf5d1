package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

func TestArenaRendererDrawsBallAndLabels(t *testing.T) {
	screen := newTestScreen(t, 42, 12)
	st := NewScoreText(screen)
	r := NewArenaRenderer(screen, st)

	w := engine.NewWorld()
	w.Resources.Arena.Width = 100
	w.Resources.Arena.Height = 100
	w.SpawnBall(engine.BallSpec{X: 0, Y: 0, Radius: 2})

	st.SetText(core.LabelScoreLeft, "4")
	r.Render(w)

	// Frame spans rows 1..10, interior columns 1..40, floor at row 9
	if mainc, _, _, _ := screen.GetContent(0, parameter.ArenaTopRow); mainc != tcell.RuneULCorner {
		t.Errorf("Expected top-left corner, got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(1, 9); mainc != parameter.BallGlyph {
		t.Errorf("Expected ball at bottom-left interior, got %q", mainc)
	}
	if got := readRow(screen, 42/4, 0, 1); got != "4" {
		t.Errorf("Expected left score 4, got %q", got)
	}
	if got := readRow(screen, 3*42/4, 0, 1); got != "0" {
		t.Errorf("Expected right score 0, got %q", got)
	}
}

func TestArenaRendererStatusFlags(t *testing.T) {
	screen := newTestScreen(t, 60, 8)
	r := NewArenaRenderer(screen, NewScoreText(screen))
	r.SetPaused(true)
	r.SetMuted(true)

	r.Render(engine.NewWorld())

	status := readRow(screen, 0, 7, 60)
	if !strings.Contains(status, "[PAUSED]") || !strings.Contains(status, "[MUTED]") {
		t.Errorf("Expected pause and mute markers, got %q", status)
	}
}

func TestArenaRendererProjectBounds(t *testing.T) {
	screen := newTestScreen(t, 42, 12)
	r := NewArenaRenderer(screen, NewScoreText(screen))

	tests := []struct {
		name string
		p    component2D
		ok   bool
	}{
		{"inside", component2D{50, 50}, true},
		{"right edge", component2D{100, 100}, true},
		{"outside", component2D{101, 50}, false},
		{"negative", component2D{-1, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := r.project(tt.p, 100, 100)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && (x < 1 || x > 40 || y < 2 || y > 9) {
				t.Errorf("Projected (%d,%d) outside interior", x, y)
			}
		})
	}
}
