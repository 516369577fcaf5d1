package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
)

// label is a registered text slot at a fixed screen cell
type label struct {
	x, y  int
	text  string
	style tcell.Style
}

// ScoreText is the on-screen label registry backing the score display sink
// SetText is called from the game tick; Draw from the render loop
type ScoreText struct {
	mu     sync.Mutex
	screen tcell.Screen
	labels map[core.LabelHandle]*label
}

// NewScoreText creates a label registry drawing on screen; screen may be nil
func NewScoreText(screen tcell.Screen) *ScoreText {
	return &ScoreText{
		screen: screen,
		labels: make(map[core.LabelHandle]*label),
	}
}

// Register places a label at (x, y), keeping existing text on re-register
func (st *ScoreText) Register(handle core.LabelHandle, x, y int, style tcell.Style) {
	if handle == core.LabelNone {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if l, ok := st.labels[handle]; ok {
		l.x, l.y, l.style = x, y, style
		return
	}
	st.labels[handle] = &label{x: x, y: y, text: "0", style: style}
}

// SetText replaces a label's text; unknown handles are ignored
func (st *ScoreText) SetText(handle core.LabelHandle, value string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if l, ok := st.labels[handle]; ok {
		l.text = value
	}
}

// Text returns the current text of a label
func (st *ScoreText) Text(handle core.LabelHandle) (string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	l, ok := st.labels[handle]
	if !ok {
		return "", false
	}
	return l.text, true
}

// Draw paints every label onto the screen
func (st *ScoreText) Draw() {
	if st.screen == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	for _, l := range st.labels {
		drawString(st.screen, l.x, l.y, l.text, l.style)
	}
}

// drawString writes s left to right starting at (x, y), clipped to the screen
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
