package render

import (
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ArenaRenderer draws the playing field, balls and score labels
type ArenaRenderer struct {
	screen tcell.Screen
	text   *ScoreText

	paused atomic.Bool
	muted  atomic.Bool

	width  int
	height int
}

// NewArenaRenderer creates a renderer over screen and lays out the score labels
func NewArenaRenderer(screen tcell.Screen, text *ScoreText) *ArenaRenderer {
	r := &ArenaRenderer{
		screen: screen,
		text:   text,
	}
	r.Resize()
	return r
}

// Resize re-reads terminal size and repositions score labels
func (r *ArenaRenderer) Resize() {
	r.width, r.height = r.screen.Size()

	row := parameter.ScoreRowOffset
	r.text.Register(core.LabelScoreLeft, r.width/4, row, defaultStyle.Foreground(RgbScoreLeft).Bold(true))
	r.text.Register(core.LabelScoreRight, 3*r.width/4, row, defaultStyle.Foreground(RgbScoreRight).Bold(true))
}

// SetPaused toggles the paused banner
func (r *ArenaRenderer) SetPaused(paused bool) {
	r.paused.Store(paused)
}

// SetMuted toggles the muted marker
func (r *ArenaRenderer) SetMuted(muted bool) {
	r.muted.Store(muted)
}

// Render draws one frame of world
func (r *ArenaRenderer) Render(world *engine.World) {
	var balls []component2D
	var arenaW, arenaH float64

	// Snapshot under the world lock so the tick goroutine never races the draw
	world.RunSafe(func() {
		arenaW = world.Resources.Arena.Width
		arenaH = world.Resources.Arena.Height
		for _, e := range world.Components.Ball.AllEntity() {
			if pos, ok := world.Components.Position.GetComponent(e); ok {
				balls = append(balls, component2D{pos.X, pos.Y})
			}
		}
	})

	r.screen.Fill(' ', defaultStyle)

	left, top, right, bottom := r.frame()
	if right-left < 2 || bottom-top < 2 {
		r.screen.Show()
		return
	}
	r.drawBorder(left, top, right, bottom)

	ballStyle := defaultStyle.Foreground(RgbBall)
	for _, b := range balls {
		if x, y, ok := r.project(b, arenaW, arenaH); ok {
			r.screen.SetContent(x, y, parameter.BallGlyph, nil, ballStyle)
		}
	}

	r.text.Draw()
	r.drawStatus(bottom + 1)

	r.screen.Show()
}

// component2D is a world position copied out of the store
type component2D struct {
	x, y float64
}

// frame returns the border rectangle in screen cells, inclusive
func (r *ArenaRenderer) frame() (left, top, right, bottom int) {
	return 0, parameter.ArenaTopRow, r.width - 1, r.height - 2
}

// project maps a world position into the cell interior; floor is the bottom row
func (r *ArenaRenderer) project(p component2D, arenaW, arenaH float64) (int, int, bool) {
	if arenaW <= 0 || arenaH <= 0 || math.IsNaN(p.x) || math.IsNaN(p.y) {
		return 0, 0, false
	}

	left, top, right, bottom := r.frame()
	innerW := right - left - 1
	innerH := bottom - top - 1

	fx := p.x / arenaW
	fy := p.y / arenaH
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}

	x := left + 1 + int(math.Round(fx*float64(innerW-1)))
	y := bottom - 1 - int(math.Round(fy*float64(innerH-1)))
	return x, y, true
}

func (r *ArenaRenderer) drawBorder(left, top, right, bottom int) {
	style := defaultStyle.Foreground(RgbBorder)

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}

	// Center line
	mid := (left + right) / 2
	for y := top + 1; y < bottom; y += 2 {
		r.screen.SetContent(mid, y, '┊', nil, style)
	}

	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (r *ArenaRenderer) drawStatus(row int) {
	status := "q:quit  p:pause  r:reset  m:mute"
	if r.muted.Load() {
		status += "  [MUTED]"
	}
	if r.paused.Load() {
		status += "  [PAUSED]"
	}
	drawString(r.screen, 0, row, status, defaultStyle.Foreground(RgbStatusBar))
}
