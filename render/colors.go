package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the arena
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbBall       = tcell.NewRGBColor(255, 255, 255) // White
	RgbScoreLeft  = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbScoreRight = tcell.NewRGBColor(247, 118, 142) // Red
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// defaultStyle is the base style every cell is drawn over
var defaultStyle = tcell.StyleDefault.Background(RgbBackground)
