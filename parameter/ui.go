package parameter

// Terminal layout
const (
	// ScoreRowOffset is the row of the score labels above the arena border
	ScoreRowOffset = 0

	// ArenaTopRow is the first terminal row used by the arena frame
	ArenaTopRow = 1

	// BallGlyph is the rune drawn for a ball
	BallGlyph = '●'
)

// ScoreFieldWidth is the centered field width of the telemetry score line
const ScoreFieldWidth = 3
