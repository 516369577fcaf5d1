package core

// LabelHandle addresses an on-screen text label owned by the display sink
// Zero is never a valid handle
type LabelHandle uint32

const (
	LabelNone LabelHandle = iota
	LabelScoreLeft
	LabelScoreRight
)

// ScoreLabel returns the label displaying the given side's score
func ScoreLabel(s Side) LabelHandle {
	if s == SideLeft {
		return LabelScoreLeft
	}
	return LabelScoreRight
}
