package core

// Side identifies a half of the arena, also the side a serve travels toward
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns the lowercase side name used in logs and metric labels
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// ParseSide maps "left"/"right" to a Side
func ParseSide(name string) (Side, bool) {
	switch name {
	case "left", "Left", "LEFT":
		return SideLeft, true
	case "right", "Right", "RIGHT":
		return SideRight, true
	}
	return SideRight, false
}
