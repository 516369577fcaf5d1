package component

// BallComponent is a moving ball judged against the arena edges
type BallComponent struct {
	VelocityX float64
	VelocityY float64
	Radius    float64
}

// IsStationary reports whether both velocity components are exactly zero
func (b BallComponent) IsStationary() bool {
	return b.VelocityX == 0 && b.VelocityY == 0
}
