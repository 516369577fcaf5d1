package component

// PositionComponent is the 2D translation of an entity in arena units
type PositionComponent struct {
	X float64
	Y float64
}
