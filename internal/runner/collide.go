package runner

// Box is an axis-aligned bounding box in field units. Field coordinates
// are float64 so sub-cell motion accumulates between ticks; positions are
// truncated only at render time.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the X coordinate of the box's right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the Y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Overlaps reports whether two boxes intersect on both axes using closed
// intervals. Touching edges count as a collision; this keeps the rule
// simple and the boundary cases explicit in tests.
func (b Box) Overlaps(other Box) bool {
	return b.X <= other.Right() && other.X <= b.Right() &&
		b.Y <= other.Bottom() && other.Y <= b.Bottom()
}

// FirstCollision returns the identifier of the first obstacle in field
// order (spawn order) whose box overlaps the player's. Pure function of
// its inputs.
func FirstCollision(player Box, obstacles []Obstacle) (ObstacleID, bool) {
	for _, ob := range obstacles {
		if player.Overlaps(ob.Box()) {
			return ob.ID, true
		}
	}
	return 0, false
}
