package physics

import "math"

// broadPhaseFactor scales the larger rectangle side into a conservative
// bounding radius for the quick reject.
const broadPhaseFactor = 0.75

// BroadPhaseReach is how far (per axis) a circle center can be from the
// rectangle center and still possibly collide.
func BroadPhaseReach(rect, circle Body) float64 {
	return circle.Radius() + math.Max(rect.Width(), rect.Height())*broadPhaseFactor
}

// CollidesRectCircle reports whether a rotated rectangle and a circle overlap.
// rect is a centered, rotated rectangle; circle is a square body whose
// HalfWidth is the radius. Touching edges do not count as a collision.
func CollidesRectCircle(rect, circle Body) bool {
	radius := circle.Radius()
	reach := BroadPhaseReach(rect, circle)

	dx := circle.X - rect.X
	dy := circle.Y - rect.Y
	if math.Abs(dx) >= reach || math.Abs(dy) >= reach {
		return false
	}

	// Non-positive rotations get an extra half turn.
	rotation := -rect.Rotation
	if rect.Rotation <= 0 {
		rotation += math.Pi
	}

	sin, cos := math.Sincos(rotation)
	localX := cos*dx - sin*dy + rect.X
	localY := sin*dx + cos*dy + rect.Y

	left := rect.X - rect.HalfWidth
	top := rect.Y - rect.HalfHeight
	closestX := Clamp(localX, left, left+rect.Width())
	closestY := Clamp(localY, top, top+rect.Height())

	return DistanceSquared(localX, localY, closestX, closestY) < radius*radius
}
