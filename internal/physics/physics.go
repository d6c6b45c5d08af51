// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// DistanceBetween returns the center-to-center distance of two bodies.
func DistanceBetween(a, b Body) float64 {
	return Distance(a.X, a.Y, b.X, b.Y)
}

// AngleBetween returns the angle in radians from one body's center to another's.
func AngleBetween(from, to Body) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// AccelerationToward returns the acceleration that pushes from toward to
// with the given magnitude, along with the heading used.
func AccelerationToward(from, to Body, speed float64) (ax, ay, angle float64) {
	angle = AngleBetween(from, to)
	return math.Cos(angle) * speed, math.Sin(angle) * speed, angle
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
