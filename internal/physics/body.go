package physics

// Body is the transform of anything that takes part in targeting or collision.
// Position is the center of the body (centered anchor). Circles use HalfWidth
// as their radius.
type Body struct {
	X, Y       float64 // Center position
	Rotation   float64 // Radians, 0 = pointing right, increases clockwise on screen
	HalfWidth  float64
	HalfHeight float64
}

// NewBody creates a body of the given full width and height.
// Negative sizes are clamped to zero.
func NewBody(x, y, width, height float64) Body {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Body{X: x, Y: y, HalfWidth: width * 0.5, HalfHeight: height * 0.5}
}

// NewCircle creates a square body whose HalfWidth is the radius.
func NewCircle(x, y, radius float64) Body {
	return NewBody(x, y, radius*2, radius*2)
}

// Width returns the full unrotated width.
func (b Body) Width() float64 { return b.HalfWidth * 2 }

// Height returns the full unrotated height.
func (b Body) Height() float64 { return b.HalfHeight * 2 }

// Radius returns the circle radius of the body.
func (b Body) Radius() float64 { return b.HalfWidth }

// Translate returns a copy of the body moved by (dx, dy).
func (b Body) Translate(dx, dy float64) Body {
	b.X += dx
	b.Y += dy
	return b
}
