package object

import "github.com/tomz197/gravityquest/internal/draw"

// GravityRay is the beam between the astronaut and the locked asteroid.
// It is anchored at the middle of its left edge.
type GravityRay struct {
	Visible   bool
	X, Y      float64
	Rotation  float64
	Length    float64
	Thickness float64
}

// Show places and sizes the ray.
func (r *GravityRay) Show(x, y, rotation, length, thickness float64) {
	r.Visible = true
	r.X, r.Y = x, y
	r.Rotation = rotation
	r.Length = length
	r.Thickness = thickness
}

// Hide hides the ray.
func (r *GravityRay) Hide() {
	r.Visible = false
}

// Update is a no-op; the ray is posed every tick.
func (r *GravityRay) Update(UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the ray as a filled rotated bar.
func (r *GravityRay) Draw(ctx DrawContext) error {
	if !r.Visible || r.Length <= 0 {
		return nil
	}
	origin := ctx.ToScreen(r.X, r.Y)
	corners := draw.RectCorners(origin.X, origin.Y, r.Length, r.Thickness, 0, 0.5, r.Rotation)
	ctx.Canvas.DrawPolygon(corners[:], true)
	return nil
}
