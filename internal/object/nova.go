package object

import (
	"github.com/tomz197/gravityquest/internal/physics"
)

// Nova is a hazard. Touching one restarts the scene.
type Nova struct {
	X, Y    float64
	Radius  float64
	Flicker *Animation // nil keeps the nova on its brightest frame
}

// NewNova creates a nova of the given diameter.
func NewNova(x, y, size float64) *Nova {
	return &Nova{X: x, Y: y, Radius: size * 0.5}
}

// Body returns the nova's collision circle.
func (n *Nova) Body() physics.Body {
	return physics.NewCircle(n.X, n.Y, n.Radius)
}

// Update advances the flicker animation.
func (n *Nova) Update(ctx UpdateContext) (bool, error) {
	if n.Flicker != nil {
		n.Flicker.Advance(ctx.Delta)
	}
	return false, nil
}

// Draw renders the nova as a glowing disc. Higher flicker frames have a
// larger solid core.
func (n *Nova) Draw(ctx DrawContext) error {
	center := ctx.ToScreen(n.X, n.Y)
	ctx.Canvas.DrawCircle(center.X, center.Y, n.Radius, false)

	frame := 3
	if n.Flicker != nil {
		frame = n.Flicker.Frame()
	}
	if frame > 0 {
		ctx.Canvas.DrawCircle(center.X, center.Y, n.Radius*float64(frame)/4, true)
	}
	return nil
}
