package object

import (
	"math"

	"github.com/tomz197/gravityquest/internal/draw"
	"github.com/tomz197/gravityquest/internal/physics"
)

// Astronaut frames.
const (
	FrameIdle   = 0
	FrameFiring = 1
)

// Astronaut is the player. It drifts freely and is only moved by the
// acceleration the gravity gun sets.
type Astronaut struct {
	X, Y     float64 // Position (center)
	VX, VY   float64 // Velocity
	AX, AY   float64 // Acceleration, held until changed
	Rotation float64 // Radians, 0 = facing right

	Width, Height float64
	MaxVelocity   float64 // Per-axis velocity cap
	Frame         int     // FrameIdle or FrameFiring
}

// NewAstronaut creates an astronaut at rest at the given position.
func NewAstronaut(x, y, width, height, maxVelocity float64) *Astronaut {
	return &Astronaut{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		MaxVelocity: maxVelocity,
	}
}

// Body returns the astronaut's collision rectangle.
func (a *Astronaut) Body() physics.Body {
	b := physics.NewBody(a.X, a.Y, a.Width, a.Height)
	b.Rotation = a.Rotation
	return b
}

// SetAcceleration replaces the current acceleration.
func (a *Astronaut) SetAcceleration(ax, ay float64) {
	a.AX = ax
	a.AY = ay
}

// Update integrates acceleration into velocity and velocity into position.
func (a *Astronaut) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	a.VX = physics.Clamp(a.VX+a.AX*dt, -a.MaxVelocity, a.MaxVelocity)
	a.VY = physics.Clamp(a.VY+a.AY*dt, -a.MaxVelocity, a.MaxVelocity)

	a.X += a.VX * dt
	a.Y += a.VY * dt

	return false, nil
}

// Draw renders the astronaut as a rotated box with a visor line pointing
// along its heading. The box is filled while the gun is firing.
func (a *Astronaut) Draw(ctx DrawContext) error {
	center := ctx.ToScreen(a.X, a.Y)
	corners := draw.RectCorners(center.X, center.Y, a.Width, a.Height, 0.5, 0.5, a.Rotation)
	ctx.Canvas.DrawPolygon(corners[:], a.Frame == FrameFiring)

	reach := math.Max(a.Width, a.Height) * 0.75
	visor := draw.Point{X: center.X + math.Cos(a.Rotation)*reach, Y: center.Y + math.Sin(a.Rotation)*reach}
	ctx.Canvas.DrawLine(center, visor)

	return nil
}
