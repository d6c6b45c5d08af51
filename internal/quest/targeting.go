// Package quest holds the per-tick decision logic of Gravity Quest: picking
// the closest asteroid, deriving the gravity gun force and beam from it, and
// deciding when the scene has to restart.
package quest

import (
	"math"

	"github.com/tomz197/gravityquest/internal/physics"
)

// Nearest returns the index of the target closest to the player and its
// center distance. Ties go to the first target encountered. ok is false when
// there are no targets.
func Nearest(player physics.Body, targets []physics.Body) (index int, distance float64, ok bool) {
	index = -1
	distance = math.MaxFloat64
	for i, t := range targets {
		d := physics.DistanceBetween(player, t)
		if d < distance {
			index = i
			distance = d
		}
	}
	if index < 0 {
		return -1, 0, false
	}
	return index, distance, true
}

// Force is an acceleration command for the host integrator.
type Force struct {
	Magnitude  float64
	DirX, DirY float64 // Unit direction, zero when Magnitude is zero
}

// X returns the horizontal acceleration component.
func (f Force) X() float64 { return f.DirX * f.Magnitude }

// Y returns the vertical acceleration component.
func (f Force) Y() float64 { return f.DirY * f.Magnitude }

// Beam is the pose of the gravity ray drawn from the player to its target.
// The beam is anchored at its left edge, vertically centered.
type Beam struct {
	Visible   bool
	X, Y      float64
	Rotation  float64
	Length    float64
	Thickness float64
}

// Emitter is the pose of the particle spray where the beam meets the target.
type Emitter struct {
	On    bool
	X, Y  float64
	Alpha float64
}

// aim computes the gravity gun commands for a held trigger.
func aim(player, target physics.Body, distance float64, t Tuning) (Force, float64, Beam, Emitter) {
	falloff := t.falloff(distance)
	magnitude := physics.Clamp(t.MaxForce*falloff, 0, t.MaxForce)

	_, _, angle := physics.AccelerationToward(player, target, magnitude)
	sin, cos := math.Sincos(angle)

	force := Force{Magnitude: magnitude}
	if magnitude > 0 {
		force.DirX, force.DirY = cos, sin
	}

	beam := Beam{
		Visible:   true,
		X:         player.X,
		Y:         player.Y,
		Rotation:  angle,
		Length:    math.Max(0, distance-target.Radius()),
		Thickness: physics.Clamp(t.MaxBeamThickness*falloff, 0, t.MaxBeamThickness),
	}

	emitter := Emitter{
		On:    true,
		X:     target.X - cos*target.Radius(),
		Y:     target.Y - sin*target.Radius(),
		Alpha: physics.Clamp(falloff, 0, 1),
	}

	return force, angle, beam, emitter
}
