package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/gravityquest/internal/draw"
	"github.com/tomz197/gravityquest/internal/physics"
)

// Asteroid is a gravity gun target. Asteroids never move.
type Asteroid struct {
	X, Y     float64   // Position (center)
	Radius   float64   // Collision radius
	Angle    float64   // Outline rotation
	Vertices []float64 // Vertex distances from center (for irregular shape)
}

// NewAsteroid creates an asteroid with an irregular outline.
func NewAsteroid(x, y, size float64, rng *rand.Rand) *Asteroid {
	radius := size * 0.5

	// 8-12 vertices, each within ±25% of the radius
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = radius * (0.75 + rng.Float64()*0.5)
	}

	return &Asteroid{
		X:        x,
		Y:        y,
		Radius:   radius,
		Angle:    rng.Float64() * 2 * math.Pi,
		Vertices: vertices,
	}
}

// Body returns the asteroid's collision circle.
func (a *Asteroid) Body() physics.Body {
	return physics.NewCircle(a.X, a.Y, a.Radius)
}

// Update is a no-op; asteroids are static.
func (a *Asteroid) Update(UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the asteroid as an irregular polygon.
func (a *Asteroid) Draw(ctx DrawContext) error {
	center := ctx.ToScreen(a.X, a.Y)
	n := len(a.Vertices)
	points := make([]draw.Point, n)
	for i, dist := range a.Vertices {
		angle := a.Angle + float64(i)*2*math.Pi/float64(n)
		points[i] = draw.Point{
			X: center.X + math.Cos(angle)*dist,
			Y: center.Y + math.Sin(angle)*dist,
		}
	}
	ctx.Canvas.DrawPolygon(points, false)
	return nil
}
