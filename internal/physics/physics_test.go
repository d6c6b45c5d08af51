package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceBetween(t *testing.T) {
	a := NewBody(0, 0, 10, 10)
	b := NewBody(3, 4, 10, 10)
	assert.InDelta(t, 5.0, DistanceBetween(a, b), 1e-12)
	assert.InDelta(t, 25.0, DistanceSquared(a.X, a.Y, b.X, b.Y), 1e-12)
}

func TestAngleBetween(t *testing.T) {
	origin := NewBody(10, 10, 1, 1)
	tests := []struct {
		name string
		to   Body
		want float64
	}{
		{"right", NewBody(20, 10, 1, 1), 0},
		{"down", NewBody(10, 20, 1, 1), math.Pi / 2},
		{"left", NewBody(0, 10, 1, 1), math.Pi},
		{"up", NewBody(10, 0, 1, 1), -math.Pi / 2},
		{"same point", NewBody(10, 10, 1, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleBetween(origin, tt.to), 1e-12)
		})
	}
}

func TestAccelerationToward(t *testing.T) {
	from := NewBody(0, 0, 1, 1)
	to := NewBody(30, 40, 1, 1)

	ax, ay, angle := AccelerationToward(from, to, 10)
	assert.InDelta(t, 6.0, ax, 1e-9)
	assert.InDelta(t, 8.0, ay, 1e-9)
	assert.InDelta(t, math.Atan2(40, 30), angle, 1e-12)

	ax, ay, _ = AccelerationToward(from, to, 0)
	assert.Zero(t, ax)
	assert.Zero(t, ay)
}

func TestNewBodyClampsNegativeSize(t *testing.T) {
	b := NewBody(1, 2, -4, -8)
	assert.Zero(t, b.HalfWidth)
	assert.Zero(t, b.HalfHeight)

	c := NewCircle(0, 0, 6)
	assert.Equal(t, 6.0, c.Radius())
	assert.Equal(t, 12.0, c.Width())
	assert.Equal(t, 12.0, c.Height())
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(0, 0, 2, 3, 0, 2))
	assert.False(t, CirclesOverlap(0, 0, 2, 4, 0, 2))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 30))
	assert.Equal(t, 30.0, Clamp(31, 0, 30))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 30))
}
