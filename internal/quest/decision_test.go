package quest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/gravityquest/internal/physics"
)

func astronaut(x, y float64) physics.Body { return physics.NewBody(x, y, 20, 32) }
func asteroid(x, y float64) physics.Body  { return physics.NewCircle(x, y, 16) }
func nova(x, y float64) physics.Body      { return physics.NewCircle(x, y, 16) }

func TestNearest(t *testing.T) {
	player := astronaut(0, 0)

	idx, dist, ok := Nearest(player, []physics.Body{asteroid(0, 200), asteroid(100, 0), asteroid(-150, 0)})
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 100.0, dist, 1e-12)

	idx, _, ok = Nearest(player, []physics.Body{asteroid(0, 50), asteroid(50, 0), asteroid(0, -50)})
	require.True(t, ok)
	assert.Equal(t, 0, idx, "first encountered wins a tie")

	idx, dist, ok = Nearest(player, nil)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Zero(t, dist)
}

func TestEvaluateActiveForce(t *testing.T) {
	s := Snapshot{
		Player:  astronaut(0, 0),
		Targets: []physics.Body{asteroid(0, 200), asteroid(100, 0)},
		Active:  true,
	}

	d := Evaluate(s, DefaultTuning())

	assert.Equal(t, 1, d.Target)
	assert.InDelta(t, 100.0, d.Distance, 1e-12)
	assert.False(t, d.Restart)
	assert.Equal(t, RestartNone, d.Reason)

	assert.InDelta(t, 18.0, d.Force.Magnitude, 1e-9)
	assert.InDelta(t, 1.0, d.Force.DirX, 1e-12)
	assert.InDelta(t, 0.0, d.Force.DirY, 1e-12)
	assert.InDelta(t, 18.0, d.Force.X(), 1e-9)

	assert.True(t, d.Steer)
	assert.InDelta(t, 0.0, d.Rotation, 1e-12)

	assert.True(t, d.Beam.Visible)
	assert.Equal(t, 0.0, d.Beam.X)
	assert.Equal(t, 0.0, d.Beam.Y)
	assert.InDelta(t, 84.0, d.Beam.Length, 1e-9)
	assert.InDelta(t, 9.0, d.Beam.Thickness, 1e-9)

	assert.True(t, d.Emitter.On)
	assert.InDelta(t, 84.0, d.Emitter.X, 1e-9)
	assert.InDelta(t, 0.0, d.Emitter.Y, 1e-9)
	assert.InDelta(t, 0.6, d.Emitter.Alpha, 1e-9)
}

func TestEvaluateDirectionIsUnit(t *testing.T) {
	s := Snapshot{Player: astronaut(10, 10), Targets: []physics.Body{asteroid(40, 50)}, Active: true}

	d := Evaluate(s, DefaultTuning())

	assert.InDelta(t, 1.0, math.Hypot(d.Force.DirX, d.Force.DirY), 1e-12)
	assert.InDelta(t, 0.6, d.Force.DirX, 1e-12)
	assert.InDelta(t, 0.8, d.Force.DirY, 1e-12)
	assert.InDelta(t, math.Atan2(40, 30), d.Rotation, 1e-12)
	assert.InDelta(t, d.Rotation, d.Beam.Rotation, 1e-12)
}

func TestEvaluateInactive(t *testing.T) {
	s := Snapshot{Player: astronaut(0, 0), Targets: []physics.Body{asteroid(100, 0)}}

	d := Evaluate(s, DefaultTuning())

	assert.Equal(t, 0, d.Target)
	assert.Zero(t, d.Force.Magnitude)
	assert.False(t, d.Steer)
	assert.False(t, d.Beam.Visible)
	assert.False(t, d.Emitter.On)
	assert.False(t, d.Restart)
}

func TestEvaluateOutOfRangeRestartsRegardlessOfInput(t *testing.T) {
	for _, active := range []bool{false, true} {
		s := Snapshot{Player: astronaut(0, 0), Targets: []physics.Body{asteroid(300, 0)}, Active: active}

		d := Evaluate(s, DefaultTuning())

		assert.True(t, d.Restart, "active=%v", active)
		assert.Equal(t, RestartOutOfRange, d.Reason)
		assert.InDelta(t, 300.0, d.Distance, 1e-12)
		assert.Zero(t, d.Force.Magnitude, "force never goes negative")
		assert.Zero(t, d.Beam.Thickness)
		if active {
			assert.Zero(t, d.Emitter.Alpha, "alpha stays in [0, 1] past the range")
		}
	}
}

func TestEvaluateAtExactRangeKeepsPlaying(t *testing.T) {
	s := Snapshot{Player: astronaut(0, 0), Targets: []physics.Body{asteroid(250, 0)}, Active: true}

	d := Evaluate(s, DefaultTuning())

	assert.False(t, d.Restart)
	assert.Zero(t, d.Force.Magnitude)
	assert.Zero(t, d.Force.DirX)
	assert.True(t, d.Beam.Visible)
	assert.InDelta(t, 234.0, d.Beam.Length, 1e-9)
}

func TestEvaluatePointBlank(t *testing.T) {
	s := Snapshot{Player: astronaut(5, 5), Targets: []physics.Body{asteroid(5, 5)}, Active: true}

	d := Evaluate(s, DefaultTuning())

	assert.InDelta(t, 30.0, d.Force.Magnitude, 1e-12)
	assert.Equal(t, 1.0, d.Force.DirX)
	assert.Zero(t, d.Beam.Length, "length clamps at zero inside the target")
	assert.InDelta(t, 15.0, d.Beam.Thickness, 1e-12)
}

func TestEvaluateNoTargets(t *testing.T) {
	s := Snapshot{Player: astronaut(0, 0), Active: true}

	d := Evaluate(s, DefaultTuning())

	assert.False(t, d.HasTarget())
	assert.False(t, d.Restart)
	assert.False(t, d.Steer)
	assert.False(t, d.Beam.Visible)
	assert.Zero(t, d.Force.Magnitude)
}

func TestEvaluateHazard(t *testing.T) {
	s := Snapshot{
		Player:  astronaut(0, 0),
		Targets: []physics.Body{asteroid(100, 0)},
		Hazards: []physics.Body{nova(200, 200), nova(20, 0), nova(-20, 0)},
	}

	d := Evaluate(s, DefaultTuning())

	assert.True(t, d.Restart)
	assert.Equal(t, RestartHazard, d.Reason)
	assert.Equal(t, 1, d.Hazard)
}

func TestEvaluateHazardMissed(t *testing.T) {
	s := Snapshot{
		Player:  astronaut(0, 0),
		Targets: []physics.Body{asteroid(100, 0)},
		Hazards: []physics.Body{nova(0, 32), nova(0, 60)},
	}

	d := Evaluate(s, DefaultTuning())

	assert.False(t, d.Restart, "tangent to the top edge is not a hit")
	assert.Equal(t, -1, d.Hazard)
}

func TestEvaluateRangeWinsOverHazard(t *testing.T) {
	s := Snapshot{
		Player:  astronaut(0, 0),
		Targets: []physics.Body{asteroid(400, 0)},
		Hazards: []physics.Body{nova(0, 10)},
	}

	d := Evaluate(s, DefaultTuning())

	assert.True(t, d.Restart)
	assert.Equal(t, RestartOutOfRange, d.Reason)
	assert.Equal(t, 0, d.Hazard)
}

func TestEvaluateHazardWithoutTargets(t *testing.T) {
	s := Snapshot{Player: astronaut(0, 0), Hazards: []physics.Body{nova(0, 0)}}

	d := Evaluate(s, DefaultTuning())

	assert.True(t, d.Restart)
	assert.Equal(t, RestartHazard, d.Reason)
}

func TestEvaluateCustomTuning(t *testing.T) {
	tuning := Tuning{MaxRange: 100, MaxForce: 10, MaxBeamThickness: 4}
	s := Snapshot{Player: astronaut(0, 0), Targets: []physics.Body{asteroid(0, 50)}, Active: true}

	d := Evaluate(s, tuning)

	assert.InDelta(t, 5.0, d.Force.Magnitude, 1e-9)
	assert.InDelta(t, 2.0, d.Beam.Thickness, 1e-9)
	assert.InDelta(t, math.Pi/2, d.Rotation, 1e-12)

	s.Targets[0] = asteroid(0, 150)
	assert.True(t, Evaluate(s, tuning).Restart)
}

func TestNextPhase(t *testing.T) {
	assert.Equal(t, Playing, NextPhase(Playing, Decision{}))
	assert.Equal(t, Restarting, NextPhase(Playing, Decision{Restart: true}))
	assert.Equal(t, Playing, NextPhase(Restarting, Decision{Restart: true}))
	assert.Equal(t, "restarting", Restarting.String())
	assert.Equal(t, "hazard", RestartHazard.String())
}

func TestTuningValidate(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())

	bad := DefaultTuning()
	bad.MaxRange = 0
	assert.ErrorContains(t, bad.Validate(), "max_range")

	bad = DefaultTuning()
	bad.MaxForce = -1
	assert.ErrorContains(t, bad.Validate(), "max_force")

	bad = DefaultTuning()
	bad.MaxBeamThickness = 0
	assert.ErrorContains(t, bad.Validate(), "max_beam_thickness")
}
