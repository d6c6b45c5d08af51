package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/gravityquest/internal/object"
	"github.com/tomz197/gravityquest/internal/quest"
)

// advance runs one tick and returns the scene to use for the next one.
// Bodies move first with the acceleration chosen last tick, then the
// decision step looks at where everything ended up. A restart hands back a
// fresh scene built from the same settings.
func advance(sc *Scene, active bool, dt time.Duration, rng *rand.Rand) (*Scene, quest.Decision, error) {
	ctx := object.UpdateContext{Delta: dt, Rand: rng}
	for _, obj := range sc.objects() {
		if _, err := obj.Update(ctx); err != nil {
			return sc, quest.Decision{}, err
		}
	}
	sc.Ticks++

	snap, hazardIdx := sc.snapshot(active)
	d := quest.Evaluate(snap, sc.Settings.Targeting)
	if d.Hazard >= 0 {
		d.Hazard = hazardIdx[d.Hazard]
	}

	sc.apply(d, active)
	sc.followCamera()

	sc.Phase = quest.NextPhase(sc.Phase, d)
	if sc.Phase == quest.Restarting {
		sc.release()
		return NewScene(sc.Settings, rng), d, nil
	}
	return sc, d, nil
}

// apply carries a decision out on the scene's entities.
func (sc *Scene) apply(d quest.Decision, active bool) {
	a := sc.Astronaut
	a.SetAcceleration(d.Force.X(), d.Force.Y())
	if d.Steer {
		a.Rotation = d.Rotation
	}

	if d.Beam.Visible {
		sc.Ray.Show(d.Beam.X, d.Beam.Y, d.Beam.Rotation, d.Beam.Length, d.Beam.Thickness)
	} else {
		sc.Ray.Hide()
	}

	if sc.Emitter != nil {
		if d.Emitter.On {
			sc.Emitter.Start(d.Emitter.X, d.Emitter.Y, d.Emitter.Alpha)
		} else {
			sc.Emitter.Stop()
		}
	}

	a.Frame = object.FrameIdle
	if sc.Settings.Visuals() && active && d.HasTarget() {
		a.Frame = object.FrameFiring
	}
}
