package quest

import "github.com/tomz197/gravityquest/internal/physics"

// Snapshot is the read-only view of a scene for one tick.
type Snapshot struct {
	Player  physics.Body
	Targets []physics.Body // Asteroids the gravity gun can lock onto
	Hazards []physics.Body // Novae, fatal on touch
	Active  bool           // Trigger held this tick
}

// RestartReason says why a tick asked for a restart.
type RestartReason int

const (
	RestartNone       RestartReason = iota
	RestartOutOfRange               // Closest target drifted beyond MaxRange
	RestartHazard                   // Player touched a hazard
)

func (r RestartReason) String() string {
	switch r {
	case RestartOutOfRange:
		return "out of range"
	case RestartHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Decision is everything the host has to apply after a tick.
type Decision struct {
	Target   int // Index into Snapshot.Targets, -1 when there is none
	Distance float64

	Force    Force
	Steer    bool    // Set player rotation to Rotation
	Rotation float64 // Heading toward the target
	Beam     Beam
	Emitter  Emitter

	Restart bool
	Reason  RestartReason
	Hazard  int // Index of the first hazard touched, -1 when none
}

// HasTarget reports whether a target was found this tick.
func (d Decision) HasTarget() bool {
	return d.Target >= 0
}

// Evaluate runs targeting and collision for one tick.
// The range check runs whether or not the trigger is held; the gravity gun
// only fires while it is. Hazards are checked against the player's rectangle
// in order, and the first hit is reported.
func Evaluate(s Snapshot, t Tuning) Decision {
	d := Decision{Target: -1, Hazard: -1}

	if idx, dist, ok := Nearest(s.Player, s.Targets); ok {
		d.Target = idx
		d.Distance = dist

		if dist > t.MaxRange {
			d.Restart = true
			d.Reason = RestartOutOfRange
		}

		if s.Active {
			d.Force, d.Rotation, d.Beam, d.Emitter = aim(s.Player, s.Targets[idx], dist, t)
			d.Steer = true
		}
	}

	for i, h := range s.Hazards {
		if physics.CollidesRectCircle(s.Player, h) {
			if !d.Restart {
				d.Restart = true
				d.Reason = RestartHazard
			}
			d.Hazard = i
			break
		}
	}

	return d
}
