package quest

import "fmt"

// Tuning holds the thresholds of the gravity gun.
type Tuning struct {
	MaxRange         float64 `yaml:"max_range"`          // Beyond this the target is lost and the scene restarts
	MaxForce         float64 `yaml:"max_force"`          // Acceleration at point-blank range
	MaxBeamThickness float64 `yaml:"max_beam_thickness"` // Beam thickness at point-blank range
}

// DefaultTuning returns the stock gravity gun thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		MaxRange:         250,
		MaxForce:         30,
		MaxBeamThickness: 15,
	}
}

// Validate reports the first non-positive threshold.
func (t Tuning) Validate() error {
	switch {
	case t.MaxRange <= 0:
		return fmt.Errorf("max_range must be positive, got %v", t.MaxRange)
	case t.MaxForce <= 0:
		return fmt.Errorf("max_force must be positive, got %v", t.MaxForce)
	case t.MaxBeamThickness <= 0:
		return fmt.Errorf("max_beam_thickness must be positive, got %v", t.MaxBeamThickness)
	}
	return nil
}

// falloff is 1 at point-blank range and 0 at MaxRange.
func (t Tuning) falloff(distance float64) float64 {
	return 1 - distance/t.MaxRange
}
