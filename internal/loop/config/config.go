// Package config centralizes all tunable game parameters.
package config

import "time"

// View resolution - the visible viewport in world units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 640
	ViewHeight = 480
)

// Max render resolution in terminal cells. Larger terminals get a centered
// render area with a border around it.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Sprite sizes in world units.
const (
	AstronautWidth  = 20
	AstronautHeight = 32
	AsteroidSize    = 32
	NovaSize        = 32
)

// Astronaut physics (arcade integrator).
const (
	MaxVelocity = 1000.0 // Per-axis velocity cap
)

// Nova animation.
var NovaFlickerFrames = []int{0, 1, 2, 3, 2, 1}

const NovaFlickerFPS = 5

// Gravity gun particle emitter.
const (
	EmitterMaxParticles = 25
	EmitterLifespan     = 100 * time.Millisecond
	EmitterFrequency    = 15 * time.Millisecond
	EmitterSpeed        = 100.0 // Max particle speed on each axis
	EmitterGravity      = 100.0 // Downward pull on particles
)

// Parallax factor of the background relative to camera motion.
const BackgroundParallax = 0.2

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Inactivity
const (
	InactivityDisconnect = 120 * time.Second
)
