package object

import (
	"time"
)

// EmitterOptions configures a GunEmitter.
type EmitterOptions struct {
	MaxParticles int
	Lifespan     time.Duration
	Frequency    time.Duration // One particle per Frequency while on
	Speed        float64       // Max initial speed per axis
	Gravity      float64
}

// GunEmitter throws sparks from the point where the gravity beam meets its
// target. It owns its particles.
type GunEmitter struct {
	X, Y  float64
	Alpha float64 // 0 hides the sparks, 1 shows all of them
	On    bool

	opts      EmitterOptions
	particles []*Particle
	timer     time.Duration
}

// NewGunEmitter creates a stopped emitter.
func NewGunEmitter(opts EmitterOptions) *GunEmitter {
	return &GunEmitter{
		opts:      opts,
		particles: make([]*Particle, 0, opts.MaxParticles),
	}
}

// Start turns the emitter on at the given point.
func (e *GunEmitter) Start(x, y, alpha float64) {
	if !e.On {
		e.timer = 0
	}
	e.On = true
	e.X, e.Y = x, y
	e.Alpha = alpha
}

// Stop turns the emitter off. Live particles finish their lifespan.
func (e *GunEmitter) Stop() {
	e.On = false
}

// Alive returns the number of live particles.
func (e *GunEmitter) Alive() int {
	return len(e.particles)
}

// Update ages the particles and emits new ones while on.
func (e *GunEmitter) Update(ctx UpdateContext) (bool, error) {
	live := e.particles[:0]
	for _, p := range e.particles {
		remove, err := p.Update(ctx)
		if err != nil {
			return false, err
		}
		if remove {
			ReleaseObject(p)
			continue
		}
		live = append(live, p)
	}
	clear(e.particles[len(live):])
	e.particles = live

	if !e.On || e.opts.Frequency <= 0 {
		return false, nil
	}

	e.timer += ctx.Delta
	for e.timer >= e.opts.Frequency {
		e.timer -= e.opts.Frequency
		if len(e.particles) >= e.opts.MaxParticles {
			continue
		}
		vx, vy := 0.0, 0.0
		if ctx.Rand != nil {
			vx = (ctx.Rand.Float64()*2 - 1) * e.opts.Speed
			vy = (ctx.Rand.Float64()*2 - 1) * e.opts.Speed
		}
		e.particles = append(e.particles,
			NewParticle(e.X, e.Y, vx, vy, e.opts.Lifespan.Seconds(), e.opts.Gravity))
	}

	return false, nil
}

// Draw renders the particles. A faint emitter draws only its freshest sparks.
func (e *GunEmitter) Draw(ctx DrawContext) error {
	if e.Alpha <= 0 {
		return nil
	}
	for _, p := range e.particles {
		if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 1-e.Alpha {
			continue
		}
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reset releases every particle and stops the emitter.
func (e *GunEmitter) Reset() {
	for _, p := range e.particles {
		ReleaseObject(p)
	}
	clear(e.particles)
	e.particles = e.particles[:0]
	e.On = false
	e.timer = 0
}
