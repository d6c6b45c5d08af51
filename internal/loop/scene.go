package loop

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/tomz197/gravityquest/internal/loop/config"
	"github.com/tomz197/gravityquest/internal/object"
	"github.com/tomz197/gravityquest/internal/physics"
	"github.com/tomz197/gravityquest/internal/quest"
)

// Background star field.
const (
	backgroundStars = 48
	backgroundTile  = 256.0
)

// novaSpawnAttempts bounds the re-draws for a nova landing on the astronaut.
const novaSpawnAttempts = 8

// Scene is one play-through. Nothing in it survives a restart: the next
// scene is built from scratch with fresh positions.
type Scene struct {
	Settings config.Settings
	Phase    quest.Phase
	Ticks    int

	Astronaut  *object.Astronaut
	Asteroids  []*object.Asteroid
	Novae      []*object.Nova
	Ray        *object.GravityRay
	Emitter    *object.GunEmitter // nil outside the visuals demo
	Background *object.Background // nil outside the visuals demo
	Camera     object.Camera

	hazards   *physics.SpatialGrid
	targets   []physics.Body
	nearby    []physics.Body
	nearbyIdx []int
}

// NewScene lays out a scene: targets and hazards at random integer positions
// inside the spawn margin, the astronaut at rest in the middle of the world.
// A nil rng is seeded from the clock.
func NewScene(s config.Settings, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sc := &Scene{
		Settings: s,
		Phase:    quest.Playing,
		Ray:      &object.GravityRay{},
	}

	for range s.Spawn.Asteroids {
		x, y := spawnPoint(s, rng)
		sc.Asteroids = append(sc.Asteroids, object.NewAsteroid(x, y, config.AsteroidSize, rng))
	}
	cx, cy := float64(s.World.Width)/2, float64(s.World.Height)/2
	for range s.Spawn.Novae {
		x, y := novaSpawnPoint(s, cx, cy, rng)
		nova := object.NewNova(x, y, config.NovaSize)
		if s.Visuals() {
			nova.Flicker = object.NewAnimation(config.NovaFlickerFrames, config.NovaFlickerFPS, true)
		}
		sc.Novae = append(sc.Novae, nova)
	}

	sc.Astronaut = object.NewAstronaut(cx, cy, config.AstronautWidth, config.AstronautHeight, config.MaxVelocity)

	if s.Visuals() {
		sc.Emitter = object.NewGunEmitter(object.EmitterOptions{
			MaxParticles: config.EmitterMaxParticles,
			Lifespan:     config.EmitterLifespan,
			Frequency:    config.EmitterFrequency,
			Speed:        config.EmitterSpeed,
			Gravity:      config.EmitterGravity,
		})
		sc.Background = object.NewBackground(backgroundStars, backgroundTile, config.BackgroundParallax, rng)
	}

	sc.indexHazards()
	sc.followCamera()
	return sc
}

// spawnPoint picks an integer point inside the spawn margin, bounds included.
func spawnPoint(s config.Settings, rng *rand.Rand) (float64, float64) {
	m := s.Spawn.Margin
	x := m + rng.Intn(s.World.Width-2*m+1)
	y := m + rng.Intn(s.World.Height-2*m+1)
	return float64(x), float64(y)
}

// novaSpawnPoint picks a nova position that does not already touch the
// astronaut's spawn point. It gives up after a few draws and keeps the last.
func novaSpawnPoint(s config.Settings, cx, cy float64, rng *rand.Rand) (float64, float64) {
	keepOut := math.Hypot(config.AstronautWidth, config.AstronautHeight) / 2
	var x, y float64
	for range novaSpawnAttempts {
		x, y = spawnPoint(s, rng)
		if !physics.CirclesOverlap(x, y, config.NovaSize/2, cx, cy, keepOut) {
			break
		}
	}
	return x, y
}

// indexHazards buckets the novae. Cells are as wide as the furthest a nova
// center can be from the astronaut while still touching it, so a 3x3 query
// around the astronaut sees every candidate.
func (sc *Scene) indexHazards() {
	player := sc.Astronaut.Body()
	cell := 1.0
	for _, n := range sc.Novae {
		cell = math.Max(cell, physics.BroadPhaseReach(player, n.Body()))
	}

	sc.hazards = physics.NewSpatialGrid(float64(sc.Settings.World.Width), float64(sc.Settings.World.Height), cell)
	for i, n := range sc.Novae {
		sc.hazards.Insert(n.X, n.Y, i)
	}
}

// nearbyHazards returns the hazards close enough to touch the player, in
// scene order, with their indices into Novae.
func (sc *Scene) nearbyHazards(player physics.Body) ([]physics.Body, []int) {
	sc.nearbyIdx = sc.nearbyIdx[:0]
	sc.hazards.QueryAround(player.X, player.Y, func(i int) bool {
		sc.nearbyIdx = append(sc.nearbyIdx, i)
		return false
	})
	slices.Sort(sc.nearbyIdx)

	sc.nearby = sc.nearby[:0]
	for _, i := range sc.nearbyIdx {
		sc.nearby = append(sc.nearby, sc.Novae[i].Body())
	}
	return sc.nearby, sc.nearbyIdx
}

// snapshot collects the read-only view the decision step works from.
func (sc *Scene) snapshot(active bool) (quest.Snapshot, []int) {
	player := sc.Astronaut.Body()
	sc.targets = object.Bodies(sc.targets, sc.Asteroids)
	hazards, idx := sc.nearbyHazards(player)
	return quest.Snapshot{
		Player:  player,
		Targets: sc.targets,
		Hazards: hazards,
		Active:  active,
	}, idx
}

// objects lists the scene's entities in draw order.
func (sc *Scene) objects() []object.Object {
	objs := make([]object.Object, 0, len(sc.Asteroids)+len(sc.Novae)+4)
	if sc.Background != nil {
		objs = append(objs, sc.Background)
	}
	objs = append(objs, sc.Ray)
	for _, a := range sc.Asteroids {
		objs = append(objs, a)
	}
	for _, n := range sc.Novae {
		objs = append(objs, n)
	}
	objs = append(objs, sc.Astronaut)
	if sc.Emitter != nil {
		objs = append(objs, sc.Emitter)
	}
	return objs
}

// followCamera keeps the astronaut in view and scrolls the background.
func (sc *Scene) followCamera() {
	view := object.Screen{Width: config.ViewWidth, Height: config.ViewHeight}
	world := object.Screen{Width: sc.Settings.World.Width, Height: sc.Settings.World.Height}
	sc.Camera.Follow(sc.Astronaut.X, sc.Astronaut.Y, view, world)
	if sc.Background != nil {
		sc.Background.Track(sc.Camera)
	}
}

// release returns pooled resources held by the scene.
func (sc *Scene) release() {
	if sc.Emitter != nil {
		sc.Emitter.Reset()
	}
}
