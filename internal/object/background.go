package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/gravityquest/internal/draw"
)

// Background is a tiled star field that scrolls slower than the camera.
type Background struct {
	Stars    []draw.Point // Star positions inside one tile
	Tile     float64      // Tile edge length
	Parallax float64      // Fraction of camera motion the field follows

	OffsetX, OffsetY float64
	lastCam          Camera
	tracking         bool
}

// NewBackground scatters count stars over a square tile.
func NewBackground(count int, tile, parallax float64, rng *rand.Rand) *Background {
	stars := make([]draw.Point, count)
	for i := range stars {
		stars[i] = draw.Point{X: rng.Float64() * tile, Y: rng.Float64() * tile}
	}
	return &Background{Stars: stars, Tile: tile, Parallax: parallax}
}

// Track shifts the field by the parallax share of the camera's motion since
// the previous call.
func (b *Background) Track(cam Camera) {
	if b.tracking {
		b.OffsetX += (cam.X - b.lastCam.X) * b.Parallax
		b.OffsetY += (cam.Y - b.lastCam.Y) * b.Parallax
	}
	b.lastCam = cam
	b.tracking = true
}

// Update is a no-op; the field moves through Track.
func (b *Background) Update(UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders every star tile that overlaps the view.
func (b *Background) Draw(ctx DrawContext) error {
	if b.Tile <= 0 {
		return nil
	}
	viewW := float64(ctx.View.Width)
	viewH := float64(ctx.View.Height)
	origin := ctx.ToScreen(b.OffsetX, b.OffsetY)

	for _, s := range b.Stars {
		x0 := wrap(origin.X+s.X, b.Tile)
		y0 := wrap(origin.Y+s.Y, b.Tile)
		for x := x0; x < viewW; x += b.Tile {
			for y := y0; y < viewH; y += b.Tile {
				ctx.Canvas.SetFloat(x, y)
			}
		}
	}
	return nil
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
