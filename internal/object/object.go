package object

import (
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/gravityquest/internal/draw"
	"github.com/tomz197/gravityquest/internal/physics"
)

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta time.Duration
	Rand  *rand.Rand
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text)
	Camera Camera       // Camera position for viewport offset
	View   Screen       // Viewport dimensions (what the camera sees)
}

// ToScreen converts world coordinates to view coordinates.
func (ctx DrawContext) ToScreen(x, y float64) draw.Point {
	return WorldToScreen(x, y, ctx.Camera, ctx.View)
}

// Screen represents a width/height pair in world units.
type Screen struct {
	Width  int
	Height int
}

// Camera represents the viewport center in world space.
type Camera struct {
	X, Y float64
}

// Follow centers the camera on (x, y) while keeping the view inside the world.
// A world smaller than the view keeps the camera on the world center.
func (c *Camera) Follow(x, y float64, view, world Screen) {
	c.X = followAxis(x, float64(view.Width), float64(world.Width))
	c.Y = followAxis(y, float64(view.Height), float64(world.Height))
}

func followAxis(target, view, world float64) float64 {
	if world <= view {
		return world / 2
	}
	return physics.Clamp(target, view/2, world-view/2)
}

// WorldToScreen converts world coordinates to view coordinates relative to camera.
func WorldToScreen(worldX, worldY float64, cam Camera, view Screen) draw.Point {
	return draw.Point{
		X: worldX - (cam.X - float64(view.Width)/2),
		Y: worldY - (cam.Y - float64(view.Height)/2),
	}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Canvas.
	Draw(ctx DrawContext) error
}

// Bodied is implemented by objects that take part in targeting or collision.
type Bodied interface {
	Body() physics.Body
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj any) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Bodies collects the bodies of a list of objects into dst, reusing its storage.
func Bodies[T Bodied](dst []physics.Body, objs []T) []physics.Body {
	dst = dst[:0]
	for _, o := range objs {
		dst = append(dst, o.Body())
	}
	return dst
}
