// Package draw renders to ANSI terminals using half-block characters.
package draw

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Rotate returns p rotated by angle radians around origin.
func (p Point) Rotate(origin Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// RectCorners returns the four corners of a w x h rectangle rotated by angle
// around its anchor. anchorX/anchorY are fractions of the size (0.5, 0.5 is
// the center), matching sprite anchors.
func RectCorners(x, y, w, h, anchorX, anchorY, angle float64) [4]Point {
	left := x - w*anchorX
	top := y - h*anchorY
	origin := Point{X: x, Y: y}
	return [4]Point{
		Point{X: left, Y: top}.Rotate(origin, angle),
		Point{X: left + w, Y: top}.Rotate(origin, angle),
		Point{X: left + w, Y: top + h}.Rotate(origin, angle),
		Point{X: left, Y: top + h}.Rotate(origin, angle),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
