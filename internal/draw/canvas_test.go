package draw

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasRenderDiffsAgainstScreen(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetFloat(2, 3) // row 1, lower half

	var first bytes.Buffer
	c.Render(&first)
	assert.Contains(t, first.String(), string(BlockLowerHalf))

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String(), "unchanged frame writes nothing")

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	assert.Equal(t, "\033[2;3H ", third.String(), "only the erased cell is repainted")

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	assert.Equal(t, "\033[1;1H"+string(bytes.Repeat([]byte(" "), 10)), fourth.String()[:len("\033[1;1H")+10])
}

func TestCanvasRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Render(&bytes.Buffer{})

	c.SetOffset(3, 2)
	c.SetFloat(0, 0)
	c.SetFloat(0, 1)

	var out bytes.Buffer
	c.Render(&out)
	assert.Contains(t, out.String(), "\033[3;4H"+string(BlockFull))
}

func TestCanvasScaling(t *testing.T) {
	c := NewScaledCanvas(64, 24, 640, 480)
	c.SetFloat(320, 240)
	assert.True(t, c.Pixel(32, 24))

	col, row := c.LogicalToTerminal(320, 240)
	assert.Equal(t, 33, col)
	assert.Equal(t, 13, row)
}

func TestCanvasShapes(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)

	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 4, Y: 0})
	for x := 0; x <= 4; x++ {
		assert.True(t, c.Pixel(x, 0), "line pixel %d", x)
	}

	c.Clear()
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 6, Y: 1}, {X: 6, Y: 6}, {X: 1, Y: 6}}, true)
	assert.True(t, c.Pixel(3, 3), "filled interior")
	assert.False(t, c.Pixel(8, 8))

	c.Clear()
	c.DrawCircle(10, 10, 3, true)
	assert.True(t, c.Pixel(10, 10))
	assert.True(t, c.Pixel(10, 7))
	assert.False(t, c.Pixel(14, 10))

	c.Clear()
	c.DrawCircle(10, 10, 3, false)
	assert.False(t, c.Pixel(10, 10), "outline leaves the center empty")
	assert.True(t, c.Pixel(13, 10))

	c.Clear()
	c.DrawCircle(5, 5, 0.2, false)
	assert.True(t, c.Pixel(5, 5), "tiny circle collapses to a dot")
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	require.NotPanics(t, func() {
		c.SetFloat(-5, -5)
		c.SetFloat(100, 100)
		c.DrawLine(Point{X: -10, Y: -10}, Point{X: 10, Y: 10})
	})
	assert.False(t, c.Pixel(-1, 0))
}

func TestPointRotate(t *testing.T) {
	p := Point{X: 2, Y: 1}.Rotate(Point{X: 1, Y: 1}, math.Pi/2)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 2.0, p.Y, 1e-12)
}

func TestRectCorners(t *testing.T) {
	centered := RectCorners(0, 0, 4, 2, 0.5, 0.5, 0)
	assert.Equal(t, [4]Point{{X: -2, Y: -1}, {X: 2, Y: -1}, {X: 2, Y: 1}, {X: -2, Y: 1}}, centered)

	beam := RectCorners(10, 10, 5, 2, 0, 0.5, 0)
	assert.Equal(t, [4]Point{{X: 10, Y: 9}, {X: 15, Y: 9}, {X: 15, Y: 11}, {X: 10, Y: 11}}, beam)

	turned := RectCorners(10, 10, 5, 2, 0, 0.5, math.Pi/2)
	assert.InDelta(t, 11.0, turned[1].X, 1e-9)
	assert.InDelta(t, 15.0, turned[1].Y, 1e-9, "far end points down")
}

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)

	cw.WriteAt(1, 1, "hi")
	assert.Empty(t, out.String(), "nothing written before Flush")

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[2;3Hhi", out.String())

	out.Reset()
	cw.SetOffset(0, 0)
	cw.MoveCursor(5, 6)
	_, err := cw.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[6;5Hx", out.String())
}
