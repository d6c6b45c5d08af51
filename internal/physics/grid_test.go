package physics

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(g *SpatialGrid, x, y float64) []int {
	var got []int
	g.QueryAround(x, y, func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)
	return got
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(400, 300, 40)
	g.Insert(50, 50, 0)   // cell (1,1)
	g.Insert(90, 90, 1)   // cell (2,2)
	g.Insert(200, 200, 2) // cell (5,5)
	g.Insert(10, 10, 3)   // cell (0,0)

	assert.Equal(t, []int{0, 1, 3}, collect(g, 60, 60))
	assert.Equal(t, []int{2}, collect(g, 210, 190))
	assert.Empty(t, collect(g, 390, 10))
}

func TestSpatialGridDoesNotWrap(t *testing.T) {
	g := NewSpatialGrid(400, 300, 40)
	g.Insert(395, 150, 0)

	assert.Empty(t, collect(g, 5, 150), "opposite edge must not see the item")
	assert.Equal(t, []int{0}, collect(g, 380, 150))
}

func TestSpatialGridClampsOutsideWorld(t *testing.T) {
	g := NewSpatialGrid(400, 300, 40)
	g.Insert(-100, -100, 0)
	g.Insert(20, 20, 1)

	assert.Equal(t, []int{0, 1}, collect(g, -500, 10))
}

func TestSpatialGridStopsEarlyAndClears(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	for i := 0; i < 5; i++ {
		g.Insert(10, 10, i)
	}

	calls := 0
	g.QueryAround(10, 10, func(int) bool {
		calls++
		return calls == 2
	})
	assert.Equal(t, 2, calls)

	g.Clear()
	assert.Empty(t, collect(g, 10, 10))
}

func TestNewSpatialGridMinimumSize(t *testing.T) {
	g := NewSpatialGrid(0, 0, 0)
	require.NotNil(t, g)
	assert.Equal(t, 1.0, g.CellSize())
	g.Insert(5, 5, 9)
	assert.Equal(t, []int{9}, collect(g, 0, 0))
}
