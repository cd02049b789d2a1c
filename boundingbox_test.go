package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxContains(t *testing.T) {
	assert.True(t, square.Contains(Point{0, 0}))
	assert.True(t, square.Contains(Point{10, 10}))
	assert.True(t, square.Contains(Point{5, 10}))
	assert.False(t, square.Contains(Point{10.5, 5}))
	assert.False(t, square.Contains(Point{5, -0.1}))
}

func TestBoundingBoxIntersects(t *testing.T) {
	right := BoundingBox{Left: 10, Top: 0, Right: 20, Bottom: 10}
	overlap := BoundingBox{Left: 9, Top: 9, Right: 12, Bottom: 12}

	assert.False(t, square.Intersects(right), "shared edge is not an overlap")
	assert.True(t, square.Touches(right))
	assert.True(t, square.Intersects(overlap))
	assert.False(t, square.Touches(BoundingBox{Left: 11, Top: 0, Right: 12, Bottom: 1}))
}

func TestBoundingBoxQuadrants(t *testing.T) {
	b := BoundingBox{Left: 0, Top: 0, Right: 8, Bottom: 4}
	assert.Equal(t, BoundingBox{0, 0, 4, 2}, b.Quadrant(NW))
	assert.Equal(t, BoundingBox{4, 0, 8, 2}, b.Quadrant(NE))
	assert.Equal(t, BoundingBox{4, 2, 8, 4}, b.Quadrant(SE))
	assert.Equal(t, BoundingBox{0, 2, 4, 4}, b.Quadrant(SW))

	area := 0.0
	for _, q := range Quadrants {
		sub := b.Quadrant(q)
		area += sub.Width() * sub.Height()
	}
	assert.Equal(t, b.Width()*b.Height(), area)
}

func TestBoundingBoxValidity(t *testing.T) {
	assert.True(t, square.Valid())
	assert.False(t, square.Degenerate())
	assert.True(t, BoundingBox{1, 1, 1, 5}.Degenerate())
	assert.True(t, BoundingBox{1, 1, 1, 5}.Valid())
	assert.False(t, BoundingBox{2, 0, 1, 5}.Valid())
	assert.False(t, BoundingBox{0, math.NaN(), 1, 5}.Valid())
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	b, ok := BoundsOf([]Point{{3, 7}, {-1, 2}, {4, 4}})
	assert.True(t, ok)
	assert.Equal(t, BoundingBox{Left: -1, Top: 2, Right: 4, Bottom: 7}, b)
	assert.Equal(t, b, FromRect(b.Rect()))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "[1.5,-2]", Point{1.5, -2}.String())
	assert.Equal(t, Point{3, 4}, FromCoord(Point{3, 4}.Coord()))
}

func TestQuadrantString(t *testing.T) {
	var names []string
	for _, q := range Quadrants {
		names = append(names, q.String())
	}
	assert.Equal(t, []string{"nw", "ne", "se", "sw"}, names)
}
