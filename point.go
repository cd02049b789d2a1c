package quadtree

import (
	"math"
	"strconv"

	"github.com/jbeda/geom"
)

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + "]"
}

// Coord converts p to a geom coordinate.
func (p Point) Coord() geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

// FromCoord converts a geom coordinate to a Point.
func FromCoord(c geom.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
