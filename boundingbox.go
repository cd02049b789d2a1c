package quadtree

import (
	"math"

	"github.com/jbeda/geom"
)

// BoundingBox is an axis-aligned rectangle. Y grows downward, so Top <= Bottom
// for a valid box.
type BoundingBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func (b BoundingBox) Center() Point {
	return Point{(b.Left + b.Right) * 0.5, (b.Top + b.Bottom) * 0.5}
}

func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Contains reports whether p lies inside b, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Left &&
		p.X <= b.Right &&
		p.Y >= b.Top &&
		p.Y <= b.Bottom
}

// Intersects reports whether the interiors of b and other overlap.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Right > other.Left &&
		b.Left < other.Right &&
		b.Bottom > other.Top &&
		b.Top < other.Bottom
}

// Touches is Intersects with shared edges counted as overlap.
func (b BoundingBox) Touches(other BoundingBox) bool {
	return b.Right >= other.Left &&
		b.Left <= other.Right &&
		b.Bottom >= other.Top &&
		b.Top <= other.Bottom
}

// Valid reports whether every edge is finite and the box is not inverted.
func (b BoundingBox) Valid() bool {
	for _, v := range [...]float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Left <= b.Right && b.Top <= b.Bottom
}

// Degenerate reports a box with zero width or height.
func (b BoundingBox) Degenerate() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Quadrant returns the sub-rectangle of b covered by q.
func (b BoundingBox) Quadrant(q Quadrant) BoundingBox {
	c := b.Center()
	switch q {
	case NW:
		return BoundingBox{b.Left, b.Top, c.X, c.Y}
	case NE:
		return BoundingBox{c.X, b.Top, b.Right, c.Y}
	case SE:
		return BoundingBox{c.X, c.Y, b.Right, b.Bottom}
	case SW:
		return BoundingBox{b.Left, c.Y, c.X, b.Bottom}
	}
	panic("quadtree: unknown quadrant " + q.String())
}

// Rect converts b to a geom rectangle.
func (b BoundingBox) Rect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: b.Left, Y: b.Top},
		Max: geom.Coord{X: b.Right, Y: b.Bottom},
	}
}

// FromRect converts a geom rectangle to a BoundingBox.
func FromRect(r geom.Rect) BoundingBox {
	return BoundingBox{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

// BoundsOf returns the tight bounding box of points. ok is false when points
// is empty.
func BoundsOf(points []Point) (b BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	r := geom.Rect{Min: points[0].Coord(), Max: points[0].Coord()}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p.Coord())
	}
	return FromRect(r), true
}
