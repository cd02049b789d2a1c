/*
Package quadtree implements a region quadtree over a set of points, and a
structural diff between two quadtrees built over the same bounds.

A tree is built in one pass from a point set and a maximum depth, and is
immutable afterwards. Each split assigns a point to every quadrant whose
inclusive half-planes contain it, so a point on a center line lands in two
quadrants. A point exactly at the center is kept at the splitting node. A
quadrant that receives no points has no child at all, never an empty one;
Diff relies on that.

quadtree does not support insertion or deletion. Rebuild the tree instead.
*/
package quadtree

import (
	"github.com/pkg/errors"
)

type Quadtree struct {
	Boundary BoundingBox
	Center   Point
	// Points holds the points that could not be pushed further down: either
	// the node is at max depth, or the point sits exactly on Center.
	Points []Point
	Nw     *Quadtree
	Ne     *Quadtree
	Se     *Quadtree
	Sw     *Quadtree
	// Depth is the distance from the root, which has depth 0.
	Depth int
}

// New builds a quadtree over points, at most maxDepth levels deep.
//
// If bounds is nil, the tight bounding box of points is used. Bounds with
// zero width or height yield a single node holding every point. points is
// not modified.
func New(points []Point, maxDepth int, bounds *BoundingBox) (*Quadtree, error) {
	if maxDepth < 1 || maxDepth > MaxDepth {
		return nil, errors.Wrapf(ErrInvalidDepth, "depth %d outside [1,%d]", maxDepth, MaxDepth)
	}
	for i := range points {
		if !points[i].finite() {
			return nil, errors.Wrapf(ErrInvalidPoint, "point %d is %v", i, points[i])
		}
	}

	var b BoundingBox
	if bounds != nil {
		if !bounds.Valid() {
			return nil, errors.Wrapf(ErrDegenerateBounds, "bounds %+v", *bounds)
		}
		b = *bounds
	} else {
		var ok bool
		if b, ok = BoundsOf(points); !ok {
			return nil, ErrEmptyInput
		}
	}

	if b.Degenerate() {
		maxDepth = 1
	}
	return build(points, maxDepth, b, 0), nil
}

func build(points []Point, depth int, b BoundingBox, level int) *Quadtree {
	q := &Quadtree{
		Boundary: b,
		Center:   b.Center(),
		Depth:    level,
	}

	depth--
	if depth == 0 {
		q.Points = append([]Point(nil), points...)
		return q
	}

	cx, cy := q.Center.X, q.Center.Y
	var quadrants [4][]Point
	for _, p := range points {
		inNw := p.X <= cx && p.Y <= cy
		inSw := p.X <= cx && p.Y >= cy
		inNe := p.X >= cx && p.Y <= cy
		inSe := p.X >= cx && p.Y >= cy

		if inNw && inNe && inSe && inSw {
			q.Points = append(q.Points, p)
			continue
		}
		if inNw {
			quadrants[NW] = append(quadrants[NW], p)
		}
		if inNe {
			quadrants[NE] = append(quadrants[NE], p)
		}
		if inSe {
			quadrants[SE] = append(quadrants[SE], p)
		}
		if inSw {
			quadrants[SW] = append(quadrants[SW], p)
		}
	}

	for _, quad := range Quadrants {
		if len(quadrants[quad]) == 0 {
			continue
		}
		*q.slot(quad) = build(quadrants[quad], depth, b.Quadrant(quad), level+1)
	}
	return q
}

func (q *Quadtree) slot(quad Quadrant) **Quadtree {
	switch quad {
	case NW:
		return &q.Nw
	case NE:
		return &q.Ne
	case SE:
		return &q.Se
	case SW:
		return &q.Sw
	}
	panic("quadtree: unknown quadrant " + quad.String())
}

// Child returns the child in quad, or nil if that quadrant received no points.
func (q *Quadtree) Child(quad Quadrant) *Quadtree {
	if q == nil {
		return nil
	}
	return *q.slot(quad)
}

// Children returns the four child slots in NW, NE, SE, SW order.
func (q *Quadtree) Children() [4]*Quadtree {
	if q == nil {
		return [4]*Quadtree{}
	}
	return [4]*Quadtree{q.Nw, q.Ne, q.Se, q.Sw}
}

func (q *Quadtree) IsLeaf() bool {
	return q.Nw == nil && q.Ne == nil && q.Se == nil && q.Sw == nil
}

// Len returns the number of stored point entries in the subtree. Points
// duplicated across boundary lines are counted once per node holding them.
func (q *Quadtree) Len() int {
	n := 0
	Walk(q, VisitorFunc(func(node *Quadtree) {
		n += len(node.Points)
	}))
	return n
}

// Nodes returns the number of nodes in the subtree.
func (q *Quadtree) Nodes() int {
	n := 0
	Walk(q, VisitorFunc(func(*Quadtree) {
		n++
	}))
	return n
}

// Height returns the number of edges on the longest path from q to a leaf.
func (q *Quadtree) Height() int {
	if q == nil {
		return -1
	}
	h := 0
	WalkLeaves(q, VisitorFunc(func(leaf *Quadtree) {
		if d := leaf.Depth - q.Depth; d > h {
			h = d
		}
	}))
	return h
}

// Query returns the points stored in the tree that lie inside b, edges
// included. Subtrees whose boundary does not touch b are skipped, so points
// outside the root boundary are only found if b touches the node holding
// them. A point stored on a shared boundary line may be returned once per
// node holding it; use QueryUnique to collapse those.
func (q *Quadtree) Query(b BoundingBox) []Point {
	if q == nil || !q.Boundary.Touches(b) {
		return nil
	}
	var points []Point
	for _, point := range q.Points {
		if b.Contains(point) {
			points = append(points, point)
		}
	}
	for _, child := range q.Children() {
		if child != nil {
			points = append(points, child.Query(b)...)
		}
	}
	return points
}

// QueryUnique is Query with duplicate coordinates removed, keeping the first
// occurrence.
func (q *Quadtree) QueryUnique(b BoundingBox) []Point {
	points := q.Query(b)
	seen := make(map[Point]struct{}, len(points))
	unique := points[:0]
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
