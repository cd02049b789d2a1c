package render

import (
	"github.com/lucasb-eyer/go-colorful"

	quadtree "github.com/robert-butts/quaddiff"
)

// CrossHair draws a node's vertical and horizontal center lines, each
// spanning the node's boundary.
type CrossHair struct {
	Canvas Canvas
	Color  colorful.Color
}

func (v CrossHair) Visit(n *quadtree.Quadtree) {
	b, c := n.Boundary, n.Center
	v.Canvas.Line(quadtree.Point{X: c.X, Y: b.Bottom}, quadtree.Point{X: c.X, Y: b.Top}, v.Color)
	v.Canvas.Line(quadtree.Point{X: b.Right, Y: c.Y}, quadtree.Point{X: b.Left, Y: c.Y}, v.Color)
}

// ChangeTree draws the subtrees reported by quadtree.Diff: added ones in
// Added, removed ones in Removed. Mode picks whether every node of a changed
// subtree is drawn or only its leaves.
type ChangeTree struct {
	Canvas  Canvas
	Mode    quadtree.Mode
	Added   colorful.Color
	Removed colorful.Color

	AddedCount   int
	RemovedCount int
}

func (v *ChangeTree) VisitDelta(d quadtree.Delta) {
	switch d.Change {
	case quadtree.Added:
		v.AddedCount++
		v.Mode.Walk(d.New, CrossHair{Canvas: v.Canvas, Color: v.Added})
	case quadtree.Removed:
		v.RemovedCount++
		v.Mode.Walk(d.Old, CrossHair{Canvas: v.Canvas, Color: v.Removed})
	}
}

// Layers selects what a frame shows.
type Layers struct {
	Quadtree   bool
	Changetree bool
	Points     bool
	// Mode applies to the change tree only; the quadtree is always drawn whole.
	Mode quadtree.Mode
}

// Stats counts what a frame contained.
type Stats struct {
	Nodes   int
	Added   int
	Removed int
	Points  int
}

// DrawFrame draws current (and its changes since previous) onto c, then the
// points. previous may be nil, in which case no change tree is drawn. c is
// not closed.
func DrawFrame(c Canvas, p Palette, l Layers, previous, current *quadtree.Quadtree, points []quadtree.Point) Stats {
	stats := Stats{Nodes: current.Nodes(), Points: len(points)}

	if l.Quadtree {
		quadtree.Walk(current, CrossHair{Canvas: c, Color: p.Tree})
	}
	if l.Changetree && previous != nil {
		ct := &ChangeTree{Canvas: c, Mode: l.Mode, Added: p.Added, Removed: p.Removed}
		quadtree.Diff(previous, current, ct.VisitDelta)
		stats.Added, stats.Removed = ct.AddedCount, ct.RemovedCount
	}
	if l.Points {
		for _, pt := range points {
			c.Marker(pt, p.Point)
		}
	}
	return stats
}
