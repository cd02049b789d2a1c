package driver

import (
	"github.com/jbeda/geom"

	quadtree "github.com/robert-butts/quaddiff"
	"github.com/robert-butts/quaddiff/internal/config"
	"github.com/robert-butts/quaddiff/internal/render"
	"github.com/robert-butts/quaddiff/internal/shape"
)

// Steps are the increments applied by one command.
type Steps struct {
	Move   float64
	Resize float64
	Rotate float64
}

// State is everything a session edits: tree depth, the shape and the display
// toggles. It is a plain value; the Driver owns the live copy.
type State struct {
	Depth          int
	Shape          shape.Rectangle
	ShowQuadtree   bool
	ShowChangetree bool
	ShowPoints     bool
	Mode           quadtree.Mode
}

// NewState returns the starting state described by c, with the shape
// centered on the surface.
func NewState(c *config.Config) State {
	mode := quadtree.Whole
	if c.LeavesOnly {
		mode = quadtree.Leaves
	}
	return State{
		Depth: c.Depth,
		Shape: shape.Rectangle{
			Center: geom.Coord{X: c.SurfaceWidth / 2, Y: c.SurfaceHeight / 2},
			Width:  c.ShapeWidth,
			Height: c.ShapeHeight,
			Angle:  c.ShapeAngle,
		},
		ShowQuadtree:   c.ShowQuadtree,
		ShowChangetree: c.ShowChangetree,
		ShowPoints:     c.ShowPoints,
		Mode:           mode,
	}
}

// Apply returns the state after cmd. Depth never drops below 1 but is not
// capped; building with too large a depth fails and the caller keeps the old
// state.
func (s State) Apply(cmd Command, steps Steps) State {
	switch cmd {
	case Up:
		s.Shape.Translate(0, -steps.Move)
	case Down:
		s.Shape.Translate(0, steps.Move)
	case Left:
		s.Shape.Translate(-steps.Move, 0)
	case Right:
		s.Shape.Translate(steps.Move, 0)
	case Narrower:
		s.Shape.Resize(-steps.Resize, 0)
	case Wider:
		s.Shape.Resize(steps.Resize, 0)
	case Taller:
		s.Shape.Resize(0, steps.Resize)
	case Shorter:
		s.Shape.Resize(0, -steps.Resize)
	case Deeper:
		s.Depth++
	case Shallower:
		if s.Depth > 1 {
			s.Depth--
		}
	case RotateCCW:
		s.Shape.Rotate(steps.Rotate)
	case RotateCW:
		s.Shape.Rotate(-steps.Rotate)
	case ToggleQuadtree:
		s.ShowQuadtree = !s.ShowQuadtree
	case ToggleChangetree:
		s.ShowChangetree = !s.ShowChangetree
	case TogglePoints:
		s.ShowPoints = !s.ShowPoints
	case ToggleMode:
		if s.Mode == quadtree.Leaves {
			s.Mode = quadtree.Whole
		} else {
			s.Mode = quadtree.Leaves
		}
	}
	return s
}

// Layers maps the display toggles onto render layers.
func (s State) Layers() render.Layers {
	return render.Layers{
		Quadtree:   s.ShowQuadtree,
		Changetree: s.ShowChangetree,
		Points:     s.ShowPoints,
		Mode:       s.Mode,
	}
}
