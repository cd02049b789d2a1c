// Package driver replays an editing session: it applies commands to a State,
// rebuilds the quadtree from the shape after every command, and hands each
// frame, with the tree it replaced, to a FrameSink.
package driver

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	quadtree "github.com/robert-butts/quaddiff"
	"github.com/robert-butts/quaddiff/internal/config"
)

// Frame is the outcome of one update.
type Frame struct {
	Index   int
	Command Command
	State   State
	Points  []quadtree.Point
	// Previous is the tree Current replaced, nil for the first frame.
	Previous *quadtree.Quadtree
	Current  *quadtree.Quadtree
}

// FrameSink consumes frames as the driver produces them.
type FrameSink interface {
	WriteFrame(f *Frame) error
}

// FrameSinkFunc adapts a function to a FrameSink.
type FrameSinkFunc func(f *Frame) error

func (fn FrameSinkFunc) WriteFrame(f *Frame) error {
	return fn(f)
}

// Driver owns the session state and the two most recent trees. After every
// successful update the current tree becomes the previous one and the older
// tree is dropped.
type Driver struct {
	state   State
	steps   Steps
	surface quadtree.BoundingBox
	log     logrus.FieldLogger

	previous *quadtree.Quadtree
	current  *quadtree.Quadtree
	frames   int
}

func New(c *config.Config, log logrus.FieldLogger) *Driver {
	return &Driver{
		state:   NewState(c),
		steps:   Steps{Move: c.MoveStep, Resize: c.ResizeStep, Rotate: c.RotateStep},
		surface: c.Surface(),
		log:     log,
	}
}

func (d *Driver) State() State {
	return d.state
}

func (d *Driver) Previous() *quadtree.Quadtree {
	return d.previous
}

func (d *Driver) Current() *quadtree.Quadtree {
	return d.current
}

// Start builds the first tree from the initial state. Any earlier trees are
// dropped.
func (d *Driver) Start() (*Frame, error) {
	points := d.state.Shape.Points(d.surface)
	tree, err := quadtree.New(points, d.state.Depth, &d.surface)
	if err != nil {
		return nil, errors.Wrap(err, "building initial tree")
	}
	d.previous, d.current = nil, tree
	d.frames = 0
	return d.frame(Redraw, points), nil
}

// Step applies cmd and rebuilds the tree. If the build fails, the state and
// both trees are left as they were and the error is returned.
func (d *Driver) Step(cmd Command) (*Frame, error) {
	next := d.state.Apply(cmd, d.steps)
	points := next.Shape.Points(d.surface)
	tree, err := quadtree.New(points, next.Depth, &d.surface)
	if err != nil {
		return nil, errors.Wrapf(err, "command %s", cmd)
	}
	d.state = next
	d.previous, d.current = d.current, tree
	d.frames++
	return d.frame(cmd, points), nil
}

func (d *Driver) frame(cmd Command, points []quadtree.Point) *Frame {
	return &Frame{
		Index:    d.frames,
		Command:  cmd,
		State:    d.state,
		Points:   points,
		Previous: d.previous,
		Current:  d.current,
	}
}

// Run starts a session, writes its first frame, then applies commands in
// order until they run out, Quit is seen or ctx is done. A command whose
// rebuild fails is logged and skipped. Sink errors stop the run.
func (d *Driver) Run(ctx context.Context, commands []Command, sink FrameSink) error {
	f, err := d.Start()
	if err != nil {
		return err
	}
	if err := d.emit(sink, f); err != nil {
		return err
	}

	for _, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cmd == Quit {
			d.log.Info("quit")
			return nil
		}
		f, err := d.Step(cmd)
		if err != nil {
			d.log.WithError(err).WithField("command", cmd.String()).Warn("update_ignored")
			continue
		}
		if err := d.emit(sink, f); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) emit(sink FrameSink, f *Frame) error {
	shape := f.State.Shape
	d.log.WithFields(logrus.Fields{
		"frame":    f.Index,
		"command":  f.Command.String(),
		"depth":    f.State.Depth,
		"center_x": shape.Center.X,
		"center_y": shape.Center.Y,
		"width":    shape.Width,
		"height":   shape.Height,
		"angle":    shape.Angle,
		"points":   len(f.Points),
		"nodes":    f.Current.Nodes(),
	}).Debug("tree_built")
	if err := sink.WriteFrame(f); err != nil {
		return errors.Wrapf(err, "frame %d", f.Index)
	}
	return nil
}
