package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	quadtree "github.com/robert-butts/quaddiff"
	"github.com/robert-butts/quaddiff/internal/render"
)

// Files writes every frame to its own file in Dir, named frame-NNNN.png or
// frame-NNNN.svg depending on Format.
type Files struct {
	Dir     string
	Format  string
	Surface quadtree.BoundingBox
	Palette render.Palette
	Log     logrus.FieldLogger
}

// Path returns the file a frame is written to.
func (s *Files) Path(index int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("frame-%04d.%s", index, s.Format))
}

func (s *Files) WriteFrame(f *Frame) (err error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	path := s.Path(f.Index)
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating frame file")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing frame file")
		}
	}()

	var canvas render.Canvas
	switch s.Format {
	case "svg":
		canvas = render.NewSVG(out, s.Surface, s.Palette.Background)
	case "png":
		canvas = render.NewRaster(out, s.Surface, s.Palette.Background)
	default:
		return errors.Errorf("unknown format %q", s.Format)
	}

	stats := render.DrawFrame(canvas, s.Palette, f.State.Layers(), f.Previous, f.Current, f.Points)
	if err := canvas.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	s.Log.WithFields(logrus.Fields{
		"frame":   f.Index,
		"command": f.Command.String(),
		"path":    path,
		"nodes":   stats.Nodes,
		"added":   stats.Added,
		"removed": stats.Removed,
		"points":  stats.Points,
	}).Info("frame_written")
	return nil
}
