package render

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"

	quadtree "github.com/robert-butts/quaddiff"
)

const (
	lineStyle    = "stroke-width: 1; stroke-linecap: square; fill: none"
	markerRadius = 0.5
)

// SVG is a Canvas writing SVG markup. Write errors are kept and returned by
// Close; drawing after an error is a no-op.
type SVG struct {
	writer io.Writer
	err    error
}

// NewSVG starts an SVG document covering surface, filled with background.
func NewSVG(w io.Writer, surface quadtree.BoundingBox, background colorful.Color) *SVG {
	svg := &SVG{writer: w}
	svg.start(surface.Rect(), background)
	return svg
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *SVG) start(viewBox geom.Rect, background colorful.Color) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" style='%s'>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), lineStyle)
	svg.printf("<rect x='%f' y='%f' width='%f' height='%f' style='fill: %s'/>\n",
		viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), background.Hex())
}

func (svg *SVG) Line(a, b quadtree.Point, c colorful.Color) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='stroke: %s'/>\n", a.X, a.Y, b.X, b.Y, c.Hex())
}

func (svg *SVG) Marker(p quadtree.Point, c colorful.Color) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' style='fill: %s; stroke: none'/>\n", p.X, p.Y, markerRadius, c.Hex())
}

func (svg *SVG) Close() error {
	svg.printf("</svg>\n")
	return svg.err
}
