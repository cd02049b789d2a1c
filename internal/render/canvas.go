// Package render draws quadtrees, change trees and point sets onto a Canvas.
//
// Two canvases are provided: SVG writes vector markup to an io.Writer, and
// Raster draws into an in-memory image that is encoded as PNG on Close.
// Coordinates are surface coordinates: x grows rightward, y grows downward.
package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	quadtree "github.com/robert-butts/quaddiff"
)

// Canvas is a drawing surface.
type Canvas interface {
	// Line draws a straight segment from a to b.
	Line(a, b quadtree.Point, c colorful.Color)
	// Marker draws a single point.
	Marker(p quadtree.Point, c colorful.Color)
	// Close finishes the drawing and writes it out.
	Close() error
}

// Palette holds the colors used for each layer of a frame.
type Palette struct {
	Tree       colorful.Color
	Added      colorful.Color
	Removed    colorful.Color
	Point      colorful.Color
	Background colorful.Color
}

// DefaultPalette is blue tree lines, green additions and red removals over
// white points on black.
func DefaultPalette() Palette {
	p, err := ParsePalette("#0000FF", "#00FF00", "#FF0000", "#FFFFFF", "#000000")
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette parses hex colors such as "#FF0000" into a Palette.
func ParsePalette(tree, added, removed, point, background string) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		hex string
		dst *colorful.Color
	}{
		{tree, &p.Tree},
		{added, &p.Added},
		{removed, &p.Removed},
		{point, &p.Point},
		{background, &p.Background},
	} {
		parsed, err := colorful.Hex(c.hex)
		if err != nil {
			return Palette{}, errors.Wrapf(err, "color %q", c.hex)
		}
		*c.dst = parsed
	}
	return p, nil
}
