package render

import (
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	quadtree "github.com/robert-butts/quaddiff"
)

// Raster is a Canvas backed by an in-memory image, one pixel per surface unit.
// Close encodes the image as PNG.
type Raster struct {
	writer io.Writer
	img    *image.NRGBA
	origin quadtree.Point
}

// NewRaster allocates an image covering surface, filled with background.
func NewRaster(w io.Writer, surface quadtree.BoundingBox, background colorful.Color) *Raster {
	width := int(math.Ceil(surface.Width()))
	height := int(math.Ceil(surface.Height()))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Raster{
		writer: w,
		img:    imaging.New(width, height, background),
		origin: quadtree.Point{X: surface.Left, Y: surface.Top},
	}
}

// Image returns the image drawn so far.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}

func (r *Raster) pixel(p quadtree.Point) (int, int) {
	return int(math.Floor(p.X - r.origin.X)), int(math.Floor(p.Y - r.origin.Y))
}

func (r *Raster) set(x, y int, c colorful.Color) {
	if image.Pt(x, y).In(r.img.Rect) {
		r.img.Set(x, y, c)
	}
}

// Line draws a one pixel wide segment using Bresenham's algorithm. Pixels
// outside the image are dropped.
func (r *Raster) Line(a, b quadtree.Point, c colorful.Color) {
	x0, y0 := r.pixel(a)
	x1, y1 := r.pixel(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r *Raster) Marker(p quadtree.Point, c colorful.Color) {
	x, y := r.pixel(p)
	r.set(x, y, c)
}

func (r *Raster) Close() error {
	if err := imaging.Encode(r.writer, r.img, imaging.PNG); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
