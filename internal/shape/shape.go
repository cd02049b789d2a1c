// Package shape generates the point sets fed to the quadtree: the outline of
// a rectangle that can be moved, resized and rotated.
package shape

import (
	"math"

	"github.com/jbeda/geom"

	quadtree "github.com/robert-butts/quaddiff"
)

// Samples is the number of outline samples taken before clipping.
const Samples = 300

// Rectangle is a rectangle outline centered on Center, rotated by Angle
// radians.
type Rectangle struct {
	Center geom.Coord
	Width  float64
	Height float64
	Angle  float64
}

func (r *Rectangle) Translate(dx, dy float64) {
	r.Center = r.Center.Plus(geom.Coord{X: dx, Y: dy})
}

func (r *Rectangle) Resize(dw, dh float64) {
	r.Width += dw
	r.Height += dh
}

func (r *Rectangle) Rotate(da float64) {
	r.Angle += da
}

// Points samples the outline and keeps the samples strictly inside surface.
//
// The outline is parameterised over t in [0, 2π] as
//
//	x = w/2 (|cos t| cos t + |sin t| sin t)
//	y = h/2 (|cos t| cos t - |sin t| sin t)
//
// then rotated by Angle and moved to Center.
func (r Rectangle) Points(surface quadtree.BoundingBox) []quadtree.Point {
	cosA, sinA := math.Cos(r.Angle), math.Sin(r.Angle)
	points := make([]quadtree.Point, 0, Samples)
	for k := 0; k < Samples; k++ {
		t := 2 * math.Pi * float64(k) / float64(Samples-1)
		c, s := math.Cos(t), math.Sin(t)
		x := r.Width / 2 * (math.Abs(c)*c + math.Abs(s)*s)
		y := r.Height / 2 * (math.Abs(c)*c - math.Abs(s)*s)

		p := geom.Coord{X: cosA*x + sinA*y, Y: -sinA*x + cosA*y}.Plus(r.Center)
		if p.X > surface.Left && p.X < surface.Right && p.Y > surface.Top && p.Y < surface.Bottom {
			points = append(points, quadtree.FromCoord(p))
		}
	}
	return points
}
