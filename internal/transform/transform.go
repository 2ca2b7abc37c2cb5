// Package transform rewrites object geometry for move and resize gestures.
// Resize is table-driven: each of the 8 handles controls one or two box
// edges, the candidate box is normalized, and the object's points are
// remapped from the old box to the new one per kind.
package transform

import (
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"
)

// Move translates the object by the pointer delta; bounds keep their size.
func Move(o *scene.Object, dx, dy float64) {
	o.Translate(dx, dy)
}

type edges struct {
	left, right, top, bottom bool
}

// Handle indices run clockwise from the top-left corner (geom.Handles).
var handleEdges = [geom.HandleCount]edges{
	{left: true, top: true},
	{top: true},
	{right: true, top: true},
	{right: true},
	{right: true, bottom: true},
	{bottom: true},
	{left: true, bottom: true},
	{left: true},
}

// Resize applies the pointer delta to the edges controlled by handle,
// normalizes the resulting box and remaps the object's points into it.
// An out-of-range handle leaves the object untouched.
func Resize(o *scene.Object, handle int, dx, dy float64) {
	if handle < 0 || handle >= geom.HandleCount {
		return
	}
	old := o.Bounds
	nb := old
	e := handleEdges[handle]
	if e.left {
		nb.X += dx
		nb.W -= dx
	}
	if e.right {
		nb.W += dx
	}
	if e.top {
		nb.Y += dy
		nb.H -= dy
	}
	if e.bottom {
		nb.H += dy
	}
	nb = nb.Normalize()

	switch {
	case o.IsStroke():
		remapProportional(o, old, nb)
	case o.Kind == scene.KindCircle:
		remapCircle(o, nb)
	default:
		remapExtremes(o, nb)
	}
	o.Bounds = nb
}

// scaleFactor guards the zero-extent case: a degenerate source box scales
// with identity instead of producing NaN geometry.
func scaleFactor(oldExtent, newExtent float64) float64 {
	if oldExtent == 0 {
		return 1
	}
	return newExtent / oldExtent
}

func remapProportional(o *scene.Object, old, nb geom.Rect) {
	sx := scaleFactor(old.W, nb.W)
	sy := scaleFactor(old.H, nb.H)
	for i, p := range o.Points {
		o.Points[i] = geom.Point{
			X: nb.X + (p.X-old.X)*sx,
			Y: nb.Y + (p.Y-old.Y)*sy,
		}
	}
}

// remapCircle recenters on the new box; the radius tracks the larger of
// the two new dimensions, with the rim point kept due east of the center.
func remapCircle(o *scene.Object, nb geom.Rect) {
	c := nb.Center()
	r := nb.W
	if nb.H > r {
		r = nb.H
	}
	r /= 2
	o.Points = []geom.Point{c, {X: c.X + r, Y: c.Y}}
}

// remapExtremes pins each endpoint of a two-point shape to the new box:
// the endpoint on the old minimum edge moves to the new minimum edge, the
// one on the maximum edge to the new maximum edge, per axis independently.
func remapExtremes(o *scene.Object, nb geom.Rect) {
	if len(o.Points) < 2 {
		return
	}
	loX, hiX := 0, 1
	if o.Points[1].X < o.Points[0].X {
		loX, hiX = 1, 0
	}
	loY, hiY := 0, 1
	if o.Points[1].Y < o.Points[0].Y {
		loY, hiY = 1, 0
	}
	o.Points[loX].X = nb.X
	o.Points[hiX].X = nb.MaxX()
	o.Points[loY].Y = nb.Y
	o.Points[hiY].Y = nb.MaxY()
}
