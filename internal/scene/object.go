// Package scene holds the object model: the drawable objects and the
// ordered scene they live in. Z-order is slice order, later entries draw on
// top and win overlapping hit-tests.
package scene

import (
	"github.com/google/uuid"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
)

// Kind discriminates the point semantics of an Object.
type Kind string

const (
	KindFreehand Kind = "freehand" // every sampled point
	KindCircle   Kind = "circle"   // [center, rim point]
	KindRect     Kind = "rect"     // [start, end] corners
	KindArrow    Kind = "arrow"    // [tail, head]
	KindEraser   Kind = "eraser"   // sampled points, rendered destination-out
)

// HitTolerance is the extra slop, in surface units, allowed around a stroke
// when hit-testing it.
const HitTolerance = 5.0

// Stroke width limits enforced on object creation and scene decode.
const (
	MinStrokeWidth = 1.0
	MaxStrokeWidth = 50.0
)

// Object is one placed shape. Bounds and Selected are derived/ephemeral and
// never serialized; Bounds is recomputed from Points, never authored.
type Object struct {
	ID          string       `json:"id"`
	Kind        Kind         `json:"kind"`
	Points      []geom.Point `json:"points"`
	StrokeColor string       `json:"stroke_color"`
	StrokeWidth float64      `json:"stroke_width"`

	Bounds   geom.Rect `json:"-"`
	Selected bool      `json:"-"`
}

// NewObject creates an object of the given kind anchored at p.
func NewObject(kind Kind, color string, width float64, p geom.Point) *Object {
	o := &Object{
		ID:          uuid.NewString(),
		Kind:        kind,
		Points:      []geom.Point{p},
		StrokeColor: color,
		StrokeWidth: ClampWidth(width),
	}
	o.RecomputeBounds()
	return o
}

// ClampWidth restricts w to the allowed stroke width range.
func ClampWidth(w float64) float64 {
	if w < MinStrokeWidth {
		return MinStrokeWidth
	}
	if w > MaxStrokeWidth {
		return MaxStrokeWidth
	}
	return w
}

// IsStroke reports whether the object stores a free point sequence rather
// than a two-point parametric shape.
func (o *Object) IsStroke() bool {
	return o.Kind == KindFreehand || o.Kind == KindEraser
}

// Radius is the circle radius; zero for other kinds or a degenerate circle.
func (o *Object) Radius() float64 {
	if o.Kind != KindCircle || len(o.Points) < 2 {
		return 0
	}
	return o.Points[0].Dist(o.Points[1])
}

// RecomputeBounds re-derives Bounds from Points. A circle's box is its
// visual extent (center plus radius on every side); all other kinds use the
// tight box around their points.
func (o *Object) RecomputeBounds() {
	if o.Kind == KindCircle && len(o.Points) >= 2 {
		c, r := o.Points[0], o.Radius()
		o.Bounds = geom.Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
		return
	}
	o.Bounds = geom.BoundsOf(o.Points)
}

// Translate moves the object by (dx, dy) without recomputing anything.
func (o *Object) Translate(dx, dy float64) {
	for i := range o.Points {
		o.Points[i] = o.Points[i].Add(dx, dy)
	}
	o.Bounds.X += dx
	o.Bounds.Y += dy
}

// Hit reports whether p selects the object. Shapes are hit anywhere inside
// their (stroke-inflated) box; stroke kinds additionally require p to lie
// near the polyline itself, so the empty corners of a long diagonal stroke
// do not steal clicks.
func (o *Object) Hit(p geom.Point) bool {
	slop := o.StrokeWidth + HitTolerance
	if !o.Bounds.Inflate(slop).Contains(p) {
		return false
	}
	if o.IsStroke() {
		return geom.PolylineDist(p, o.Points) <= slop
	}
	return o.Bounds.Inflate(o.StrokeWidth/2 + HitTolerance).Contains(p)
}

// Clone returns a deep, alias-free copy.
func (o *Object) Clone() *Object {
	c := *o
	c.Points = make([]geom.Point, len(o.Points))
	copy(c.Points, o.Points)
	return &c
}
