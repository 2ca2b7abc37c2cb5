// Package geom holds the pure geometry used by the scene, the transform
// engine and hit-testing. Everything here is value math with no state.
package geom

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned box. W and H are never negative after Normalize.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Inflate grows the rect by d on every side. Negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Normalize flips the origin along any axis with negative extent so the
// rect always has non-negative width and height.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// BoundsOf is the tight box around pts, with no stroke inflation.
// An empty slice yields the zero rect.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// SegmentDist is the distance from p to the segment a-b.
func SegmentDist(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Dist(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// PolylineDist is the distance from p to the nearest segment of the open
// polyline pts. A single-point polyline is treated as that point.
func PolylineDist(p Point, pts []Point) float64 {
	if len(pts) == 0 {
		return math.Inf(1)
	}
	if len(pts) == 1 {
		return p.Dist(pts[0])
	}
	min := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		if d := SegmentDist(p, pts[i-1], pts[i]); d < min {
			min = d
		}
	}
	return min
}

// HandleCount is the number of resize handles on a selection box.
const HandleCount = 8

// Handles returns the 8 resize handle centers of r, indexed clockwise from
// the top-left corner: 0 TL, 1 top-mid, 2 TR, 3 right-mid, 4 BR,
// 5 bottom-mid, 6 BL, 7 left-mid.
func Handles(r Rect) [HandleCount]Point {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	return [HandleCount]Point{
		{X: r.X, Y: r.Y},
		{X: cx, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: cy},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: cx, Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
		{X: r.X, Y: cy},
	}
}

// HandleAt reports which handle of r the point p falls on, testing a square
// of the given size centered on each handle. Returns -1 on a miss.
func HandleAt(r Rect, p Point, size float64) int {
	half := size / 2
	for i, h := range Handles(r) {
		if math.Abs(p.X-h.X) <= half && math.Abs(p.Y-h.Y) <= half {
			return i
		}
	}
	return -1
}
