// Package render turns the scene into pixels. Every frame is built fresh:
// white surface, the background image fitted without cropping, then the
// objects in z-order. Eraser strokes rasterize into their own offscreen
// buffer and are composited destination-out onto the object layer, so they
// remove earlier object pixels but never touch the background.
package render

import (
	"image"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/gg"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"
)

const (
	handleDrawSize = 8.0
	selectionColor = "#2d7ff9"
)

// Renderer rasterizes frames for one surface. The background reference is
// the single async boundary: it may be installed from a loader goroutine
// between frames, so it sits behind a mutex.
type Renderer struct {
	width  int
	height int

	mu         sync.RWMutex
	background *gg.ImageBuf

	log *slog.Logger
}

func New(width, height int, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{width: width, height: height, log: log}
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

// SetBackground installs (or with nil, removes) the background image.
// Safe to call from any goroutine.
func (r *Renderer) SetBackground(img *gg.ImageBuf) {
	r.mu.Lock()
	r.background = img
	r.mu.Unlock()
}

// LoadBackground decodes the image at path on its own goroutine and
// installs it on success, then calls onInstalled (from that goroutine) so
// the host can schedule a redraw. Failure is reported and the background
// stays absent; drawing continues unaffected.
func (r *Renderer) LoadBackground(path string, onInstalled func()) {
	go func() {
		img, err := gg.LoadImage(path)
		if err != nil {
			r.log.Warn("background image load failed", "path", path, "err", err)
			return
		}
		r.SetBackground(img)
		r.log.Debug("background image loaded", "path", path,
			"width", img.Width(), "height", img.Height())
		if onInstalled != nil {
			onInstalled()
		}
	}()
}

// FitRect places an iw-by-ih image inside a sw-by-sh surface preserving
// aspect ratio: scaled to the limiting dimension and centered on the other
// axis, never cropped or stretched non-uniformly.
func FitRect(sw, sh, iw, ih float64) geom.Rect {
	if iw <= 0 || ih <= 0 {
		return geom.Rect{}
	}
	scale := math.Min(sw/iw, sh/ih)
	w, h := iw*scale, ih*scale
	return geom.Rect{X: (sw - w) / 2, Y: (sh - h) / 2, W: w, H: h}
}

// Frame rasterizes the objects. With decorated set, the selected object
// gets its dashed outline and resize handles; exports pass false.
func (r *Renderer) Frame(objs []*scene.Object, decorated bool) image.Image {
	return r.compose(objs, decorated).Image()
}

// ExportPNG encodes the undecorated frame.
func (r *Renderer) ExportPNG(w io.Writer, objs []*scene.Object) error {
	return r.compose(objs, false).EncodePNG(w)
}

func (r *Renderer) compose(objs []*scene.Object, decorated bool) *gg.Context {
	w, h := r.width, r.height

	// Object layer: transparent, so erasing leaves holes that show the
	// background through.
	layerPm := gg.NewPixmap(w, h)
	layer := gg.NewContext(w, h, gg.WithPixmap(layerPm))
	for _, o := range objs {
		if o.Kind == scene.KindEraser {
			offPm := gg.NewPixmap(w, h)
			off := gg.NewContext(w, h, gg.WithPixmap(offPm))
			drawPolyline(off, o, "#000000")
			destinationOut(layerPm.Data(), offPm.Data())
			continue
		}
		drawObject(layer, o)
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)

	r.mu.RLock()
	bg := r.background
	r.mu.RUnlock()
	if bg != nil {
		fit := FitRect(float64(w), float64(h), float64(bg.Width()), float64(bg.Height()))
		dc.DrawImageEx(bg, gg.DrawImageOptions{
			X: fit.X, Y: fit.Y,
			DstWidth: fit.W, DstHeight: fit.H,
		})
	}

	dc.DrawImage(gg.ImageBufFromImage(layerPm.ToImage()), 0, 0)

	if decorated {
		for _, o := range objs {
			if o.Selected {
				drawSelection(dc, o)
			}
		}
	}
	return dc
}

func drawObject(dc *gg.Context, o *scene.Object) {
	switch o.Kind {
	case scene.KindCircle:
		if len(o.Points) < 2 {
			return
		}
		strokeSetup(dc, o)
		c := o.Points[0]
		dc.DrawCircle(c.X, c.Y, o.Radius())
		dc.Stroke()
	case scene.KindRect:
		if len(o.Points) < 2 {
			return
		}
		strokeSetup(dc, o)
		b := geom.BoundsOf(o.Points)
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		dc.Stroke()
	case scene.KindArrow:
		drawArrow(dc, o)
	default:
		drawPolyline(dc, o, o.StrokeColor)
	}
}

func strokeSetup(dc *gg.Context, o *scene.Object) {
	dc.SetHexColor(o.StrokeColor)
	dc.SetLineWidth(o.StrokeWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
}

func drawPolyline(dc *gg.Context, o *scene.Object, color string) {
	if len(o.Points) == 0 {
		return
	}
	dc.SetHexColor(color)
	if len(o.Points) == 1 {
		// A click without movement leaves a dot.
		p := o.Points[0]
		dc.DrawCircle(p.X, p.Y, o.StrokeWidth/2)
		dc.Fill()
		return
	}
	dc.SetLineWidth(o.StrokeWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(o.Points[0].X, o.Points[0].Y)
	for _, p := range o.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

func drawArrow(dc *gg.Context, o *scene.Object) {
	if len(o.Points) < 2 {
		return
	}
	strokeSetup(dc, o)
	tail, head := o.Points[0], o.Points[1]
	dc.DrawLine(tail.X, tail.Y, head.X, head.Y)
	dc.Stroke()

	angle := math.Atan2(head.Y-tail.Y, head.X-tail.X)
	length := 10 + 2*o.StrokeWidth
	for _, spread := range []float64{math.Pi - 0.5, math.Pi + 0.5} {
		a := angle + spread
		dc.DrawLine(head.X, head.Y, head.X+length*math.Cos(a), head.Y+length*math.Sin(a))
		dc.Stroke()
	}
}

// drawSelection renders the dashed bounding box and the 8 resize handles.
func drawSelection(dc *gg.Context, o *scene.Object) {
	b := o.Bounds
	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(1)
	dc.SetDash(6, 4)
	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	dc.Stroke()
	dc.ClearDash()

	half := handleDrawSize / 2
	for _, hp := range geom.Handles(b) {
		dc.DrawRectangle(hp.X-half, hp.Y-half, handleDrawSize, handleDrawSize)
		dc.Fill()
	}
}
