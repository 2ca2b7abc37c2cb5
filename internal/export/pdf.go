// Package export writes the scene to vector PDF. The PDF page matches the
// surface size in points, so coordinates map one to one.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"
)

// PDF renders the objects onto a single page of the given surface size and
// writes the document to w. Eraser strokes are skipped: the PDF imaging
// model has no subtractive compositing, and approximating one with opaque
// paint would also cover the page background.
func PDF(w io.Writer, width, height float64, objs []*scene.Object) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, o := range objs {
		if o.Kind == scene.KindEraser {
			continue
		}
		r, g, b, err := parseHexColor(o.StrokeColor)
		if err != nil {
			r, g, b = 0, 0, 0
		}
		p.SetDrawColor(r, g, b)
		p.SetLineWidth(o.StrokeWidth)
		drawObject(p, o)
	}
	return p.Output(w)
}

func drawObject(p *gofpdf.Fpdf, o *scene.Object) {
	switch o.Kind {
	case scene.KindCircle:
		if len(o.Points) < 2 {
			return
		}
		c := o.Points[0]
		p.Circle(c.X, c.Y, o.Radius(), "D")
	case scene.KindRect:
		if len(o.Points) < 2 {
			return
		}
		b := o.Bounds
		p.Rect(b.X, b.Y, b.W, b.H, "D")
	case scene.KindArrow:
		if len(o.Points) < 2 {
			return
		}
		tail, head := o.Points[0], o.Points[1]
		p.Line(tail.X, tail.Y, head.X, head.Y)
		angle := math.Atan2(head.Y-tail.Y, head.X-tail.X)
		length := 10 + 2*o.StrokeWidth
		for _, spread := range []float64{math.Pi - 0.5, math.Pi + 0.5} {
			a := angle + spread
			p.Line(head.X, head.Y, head.X+length*math.Cos(a), head.Y+length*math.Sin(a))
		}
	default:
		for i := 1; i < len(o.Points); i++ {
			p.Line(o.Points[i-1].X, o.Points[i-1].Y, o.Points[i].X, o.Points[i].Y)
		}
	}
}

func parseHexColor(s string) (r, g, b int, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", s)
	}
	_, err = fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	return r, g, b, err
}
