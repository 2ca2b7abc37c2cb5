package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, iw, ih float64
		want           geom.Rect
	}{
		{
			name: "wide image pillarboxes vertically",
			sw:   800, sh: 600, iw: 400, ih: 100,
			want: geom.Rect{X: 0, Y: 200, W: 800, H: 200},
		},
		{
			name: "tall image letterboxes horizontally",
			sw:   800, sh: 600, iw: 100, ih: 300,
			want: geom.Rect{X: 300, Y: 0, W: 200, H: 600},
		},
		{
			name: "same aspect fills exactly",
			sw:   800, sh: 600, iw: 400, ih: 300,
			want: geom.Rect{X: 0, Y: 0, W: 800, H: 600},
		},
		{
			name: "degenerate image yields zero rect",
			sw:   800, sh: 600, iw: 0, ih: 100,
			want: geom.Rect{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitRect(tt.sw, tt.sh, tt.iw, tt.ih); got != tt.want {
				t.Errorf("FitRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDestinationOut(t *testing.T) {
	// Two pixels: fully covered source erases, empty source leaves alone.
	dst := []uint8{200, 100, 50, 255, 200, 100, 50, 255}
	src := []uint8{0, 0, 0, 255, 0, 0, 0, 0}
	destinationOut(dst, src)

	if dst[3] != 0 || dst[0] != 0 {
		t.Errorf("fully covered pixel = %v, want zeroed", dst[:4])
	}
	if dst[7] != 255 || dst[4] != 200 {
		t.Errorf("uncovered pixel = %v, want untouched", dst[4:])
	}

	// Half coverage halves the destination alpha.
	dst = []uint8{10, 20, 30, 200}
	src = []uint8{0, 0, 0, 128}
	destinationOut(dst, src)
	if dst[3] != uint8(200*(255-128)/255) {
		t.Errorf("partial coverage alpha = %d, want scaled", dst[3])
	}
}

func freehand(width float64, pts ...geom.Point) *scene.Object {
	o := scene.NewObject(scene.KindFreehand, "#ff0000", width, pts[0])
	o.Points = pts
	o.RecomputeBounds()
	return o
}

func sampleAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestFrameDrawsStroke(t *testing.T) {
	r := New(100, 100, nil)
	objs := []*scene.Object{freehand(10, geom.Point{X: 10, Y: 50}, geom.Point{X: 90, Y: 50})}

	img := r.Frame(objs, false)
	got := sampleAt(img, 50, 50)
	if got.R < 200 || got.G > 80 || got.B > 80 {
		t.Errorf("stroke center pixel = %+v, want red", got)
	}
	bg := sampleAt(img, 50, 10)
	if bg.R < 250 || bg.G < 250 || bg.B < 250 {
		t.Errorf("empty surface pixel = %+v, want white", bg)
	}
}

func TestEraserRemovesObjectPixelsNotBackground(t *testing.T) {
	r := New(100, 100, nil)

	eraser := scene.NewObject(scene.KindEraser, "#000000", 20, geom.Point{X: 40, Y: 50})
	eraser.Points = []geom.Point{{X: 40, Y: 50}, {X: 60, Y: 50}}
	eraser.RecomputeBounds()

	objs := []*scene.Object{
		freehand(10, geom.Point{X: 10, Y: 50}, geom.Point{X: 90, Y: 50}),
		eraser,
	}
	img := r.Frame(objs, false)

	erased := sampleAt(img, 50, 50)
	if erased.R < 250 || erased.G < 250 || erased.B < 250 {
		t.Errorf("erased pixel = %+v, want white surface showing through", erased)
	}
	kept := sampleAt(img, 15, 50)
	if kept.R < 200 || kept.G > 80 {
		t.Errorf("pixel outside the eraser = %+v, want red stroke intact", kept)
	}
}

func TestEraserBelowObjectDoesNotAffectIt(t *testing.T) {
	// Z-order matters: an eraser only subtracts what was drawn before it.
	r := New(100, 100, nil)

	eraser := scene.NewObject(scene.KindEraser, "#000000", 20, geom.Point{X: 40, Y: 50})
	eraser.Points = []geom.Point{{X: 40, Y: 50}, {X: 60, Y: 50}}
	eraser.RecomputeBounds()

	objs := []*scene.Object{
		eraser,
		freehand(10, geom.Point{X: 10, Y: 50}, geom.Point{X: 90, Y: 50}),
	}
	img := r.Frame(objs, false)
	got := sampleAt(img, 50, 50)
	if got.R < 200 || got.G > 80 {
		t.Errorf("stroke above eraser = %+v, want red intact", got)
	}
}

func TestDecorationOnlyWhenRequested(t *testing.T) {
	r := New(100, 100, nil)
	o := freehand(4, geom.Point{X: 20, Y: 20}, geom.Point{X: 80, Y: 80})
	o.Selected = true
	objs := []*scene.Object{o}

	var plain, decorated bytes.Buffer
	if err := r.ExportPNG(&plain, objs); err != nil {
		t.Fatalf("ExportPNG() error: %v", err)
	}

	img := r.Frame(objs, true)
	// A handle square sits at the bounds corner (20,20); it must be drawn
	// in the selection color, which has a strong blue component.
	corner := sampleAt(img, 20, 20)
	if corner.B < 150 {
		t.Errorf("decorated corner pixel = %+v, want selection handle", corner)
	}

	// The exported image must not carry the decoration: re-render
	// undecorated and compare encodes.
	if err := r.ExportPNG(&decorated, objs); err != nil {
		t.Fatalf("ExportPNG() error: %v", err)
	}
	if !bytes.Equal(plain.Bytes(), decorated.Bytes()) {
		t.Error("export output should be independent of selection state")
	}

	undecorated := r.Frame(objs, false)
	plainCorner := sampleAt(undecorated, 20, 20)
	if plainCorner.B > 150 && plainCorner.R < 150 {
		t.Errorf("undecorated corner pixel = %+v, selection leaked into frame", plainCorner)
	}
}
