// Package ui is the Fyne shell around the editing core: the interactive
// surface widget, the toolbar and the file dialogs.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/editor"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/render"
)

// Artboard adapts desktop mouse events into the session's normalized
// pointer stream and displays the rasterized frame. Redraw is reactive:
// the session's change hook triggers Refresh, there is no frame loop.
type Artboard struct {
	widget.BaseWidget
	session  *editor.Session
	renderer *render.Renderer
}

var _ fyne.Widget = (*Artboard)(nil)
var _ fyne.Draggable = (*Artboard)(nil)
var _ desktop.Mouseable = (*Artboard)(nil)

func NewArtboard(session *editor.Session, renderer *render.Renderer) *Artboard {
	b := &Artboard{session: session, renderer: renderer}
	b.ExtendBaseWidget(b)
	session.SetOnChange(b.Refresh)
	return b
}

func (b *Artboard) pointer(pos fyne.Position, phase editor.Phase) {
	b.session.HandlePointer(editor.Event{
		Pos:   geom.Point{X: float64(pos.X), Y: float64(pos.Y)},
		Phase: phase,
	})
}

func (b *Artboard) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer(e.Position, editor.PhaseDown)
	}
}

func (b *Artboard) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pointer(e.Position, editor.PhaseUp)
	}
}

func (b *Artboard) Dragged(e *fyne.DragEvent) {
	b.pointer(e.Position, editor.PhaseMove)
}

// DragEnd carries no position; the up event doesn't need one.
func (b *Artboard) DragEnd() {
	b.session.HandlePointer(editor.Event{Phase: editor.PhaseUp})
}

func (b *Artboard) MouseIn(*desktop.MouseEvent)    {}
func (b *Artboard) MouseOut()                      {}
func (b *Artboard) MouseMoved(*desktop.MouseEvent) {}

func (b *Artboard) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.renderer.Frame(b.session.Objects(), true))
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	return &artboardRenderer{board: b, img: img}
}

type artboardRenderer struct {
	board *Artboard
	img   *canvas.Image
}

func (r *artboardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img}
}

func (r *artboardRenderer) Refresh() {
	r.img.Image = r.board.renderer.Frame(r.board.session.Objects(), true)
	r.img.Refresh()
}

func (r *artboardRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
}

// MinSize pins the widget to the surface so pointer coordinates map 1:1
// onto frame pixels.
func (r *artboardRenderer) MinSize() fyne.Size {
	w, h := r.board.renderer.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *artboardRenderer) Destroy() {}
