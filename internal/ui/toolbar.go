package ui

import (
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/editor"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/export"
)

// colorSwatch is a tappable color square for the stroke palette.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// NewToolbar builds the controls panel: tool buttons, stroke palette, width
// slider and the history/file actions.
func NewToolbar(board *Artboard, win fyne.Window, status *widget.Label) fyne.CanvasObject {
	session := board.session

	tools := []struct {
		label string
		tool  editor.Tool
	}{
		{"Pen", editor.ToolFreehand},
		{"Circle", editor.ToolCircle},
		{"Rect", editor.ToolRect},
		{"Arrow", editor.ToolArrow},
		{"Select", editor.ToolSelect},
		{"Erase", editor.ToolErase},
	}
	toolBox := container.NewHBox()
	for _, t := range tools {
		t := t
		toolBox.Add(widget.NewButton(t.label, func() {
			session.SelectTool(t.tool)
			status.SetText(t.label + " tool")
		}))
	}

	onColorTapped := func(c color.Color) {
		session.SetStrokeColor(colorToHex(c))
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped),
		widget.NewButton("More…", func() {
			dialog.ShowColorPicker("Stroke color", "Pick a stroke color", onColorTapped, win)
		}),
	)

	widthSlider := widget.NewSlider(1, 50)
	widthSlider.SetValue(session.StrokeWidth())
	widthSlider.OnChanged = func(v float64) {
		session.SetStrokeWidth(v)
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 35)), widthSlider)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			session.Undo()
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			session.Redo()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			session.DeleteSelected()
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			session.ClearAll()
			status.SetText("Cleared")
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			saveScene(board, win, status)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			openScene(board, win, status)
		}),
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			exportPNG(board, win, status)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			exportPDF(board, win, status)
		}),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() {
			openBackground(board, win, status)
		}),
	)

	return container.NewHBox(
		toolBox,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
		actions,
	)
}

func saveScene(board *Artboard, win fyne.Window, status *widget.Label) {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		data, err := board.session.EncodeScene()
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if _, err := wc.Write(data); err != nil {
			dialog.ShowError(err, win)
			return
		}
		status.SetText("Scene saved")
	}, win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.SetFileName("scene.json")
	fd.Show()
}

func openScene(board *Artboard, win fyne.Window, status *widget.Label) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if err := board.session.LoadScene(data); err != nil {
			dialog.ShowError(err, win)
			return
		}
		status.SetText("Scene loaded")
	}, win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

func exportPNG(board *Artboard, win fyne.Window, status *widget.Label) {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := board.renderer.ExportPNG(wc, board.session.Objects()); err != nil {
			dialog.ShowError(err, win)
			return
		}
		status.SetText("Image exported")
	}, win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	fd.SetFileName("artboard.png")
	fd.Show()
}

func exportPDF(board *Artboard, win fyne.Window, status *widget.Label) {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		w, h := board.renderer.Size()
		if err := export.PDF(wc, float64(w), float64(h), board.session.Objects()); err != nil {
			dialog.ShowError(err, win)
			return
		}
		status.SetText("PDF exported")
	}, win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fd.SetFileName("artboard.pdf")
	fd.Show()
}

func openBackground(board *Artboard, win fyne.Window, status *widget.Label) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		board.renderer.LoadBackground(path, func() {
			fyne.Do(board.Refresh)
		})
		status.SetText("Loading background…")
	}, win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	fd.Show()
}
