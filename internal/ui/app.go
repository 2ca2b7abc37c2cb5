package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/config"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/editor"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/render"
)

// RunApp opens the editor window and blocks until it closes. The window is
// fixed-size so widget coordinates stay 1:1 with surface pixels.
func RunApp(cfg config.Config, session *editor.Session, renderer *render.Renderer) {
	a := app.New()
	win := a.NewWindow("Artboard")

	board := NewArtboard(session, renderer)
	status := widget.NewLabel("Ready")
	toolbar := NewToolbar(board, win, status)

	win.SetContent(container.NewBorder(toolbar, status, nil, nil, board))
	win.Resize(fyne.NewSize(
		float32(cfg.SurfaceWidth),
		float32(cfg.SurfaceHeight+cfg.ControlsHeight),
	))
	win.SetFixedSize(true)

	if cfg.BackgroundPath != "" {
		renderer.LoadBackground(cfg.BackgroundPath, func() {
			fyne.Do(board.Refresh)
		})
	}

	win.ShowAndRun()
}
