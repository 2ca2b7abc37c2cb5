package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/config"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/editor"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/render"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration file")
	scenePath := flag.String("scene", "", "scene JSON to load on start (overrides config)")
	backgroundPath := flag.String("background", "", "background image (overrides config)")
	width := flag.Int("width", 0, "surface width (overrides config)")
	height := flag.Int("height", 0, "surface height (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}
	if *backgroundPath != "" {
		cfg.BackgroundPath = *backgroundPath
	}
	if *width > 0 {
		cfg.SurfaceWidth = *width
	}
	if *height > 0 {
		cfg.SurfaceHeight = *height
	}
	if *debug {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	session := editor.NewSession(log)
	session.SelectTool(editor.Tool(cfg.Tool))
	session.SetStrokeColor(cfg.StrokeColor)
	session.SetStrokeWidth(cfg.StrokeWidth)

	if cfg.ScenePath != "" {
		data, err := os.ReadFile(cfg.ScenePath)
		if err != nil {
			log.Warn("initial scene unreadable, starting empty", "path", cfg.ScenePath, "err", err)
		} else if err := session.LoadScene(data); err != nil {
			log.Warn("initial scene invalid, starting empty", "path", cfg.ScenePath, "err", err)
		}
	}

	renderer := render.New(cfg.SurfaceWidth, cfg.SurfaceHeight, log)

	ui.RunApp(cfg, session, renderer)
}
