// Package config loads host configuration from a TOML file, filling every
// missing field with a stated default. Flags in main override the file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults for all host-supplied settings.
const (
	DefaultSurfaceWidth   = 800
	DefaultSurfaceHeight  = 600
	DefaultControlsHeight = 48
	DefaultTool           = "freehand"
	DefaultStrokeColor    = "#000000"
	DefaultStrokeWidth    = 3.0
)

type Config struct {
	SurfaceWidth   int     `toml:"surface_width"`
	SurfaceHeight  int     `toml:"surface_height"`
	ControlsHeight int     `toml:"controls_height"`
	ScenePath      string  `toml:"scene"`
	BackgroundPath string  `toml:"background"`
	Tool           string  `toml:"tool"`
	StrokeColor    string  `toml:"stroke_color"`
	StrokeWidth    float64 `toml:"stroke_width"`
	Debug          bool    `toml:"debug"`
}

func Default() Config {
	return Config{
		SurfaceWidth:   DefaultSurfaceWidth,
		SurfaceHeight:  DefaultSurfaceHeight,
		ControlsHeight: DefaultControlsHeight,
		Tool:           DefaultTool,
		StrokeColor:    DefaultStrokeColor,
		StrokeWidth:    DefaultStrokeWidth,
	}
}

// Load reads the TOML file at path over the defaults. An empty path yields
// the defaults; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate resets out-of-range values to their defaults.
func (c *Config) Validate() {
	if c.SurfaceWidth <= 0 {
		c.SurfaceWidth = DefaultSurfaceWidth
	}
	if c.SurfaceHeight <= 0 {
		c.SurfaceHeight = DefaultSurfaceHeight
	}
	if c.ControlsHeight <= 0 {
		c.ControlsHeight = DefaultControlsHeight
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = DefaultStrokeWidth
	}
	if c.StrokeColor == "" {
		c.StrokeColor = DefaultStrokeColor
	}
	if c.Tool == "" {
		c.Tool = DefaultTool
	}
}
