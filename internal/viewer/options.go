package viewer

import (
	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/config"
)

type Options struct {
	Width, Height int
	Title         string
	// PointSize is the on-screen point size in pixels.
	PointSize  float64
	Background colorize.Color
	LightOn    bool
	ShowAxes   bool
	FovY       float64
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

func OptionsFromConfig(cfg *config.Config) Options {
	bg := cfg.Render.Background
	return Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		PointSize:  cfg.Render.PointSize,
		Background: colorize.Color{R: bg[0], G: bg[1], B: bg[2]},
		LightOn:    cfg.Render.LightOn,
		ShowAxes:   cfg.Render.ShowAxes,
		FovY:       cfg.Render.FovY,
	}
}
