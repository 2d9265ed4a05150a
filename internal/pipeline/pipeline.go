// Package pipeline runs Loader, Sampler, Colorizer and Scene Builder once and
// hands the result to the viewer.
package pipeline

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/config"
	"github.com/san-kum/lazview/internal/loader"
	"github.com/san-kum/lazview/internal/pointcloud"
	"github.com/san-kum/lazview/internal/sampler"
	"github.com/san-kum/lazview/internal/scene"
	"github.com/san-kum/lazview/internal/viewer"
)

// Result is everything produced before the window opens.
type Result struct {
	Raw     *pointcloud.Cloud
	Sampled *pointcloud.Cloud
	Colors  []colorize.Color
	Mode    colorize.Mode
	Stride  int
	Scene   *scene.Scene
}

func Depth(cfg *config.Config) colorize.ColorDepth {
	if cfg.ColorDepth == 8 {
		return colorize.Depth8
	}
	return colorize.Depth16
}

// Prepare loads cfg.Input and builds the scene. Nothing is rendered.
func Prepare(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	raw, err := loader.Load(cfg.Input, loader.Options{LASzip: cfg.LASzip})
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("stage load: %d points", raw.Len())

	sampled, err := sampler.Stride(raw, cfg.Downsample)
	if err != nil {
		return nil, err
	}
	glog.Infof("downsampled to %d points (stride %d)", sampled.Len(), cfg.Downsample)

	colors, mode := colorize.Apply(cfg.UseColor, Depth(cfg), sampled)
	glog.V(1).Infof("coloring mode %s", mode)

	sc, err := scene.Build(sampled, colors, mode)
	if err != nil {
		return nil, fmt.Errorf("build scene for %s: %w", cfg.Input, err)
	}
	glog.V(1).Infof("bounds min=%v max=%v diagonal=%.3f", sc.Bounds.Min, sc.Bounds.Max, sc.Bounds.Diagonal())

	return &Result{
		Raw:     raw,
		Sampled: sampled,
		Colors:  colors,
		Mode:    mode,
		Stride:  cfg.Downsample,
		Scene:   sc,
	}, nil
}

// Run prepares the scene and shows it until the window is closed. Load
// failures are returned before the backend is touched.
func Run(cfg *config.Config, backend viewer.Backend) error {
	res, err := Prepare(cfg)
	if err != nil {
		return err
	}
	return viewer.Show(backend, res.Scene, viewer.OptionsFromConfig(cfg))
}
