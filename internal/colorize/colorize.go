package colorize

import (
	"github.com/golang/glog"
	"github.com/san-kum/lazview/internal/pointcloud"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon keeps elevation normalization finite on flat clouds.
const Epsilon = 1e-8

// Color is an RGB triple with each channel in [0,1].
type Color struct {
	R, G, B float64
}

type Mode int

const (
	ModeElevation Mode = iota
	ModeNative
)

func (m Mode) String() string {
	switch m {
	case ModeNative:
		return "native"
	case ModeElevation:
		return "elevation"
	default:
		return "unknown"
	}
}

// ColorDepth is the full-scale value of a native color channel.
type ColorDepth int

const (
	Depth16 ColorDepth = 65535
	Depth8  ColorDepth = 255
)

// SelectMode uses native colors only if requested and present.
func SelectMode(useColor bool, c *pointcloud.Cloud) Mode {
	if useColor && c.HasColor() {
		return ModeNative
	}
	return ModeElevation
}

// Native scales each channel by the color depth. Channels above full scale
// (8-bit data stored in a 16-bit field with the wrong depth) are clamped to 1.
func Native(colors []pointcloud.RGB16, depth ColorDepth) []Color {
	if depth <= 0 {
		depth = Depth16
	}
	scale := float64(depth)
	out := make([]Color, len(colors))
	for i, c := range colors {
		out[i] = Color{
			R: clamp01(float64(c.R) / scale),
			G: clamp01(float64(c.G) / scale),
			B: clamp01(float64(c.B) / scale),
		}
	}
	return out
}

// NormalizeElevation maps each z to (z - zmin) / (zmax - zmin + Epsilon).
func NormalizeElevation(points []r3.Vec) []float64 {
	if len(points) == 0 {
		return []float64{}
	}
	zs := make([]float64, len(points))
	for i, p := range points {
		zs[i] = p.Z
	}
	zmin, zmax := floats.Min(zs), floats.Max(zs)
	span := zmax - zmin + Epsilon
	for i := range zs {
		zs[i] = (zs[i] - zmin) / span
	}
	return zs
}

func Elevation(points []r3.Vec, cmap Colormap) []Color {
	norm := NormalizeElevation(points)
	out := make([]Color, len(norm))
	for i, t := range norm {
		out[i] = cmap.At(t)
	}
	return out
}

// Apply selects a mode for the cloud and produces its color set.
func Apply(useColor bool, depth ColorDepth, c *pointcloud.Cloud) ([]Color, Mode) {
	mode := SelectMode(useColor, c)
	if c == nil {
		return []Color{}, mode
	}
	if useColor && mode != ModeNative {
		glog.Warningf("native colors requested but %s has no rgb channels, coloring by elevation", c.Source)
	}
	if mode == ModeNative {
		return Native(c.Colors, depth), mode
	}
	return Elevation(c.Points, Viridis), mode
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
