package colorize

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps a scalar in [0,1] to an opaque color by linear RGB blending
// between evenly spaced stops.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

// Viridis is matplotlib's perceptually uniform sequential map. The endpoints
// are the exact table values; interior stops are the ten-color viridis scale.
var Viridis = Colormap{
	Name: "viridis",
	stops: []colorful.Color{
		{R: 0.267004, G: 0.004874, B: 0.329415},
		{R: 0.282353, G: 0.156863, B: 0.470588},
		{R: 0.243137, G: 0.290196, B: 0.537255},
		{R: 0.192157, G: 0.407843, B: 0.556863},
		{R: 0.149020, G: 0.509804, B: 0.556863},
		{R: 0.121569, G: 0.619608, B: 0.537255},
		{R: 0.207843, G: 0.717647, B: 0.474510},
		{R: 0.427451, G: 0.803922, B: 0.349020},
		{R: 0.705882, G: 0.870588, B: 0.172549},
		{R: 0.993248, G: 0.906157, B: 0.143936},
	},
}

// At returns the color for t. Values outside [0,1] are clamped, NaN maps to 0.
func (m Colormap) At(t float64) Color {
	if len(m.stops) == 0 {
		return Color{}
	}
	if math.IsNaN(t) || t <= 0 {
		return fromColorful(m.stops[0])
	}
	if t >= 1 {
		return fromColorful(m.stops[len(m.stops)-1])
	}

	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	return fromColorful(m.stops[i].BlendRgb(m.stops[i+1], frac))
}

func fromColorful(c colorful.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}
