package pointcloud

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// RGB16 is one native color sample. LAS stores each channel as uint16
// regardless of the sensor's real bit depth.
type RGB16 struct {
	R, G, B uint16
}

type Cloud struct {
	Points []r3.Vec
	// Colors is nil when the source carries no red/green/blue channels.
	Colors []RGB16
	// Source is the file the cloud was read from, if any.
	Source string
}

// New builds a cloud and checks that colors, when given, are parallel to points.
func New(points []r3.Vec, colors []RGB16) (*Cloud, error) {
	if colors != nil && len(colors) != len(points) {
		return nil, fmt.Errorf("%w: %d points, %d colors", ErrLengthMismatch, len(points), len(colors))
	}
	return &Cloud{Points: points, Colors: colors}, nil
}

func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Points)
}

// HasColor reports whether all three native color channels are present.
func (c *Cloud) HasColor() bool {
	return c != nil && c.Colors != nil && len(c.Colors) == len(c.Points)
}

// Z returns the elevation column as a fresh slice.
func (c *Cloud) Z() []float64 {
	zs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		zs[i] = p.Z
	}
	return zs
}
