// Package scene assembles the renderable geometry for the viewer: the
// colored point set, its bounding box, the orientation gizmo and the
// initial camera placement.
package scene

import (
	"errors"
	"fmt"

	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/pointcloud"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrColorMismatch = errors.New("scene: color count does not match point count")

// GizmoScale is the gizmo axis length as a fraction of the bounds diagonal.
const GizmoScale = 0.1

type Scene struct {
	Points []r3.Vec
	Colors []colorize.Color
	Bounds pointcloud.Bounds
	Gizmo  Gizmo
	Mode   colorize.Mode
	Source string
}

// Gizmo is a coordinate frame of three orthogonal axes meeting at Origin.
type Gizmo struct {
	Origin r3.Vec
	Size   float64
}

type Axis struct {
	Start, End r3.Vec
	Color      colorize.Color
}

// Axes returns x, y and z in red, green and blue.
func (g Gizmo) Axes() [3]Axis {
	return [3]Axis{
		{Start: g.Origin, End: r3.Add(g.Origin, r3.Vec{X: g.Size}), Color: colorize.Color{R: 1}},
		{Start: g.Origin, End: r3.Add(g.Origin, r3.Vec{Y: g.Size}), Color: colorize.Color{G: 1}},
		{Start: g.Origin, End: r3.Add(g.Origin, r3.Vec{Z: g.Size}), Color: colorize.Color{B: 1}},
	}
}

// Build pairs points with colors one-to-one and derives bounds and gizmo.
func Build(c *pointcloud.Cloud, colors []colorize.Color, mode colorize.Mode) (*Scene, error) {
	if c.Len() == 0 {
		return nil, pointcloud.ErrEmptyCloud
	}
	if len(colors) != c.Len() {
		return nil, fmt.Errorf("%w: %d points, %d colors", ErrColorMismatch, c.Len(), len(colors))
	}

	b, err := pointcloud.ComputeBounds(c.Points)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Points: c.Points,
		Colors: colors,
		Bounds: b,
		Gizmo: Gizmo{
			Origin: b.Center(),
			Size:   GizmoScale * b.Diagonal(),
		},
		Mode:   mode,
		Source: c.Source,
	}, nil
}

func (s *Scene) Len() int {
	return len(s.Points)
}
