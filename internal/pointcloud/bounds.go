package pointcloud

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is the axis-aligned bounding box of a point set.
type Bounds struct {
	Min, Max r3.Vec
}

// ComputeBounds returns the bounding box of points. It fails on an empty set
// since min and max are undefined there.
func ComputeBounds(points []r3.Vec) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrEmptyCloud
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	zs := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return Bounds{
		Min: r3.Vec{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)},
		Max: r3.Vec{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)},
	}, nil
}

func (b Bounds) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

func (b Bounds) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Diagonal is the length of the box diagonal, min corner to max corner.
func (b Bounds) Diagonal() float64 {
	return r3.Norm(b.Size())
}
