// Package sampler reduces a point cloud by fixed-stride subsampling.
package sampler

import (
	"errors"
	"fmt"

	"github.com/san-kum/lazview/internal/pointcloud"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrInvalidStride = errors.New("sampler: stride must be a positive integer")

// SampledLen is the number of points kept from n points at the given stride,
// ceil(n / stride).
func SampledLen(n, stride int) int {
	if n <= 0 || stride <= 0 {
		return 0
	}
	return (n + stride - 1) / stride
}

// Stride keeps every stride-th point starting at index 0, preserving order.
// Native colors, when present, are sampled in lockstep. A stride of 1 returns
// a copy equal to the input.
func Stride(c *pointcloud.Cloud, stride int) (*pointcloud.Cloud, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStride, stride)
	}
	if c == nil {
		return &pointcloud.Cloud{}, nil
	}

	n := SampledLen(len(c.Points), stride)
	out := &pointcloud.Cloud{
		Points: make([]r3.Vec, 0, n),
		Source: c.Source,
	}
	if c.HasColor() {
		out.Colors = make([]pointcloud.RGB16, 0, n)
	}

	for i := 0; i < len(c.Points); i += stride {
		out.Points = append(out.Points, c.Points[i])
		if out.Colors != nil {
			out.Colors = append(out.Colors, c.Colors[i])
		}
	}
	return out, nil
}
