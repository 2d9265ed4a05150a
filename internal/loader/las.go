package loader

import (
	"fmt"

	"github.com/jblindsay/lidario"
	"github.com/san-kum/lazview/internal/pointcloud"
	"gonum.org/v1/gonum/spatial/r3"
)

// readLAS decodes every point record. Coordinates come back with the header
// scale and offset already applied.
func readLAS(path string, _ Options) (*pointcloud.Cloud, error) {
	lf, err := lidario.NewLasFile(path, "r")
	if err != nil {
		return nil, err
	}
	defer lf.Close()

	n := lf.Header.NumberPoints
	points := make([]r3.Vec, n)
	var colors []pointcloud.RGB16

	for i := 0; i < n; i++ {
		p, err := lf.LasPoint(i)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pd := p.PointData()
		points[i] = r3.Vec{X: pd.X, Y: pd.Y, Z: pd.Z}

		// Only formats 2 and 3 carry RGB; the others return a zero RgbData, not nil.
		if f := p.Format(); i == 0 && (f == 2 || f == 3) {
			colors = make([]pointcloud.RGB16, n)
		}
		if colors != nil {
			rgb := p.RgbData()
			colors[i] = pointcloud.RGB16{R: rgb.Red, G: rgb.Green, B: rgb.Blue}
		}
	}

	return pointcloud.New(points, colors)
}
