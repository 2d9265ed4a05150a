package loader

import (
	"fmt"
	"math"
	"os"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/san-kum/lazview/internal/pointcloud"
	"gonum.org/v1/gonum/spatial/r3"
)

// readPLY accepts point topologies only. PLY colors arrive in unit range and
// are promoted to the 16-bit native scale used by LAS.
func readPLY(path string, _ Options) (*pointcloud.Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh, err := ply.ReadMesh(f)
	if err != nil {
		return nil, err
	}
	if mesh.Topology() != modeling.PointTopology {
		return nil, fmt.Errorf("%w: topology %d", ErrNotPointCloud, mesh.Topology())
	}

	view := mesh.View()
	positions := view.Float3Data[modeling.PositionAttribute]
	points := make([]r3.Vec, len(positions))
	for i, p := range positions {
		points[i] = r3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()}
	}

	var colors []pointcloud.RGB16
	if rgb, ok := view.Float3Data[modeling.ColorAttribute]; ok && len(rgb) == len(points) {
		colors = make([]pointcloud.RGB16, len(rgb))
		for i, c := range rgb {
			colors[i] = pointcloud.RGB16{R: unitTo16(c.X()), G: unitTo16(c.Y()), B: unitTo16(c.Z())}
		}
	}

	return pointcloud.New(points, colors)
}

func unitTo16(v float64) uint16 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return math.MaxUint16
	}
	return uint16(math.Round(v * math.MaxUint16))
}
