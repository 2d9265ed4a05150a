// Package export writes a built scene to files that other point-cloud tools
// can open.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"
	"github.com/golang/glog"
	"github.com/san-kum/lazview/internal/scene"
)

var ErrUnsupportedFormat = errors.New("export: unsupported output format")

// PointCloud converts the scene's points and display colors to a polyform
// point-topology mesh.
func PointCloud(sc *scene.Scene) modeling.Mesh {
	positions := make([]vector3.Float64, len(sc.Points))
	colors := make([]vector3.Float64, len(sc.Colors))
	for i, p := range sc.Points {
		positions[i] = vector3.New(p.X, p.Y, p.Z)
	}
	for i, c := range sc.Colors {
		colors[i] = vector3.New(c.R, c.G, c.B)
	}

	return modeling.NewPointCloud(
		map[string][]vector3.Vector[float64]{
			modeling.PositionAttribute: positions,
			modeling.ColorAttribute:    colors,
		},
		nil,
		nil,
		nil,
	)
}

func WritePLY(w io.Writer, sc *scene.Scene) error {
	return ply.WriteBinary(w, PointCloud(sc))
}

// Save writes sc to path, choosing the format from the extension: .ply for a
// binary point cloud, .svg for a plan-view preview.
func Save(path string, sc *scene.Scene) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ply" && ext != ".svg" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	write := func(w io.Writer) error { return WritePLY(w, sc) }
	if ext == ".svg" {
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, PlanSVG(sc, DefaultSVGSize))
			return err
		}
	}
	if err := writeFile(path, write); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	glog.Infof("wrote %d points to %s", sc.Len(), path)
	return nil
}

// writeFile removes path again if write or close fails, so no partial file
// is left behind.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
