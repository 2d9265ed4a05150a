package export

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/pointcloud"
	"github.com/san-kum/lazview/internal/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	c := &pointcloud.Cloud{Points: []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 5, Z: 2},
		{X: 4, Y: 1, Z: 1},
	}}
	sc, err := scene.Build(c, colorize.Elevation(c.Points, colorize.Viridis), colorize.ModeElevation)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestWritePLYRoundTrip(t *testing.T) {
	sc := testScene(t)
	var buf bytes.Buffer
	if err := WritePLY(&buf, sc); err != nil {
		t.Fatalf("write: %v", err)
	}

	mesh, err := ply.ReadMesh(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if mesh.Topology() != modeling.PointTopology {
		t.Errorf("expected point topology, got %d", mesh.Topology())
	}
	pos := mesh.View().Float3Data[modeling.PositionAttribute]
	if len(pos) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pos))
	}
	if pos[1].X() != 10 || pos[1].Y() != 5 || pos[1].Z() != 2 {
		t.Errorf("unexpected position %v", pos[1])
	}
}

func TestPlanSVG(t *testing.T) {
	sc := testScene(t)
	svg := PlanSVG(sc, 100)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("malformed svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 3 {
		t.Errorf("expected 3 circles, got %d", n)
	}
	if !strings.Contains(svg, `width="100" height="50"`) {
		t.Error("expected aspect-preserving 100x50 canvas")
	}
	// First point is the min corner: left edge, bottom row.
	if !strings.Contains(svg, `cx="0.0" cy="50.0"`) {
		t.Error("min corner not mapped to bottom left")
	}
	if !strings.Contains(svg, hex(sc.Colors[1])) {
		t.Error("point color missing")
	}
	if PlanSVG(sc, 0) != "" || PlanSVG(nil, 100) != "" {
		t.Error("expected empty output for degenerate input")
	}
}

func TestSave(t *testing.T) {
	sc := testScene(t)
	dir := t.TempDir()

	for _, name := range []string{"out.ply", "OUT.SVG"} {
		path := filepath.Join(dir, name)
		if err := Save(path, sc); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}

	err := Save(filepath.Join(dir, "out.xyz"), sc)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.xyz")); err == nil {
		t.Error("unsupported format should not create a file")
	}
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.ply")
	errDiskFull := errors.New("disk full")

	err := writeFile(path, func(w io.Writer) error {
		if _, err := w.Write([]byte("ply\nformat binary")); err != nil {
			return err
		}
		return errDiskFull
	})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected write error, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("partial file left behind: %v", err)
	}
}
