package viewer

import (
	"math"

	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry is the scene re-centered on Origin. GPU vertices are float32, and
// raw LiDAR coordinates (hundreds of kilometres in projected CRSs) would lose
// centimetre precision without the shift.
type Geometry struct {
	Origin r3.Vec
	Points []r3.Vec
	Colors []colorize.Color
	Axes   [3]scene.Axis
	Radius float64
}

func NewGeometry(sc *scene.Scene, showAxes bool) Geometry {
	origin := sc.Bounds.Center()
	g := Geometry{
		Origin: origin,
		Points: make([]r3.Vec, len(sc.Points)),
		Colors: sc.Colors,
		Radius: sc.Bounds.Diagonal() / 2,
	}
	for i, p := range sc.Points {
		g.Points[i] = r3.Sub(p, origin)
	}
	if showAxes {
		for i, a := range sc.Gizmo.Axes() {
			g.Axes[i] = scene.Axis{
				Start: r3.Sub(a.Start, origin),
				End:   r3.Sub(a.End, origin),
				Color: a.Color,
			}
		}
	}
	return g
}

// HasAxes reports whether any gizmo axis has non-zero length.
func (g Geometry) HasAxes() bool {
	for _, a := range g.Axes {
		if a.Start != a.End {
			return true
		}
	}
	return false
}

// Shade applies a head-light Lambert term to a cylinder along axisDir. A
// cylinder seen side-on catches the most light.
func Shade(c colorize.Color, axisDir, lightDir r3.Vec) colorize.Color {
	const ambient = 0.35
	if r3.Norm(axisDir) == 0 || r3.Norm(lightDir) == 0 {
		return c
	}
	cos := r3.Dot(r3.Unit(axisDir), r3.Unit(lightDir))
	k := ambient + (1-ambient)*math.Sqrt(math.Max(0, 1-cos*cos))
	return colorize.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

const maxSplat = 4

// PackMesh writes positions as xyz float32 triples and colors as opaque RGBA
// bytes, the vertex layout of a GPU point mesh. verts must hold 3 and cols 4
// values per point.
func (g Geometry) PackMesh(verts []float32, cols []uint8) {
	for i, p := range g.Points {
		verts[3*i] = float32(p.X)
		verts[3*i+1] = float32(p.Y)
		verts[3*i+2] = float32(p.Z)
	}
	for i, c := range g.Colors {
		cols[4*i] = channel(c.R)
		cols[4*i+1] = channel(c.G)
		cols[4*i+2] = channel(c.B)
		cols[4*i+3] = 255
	}
}

// SplatOffsets returns the pixel offsets at which a one-pixel point mesh is
// redrawn to appear pointSize pixels wide: an n x n grid centred on zero with
// n = ceil(pointSize), at most maxSplat.
func SplatOffsets(pointSize float64) [][2]float64 {
	n := int(math.Ceil(pointSize))
	n = max(1, min(n, maxSplat))
	half := float64(n-1) / 2
	offsets := make([][2]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			offsets = append(offsets, [2]float64{float64(i) - half, float64(j) - half})
		}
	}
	return offsets
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}
