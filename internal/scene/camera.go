package scene

import (
	"math"

	"github.com/san-kum/lazview/internal/pointcloud"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultFovY is the vertical field of view in degrees.
const DefaultFovY = 60.0

// ViewMargin pads the reset distance beyond the tight bounding-sphere fit.
const ViewMargin = 1.1

// View is a look-at camera placement.
type View struct {
	Eye, Target, Up r3.Vec
	FovY            float64
}

// Extrinsic returns the 4x4 rigid transform with identity rotation whose
// translation puts the eye at center + (d, d, d/2), d being the diagonal.
func Extrinsic(b pointcloud.Bounds) *mat.Dense {
	c, d := b.Center(), b.Diagonal()
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, c.X + d,
		0, 1, 0, c.Y + d,
		0, 0, 1, c.Z + d*0.5,
		0, 0, 0, 1,
	})
}

// Translation reads the translation column of a 4x4 transform.
func Translation(m mat.Matrix) r3.Vec {
	return r3.Vec{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)}
}

// ExtrinsicView looks from the extrinsic's eye toward the bounds center.
// It makes no visibility guarantee; ResetView does.
func ExtrinsicView(b pointcloud.Bounds, fovY float64) View {
	eye := Translation(Extrinsic(b))
	return View{Eye: eye, Target: b.Center(), Up: upFor(r3.Sub(eye, b.Center())), FovY: fovY}
}

// ResetView keeps the direction from the bounds center toward eye and moves
// the eye far enough that the whole bounding sphere fits the vertical field
// of view. A degenerate direction falls back to the extrinsic's (1, 1, 0.5).
func ResetView(b pointcloud.Bounds, eye r3.Vec, fovY float64) View {
	if fovY <= 0 || fovY >= 180 {
		fovY = DefaultFovY
	}
	center := b.Center()

	dir := r3.Sub(eye, center)
	if r3.Norm(dir) < 1e-12 || math.IsNaN(r3.Norm(dir)) {
		dir = r3.Vec{X: 1, Y: 1, Z: 0.5}
	}
	dir = r3.Unit(dir)

	radius := b.Diagonal() / 2
	if radius <= 0 {
		radius = 1
	}
	dist := ViewMargin * radius / math.Sin(fovY*math.Pi/360)

	return View{
		Eye:    r3.Add(center, r3.Scale(dist, dir)),
		Target: center,
		Up:     upFor(dir),
		FovY:   fovY,
	}
}

// Distance from eye to target.
func (v View) Distance() float64 {
	return r3.Norm(r3.Sub(v.Eye, v.Target))
}

// upFor prefers +Z, the elevation axis of LiDAR data, unless the view
// looks straight along it.
func upFor(dir r3.Vec) r3.Vec {
	n := r3.Norm(dir)
	if n == 0 || math.Abs(dir.Z)/n > 0.999 {
		return r3.Vec{Y: 1}
	}
	return r3.Vec{Z: 1}
}
