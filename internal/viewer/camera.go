package viewer

import (
	"math"

	"github.com/san-kum/lazview/internal/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	orbitSpeed = 0.005 // radians per pixel
	panSpeed   = 0.0015
	zoomFactor = 0.9 // distance scale per wheel step
	maxPitch   = 89 * math.Pi / 180
	minDist    = 1e-3
)

// Camera is an orbit camera around Target with +Z up. Angles are radians;
// Yaw is measured in the XY plane from +X, Pitch above the XY plane.
type Camera struct {
	Target   r3.Vec
	Distance float64
	Yaw      float64
	Pitch    float64
	FovY     float64
}

// CameraFromView converts a look-at placement into orbit parameters.
func CameraFromView(v scene.View) Camera {
	d := r3.Sub(v.Eye, v.Target)
	dist := r3.Norm(d)
	c := Camera{Target: v.Target, Distance: dist, FovY: v.FovY}
	if dist == 0 {
		c.Distance = 1
		return c
	}
	c.Yaw = math.Atan2(d.Y, d.X)
	c.Pitch = clamp(math.Asin(d.Z/dist), -maxPitch, maxPitch)
	return c
}

// Eye is the camera position in world units.
func (c Camera) Eye() r3.Vec {
	cp := math.Cos(c.Pitch)
	dir := r3.Vec{
		X: cp * math.Cos(c.Yaw),
		Y: cp * math.Sin(c.Yaw),
		Z: math.Sin(c.Pitch),
	}
	return r3.Add(c.Target, r3.Scale(c.Distance, dir))
}

func (c Camera) Up() r3.Vec {
	return r3.Vec{Z: 1}
}

// Forward is the unit vector from eye to target.
func (c Camera) Forward() r3.Vec {
	return r3.Unit(r3.Sub(c.Target, c.Eye()))
}

// Right is the unit screen-right direction in world space.
func (c Camera) Right() r3.Vec {
	return r3.Unit(r3.Cross(c.Forward(), c.Up()))
}

// ScreenUp is the unit screen-up direction in world space.
func (c Camera) ScreenUp() r3.Vec {
	return r3.Cross(c.Right(), c.Forward())
}

// Apply moves the camera by one frame of user input.
func (c *Camera) Apply(in Input) {
	c.Yaw -= in.Orbit[0] * orbitSpeed
	c.Pitch = clamp(c.Pitch+in.Orbit[1]*orbitSpeed, -maxPitch, maxPitch)

	if in.Pan[0] != 0 || in.Pan[1] != 0 {
		right, up := c.Right(), c.ScreenUp()
		step := c.Distance * panSpeed
		c.Target = r3.Add(c.Target, r3.Scale(-in.Pan[0]*step, right))
		c.Target = r3.Add(c.Target, r3.Scale(in.Pan[1]*step, up))
	}

	if in.Zoom != 0 {
		c.Distance = math.Max(minDist, c.Distance*math.Pow(zoomFactor, in.Zoom))
	}
}

// WorldPerPixel is the world-space size of one screen pixel at the target
// distance for a viewport of the given height.
func (c Camera) WorldPerPixel(screenHeight int) float64 {
	if screenHeight <= 0 {
		return 0
	}
	return 2 * c.Distance * math.Tan(c.FovY*math.Pi/360) / float64(screenHeight)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
