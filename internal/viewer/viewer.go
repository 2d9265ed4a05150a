package viewer

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/san-kum/lazview/internal/pointcloud"
	"github.com/san-kum/lazview/internal/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Input is one frame of user navigation gathered by a Backend.
type Input struct {
	Orbit [2]float64 // mouse drag in pixels
	Pan   [2]float64 // mouse drag in pixels
	Zoom  float64    // wheel steps, positive zooms in
	Reset bool
	Quit  bool
}

// Backend owns the window, the uploaded geometry and the input devices.
type Backend interface {
	Open(opts Options) error
	Upload(g Geometry)
	ShouldClose() bool
	Poll() Input
	Draw(cam Camera)
	Close()
}

type Viewer struct {
	backend Backend
	scene   *scene.Scene
	opts    Options
	state   State

	geometry Geometry
	camera   Camera
	// homeEye is the extrinsic eye, relative to the geometry origin, that
	// view resets keep the direction of.
	homeEye scene.View
	frames  int
}

func New(backend Backend, sc *scene.Scene, opts Options) *Viewer {
	return &Viewer{
		backend: backend,
		scene:   sc,
		opts:    opts,
		state:   Uninitialized,
	}
}

func (v *Viewer) State() State   { return v.state }
func (v *Viewer) Camera() Camera { return v.camera }
func (v *Viewer) Frames() int    { return v.frames }

// Geometry returns what was uploaded to the backend.
func (v *Viewer) Geometry() Geometry { return v.geometry }

// Open creates the window and frames the scene. The extrinsic placement is
// applied first, then the view is reset so the whole cloud is visible.
func (v *Viewer) Open() error {
	if v.state != Uninitialized {
		return transitionError("open", v.state)
	}
	if err := v.backend.Open(v.opts); err != nil {
		return fmt.Errorf("viewer: open window: %w", err)
	}

	v.geometry = NewGeometry(v.scene, v.opts.ShowAxes)
	v.backend.Upload(v.geometry)

	b := v.localBounds()
	v.homeEye = scene.ExtrinsicView(b, v.opts.FovY)
	v.camera = CameraFromView(v.homeEye)
	v.ResetView()

	v.state = Running
	glog.Infof("viewer open: %dx%d, %d points, point size %.1f", v.opts.Width, v.opts.Height, len(v.geometry.Points), v.opts.PointSize)
	return nil
}

// ResetView frames the bounding box, keeping the extrinsic view direction.
func (v *Viewer) ResetView() {
	view := scene.ResetView(v.localBounds(), v.homeEye.Eye, v.opts.FovY)
	v.camera = CameraFromView(view)
}

// Run blocks in the event loop until the user closes the window, then
// releases it.
func (v *Viewer) Run() error {
	if v.state != Running {
		return transitionError("run", v.state)
	}
	for !v.backend.ShouldClose() {
		in := v.backend.Poll()
		if in.Quit {
			break
		}
		if in.Reset {
			v.ResetView()
		} else {
			v.camera.Apply(in)
		}
		v.backend.Draw(v.camera)
		v.frames++
	}
	glog.V(1).Infof("viewer loop exited after %d frames", v.frames)
	return v.Close()
}

// Close releases the window. Closing a closed viewer is a no-op.
func (v *Viewer) Close() error {
	switch v.state {
	case Closed:
		return nil
	case Uninitialized:
		return transitionError("close", v.state)
	}
	v.backend.Close()
	v.geometry = Geometry{}
	v.state = Closed
	return nil
}

// Show opens, runs and closes a viewer for sc.
func Show(backend Backend, sc *scene.Scene, opts Options) error {
	v := New(backend, sc, opts)
	if err := v.Open(); err != nil {
		return err
	}
	return v.Run()
}

func (v *Viewer) localBounds() pointcloud.Bounds {
	return pointcloud.Bounds{
		Min: r3.Sub(v.scene.Bounds.Min, v.geometry.Origin),
		Max: r3.Sub(v.scene.Bounds.Max, v.geometry.Origin),
	}
}
