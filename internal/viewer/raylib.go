package viewer

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lazview/internal/colorize"
	"gonum.org/v1/gonum/spatial/r3"
)

// HUD colors
var (
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(120, 120, 120, 255)
)

// Raylib draws through raylib. All calls must happen on the main thread,
// which raylib-go locks at init.
type Raylib struct {
	opts   Options
	bg     rl.Color
	model  rl.Model
	loaded bool
	axes   [3]rlAxis
	count  int
}

type rlAxis struct {
	start, end rl.Vector3
	dir        r3.Vec
	color      colorize.Color
}

func NewRaylib() *Raylib {
	return &Raylib{}
}

func (r *Raylib) Open(opts Options) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: window %dx%d could not be created", ErrNoDisplay, opts.Width, opts.Height)
	}
	rl.SetTargetFPS(60)

	r.opts = opts
	r.bg = toRL(opts.Background)
	return nil
}

// Upload copies the points into a vertex buffer once. The arrays come from
// raylib's allocator; UnloadModel frees them.
func (r *Raylib) Upload(g Geometry) {
	r.unload()
	r.count = len(g.Points)
	for i, a := range g.Axes {
		r.axes[i] = rlAxis{start: vec(a.Start), end: vec(a.End), dir: r3.Sub(a.End, a.Start), color: a.Color}
	}
	if r.count == 0 {
		return
	}

	verts := unsafe.Slice((*float32)(rl.MemAlloc(uint32(3*r.count*4))), 3*r.count)
	cols := unsafe.Slice((*uint8)(rl.MemAlloc(uint32(4*r.count))), 4*r.count)
	g.PackMesh(verts, cols)

	mesh := rl.Mesh{
		VertexCount: int32(r.count),
		Vertices:    &verts[0],
		Colors:      &cols[0],
	}
	rl.UploadMesh(&mesh, false)
	r.model = rl.LoadModelFromMesh(mesh)
	r.loaded = true
}

func (r *Raylib) unload() {
	if r.loaded {
		rl.UnloadModel(r.model)
		r.loaded = false
	}
}

func (r *Raylib) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Raylib) Poll() Input {
	var in Input

	delta := rl.GetMouseDelta()
	d := [2]float64{float64(delta.X), float64(delta.Y)}
	switch {
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && rl.IsKeyDown(rl.KeyLeftShift):
		in.Pan = d
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		in.Orbit = d
	case rl.IsMouseButtonDown(rl.MouseRightButton), rl.IsMouseButtonDown(rl.MouseMiddleButton):
		in.Pan = d
	}

	in.Zoom = float64(rl.GetMouseWheelMove())
	if rl.IsKeyDown(rl.KeyEqual) || rl.IsKeyDown(rl.KeyKpAdd) {
		in.Zoom += 0.2
	}
	if rl.IsKeyDown(rl.KeyMinus) || rl.IsKeyDown(rl.KeyKpSubtract) {
		in.Zoom -= 0.2
	}

	// Arrow keys orbit at a fixed rate.
	if rl.IsKeyDown(rl.KeyLeft) {
		in.Orbit[0] -= 4
	}
	if rl.IsKeyDown(rl.KeyRight) {
		in.Orbit[0] += 4
	}
	if rl.IsKeyDown(rl.KeyUp) {
		in.Orbit[1] += 4
	}
	if rl.IsKeyDown(rl.KeyDown) {
		in.Orbit[1] -= 4
	}

	in.Reset = rl.IsKeyPressed(rl.KeyR)
	in.Quit = rl.IsKeyPressed(rl.KeyQ)
	return in
}

func (r *Raylib) Draw(cam Camera) {
	rc := rl.Camera3D{
		Position:   vec(cam.Eye()),
		Target:     vec(cam.Target),
		Up:         vec(cam.Up()),
		Fovy:       float32(cam.FovY),
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(r.bg)

	rl.BeginMode3D(rc)
	r.drawPoints(cam)
	r.drawAxes(cam)
	rl.EndMode3D()

	r.drawHUD()
	rl.EndDrawing()
}

// drawPoints redraws the one-pixel point mesh at small screen offsets to
// reach the requested point size.
func (r *Raylib) drawPoints(cam Camera) {
	if !r.loaded {
		return
	}
	px := cam.WorldPerPixel(rl.GetScreenHeight())
	right, up := cam.Right(), cam.ScreenUp()
	for _, o := range SplatOffsets(r.opts.PointSize) {
		shift := r3.Add(r3.Scale(o[0]*px, right), r3.Scale(o[1]*px, up))
		rl.DrawModelPoints(r.model, vec(shift), 1, rl.White)
	}
}

func (r *Raylib) drawAxes(cam Camera) {
	light := cam.Forward()
	for _, a := range r.axes {
		if r3.Norm(a.dir) == 0 {
			continue
		}
		if !r.opts.LightOn {
			rl.DrawLine3D(a.start, a.end, toRL(a.color))
			continue
		}
		width := float32(r3.Norm(a.dir) * 0.03)
		rl.DrawCylinderEx(a.start, a.end, width, width, 12, toRL(Shade(a.color, a.dir, light)))
	}
}

func (r *Raylib) drawHUD() {
	rl.DrawText(fmt.Sprintf("%s  %d points", r.opts.Title, r.count), 16, 16, 18, ColText)
	rl.DrawText("[DRAG] ORBIT  [SHIFT/RMB] PAN  [WHEEL] ZOOM  [R] RESET  [Q] QUIT", 16, int32(rl.GetScreenHeight())-28, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(rl.GetScreenWidth())-80, 16, 14, ColTextDim)
}

func (r *Raylib) Close() {
	r.unload()
	r.axes = [3]rlAxis{}
	rl.CloseWindow()
}

func vec(p r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z))
}

func toRL(c colorize.Color) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), 255)
}

var _ Backend = (*Raylib)(nil)
