package viewer

import (
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/pointcloud"
	"github.com/san-kum/lazview/internal/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

func testScene() *scene.Scene {
	c := &pointcloud.Cloud{Points: []r3.Vec{
		{X: 150000, Y: 450000, Z: 0},
		{X: 150100, Y: 450050, Z: 30},
		{X: 150040, Y: 450010, Z: 12},
	}}
	sc, err := scene.Build(c, colorize.Elevation(c.Points, colorize.Viridis), colorize.ModeElevation)
	Expect(err).NotTo(HaveOccurred())
	return sc
}

var _ = Describe("Viewer", func() {
	var (
		backend *fakeBackend
		sc      *scene.Scene
		v       *Viewer
	)

	BeforeEach(func() {
		backend = &fakeBackend{}
		sc = testScene()
		v = New(backend, sc, DefaultOptions())
	})

	It("starts uninitialized", func() {
		Expect(v.State()).To(Equal(Uninitialized))
	})

	Describe("Open", func() {
		It("moves to running and applies the window options", func() {
			Expect(v.Open()).To(Succeed())
			Expect(v.State()).To(Equal(Running))
			Expect(backend.opts.Width).To(Equal(1200))
			Expect(backend.opts.Height).To(Equal(900))
			Expect(backend.opts.PointSize).To(Equal(2.0))
			Expect(backend.opts.Background).To(Equal(colorize.Color{R: 0.2, G: 0.2, B: 0.2}))
			Expect(backend.opts.LightOn).To(BeTrue())
		})

		It("uploads geometry centered on the bounding box", func() {
			Expect(v.Open()).To(Succeed())
			g := backend.uploaded
			Expect(g.Points).To(HaveLen(3))
			Expect(g.Origin).To(Equal(sc.Bounds.Center()))
			Expect(g.Points[0]).To(Equal(r3.Sub(sc.Points[0], sc.Bounds.Center())))
			Expect(g.Colors).To(Equal(sc.Colors))
			Expect(g.HasAxes()).To(BeTrue())
			Expect(g.Axes[0].Start).To(Equal(r3.Vec{}))
			Expect(r3.Norm(r3.Sub(g.Axes[2].End, g.Axes[2].Start))).To(BeNumerically("~", sc.Gizmo.Size, 1e-9))
		})

		It("frames the whole cloud after the extrinsic placement", func() {
			Expect(v.Open()).To(Succeed())
			cam := v.Camera()
			Expect(cam.Target.X).To(BeNumerically("~", 0, 1e-9))
			radius := backend.uploaded.Radius
			Expect(radius).To(BeNumerically("~", sc.Bounds.Diagonal()/2, 1e-9))
			half := cam.FovY * math.Pi / 360
			Expect(radius).To(BeNumerically("<=", cam.Distance*math.Sin(half)))
		})

		It("keeps the extrinsic view direction", func() {
			Expect(v.Open()).To(Succeed())
			d := sc.Bounds.Diagonal()
			want := r3.Unit(r3.Vec{X: d, Y: d, Z: d / 2})
			got := r3.Unit(r3.Sub(v.Camera().Eye(), v.Camera().Target))
			Expect(r3.Norm(r3.Sub(want, got))).To(BeNumerically("<", 1e-9))
		})

		It("fails without a display and stays uninitialized", func() {
			backend.openErr = fmt.Errorf("%w: %w", ErrNoDisplay, errHeadless)
			err := v.Open()
			Expect(err).To(MatchError(ErrNoDisplay))
			Expect(v.State()).To(Equal(Uninitialized))
			Expect(backend.uploaded.Points).To(BeEmpty())
		})

		It("cannot be opened twice", func() {
			Expect(v.Open()).To(Succeed())
			Expect(v.Open()).To(MatchError(ErrInvalidTransition))
		})
	})

	Describe("Run", func() {
		It("refuses to run before open", func() {
			Expect(v.Run()).To(MatchError(ErrInvalidTransition))
		})

		It("draws one frame per input until the window closes", func() {
			backend.inputs = []Input{{}, {Orbit: [2]float64{10, 0}}, {Zoom: 1}}
			Expect(v.Open()).To(Succeed())
			Expect(v.Run()).To(Succeed())

			Expect(backend.drawn).To(HaveLen(3))
			Expect(v.Frames()).To(Equal(3))
			Expect(v.State()).To(Equal(Closed))
			Expect(backend.closed).To(Equal(1))
			Expect(backend.drawn[2].Distance).To(BeNumerically("<", backend.drawn[0].Distance))
		})

		It("stops on a quit request", func() {
			backend.inputs = []Input{{}, {Quit: true}, {}, {}}
			Expect(v.Open()).To(Succeed())
			Expect(v.Run()).To(Succeed())
			Expect(backend.drawn).To(HaveLen(1))
			Expect(v.State()).To(Equal(Closed))
		})

		It("restores the framed view on reset", func() {
			backend.inputs = []Input{
				{Orbit: [2]float64{200, 50}, Zoom: -3, Pan: [2]float64{40, 10}},
				{Reset: true},
			}
			Expect(v.Open()).To(Succeed())
			home := v.Camera()
			Expect(v.Run()).To(Succeed())

			Expect(backend.drawn[0]).NotTo(Equal(home))
			Expect(backend.drawn[1].Distance).To(BeNumerically("~", home.Distance, 1e-9))
			Expect(backend.drawn[1].Yaw).To(BeNumerically("~", home.Yaw, 1e-9))
			Expect(backend.drawn[1].Target).To(Equal(home.Target))
		})
	})

	Describe("Close", func() {
		It("is not allowed before open", func() {
			Expect(v.Close()).To(MatchError(ErrInvalidTransition))
		})

		It("is idempotent once closed", func() {
			Expect(v.Open()).To(Succeed())
			Expect(v.Close()).To(Succeed())
			Expect(v.Close()).To(Succeed())
			Expect(backend.closed).To(Equal(1))
			Expect(v.Run()).To(MatchError(ErrInvalidTransition))
		})
	})

	It("Show runs the full lifecycle", func() {
		backend.inputs = []Input{{}, {}}
		Expect(Show(backend, sc, DefaultOptions())).To(Succeed())
		Expect(backend.opened).To(BeTrue())
		Expect(backend.closed).To(Equal(1))
	})
})
