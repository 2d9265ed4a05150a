package colorize

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/san-kum/lazview/internal/pointcloud"
	"github.com/san-kum/lazview/internal/sampler"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNativeEndpoints(t *testing.T) {
	g := NewWithT(t)

	colors := Native([]pointcloud.RGB16{
		{R: 0, G: 0, B: 0},
		{R: 65535, G: 65535, B: 65535},
		{R: 32767, G: 32767, B: 32767},
	}, Depth16)

	g.Expect(colors).To(HaveLen(3))
	g.Expect(colors[0]).To(Equal(Color{0, 0, 0}))
	g.Expect(colors[1]).To(Equal(Color{1, 1, 1}))
	g.Expect(colors[2].R).To(BeNumerically("~", 0.5, 1e-4))
	g.Expect(colors[2].G).To(BeNumerically("~", 0.5, 1e-4))
	g.Expect(colors[2].B).To(BeNumerically("~", 0.5, 1e-4))
}

func TestNativeRange(t *testing.T) {
	g := NewWithT(t)

	in := make([]pointcloud.RGB16, 0, 256)
	for i := 0; i < 65536; i += 257 {
		in = append(in, pointcloud.RGB16{R: uint16(i), G: uint16(65535 - i), B: uint16(i / 2)})
	}
	for _, c := range Native(in, Depth16) {
		for _, v := range []float64{c.R, c.G, c.B} {
			g.Expect(v).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
		}
	}
}

func TestNativeEightBitClamps(t *testing.T) {
	g := NewWithT(t)

	colors := Native([]pointcloud.RGB16{{R: 255, G: 128, B: 1000}}, Depth8)
	g.Expect(colors[0].R).To(Equal(1.0))
	g.Expect(colors[0].G).To(BeNumerically("~", 128.0/255.0, 1e-12))
	g.Expect(colors[0].B).To(Equal(1.0))
}

func TestNormalizeElevation(t *testing.T) {
	g := NewWithT(t)

	points := []r3.Vec{{Z: 5}, {Z: -5}, {Z: 0}, {Z: 15}}
	norm := NormalizeElevation(points)

	g.Expect(norm).To(HaveLen(4))
	for _, v := range norm {
		g.Expect(v).To(And(BeNumerically(">=", 0), BeNumerically("<=", 1)))
	}
	g.Expect(norm[1]).To(Equal(0.0))
	g.Expect(norm[3]).To(BeNumerically("~", 1.0, 1e-8))
	g.Expect(norm[2]).To(BeNumerically("~", 0.25, 1e-8))
}

func TestNormalizeElevationFlat(t *testing.T) {
	g := NewWithT(t)

	points := []r3.Vec{{Z: 42}, {Z: 42}, {Z: 42}}
	norm := NormalizeElevation(points)
	for _, v := range norm {
		g.Expect(math.IsNaN(v)).To(BeFalse())
		g.Expect(v).To(Equal(0.0))
	}

	colors := Elevation(points, Viridis)
	for _, c := range colors {
		g.Expect(c).To(Equal(Viridis.At(0)))
	}
}

func TestNormalizeElevationEmpty(t *testing.T) {
	if got := NormalizeElevation(nil); len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

func TestViridisEndpoints(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Viridis.At(0)).To(Equal(Color{0.267004, 0.004874, 0.329415}))
	g.Expect(Viridis.At(1)).To(Equal(Color{0.993248, 0.906157, 0.143936}))
	g.Expect(Viridis.At(-3)).To(Equal(Viridis.At(0)))
	g.Expect(Viridis.At(7)).To(Equal(Viridis.At(1)))
	g.Expect(Viridis.At(math.NaN())).To(Equal(Viridis.At(0)))
}

func TestViridisMonotonicGreen(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		c := Viridis.At(float64(i) / 100)
		if c.G < prev {
			t.Fatalf("green channel decreased at t=%.2f", float64(i)/100)
		}
		prev = c.G
	}
}

func TestSelectMode(t *testing.T) {
	colored := &pointcloud.Cloud{
		Points: []r3.Vec{{}, {}},
		Colors: []pointcloud.RGB16{{}, {}},
	}
	plain := &pointcloud.Cloud{Points: []r3.Vec{{}, {}}}

	tests := []struct {
		name     string
		useColor bool
		cloud    *pointcloud.Cloud
		expected Mode
	}{
		{"requested and present", true, colored, ModeNative},
		{"requested but missing", true, plain, ModeElevation},
		{"not requested, present", false, colored, ModeElevation},
		{"not requested, missing", false, plain, ModeElevation},
	}

	for _, tt := range tests {
		if got := SelectMode(tt.useColor, tt.cloud); got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expected, got)
		}
	}
}

func TestApplyNative(t *testing.T) {
	g := NewWithT(t)

	cloud := &pointcloud.Cloud{
		Points: []r3.Vec{{Z: 0}, {Z: 1}, {Z: 2}},
		Colors: []pointcloud.RGB16{{R: 0, G: 0, B: 0}, {R: 65535, G: 65535, B: 65535}, {R: 32767, G: 32767, B: 32767}},
	}
	colors, mode := Apply(true, Depth16, cloud)
	g.Expect(mode).To(Equal(ModeNative))
	g.Expect(colors[0]).To(Equal(Color{0, 0, 0}))
	g.Expect(colors[1]).To(Equal(Color{1, 1, 1}))
	g.Expect(colors[2].R).To(BeNumerically("~", 0.5, 1e-4))
}

func TestSampledElevationScenario(t *testing.T) {
	g := NewWithT(t)

	// 1000 points, z linearly spaced over [0, 100].
	cloud := &pointcloud.Cloud{Points: make([]r3.Vec, 1000)}
	for i := range cloud.Points {
		cloud.Points[i] = r3.Vec{X: float64(i), Z: 100 * float64(i) / 999}
	}

	sampled, err := sampler.Stride(cloud, 10)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(sampled.Len()).To(Equal(100))

	colors, mode := Apply(false, Depth16, sampled)
	g.Expect(mode).To(Equal(ModeElevation))
	g.Expect(colors).To(HaveLen(100))
	g.Expect(colors[0]).To(Equal(Viridis.At(0)))

	last := colors[len(colors)-1]
	end := Viridis.At(1)
	g.Expect(last.R).To(BeNumerically("~", end.R, 1e-6))
	g.Expect(last.G).To(BeNumerically("~", end.G, 1e-6))
	g.Expect(last.B).To(BeNumerically("~", end.B, 1e-6))
}
