package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ElevationHistogram counts z values into equal-width bins spanning
// [min(z), max(z)]. A flat cloud puts every point in the first bin.
func ElevationHistogram(z []float64, bins int) []int {
	if bins <= 0 || len(z) == 0 {
		return nil
	}
	counts := make([]int, bins)

	lo, hi := floats.Min(z), floats.Max(z)
	if lo == hi {
		counts[0] = len(z)
		return counts
	}

	sorted := append([]float64(nil), z...)
	sort.Float64s(sorted)

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	weights := stat.Histogram(nil, dividers, sorted, nil)
	for i, w := range weights {
		counts[i] = int(w)
	}
	return counts
}

// HistogramChart plots bin counts as an ASCII line chart.
func HistogramChart(counts []int, zmin, zmax float64) string {
	if len(counts) == 0 {
		return ""
	}
	data := make([]float64, len(counts))
	for i, c := range counts {
		data[i] = float64(c)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("elevation %.2f .. %.2f", zmin, zmax)),
	)
}
