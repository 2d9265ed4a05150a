// Package report prints what a point-cloud file contains without opening a
// window.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/pipeline"
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Summary struct {
	Source        string  `json:"source"`
	Points        int     `json:"points"`
	SampledPoints int     `json:"sampled_points"`
	Stride        int     `json:"stride"`
	HasColor      bool    `json:"has_color"`
	Mode          string  `json:"mode"`
	Min           Vec3    `json:"min"`
	Max           Vec3    `json:"max"`
	Center        Vec3    `json:"center"`
	Diagonal      float64 `json:"diagonal"`
	Histogram     []int   `json:"elevation_histogram,omitempty"`
}

// Summarize describes a prepared pipeline result. bins <= 0 omits the
// elevation histogram.
func Summarize(res *pipeline.Result, bins int) Summary {
	b := res.Scene.Bounds
	s := Summary{
		Source:        res.Raw.Source,
		Points:        res.Raw.Len(),
		SampledPoints: res.Sampled.Len(),
		Stride:        res.Stride,
		HasColor:      res.Raw.HasColor(),
		Mode:          res.Mode.String(),
		Min:           Vec3{b.Min.X, b.Min.Y, b.Min.Z},
		Max:           Vec3{b.Max.X, b.Max.Y, b.Max.Z},
		Center:        Vec3{b.Center().X, b.Center().Y, b.Center().Z},
		Diagonal:      b.Diagonal(),
	}
	if bins > 0 {
		s.Histogram = ElevationHistogram(res.Sampled.Z(), bins)
	}
	return s
}

// Render writes the styled summary followed by the elevation histogram chart.
func Render(w io.Writer, s Summary) error {
	mode := ModeElevation.Render(s.Mode)
	if s.Mode == colorize.ModeNative.String() {
		mode = ModeNative.Render(s.Mode)
	}

	lines := []string{
		Title.Render(s.Source),
		"",
		row("points", fmt.Sprintf("%d", s.Points)),
		row("sampled", fmt.Sprintf("%d (stride %d)", s.SampledPoints, s.Stride)),
		row("rgb", fmt.Sprintf("%t", s.HasColor)),
		MetricLabel.Render("colors") + mode,
		row("min", formatVec(s.Min)),
		row("max", formatVec(s.Max)),
		row("center", formatVec(s.Center)),
		row("diagonal", fmt.Sprintf("%.3f", s.Diagonal)),
	}
	if _, err := fmt.Fprintln(w, Panel.Render(strings.Join(lines, "\n"))); err != nil {
		return err
	}

	if chart := HistogramChart(s.Histogram, s.Min.Z, s.Max.Z); chart != "" {
		if _, err := fmt.Fprintln(w, Separator(60)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, chart); err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func formatVec(v Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
