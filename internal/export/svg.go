package export

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lazview/internal/colorize"
	"github.com/san-kum/lazview/internal/scene"
)

const DefaultSVGSize = 800

// PlanSVG renders a top-down view of the scene: x to the right, y up, one dot
// per point in its display color. The longer horizontal extent spans size
// pixels.
func PlanSVG(sc *scene.Scene, size int) string {
	if sc == nil || sc.Len() == 0 || size <= 0 {
		return ""
	}

	b := sc.Bounds
	rangeX := b.Max.X - b.Min.X
	rangeY := b.Max.Y - b.Min.Y
	span := max(rangeX, rangeY)
	if span == 0 {
		span = 1
	}
	scale := float64(size) / span
	width := max(1, rangeX*scale)
	height := max(1, rangeY*scale)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g>
`, width, height, width, height, hex(colorize.Color{R: 0.2, G: 0.2, B: 0.2})))

	for i, p := range sc.Points {
		x := (p.X - b.Min.X) * scale
		y := height - (p.Y-b.Min.Y)*scale
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="0.8" fill="%s"/>
`, x, y, hex(sc.Colors[i])))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func hex(c colorize.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
