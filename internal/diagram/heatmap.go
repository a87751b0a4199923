package diagram

import (
	"fmt"

	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/sample"
	"github.com/lucasb-eyer/go-colorful"
)

// heatmapCGrid and heatmapGGrid set the sampled cell resolution; spec.md
// §4.8 leaves the exact grid density to the implementation.
const (
	heatmapCGrid = 72
	heatmapGGrid = 36
	heatmapLegendEntries = 8
)

var heatmapRampStops = []colorful.Color{
	{R: 0.15, G: 0.15, B: 0.55}, // deep blue, lowest
	{R: 0.10, G: 0.55, B: 0.75},
	{R: 0.95, G: 0.90, B: 0.30}, // yellow, mid
	{R: 0.95, G: 0.55, B: 0.10},
	{R: 0.75, G: 0.10, B: 0.10}, // red, highest
}

// rampColor interpolates t in [0,1] along the perceptual ramp using
// CIE-Luv blending, the same space go-colorful recommends for
// visually-even gradients.
func rampColor(t float64) colorful.Color {
	if t <= 0 {
		return heatmapRampStops[0]
	}
	if t >= 1 {
		return heatmapRampStops[len(heatmapRampStops)-1]
	}
	segments := len(heatmapRampStops) - 1
	pos := t * float64(segments)
	idx := int(pos)
	if idx >= segments {
		idx = segments - 1
	}
	frac := pos - float64(idx)
	return heatmapRampStops[idx].BlendLuv(heatmapRampStops[idx+1], frac)
}

// Heatmap builds the C×gamma color-cell grid per spec.md §4.8, plus an
// 8-entry legend column.
func Heatmap(p *model.Photometry, width, height float64) Diagram {
	scaleMax := niceCeiling(p.MaxIntensity)
	legendW := width * 0.12
	plotW, plotH := width-legendW, height

	d := Diagram{Width: width, Height: height, Scale: Scale{
		Title: "Intensity heatmap", Units: "cd/klm", Max: scaleMax,
	}}

	cellW := plotW / heatmapCGrid
	cellH := plotH / heatmapGGrid
	for ci := 0; ci < heatmapCGrid; ci++ {
		c := 360 * float64(ci) / heatmapCGrid
		for gi := 0; gi < heatmapGGrid; gi++ {
			g := 180 * float64(gi) / heatmapGGrid
			v := sample.Intensity(p, c, g)
			t := 0.0
			if scaleMax > 0 {
				t = v / scaleMax
				if t > 1 {
					t = 1
				}
			}
			col := rampColor(t)
			r8, g8, b8 := col.RGB255()
			d.Cells = append(d.Cells, ColorCell{
				X: float64(ci) * cellW, Y: float64(gi) * cellH,
				W: cellW, H: cellH,
				R: r8, G: g8, B: b8, A: 255,
			})
		}
	}

	legendX := plotW + width*0.02
	legendH := height * 0.8 / heatmapLegendEntries
	legendTop := height * 0.1
	for i := 0; i < heatmapLegendEntries; i++ {
		t := 1 - float64(i)/float64(heatmapLegendEntries-1)
		col := rampColor(t)
		r8, g8, b8 := col.RGB255()
		y := legendTop + float64(i)*legendH
		d.Cells = append(d.Cells, ColorCell{
			X: legendX, Y: y, W: width * 0.04, H: legendH,
			R: r8, G: g8, B: b8, A: 255,
		})
		d.Labels = append(d.Labels, TextLabel{
			Pos:    Point2D{X: legendX + width*0.05, Y: y + legendH/2},
			Text:   fmt.Sprintf("%.0f", scaleMax*t),
			Anchor: AnchorStart, Class: "legend-label",
		})
	}

	return d
}
