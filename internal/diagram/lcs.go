package diagram

import (
	"fmt"

	"github.com/genortech/photoeng/internal/model"
)

// lcsZoneOrder is the fixed ten-zone order from spec.md §4.8, front-to-back
// then up.
var lcsZoneOrder = []string{"FVH", "FH", "FM", "FL", "BL", "BM", "BH", "BVH", "UL", "UH"}

// LCSZones integrates the ten TM-15-07 flux zones.
func LCSZones(p *model.Photometry) map[string]float64 {
	return map[string]float64{
		"FVH": integrateZone(p, -90, 90, 80, 90),
		"FH":  integrateZone(p, -90, 90, 60, 80),
		"FM":  integrateZone(p, -90, 90, 30, 60),
		"FL":  integrateZone(p, -90, 90, 0, 30),
		"BL":  integrateZone(p, 90, 270, 0, 30),
		"BM":  integrateZone(p, 90, 270, 30, 60),
		"BH":  integrateZone(p, 90, 270, 60, 80),
		"BVH": integrateZone(p, 90, 270, 80, 90),
		"UL":  integrateZone(p, 0, 360, 90, 100),
		"UH":  integrateZone(p, 0, 360, 100, 180),
	}
}

// LCS builds the ten-zone bar chart per spec.md §4.8.
func LCS(p *model.Photometry, width, height float64) Diagram {
	zones := LCSZones(p)
	var maxZone float64
	for _, v := range zones {
		if v > maxZone {
			maxZone = v
		}
	}
	scaleMax := niceCeiling(maxZone)

	marginL, marginB := width*0.08, height*0.12
	plotW, plotH := width*0.9, height*0.8
	barW := plotW / float64(len(lcsZoneOrder))

	d := Diagram{Width: width, Height: height, Scale: Scale{
		Title: "Luminaire classification (LCS)", Units: "lm", Max: scaleMax,
	}}

	for _, v := range linTicks(scaleMax, 5) {
		y := marginB + plotH - plotH*v/scaleMax
		d.Polylines = append(d.Polylines, Polyline{
			Points: []Point2D{{X: marginL, Y: y}, {X: marginL + plotW, Y: y}},
			Class:  "grid",
		})
		d.Labels = append(d.Labels, TextLabel{
			Pos: Point2D{X: marginL - 6, Y: y}, Text: fmt.Sprintf("%.0f", v),
			Anchor: AnchorEnd, Class: "axis-label",
		})
	}

	for i, name := range lcsZoneOrder {
		v := zones[name]
		barH := plotH * v / scaleMax
		x := marginL + float64(i)*barW
		top := marginB + plotH - barH
		d.Polygons = append(d.Polygons, Polygon{
			Points: []Point2D{
				{X: x + barW*0.1, Y: marginB + plotH},
				{X: x + barW*0.9, Y: marginB + plotH},
				{X: x + barW*0.9, Y: top},
				{X: x + barW*0.1, Y: top},
			},
			Class: fmt.Sprintf("lcs-bar-%d", i),
		})
		d.Labels = append(d.Labels, TextLabel{
			Pos: Point2D{X: x + barW/2, Y: marginB + plotH + 14}, Text: name,
			Anchor: AnchorMiddle, Class: "axis-label",
		})
	}

	return d
}
