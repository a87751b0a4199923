package diagram

import (
	"fmt"
	"sort"

	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/sample"
)

var preferredCPlanes = []float64{0, 90, 180, 270}

// Cartesian plots intensity (cd/klm, y) against gamma (0..180°, x) for up
// to maxCurves C-planes, per spec.md §4.8.
func Cartesian(p *model.Photometry, width, height float64, maxCurves int) Diagram {
	scaleMax := niceCeiling(p.MaxIntensity)
	marginL, marginB := width*0.08, height*0.1
	plotW, plotH := width*0.88, height*0.8

	d := Diagram{Width: width, Height: height, Scale: Scale{
		Title: "Intensity vs gamma", Units: "cd/klm", Max: scaleMax,
	}}

	for tick := 0.0; tick <= 180; tick += 15 {
		x := marginL + plotW*tick/180
		d.Polylines = append(d.Polylines, Polyline{
			Points: []Point2D{{X: x, Y: marginB}, {X: x, Y: marginB + plotH}},
			Class:  "grid",
		})
		d.Labels = append(d.Labels, TextLabel{
			Pos: Point2D{X: x, Y: marginB + plotH + 14}, Text: fmt.Sprintf("%.0f°", tick),
			Anchor: AnchorMiddle, Class: "axis-label",
		})
	}
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

	for i, c := range selectCPlanes(p.CAngles, maxCurves) {
		var pts []Point2D
		for _, g := range p.GAngles {
			v := sample.Intensity(p, c, g)
			x := marginL + plotW*g/180
			y := marginB + plotH - plotH*v/scaleMax
			pts = append(pts, Point2D{X: x, Y: y})
		}
		d.Polylines = append(d.Polylines, Polyline{
			Points: pts, Class: fmt.Sprintf("curve-%d", i),
		})
		d.Labels = append(d.Labels, TextLabel{
			Pos: pts[len(pts)-1], Text: fmt.Sprintf("C%.0f", c),
			Anchor: AnchorStart, Class: fmt.Sprintf("curve-label-%d", i),
		})
	}

	return d
}

// selectCPlanes picks up to maxCurves angles from the stored set, preferring
// C0, C90, C180, C270 when present and otherwise spreading evenly across
// the remainder, per spec.md §4.8.
func selectCPlanes(cAngles []float64, maxCurves int) []float64 {
	if maxCurves <= 0 || len(cAngles) == 0 {
		return nil
	}
	has := make(map[float64]bool, len(cAngles))
	for _, c := range cAngles {
		has[c] = true
	}

	var chosen []float64
	used := make(map[float64]bool)
	for _, pref := range preferredCPlanes {
		if len(chosen) >= maxCurves {
			break
		}
		if has[pref] && !used[pref] {
			chosen = append(chosen, pref)
			used[pref] = true
		}
	}

	remaining := make([]float64, 0, len(cAngles))
	for _, c := range cAngles {
		if !used[c] {
			remaining = append(remaining, c)
		}
	}
	sort.Float64s(remaining)

	slotsLeft := maxCurves - len(chosen)
	if slotsLeft > 0 && len(remaining) > 0 {
		if slotsLeft >= len(remaining) {
			chosen = append(chosen, remaining...)
		} else {
			step := float64(len(remaining)) / float64(slotsLeft)
			for i := 0; i < slotsLeft; i++ {
				idx := int(float64(i) * step)
				if idx >= len(remaining) {
					idx = len(remaining) - 1
				}
				chosen = append(chosen, remaining[idx])
			}
		}
	}

	sort.Float64s(chosen)
	return chosen
}
