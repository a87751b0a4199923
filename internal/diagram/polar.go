package diagram

import (
	"fmt"
	"math"

	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/sample"
)

// Polar builds the two canonical half-plane polar diagrams (C0-C180 and
// C90-C270), per spec.md §4.8. The photometric axis (nadir) points toward
// the bottom of the frame, zenith toward the top; each half-plane pair
// folds into one closed curve.
func Polar(p *model.Photometry, width, height float64) Diagram {
	radius := math.Min(width, height) / 2 * 0.85
	center := Point2D{X: width / 2, Y: height / 2}
	scaleMax := niceCeiling(p.MaxIntensity)

	d := Diagram{Width: width, Height: height, Scale: Scale{
		Title: "Polar intensity distribution", Units: "cd/klm", Max: scaleMax,
	}}

	d.Polylines = append(d.Polylines, halfPlaneCurve(p, 0, 180, center, radius, scaleMax, "curve-c0-c180"))
	d.Polylines = append(d.Polylines, halfPlaneCurve(p, 90, 270, center, radius, scaleMax, "curve-c90-c270"))

	// Concentric grid circles at 20% intervals of the scale maximum.
	for i := 1; i <= 5; i++ {
		r := radius * float64(i) / 5
		d.Arcs = append(d.Arcs, Arc{Center: center, RadiusX: r, RadiusY: r, StartAngle: 0, SweepAngle: 360, Class: "grid"})
		d.Labels = append(d.Labels, TextLabel{
			Pos:    Point2D{X: center.X, Y: center.Y - r},
			Text:   fmt.Sprintf("%.0f", scaleMax*float64(i)/5),
			Anchor: AnchorMiddle,
			Class:  "grid-label",
		})
	}

	// Radial ticks every 15° of gamma, both halves.
	for gamma := 0.0; gamma <= 180; gamma += 15 {
		d.Polylines = append(d.Polylines, spoke(center, radius, gamma, true))
		d.Polylines = append(d.Polylines, spoke(center, radius, gamma, false))
	}

	return d
}

// halfPlaneCurve samples intensity at every stored gamma angle on both
// sides of a C0/C180-style half-plane pair and folds the result into one
// closed polyline.
func halfPlaneCurve(p *model.Photometry, cLeft, cRight float64, center Point2D, radius, scaleMax float64, class string) Polyline {
	var pts []Point2D
	for _, g := range p.GAngles {
		r := sample.Intensity(p, cRight, g) / scaleMax * radius
		pts = append(pts, polarPoint(center, r, g, true))
	}
	for i := len(p.GAngles) - 1; i >= 0; i-- {
		g := p.GAngles[i]
		r := sample.Intensity(p, cLeft, g) / scaleMax * radius
		pts = append(pts, polarPoint(center, r, g, false))
	}
	return Polyline{Points: pts, Closed: true, Class: class}
}

// polarPoint converts a (radius, gamma) pair to local coordinates; right
// selects the +X side.
func polarPoint(center Point2D, r, gammaDeg float64, right bool) Point2D {
	rad := gammaDeg * math.Pi / 180
	x := r * math.Sin(rad)
	if !right {
		x = -x
	}
	y := r * math.Cos(rad)
	return Point2D{X: center.X + x, Y: center.Y + y}
}

func spoke(center Point2D, radius, gammaDeg float64, right bool) Polyline {
	edge := polarPoint(center, radius, gammaDeg, right)
	return Polyline{Points: []Point2D{center, edge}, Class: "grid"}
}
