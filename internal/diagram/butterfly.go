package diagram

import (
	"fmt"
	"math"
	"sort"

	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/sample"
)

const butterflyYawDeg = 30

// maxButterflyWings caps the per-C-plane meridian curves drawn on top of
// the wireframe, keeping the diagram legible for densely sampled files.
const maxButterflyWings = 12

// Butterfly builds the isometric-3D photometric solid per spec.md §4.8:
// constant-gamma wireframe circles rendered first, then per-C-plane
// "wings" painted back-to-front by projected centroid depth.
func Butterfly(p *model.Photometry, width, height float64, tiltDeg float64) Diagram {
	scaleMax := niceCeiling(p.MaxIntensity)
	scalePx := math.Min(width, height) / 2 * 0.8
	center := Point2D{X: width / 2, Y: height / 2}

	d := Diagram{Width: width, Height: height, Scale: Scale{
		Title: "Photometric solid (isometric)", Units: "cd/klm", Max: scaleMax,
	}}

	for _, gamma := range p.GAngles {
		var pts []Point2D
		for c := 0.0; c < 360; c += 10 {
			r := sample.Intensity(p, c, gamma) / scaleMax
			pts = append(pts, projectToScreen(r, c, gamma, tiltDeg, center, scalePx))
		}
		d.Polylines = append(d.Polylines, Polyline{Points: pts, Closed: true, Class: "wireframe"})
	}

	wings := representativeCPlanes(p.CAngles, maxButterflyWings)
	type wing struct {
		poly  Polyline
		depth float64
	}
	var built []wing
	for i, c := range wings {
		var pts []Point2D
		var depthSum float64
		for _, gamma := range p.GAngles {
			r := sample.Intensity(p, c, gamma) / scaleMax
			pt, depth := projectWithDepth(r, c, gamma, tiltDeg, center, scalePx)
			pts = append(pts, pt)
			depthSum += depth
		}
		for i := len(p.GAngles) - 1; i >= 0; i-- {
			gamma := p.GAngles[i]
			r := sample.Intensity(p, c+180, gamma) / scaleMax
			pt, depth := projectWithDepth(r, c+180, gamma, tiltDeg, center, scalePx)
			pts = append(pts, pt)
			depthSum += depth
		}
		built = append(built, wing{
			poly:  Polyline{Points: pts, Closed: true, Class: fmt.Sprintf("wing-%d", i%4)},
			depth: depthSum / float64(2*len(p.GAngles)),
		})
	}
	sort.Slice(built, func(i, j int) bool { return built[i].depth < built[j].depth })
	for _, w := range built {
		d.Polylines = append(d.Polylines, w.poly)
	}

	return d
}

// representativeCPlanes dedupes C-angles modulo 180 (each plane pair drawn
// once as a two-sided wing) and caps the count.
func representativeCPlanes(cAngles []float64, max int) []float64 {
	seen := make(map[float64]bool)
	var reps []float64
	for _, c := range cAngles {
		r := math.Mod(c, 180)
		if !seen[r] {
			seen[r] = true
			reps = append(reps, r)
		}
	}
	sort.Float64s(reps)
	if len(reps) > max {
		step := float64(len(reps)) / float64(max)
		picked := make([]float64, 0, max)
		for i := 0; i < max; i++ {
			idx := int(float64(i) * step)
			if idx >= len(reps) {
				idx = len(reps) - 1
			}
			picked = append(picked, reps[idx])
		}
		return picked
	}
	return reps
}

// sphericalPoint returns the 3D direction-scaled point for (r, C, gamma):
// gamma measured from the nadir (+Z down), C swept about the vertical axis.
func sphericalPoint(r, cDeg, gammaDeg float64) (x, y, z float64) {
	cRad := cDeg * math.Pi / 180
	gRad := gammaDeg * math.Pi / 180
	x = r * math.Sin(gRad) * math.Cos(cRad)
	y = r * math.Sin(gRad) * math.Sin(cRad)
	z = -r * math.Cos(gRad)
	return
}

// projectWithDepth applies the yaw-then-pitch isometric rotation from
// spec.md §4.8 and returns both the 2D screen point and the depth
// component used for painter's-algorithm ordering.
func projectWithDepth(r, cDeg, gammaDeg, pitchDeg float64, center Point2D, scalePx float64) (Point2D, float64) {
	x, y, z := sphericalPoint(r, cDeg, gammaDeg)
	yaw := butterflyYawDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180

	xYaw := x*math.Cos(yaw) - z*math.Sin(yaw)
	zYaw := x*math.Sin(yaw) + z*math.Cos(yaw)

	yPitch := y*math.Cos(pitch) - zYaw*math.Sin(pitch)
	depth := y*math.Sin(pitch) + zYaw*math.Cos(pitch)

	return Point2D{X: center.X + xYaw*scalePx, Y: center.Y - yPitch*scalePx}, depth
}

func projectToScreen(r, cDeg, gammaDeg, pitchDeg float64, center Point2D, scalePx float64) Point2D {
	pt, _ := projectWithDepth(r, cDeg, gammaDeg, pitchDeg, center, scalePx)
	return pt
}
