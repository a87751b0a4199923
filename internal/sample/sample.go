// Package sample implements the intensity sampler from spec.md §4.6:
// symmetry expansion followed by bilinear interpolation on the (C,γ) grid.
package sample

import (
	"math"
	"sort"

	"github.com/genortech/photoeng/internal/model"
)

// Intensity returns the interpolated intensity at (cDeg, gammaDeg) in
// cd/klm (or cd, if the document is absolute). C wraps modulo 360; γ is
// clamped to [0,180].
func Intensity(p *model.Photometry, cDeg, gammaDeg float64) float64 {
	if len(p.CAngles) == 0 || len(p.GAngles) == 0 {
		return 0
	}

	c := wrap360(cDeg)
	g := clamp(gammaDeg, 0, 180)

	cFolded := model.SampleGridIndex(p.Symmetry, c)
	cLo, cHi, cu := bracket(p.CAngles, cFolded, true)
	gLo, gHi, gv := bracket(p.GAngles, g, false)

	i00 := p.Intensities[cLo][gLo]
	i10 := p.Intensities[cHi][gLo]
	i01 := p.Intensities[cLo][gHi]
	i11 := p.Intensities[cHi][gHi]

	return (1-cu)*(1-gv)*i00 + cu*(1-gv)*i10 + (1-cu)*gv*i01 + cu*gv*i11
}

// Normalized returns Intensity scaled into [0,1] relative to the
// document's declared maximum.
func Normalized(p *model.Photometry, cDeg, gammaDeg float64) float64 {
	if p.MaxIntensity <= 0 {
		return 0
	}
	return Intensity(p, cDeg, gammaDeg) / p.MaxIntensity
}

func wrap360(c float64) float64 {
	c = math.Mod(c, 360)
	if c < 0 {
		c += 360
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bracket finds the pair of indices in a sorted ascending angle sequence
// that bracket v, and the interpolation weight u in [0,1]. When wrap is
// true and v falls beyond the last stored angle, the bracket closes
// around the 0/360 seam instead of clamping to the last row.
func bracket(angles []float64, v float64, wrap bool) (lo, hi int, u float64) {
	n := len(angles)
	if n == 1 {
		return 0, 0, 0
	}

	idx := sort.SearchFloat64s(angles, v)
	switch {
	case idx == 0:
		if v <= angles[0] {
			return 0, 0, 0
		}
		lo, hi = 0, 1
	case idx >= n:
		if wrap {
			lo, hi = n-1, 0
			span := (360 - angles[n-1]) + angles[0]
			if span <= 0 {
				return n - 1, n - 1, 0
			}
			u = (v - angles[n-1]) / span
			return lo, hi, clamp(u, 0, 1)
		}
		return n - 1, n - 1, 0
	default:
		lo, hi = idx-1, idx
	}

	span := angles[hi] - angles[lo]
	if span <= 0 {
		return lo, lo, 0
	}
	u = (v - angles[lo]) / span
	return lo, hi, clamp(u, 0, 1)
}
