package model

import "math"

// wrap360 folds a C angle into [0, 360).
func wrap360(c float64) float64 {
	c = math.Mod(c, 360)
	if c < 0 {
		c += 360
	}
	return c
}

// SampleGridIndex maps an arbitrary C angle to the stored row(s) implied by
// sym, returning the folded angle to look up in CAngles. A single helper
// here keeps the mirror-angle arithmetic from spec.md §4.5 out of every
// diagram builder and out of the sampler.
func SampleGridIndex(sym Symmetry, cDeg float64) float64 {
	c := wrap360(cDeg)

	switch sym {
	case SymmetryVerticalAxis:
		return 0

	case SymmetryPlaneC0C180:
		if c <= 180 {
			return c
		}
		return 360 - c

	case SymmetryPlaneC90C270:
		switch {
		case c >= 90 && c <= 270:
			return c
		case c < 90:
			return 180 - c
		default: // c > 270
			return 540 - c
		}

	case SymmetryBothPlanes:
		return fold90(c)

	default: // SymmetryNone
		return c
	}
}

// fold90 reduces a wrapped C angle into the stored [0,90] quadrant used by
// BothPlanes symmetry.
func fold90(c float64) float64 {
	cPrime := math.Mod(c, 180)
	if cPrime < 0 {
		cPrime += 180
	}
	if cPrime > 90 {
		cPrime = 180 - cPrime
	}
	return cPrime
}
