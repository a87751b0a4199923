package ldt

import (
	"strconv"
	"strings"

	"github.com/genortech/photoeng/internal/model"
)

// Write serializes a Photometry document to LDT text, emitting the exact
// line sequence read by Parse (spec.md §4.2). Numbers use '.' as the
// decimal separator, at least one fractional digit, no exponents, and LF
// line endings; the writer never fails over a document that passed
// Parse, or any document whose arrays are internally consistent.
func Write(p *model.Photometry) string {
	var b strings.Builder

	writeLine(&b, sanitizeText(p.CompanyIdentification))
	writeLine(&b, itoa(int(p.TypeIndicator)))
	writeLine(&b, itoa(int(p.Symmetry)))

	mc := fullCircleCPlaneCount(p)
	writeLine(&b, itoa(mc))
	writeLine(&b, formatFloat(angleIncrement(p.CAngles)))
	writeLine(&b, itoa(len(p.GAngles)))
	writeLine(&b, formatFloat(angleIncrement(p.GAngles)))

	writeLine(&b, sanitizeText(p.MeasurementReportNumber))
	writeLine(&b, sanitizeText(p.LuminaireName))
	writeLine(&b, sanitizeText(p.LuminaireNumber))
	writeLine(&b, sanitizeText(p.FileName))
	writeLine(&b, sanitizeText(p.DateUser))

	writeLine(&b, formatFloat(p.Length))
	writeLine(&b, formatFloat(p.Width))
	writeLine(&b, formatFloat(p.Height))
	writeLine(&b, formatFloat(p.LuminousAreaLength))
	writeLine(&b, formatFloat(p.LuminousAreaWidth))
	writeLine(&b, formatFloat(p.LuminousAreaHeightC0))
	writeLine(&b, formatFloat(p.LuminousAreaHeightC90))
	writeLine(&b, formatFloat(p.LuminousAreaHeightC180))
	writeLine(&b, formatFloat(p.LuminousAreaHeightC270))

	writeLine(&b, formatFloat(p.DownwardFluxFraction*100.0))
	writeLine(&b, formatFloat(p.LightOutputRatio*100.0))
	writeLine(&b, formatFloat(p.ConversionFactor))
	writeLine(&b, formatFloat(p.TiltAngle))

	writeLine(&b, itoa(len(p.LampSets)))
	for _, ls := range p.LampSets {
		writeLine(&b, itoa(ls.NumberOfLamps))
		writeLine(&b, sanitizeText(ls.LampType))
		writeLine(&b, formatFloat(ls.TotalFluxLumens))
		writeLine(&b, sanitizeText(ls.ColorAppearance))
		writeLine(&b, sanitizeText(ls.ColorRenderingGroup))
		writeLine(&b, formatFloat(ls.WattageWithBallast))
	}

	for _, r := range p.DirectRatios {
		writeLine(&b, formatFloat(r))
	}

	for _, a := range p.CAngles {
		writeLine(&b, formatFloat(a))
	}
	for _, a := range p.GAngles {
		writeLine(&b, formatFloat(a))
	}
	for _, row := range p.Intensities {
		for _, v := range row {
			writeLine(&b, formatFloat(v))
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// formatFloat renders v with '.' as the decimal separator and at least one
// fractional digit, matching spec.md §4.2.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// fullCircleCPlaneCount recovers Mc (the number of C-planes across the
// full 360° sweep) from the stored-row count and the symmetry, inverting
// model.StoredCCount.
func fullCircleCPlaneCount(p *model.Photometry) int {
	stored := len(p.CAngles)
	switch p.Symmetry {
	case model.SymmetryVerticalAxis:
		// Mc is not recoverable from a single stored row; LDT documents
		// with this symmetry conventionally declare Mc=1.
		return 1
	case model.SymmetryPlaneC0C180, model.SymmetryPlaneC90C270:
		return (stored - 1) * 2
	case model.SymmetryBothPlanes:
		return (stored - 1) * 4
	default:
		return stored
	}
}

// angleIncrement returns the typical spacing between consecutive angles,
// or 0 for a non-equidistant sequence (LDT's Dc=0/Dg=0 convention).
func angleIncrement(angles []float64) float64 {
	if len(angles) < 2 {
		return 0
	}
	step := angles[1] - angles[0]
	for i := 2; i < len(angles); i++ {
		if d := angles[i] - angles[i-1]; absFloat(d-step) > 1e-6 {
			return 0
		}
	}
	return step
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
