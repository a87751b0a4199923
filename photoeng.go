// Package photoeng is a format-independent photometric data engine: LDT
// (EULUMDAT) and IES (LM-63) parsing and writing, a 44-rule validator, an
// intensity sampler, and six diagram builders rendered to themed SVG.
//
// A Photometry document is built once by ParseLDT or ParseIES and is
// read-only thereafter; every function in this package is a pure function
// of its arguments and safe to call concurrently across distinct
// documents.
package photoeng

import (
	"fmt"

	"github.com/genortech/photoeng/internal/diagram"
	"github.com/genortech/photoeng/internal/ies"
	"github.com/genortech/photoeng/internal/ldt"
	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/sample"
	"github.com/genortech/photoeng/internal/svgrender"
	"github.com/genortech/photoeng/internal/validate"
)

// ParseLDT decodes an EULUMDAT document.
func ParseLDT(data []byte) (*model.Photometry, error) {
	return ldt.Parse(data)
}

// ParseIES decodes an IESNA LM-63 document.
func ParseIES(data []byte) (*model.Photometry, error) {
	return ies.Parse(data)
}

// WriteLDT serializes p as EULUMDAT text.
func WriteLDT(p *model.Photometry) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: WriteLDT: nil document")
	}
	return ldt.Write(p), nil
}

// WriteIES serializes p as IESNA LM-63 text.
func WriteIES(p *model.Photometry) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: WriteIES: nil document")
	}
	return ies.Write(p), nil
}

// Validate runs the full 44-rule catalogue against p and always returns
// the complete warning list; rules never short-circuit.
func Validate(p *model.Photometry) []validate.Warning {
	return validate.Validate(p)
}

// Sample returns the interpolated intensity at (c, gamma) in cd/klm (or
// cd, for an absolute-photometry document).
func Sample(p *model.Photometry, c, gamma float64) float64 {
	return sample.Intensity(p, c, gamma)
}

// SampleNormalized returns Sample scaled into [0,1] by the document's
// declared maximum intensity.
func SampleNormalized(p *model.Photometry, c, gamma float64) float64 {
	return sample.Normalized(p, c, gamma)
}

// PolarSVG renders the two canonical half-plane polar curves.
func PolarSVG(p *model.Photometry, w, h int, theme svgrender.Theme) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: PolarSVG: nil document")
	}
	return svgrender.Emit(diagram.Polar(p, float64(w), float64(h)), theme), nil
}

// CartesianSVG renders intensity vs gamma for up to maxCurves C-planes.
func CartesianSVG(p *model.Photometry, w, h, maxCurves int, theme svgrender.Theme) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: CartesianSVG: nil document")
	}
	return svgrender.Emit(diagram.Cartesian(p, float64(w), float64(h), maxCurves), theme), nil
}

// ButterflySVG renders the isometric-3D photometric solid, pitched by
// tiltDeg about the X-axis.
func ButterflySVG(p *model.Photometry, w, h int, tiltDeg float64, theme svgrender.Theme) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: ButterflySVG: nil document")
	}
	return svgrender.Emit(diagram.Butterfly(p, float64(w), float64(h), tiltDeg), theme), nil
}

// HeatmapSVG renders the C×gamma intensity heatmap with its legend.
func HeatmapSVG(p *model.Photometry, w, h int, theme svgrender.Theme) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: HeatmapSVG: nil document")
	}
	return svgrender.Emit(diagram.Heatmap(p, float64(w), float64(h)), theme), nil
}

// BugSVG renders the TM-15-11 backlight/uplight/glare ring diagram.
func BugSVG(p *model.Photometry, w, h int, theme svgrender.Theme) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: BugSVG: nil document")
	}
	return svgrender.Emit(diagram.BUG(p, float64(w), float64(h)), theme), nil
}

// LcsSVG renders the TM-15-07 ten-zone flux bar chart.
func LcsSVG(p *model.Photometry, w, h int, theme svgrender.Theme) (string, error) {
	if p == nil {
		return "", fmt.Errorf("photoeng: LcsSVG: nil document")
	}
	return svgrender.Emit(diagram.LCS(p, float64(w), float64(h)), theme), nil
}

// BugRating computes the TM-15-11 B/U/G classification without rendering
// a diagram.
func BugRating(p *model.Photometry) diagram.BUGRating {
	return diagram.BUGRatingOf(p)
}

// SymmetryName renders the documentation name for a Symmetry value.
func SymmetryName(s model.Symmetry) string {
	return s.String()
}

// TypeIndicatorName renders the documentation name for a TypeIndicator
// value.
func TypeIndicatorName(t model.TypeIndicator) string {
	return t.String()
}
