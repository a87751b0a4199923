// Package ldt implements an EULUMDAT (LDT) parser and writer, reading and
// writing the format's line-oriented header and stored-row geometry.
package ldt

import (
	"strings"

	"github.com/genortech/photoeng/internal/errs"
	"github.com/genortech/photoeng/internal/model"
)

// Parse reads a complete LDT document from bytes, failing at the first
// structural error (spec.md §7: no partial recovery).
func Parse(data []byte) (*model.Photometry, error) {
	c := newCursor(data)
	p := &model.Photometry{}

	companyID, err := c.text()
	if err != nil {
		return nil, err
	}
	p.CompanyIdentification = companyID

	ityp, err := c.integer()
	if err != nil {
		return nil, err
	}
	if ityp < 1 || ityp > 3 {
		return nil, errs.NewParseError(errs.InvalidEnum, c.lineNo(), "type indicator must be 1, 2 or 3")
	}
	p.TypeIndicator = model.TypeIndicator(ityp)

	isym, err := c.integer()
	if err != nil {
		return nil, err
	}
	if isym < 0 || isym > 4 {
		return nil, errs.NewParseError(errs.InvalidEnum, c.lineNo(), "symmetry indicator must be 0..4")
	}
	p.Symmetry = model.Symmetry(isym)

	mc, err := c.integer()
	if err != nil {
		return nil, err
	}
	if mc <= 0 {
		return nil, errs.NewParseError(errs.RangeViolation, c.lineNo(), "number of C-planes must be positive")
	}

	if _, err = c.float(); err != nil { // Dc, informational only
		return nil, err
	}

	ng, err := c.integer()
	if err != nil {
		return nil, err
	}
	if ng <= 0 {
		return nil, errs.NewParseError(errs.RangeViolation, c.lineNo(), "number of gamma angles must be positive")
	}

	if _, err = c.float(); err != nil { // Dg, informational only
		return nil, err
	}

	if p.MeasurementReportNumber, err = c.text(); err != nil {
		return nil, err
	}
	if p.LuminaireName, err = c.text(); err != nil {
		return nil, err
	}
	if p.LuminaireNumber, err = c.text(); err != nil {
		return nil, err
	}
	if p.FileName, err = c.text(); err != nil {
		return nil, err
	}
	if p.DateUser, err = c.text(); err != nil {
		return nil, err
	}
	p.Identification = p.LuminaireName

	if p.Length, err = c.float(); err != nil {
		return nil, err
	}
	if p.Width, err = c.float(); err != nil {
		return nil, err
	}
	if p.Height, err = c.float(); err != nil {
		return nil, err
	}
	if p.LuminousAreaLength, err = c.float(); err != nil {
		return nil, err
	}
	if p.LuminousAreaWidth, err = c.float(); err != nil {
		return nil, err
	}
	if p.LuminousAreaHeightC0, err = c.float(); err != nil {
		return nil, err
	}
	if p.LuminousAreaHeightC90, err = c.float(); err != nil {
		return nil, err
	}
	if p.LuminousAreaHeightC180, err = c.float(); err != nil {
		return nil, err
	}
	if p.LuminousAreaHeightC270, err = c.float(); err != nil {
		return nil, err
	}

	dff, err := c.float()
	if err != nil {
		return nil, err
	}
	p.DownwardFluxFraction = dff / 100.0

	lorl, err := c.float()
	if err != nil {
		return nil, err
	}
	p.LightOutputRatio = lorl / 100.0

	if p.ConversionFactor, err = c.float(); err != nil {
		return nil, err
	}
	if p.TiltAngle, err = c.float(); err != nil {
		return nil, err
	}

	n, err := c.integer()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > 20 {
		return nil, errs.NewParseError(errs.RangeViolation, c.lineNo(), "number of lamp sets must be 0..20")
	}

	p.LampSets = make([]model.LampSet, n)
	var totalFlux float64
	for i := 0; i < n; i++ {
		ls := model.LampSet{}
		var numLamps int
		if numLamps, err = c.integer(); err != nil {
			return nil, err
		}
		ls.NumberOfLamps = numLamps
		if ls.LampType, err = c.text(); err != nil {
			return nil, err
		}
		if ls.TotalFluxLumens, err = c.float(); err != nil {
			return nil, err
		}
		if ls.ColorAppearance, err = c.text(); err != nil {
			return nil, err
		}
		if ls.ColorRenderingGroup, err = c.text(); err != nil {
			return nil, err
		}
		if ls.WattageWithBallast, err = c.float(); err != nil {
			return nil, err
		}
		totalFlux += ls.TotalFluxLumens
		p.LampSets[i] = ls
	}
	p.TotalLuminousFlux = totalFlux

	ratios, err := c.floats(10)
	if err != nil {
		return nil, err
	}
	copy(p.DirectRatios[:], ratios)

	storedC := model.StoredCCount(p.Symmetry, mc)
	if p.CAngles, err = c.floats(storedC); err != nil {
		return nil, err
	}
	if p.GAngles, err = c.floats(ng); err != nil {
		return nil, err
	}

	// Intensity table is stored row-major by C then by gamma.
	p.Intensities = make([][]float64, storedC)
	for ci := 0; ci < storedC; ci++ {
		row, ferr := c.floats(ng)
		if ferr != nil {
			return nil, ferr
		}
		p.Intensities[ci] = row
	}

	p.MaxIntensity = maxOf(p.Intensities)
	if p.LightOutputRatio > 1.0 {
		p.Absolute = true
	}

	return p, nil
}

func maxOf(rows [][]float64) float64 {
	max := 0.0
	for _, row := range rows {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// sanitizeText strips newlines from a single-line text field so that a
// round-trip write never produces more lines than it read.
func sanitizeText(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}
