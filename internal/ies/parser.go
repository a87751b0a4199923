// Package ies implements an IESNA LM-63 parser and writer, with keyword
// and TILT handling modeled on common EULUMDAT/IES tooling conventions.
package ies

import (
	"strings"
	"unicode/utf8"

	"github.com/genortech/photoeng/internal/errs"
	"github.com/genortech/photoeng/internal/model"
)

const (
	feetToMM   = 304.8
	metresToMM = 1000.0
)

// Parse reads a complete IES document from bytes.
func Parse(data []byte) (*model.Photometry, error) {
	content := decodeASCII(data)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")

	idx := 0
	if idx < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[idx]), "IESNA") {
		idx++
	}

	p := &model.Photometry{}
	tiltLine := ""
	lastKey := ""
	for {
		if idx >= len(lines) {
			return nil, errs.NewParseError(errs.UnexpectedEof, idx+1, "missing TILT= line")
		}
		line := strings.TrimSpace(lines[idx])
		idx++
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "TILT") && strings.Contains(line, "=") {
			tiltLine = line
			break
		}
		key, value, ok := parseKeywordLine(line)
		if ok {
			if key == "MORE" && lastKey != "" {
				p.SetKeyword(lastKey, p.Keyword(lastKey)+"\n"+value)
				continue
			}
			p.SetKeyword(key, value)
			lastKey = key
		}
	}

	applyKeywords(p)

	tiltValue := strings.TrimSpace(strings.SplitN(tiltLine, "=", 2)[1])
	switch strings.ToUpper(tiltValue) {
	case "NONE", "":
		// nothing further to parse
	case "INCLUDE":
		p.TiltIncluded = true
		ts := newTokenStream(lines[idx:])
		orientation, err := ts.integer()
		if err != nil {
			return nil, err
		}
		p.TiltLampToLuminaire = orientation
		pairCount, err := ts.integer()
		if err != nil {
			return nil, err
		}
		if p.TiltAngles, err = ts.floats(pairCount); err != nil {
			return nil, err
		}
		if p.TiltMultipliers, err = ts.floats(pairCount); err != nil {
			return nil, err
		}
		// Re-flatten the remaining fields for the photometric block.
		remaining := ts.fields[ts.pos:]
		return parsePhotometricBlock(p, remaining)
	default:
		// TILT=<filename>: an external tilt file is referenced but not
		// embedded; nothing more to parse inline.
	}

	ts := newTokenStream(lines[idx:])
	return parsePhotometricBlock(p, ts.fields)
}

func parsePhotometricBlock(p *model.Photometry, fields []string) (*model.Photometry, error) {
	ts := &tokenStream{fields: fields}

	numLamps, err := ts.integer()
	if err != nil {
		return nil, err
	}
	lumensPerLamp, err := ts.float()
	if err != nil {
		return nil, err
	}
	candelaMultiplier, err := ts.float()
	if err != nil {
		return nil, err
	}
	numVertical, err := ts.integer()
	if err != nil {
		return nil, err
	}
	numHorizontal, err := ts.integer()
	if err != nil {
		return nil, err
	}
	photometricType, err := ts.integer()
	if err != nil {
		return nil, err
	}
	_ = photometricType
	unitsType, err := ts.integer()
	if err != nil {
		return nil, err
	}
	if unitsType != 1 && unitsType != 2 {
		return nil, errs.NewParseError(errs.InvalidEnum, 0, "units type must be 1 (feet) or 2 (metres)")
	}
	width, err := ts.float()
	if err != nil {
		return nil, err
	}
	length, err := ts.float()
	if err != nil {
		return nil, err
	}
	height, err := ts.float()
	if err != nil {
		return nil, err
	}

	ballastFactor, err := ts.float()
	if err != nil {
		return nil, err
	}
	if _, err = ts.float(); err != nil { // "future use", always 1.0, unused
		return nil, err
	}
	inputWatts, err := ts.float()
	if err != nil {
		return nil, err
	}

	verticalAngles, err := ts.floats(numVertical)
	if err != nil {
		return nil, err
	}
	horizontalAngles, err := ts.floats(numHorizontal)
	if err != nil {
		return nil, err
	}

	candela := make([][]float64, numHorizontal)
	for ci := 0; ci < numHorizontal; ci++ {
		row, rerr := ts.floats(numVertical)
		if rerr != nil {
			return nil, rerr
		}
		candela[ci] = row
	}

	unitMul := metresToMM
	if unitsType == 1 {
		unitMul = feetToMM
	}

	p.Length = length * unitMul
	p.Width = width * unitMul
	p.Height = height * unitMul

	p.GAngles = verticalAngles
	p.CAngles = horizontalAngles
	p.Symmetry = inferSymmetry(horizontalAngles)

	scale := candelaMultiplier * ballastFactor
	if lumensPerLamp > 0 && numLamps > 0 {
		// Relative photometry: convert cd to cd/klm of source flux.
		scale *= 1000 / (lumensPerLamp * float64(numLamps))
	}
	p.Intensities = make([][]float64, len(horizontalAngles))
	for ci, row := range candela {
		scaled := make([]float64, len(row))
		for gi, v := range row {
			scaled[gi] = v * scale
		}
		p.Intensities[ci] = scaled
	}
	p.MaxIntensity = maxOf(p.Intensities)

	p.Absolute = lumensPerLamp < 0
	if p.Absolute {
		p.LightOutputRatio = 1.0
		p.TotalLuminousFlux = 0
	} else {
		p.TotalLuminousFlux = lumensPerLamp * float64(numLamps)
	}

	p.LampSets = []model.LampSet{{
		NumberOfLamps:      numLamps,
		TotalFluxLumens:    p.TotalLuminousFlux,
		WattageWithBallast: inputWatts,
	}}
	p.ConversionFactor = candelaMultiplier

	return p, nil
}

// inferSymmetry detects symmetry from the horizontal-angle range, since
// IES carries no explicit symmetry field (spec.md §4.3).
func inferSymmetry(horizontal []float64) model.Symmetry {
	if len(horizontal) == 0 {
		return model.SymmetryNone
	}
	max := horizontal[len(horizontal)-1]
	min := horizontal[0]
	switch {
	case max == 0:
		return model.SymmetryVerticalAxis
	case min >= 0 && max <= 90:
		return model.SymmetryBothPlanes
	case min >= 0 && max <= 180:
		return model.SymmetryPlaneC0C180
	case min >= 90 && max <= 270:
		return model.SymmetryPlaneC90C270
	default:
		return model.SymmetryNone
	}
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

// parseKeywordLine matches "[KEY] value" lines, including the MORE
// continuation keyword which appends to the previously seen one.
func parseKeywordLine(line string) (key, value string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return "", "", false
	}
	key = line[1:end]
	value = strings.TrimSpace(line[end+1:])
	return key, value, true
}

func applyKeywords(p *model.Photometry) {
	p.CompanyIdentification = p.Keyword("MANUFAC")
	p.LuminaireName = p.Keyword("LUMINAIRE")
	p.LuminaireNumber = p.Keyword("LUMCAT")
	p.MeasurementReportNumber = p.Keyword("TEST")
	p.DateUser = p.Keyword("ISSUEDATE")
	p.Identification = p.LuminaireName
}

// decodeASCII decodes IES text, which the format restricts to ASCII; a
// UTF-8 superset decode is harmless since ASCII is a subset of UTF-8.
func decodeASCII(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
