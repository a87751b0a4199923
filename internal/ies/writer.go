package ies

import (
	"strconv"
	"strings"

	"github.com/genortech/photoeng/internal/model"
)

const maxLineWidth = 80

// standardKeywordOrder lists the keywords written first, for readability
// and for compatibility with tools that expect the common LM-63 order;
// any keyword already present on the document but not in this list is
// written afterward, preserving the document's own order.
var standardKeywordOrder = []string{
	"TEST", "TESTLAB", "ISSUEDATE", "MANUFAC", "LUMCAT", "LUMINAIRE",
	"LAMPCAT", "LAMP", "BALLAST", "BALLASTCAT", "MAINTCAT",
}

// Write serializes a Photometry document to LM-63-2002 conforming IES
// text (spec.md §4.4).
func Write(p *model.Photometry) string {
	var b strings.Builder
	b.WriteString("IESNA:LM-63-2002\n")

	writeKeywords(&b, p)

	b.WriteString("TILT=")
	if p.TiltIncluded {
		b.WriteString("INCLUDE\n")
		b.WriteString(strconv.Itoa(p.TiltLampToLuminaire) + "\n")
		b.WriteString(strconv.Itoa(len(p.TiltAngles)) + "\n")
		writeWrapped(&b, p.TiltAngles)
		writeWrapped(&b, p.TiltMultipliers)
	} else {
		b.WriteString("NONE\n")
	}

	writeNumericBlock(&b, p)
	return b.String()
}

func writeKeywords(b *strings.Builder, p *model.Photometry) {
	synthesized := synthesizeKeywords(p)
	written := map[string]bool{}
	for _, key := range standardKeywordOrder {
		if v, ok := synthesized[key]; ok && v != "" {
			writeKeyword(b, key, v)
			written[key] = true
		}
	}
	for _, kw := range p.Keywords {
		if written[kw.Key] || kw.Value == "" {
			continue
		}
		writeKeyword(b, kw.Key, kw.Value)
		written[kw.Key] = true
	}
}

// synthesizeKeywords derives the minimal IES keyword set from the
// format-independent document fields, so an LDT-sourced document still
// exports a conformant IES header.
func synthesizeKeywords(p *model.Photometry) map[string]string {
	out := map[string]string{
		"TEST":      p.MeasurementReportNumber,
		"MANUFAC":   p.CompanyIdentification,
		"LUMCAT":    p.LuminaireNumber,
		"LUMINAIRE": p.LuminaireName,
		"ISSUEDATE": p.DateUser,
	}
	for _, kw := range p.Keywords {
		if _, exists := out[kw.Key]; !exists {
			out[kw.Key] = kw.Value
		}
	}
	return out
}

func writeKeyword(b *strings.Builder, key, value string) {
	lines := strings.Split(value, "\n")
	b.WriteString("[" + key + "] " + lines[0] + "\n")
	for _, cont := range lines[1:] {
		b.WriteString("[MORE] " + cont + "\n")
	}
}

func writeNumericBlock(b *strings.Builder, p *model.Photometry) {
	numLamps := 1
	wattage := 0.0
	if len(p.LampSets) > 0 {
		numLamps = p.LampSets[0].NumberOfLamps
		wattage = p.LampSets[0].WattageWithBallast
	}

	lumensPerLamp := -1.0
	if !p.Absolute && numLamps > 0 {
		lumensPerLamp = p.TotalLuminousFlux / float64(numLamps)
	}

	photometricType := photometricTypeFor(p)
	unitsType := 2 // metres; the document's own fields are always stored in mm

	line1 := []float64{
		float64(numLamps), lumensPerLamp, 1.0,
		float64(len(p.GAngles)), float64(len(p.CAngles)),
		float64(photometricType), float64(unitsType),
		p.Width / metresToMM, p.Length / metresToMM, p.Height / metresToMM,
	}
	writeWrapped(b, line1)

	line2 := []float64{1.0, 1.0, wattage}
	writeWrapped(b, line2)

	writeWrapped(b, p.GAngles)
	writeWrapped(b, p.CAngles)

	scale := 1.0
	if !p.Absolute && p.TotalLuminousFlux > 0 {
		scale = p.TotalLuminousFlux / 1000.0
	}
	for _, row := range p.Intensities {
		scaled := make([]float64, len(row))
		for i, v := range row {
			scaled[i] = v * scale
		}
		writeWrapped(b, scaled)
	}
}

func photometricTypeFor(p *model.Photometry) int {
	return 1 // this engine always stores and emits Type C distributions
}

// writeWrapped renders values space-separated, wrapping at 80 columns on
// whitespace boundaries (spec.md §4.4).
func writeWrapped(b *strings.Builder, values []float64) {
	line := &strings.Builder{}
	for _, v := range values {
		tok := formatNumber(v)
		if line.Len() > 0 {
			if line.Len()+1+len(tok) > maxLineWidth {
				b.WriteString(line.String())
				b.WriteByte('\n')
				line.Reset()
			} else {
				line.WriteByte(' ')
			}
		}
		line.WriteString(tok)
	}
	if line.Len() > 0 {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
