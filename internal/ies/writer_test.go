package ies

import (
	"strings"
	"testing"

	"github.com/genortech/photoeng/internal/model"
)

func sampleDoc() *model.Photometry {
	return &model.Photometry{
		CompanyIdentification:  "Test Co",
		LuminaireName:          "Test Luminaire",
		LuminaireNumber:        "LUM-001",
		MeasurementReportNumber: "REPORT-1",
		Symmetry:               model.SymmetryBothPlanes,
		TypeIndicator:          model.TypePointSourceSymmetric,
		Length:                 600, Width: 250, Height: 190,
		CAngles:           []float64{0, 90},
		GAngles:           []float64{0, 90},
		Intensities:       [][]float64{{100, 50}, {80, 40}},
		MaxIntensity:      100,
		TotalLuminousFlux: 1000,
		LampSets:          []model.LampSet{{NumberOfLamps: 1, WattageWithBallast: 42}},
	}
}

func TestWriteThenParseRoundTrip(t *testing.T) {
	doc := sampleDoc()
	text := Write(doc)

	if !strings.HasPrefix(text, "IESNA:LM-63-2002\n") {
		t.Fatalf("missing IESNA header: %q", text[:40])
	}
	if !strings.Contains(text, "TILT=NONE\n") {
		t.Error("expected TILT=NONE for a document with no tilt data")
	}
	if !strings.Contains(text, "[MANUFAC] Test Co") {
		t.Error("expected a synthesized MANUFAC keyword")
	}

	got, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("round-trip Parse: %v", err)
	}
	if got.CompanyIdentification != doc.CompanyIdentification {
		t.Errorf("CompanyIdentification = %q, want %q", got.CompanyIdentification, doc.CompanyIdentification)
	}
	if len(got.CAngles) != len(doc.CAngles) || len(got.GAngles) != len(doc.GAngles) {
		t.Fatalf("angle grid shape mismatch: got %dx%d, want %dx%d",
			len(got.CAngles), len(got.GAngles), len(doc.CAngles), len(doc.GAngles))
	}
	if got.MaxIntensity != doc.MaxIntensity {
		t.Errorf("MaxIntensity = %v, want %v", got.MaxIntensity, doc.MaxIntensity)
	}
}

func TestWriteWrappedLineWidth(t *testing.T) {
	var b strings.Builder
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i) * 1.2345
	}
	writeWrapped(&b, values)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if len(line) > maxLineWidth {
			t.Errorf("line exceeds %d columns: %q (%d)", maxLineWidth, line, len(line))
		}
	}
}
