package ldt

import (
	"strings"
	"testing"

	"github.com/genortech/photoeng/internal/model"
)

func sampleDoc() *model.Photometry {
	return &model.Photometry{
		CompanyIdentification:  "Test Co;Test Luminaire",
		TypeIndicator:           model.TypePointSourceSymmetric,
		Symmetry:                model.SymmetryBothPlanes,
		LuminaireName:           "Test Luminaire",
		LuminaireNumber:         "LUM-001",
		FileName:                "test.ldt",
		MeasurementReportNumber: "REPORT-1",
		DateUser:                "01.01.2024/lab",
		Length:                  600, Width: 250, Height: 190,
		LuminousAreaLength: 180, LuminousAreaWidth: 160,
		DownwardFluxFraction: 0.6,
		LightOutputRatio:     1.0,
		ConversionFactor:     1,
		CAngles:              []float64{0, 90},
		GAngles:              []float64{0, 90},
		Intensities:          [][]float64{{100, 50}, {80, 40}},
		MaxIntensity:         100,
	}
}

func TestWriteThenParseRoundTrip(t *testing.T) {
	doc := sampleDoc()
	text := Write(doc)

	got, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("round-trip Parse failed: %v\n--- text ---\n%s", err, text)
	}
	if got.LuminaireName != doc.LuminaireName {
		t.Errorf("LuminaireName = %q, want %q", got.LuminaireName, doc.LuminaireName)
	}
	if got.Symmetry != doc.Symmetry {
		t.Errorf("Symmetry = %v, want %v", got.Symmetry, doc.Symmetry)
	}
	if len(got.CAngles) != len(doc.CAngles) {
		t.Fatalf("len(CAngles) = %d, want %d", len(got.CAngles), len(doc.CAngles))
	}
	for i := range doc.CAngles {
		if got.CAngles[i] != doc.CAngles[i] {
			t.Errorf("CAngles[%d] = %v, want %v", i, got.CAngles[i], doc.CAngles[i])
		}
	}
	if got.MaxIntensity != doc.MaxIntensity {
		t.Errorf("MaxIntensity = %v, want %v", got.MaxIntensity, doc.MaxIntensity)
	}
}

func TestFormatFloatAlwaysHasFraction(t *testing.T) {
	tests := map[float64]string{
		10:   "10.0",
		10.5: "10.5",
		0:    "0.0",
	}
	for in, want := range tests {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFullCircleCPlaneCountInvertsStoredCCount(t *testing.T) {
	tests := []struct {
		sym    model.Symmetry
		stored int
		want   int
	}{
		{model.SymmetryNone, 8, 8},
		{model.SymmetryVerticalAxis, 1, 1},
		{model.SymmetryPlaneC0C180, 5, 8},
		{model.SymmetryPlaneC90C270, 5, 8},
		{model.SymmetryBothPlanes, 3, 8},
	}
	for _, tt := range tests {
		p := &model.Photometry{Symmetry: tt.sym, CAngles: make([]float64, tt.stored)}
		if got := fullCircleCPlaneCount(p); got != tt.want {
			t.Errorf("fullCircleCPlaneCount(sym=%v, stored=%d) = %d, want %d", tt.sym, tt.stored, got, tt.want)
		}
	}
}

func TestAngleIncrementDetectsNonUniform(t *testing.T) {
	if got := angleIncrement([]float64{0, 30, 60, 90}); got != 30 {
		t.Errorf("angleIncrement(uniform) = %v, want 30", got)
	}
	if got := angleIncrement([]float64{0, 30, 70}); got != 0 {
		t.Errorf("angleIncrement(non-uniform) = %v, want 0", got)
	}
}

func TestSanitizeTextStripsNewlines(t *testing.T) {
	if got := sanitizeText("a\r\nb\nc"); strings.ContainsAny(got, "\r\n") {
		t.Errorf("sanitizeText left newline characters: %q", got)
	}
}
