package validate

import (
	"testing"

	"github.com/genortech/photoeng/internal/model"
)

func validDoc() *model.Photometry {
	return &model.Photometry{
		LuminaireName:           "Test Luminaire",
		LuminaireNumber:         "LUM-001",
		FileName:                "test.ldt",
		MeasurementReportNumber: "REPORT-1",
		CompanyIdentification:   "Test Co",
		Symmetry:                model.SymmetryBothPlanes,
		TypeIndicator:           model.TypePointSourceSymmetric,
		Length:                  600, Width: 250, Height: 190,
		LuminousAreaLength: 180, LuminousAreaWidth: 160,
		DownwardFluxFraction: 0.6,
		LightOutputRatio:     0.8,
		ConversionFactor:     1,
		CAngles:              []float64{0, 45, 90},
		GAngles:              []float64{0, 90, 180},
		Intensities:          [][]float64{{100, 50, 0}, {90, 45, 0}, {80, 40, 0}},
		MaxIntensity:         100,
	}
}

func TestValidateCleanDocumentHasNoFatalWarnings(t *testing.T) {
	warnings := Validate(validDoc())
	for _, w := range warnings {
		if w.Severity == Fatal {
			t.Errorf("unexpected fatal warning on a clean document: %s %s", w.Code, w.Message)
		}
	}
}

func TestValidateRuleCount(t *testing.T) {
	if len(rules) != 44 {
		t.Errorf("len(rules) = %d, want 44 (spec.md §4.7)", len(rules))
	}
}

func TestValidateNeverShortCircuits(t *testing.T) {
	// A document violating several independent rules must report all of
	// them, not just the first.
	p := validDoc()
	p.LuminaireName = ""
	p.Length = -1
	p.CAngles = []float64{90, 45, 0} // descending: violates ascending rule
	warnings := Validate(p)

	codes := map[string]bool{}
	for _, w := range warnings {
		codes[w.Code] = true
	}
	for _, want := range []string{"W001", "W008", "W028"} {
		if !codes[want] {
			t.Errorf("expected warning %s among %d warnings, not found", want, len(warnings))
		}
	}
}

func TestCheckSymmetryValid(t *testing.T) {
	p := validDoc()
	p.Symmetry = model.Symmetry(99)
	if got := checkSymmetryValid(p); len(got) != 1 || got[0].Severity != Fatal {
		t.Errorf("checkSymmetryValid on out-of-range symmetry = %v", got)
	}
}

func TestCheckIntensitiesNonNegative(t *testing.T) {
	p := validDoc()
	p.Intensities[1][1] = -5
	got := checkIntensitiesNonNegative(p)
	if len(got) != 1 || got[0].Code != "W036" {
		t.Errorf("checkIntensitiesNonNegative = %v, want one W036 warning", got)
	}
}

func TestCheckAbsoluteModeConsistency(t *testing.T) {
	p := validDoc()
	p.Absolute = true
	p.LightOutputRatio = 0.8
	got := checkAbsoluteModeConsistency(p)
	if len(got) != 1 {
		t.Errorf("expected a warning for absolute photometry with LightOutputRatio != 1.0, got %v", got)
	}
}

func TestCheckTotalFluxMatchesLampSetsWithMultipleLamps(t *testing.T) {
	p := validDoc()
	p.LampSets = []model.LampSet{
		{NumberOfLamps: 3, TotalFluxLumens: 1000},
		{NumberOfLamps: 2, TotalFluxLumens: 500},
	}
	p.TotalLuminousFlux = 1500 // sum over lamp sets, not sum(flux * count)
	if got := checkTotalFluxMatchesLampSets(p); len(got) != 0 {
		t.Errorf("checkTotalFluxMatchesLampSets = %v, want no warnings", got)
	}

	p.TotalLuminousFlux = 1000*3 + 500*2 // the buggy sum(flux*count) value
	got := checkTotalFluxMatchesLampSets(p)
	if len(got) != 1 || got[0].Code != "W039" {
		t.Errorf("checkTotalFluxMatchesLampSets = %v, want one W039 warning", got)
	}
}

func TestUniformSpacing(t *testing.T) {
	if !uniformSpacing([]float64{0, 30, 60, 90}) {
		t.Error("expected uniform spacing to hold")
	}
	if uniformSpacing([]float64{0, 30, 70}) {
		t.Error("expected uniform spacing to fail")
	}
	if !uniformSpacing([]float64{0, 1}) {
		t.Error("fewer than 3 angles should be trivially uniform")
	}
}
