package ldt

import (
	"strings"
	"testing"

	"github.com/genortech/photoeng/internal/model"
)

// minimalLDT builds a two-stored-C-plane, two-gamma, no-lamp-set document: the
// smallest input the line-oriented grammar accepts.
func minimalLDT() string {
	lines := []string{
		"Test Co;Test Luminaire",
		"1",  // Ityp: point source, symmetric
		"4",  // Isym: both planes
		"4",  // Mc: full-circle C-plane count
		"90", // Dc
		"2",  // Ng
		"90", // Dg
		"REPORT-1",
		"Test Luminaire",
		"LUM-001",
		"test.ldt",
		"01.01.2024/lab",
		"600", "250", "190",
		"180", "160",
		"10", "10", "10", "10",
		"60",  // DFF
		"100", // LORL
		"1",   // conversion factor
		"0",   // tilt angle
		"0",   // no lamp sets
	}
	lines = append(lines, "0", "0", "0", "0", "0", "0", "0", "0", "0", "0") // direct ratios
	lines = append(lines, "0", "90")                                       // C angles, storedC=2 for BothPlanes/mc=4
	lines = append(lines, "0", "90")                                       // gamma angles
	lines = append(lines, "100", "50")                                     // C=0 row
	lines = append(lines, "80", "40")                                      // C=90 row
	return strings.Join(lines, "\n") + "\n"
}

func TestParseMinimal(t *testing.T) {
	p, err := Parse([]byte(minimalLDT()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Symmetry != model.SymmetryBothPlanes {
		t.Errorf("Symmetry = %v, want BothPlanes", p.Symmetry)
	}
	if len(p.CAngles) != 2 {
		t.Fatalf("len(CAngles) = %d, want 2", len(p.CAngles))
	}
	if len(p.Intensities) != 2 || len(p.Intensities[0]) != 2 {
		t.Fatalf("Intensities shape = %dx%d, want 2x2", len(p.Intensities), len(p.Intensities[0]))
	}
	if p.MaxIntensity != 100 {
		t.Errorf("MaxIntensity = %v, want 100", p.MaxIntensity)
	}
	if p.LuminaireName != "Test Luminaire" {
		t.Errorf("LuminaireName = %q", p.LuminaireName)
	}
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	_, err := Parse([]byte("Test Co\n1\n"))
	if err == nil {
		t.Fatal("expected an error for truncated input")
	}
}

func TestParseRejectsBadSymmetry(t *testing.T) {
	lines := strings.Split(minimalLDT(), "\n")
	lines[2] = "9" // Isym out of range
	_, err := Parse([]byte(strings.Join(lines, "\n")))
	if err == nil {
		t.Fatal("expected an error for out-of-range symmetry indicator")
	}
}

func TestParseCommaDecimal(t *testing.T) {
	lines := strings.Split(minimalLDT(), "\n")
	lines[12] = "600,5" // Length field, comma decimal
	p, err := Parse([]byte(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Length != 600.5 {
		t.Errorf("Length = %v, want 600.5", p.Length)
	}
}

func TestParseRejectsMixedSeparators(t *testing.T) {
	lines := strings.Split(minimalLDT(), "\n")
	lines[12] = "600,5.2"
	_, err := Parse([]byte(strings.Join(lines, "\n")))
	if err == nil {
		t.Fatal("expected an error for mixed decimal separators")
	}
}

// oneLampSetLDT builds on minimalLDT but declares a single lamp set with
// more than one lamp, so TotalFluxLumens is a set total, not a per-lamp
// value the count must still be multiplied into.
func oneLampSetLDT() string {
	lines := []string{
		"Test Co;Test Luminaire",
		"1", "4", "4", "90", "2", "90",
		"REPORT-1", "Test Luminaire", "LUM-001", "test.ldt", "01.01.2024/lab",
		"600", "250", "190",
		"180", "160",
		"10", "10", "10", "10",
		"60", "100", "1", "0",
		"1",      // one lamp set
		"3",      // number of lamps in the set
		"LED",    // lamp type
		"3000",   // total flux (lm) for the set, not per lamp
		"830",    // color appearance
		"1",      // color rendering group
		"30",     // wattage including ballast
	}
	lines = append(lines, "0", "0", "0", "0", "0", "0", "0", "0", "0", "0")
	lines = append(lines, "0", "90")
	lines = append(lines, "0", "90")
	lines = append(lines, "100", "50")
	lines = append(lines, "80", "40")
	return strings.Join(lines, "\n") + "\n"
}

func TestParseAggregatesTotalFluxOverLampSetsNotTimesLampCount(t *testing.T) {
	p, err := Parse([]byte(oneLampSetLDT()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.LampSets) != 1 || p.LampSets[0].NumberOfLamps != 3 {
		t.Fatalf("LampSets = %+v, want one set with 3 lamps", p.LampSets)
	}
	if p.TotalLuminousFlux != 3000 {
		t.Errorf("TotalLuminousFlux = %v, want 3000 (sum over lamp sets, not ×lamp count)", p.TotalLuminousFlux)
	}
}
