package photoeng

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/svgrender"
)

func sampleDoc() *model.Photometry {
	return &model.Photometry{
		LuminaireName:   "Test Luminaire",
		LuminaireNumber: "LUM-001",
		CompanyIdentification: "Test Co",
		Symmetry:        model.SymmetryBothPlanes,
		TypeIndicator:   model.TypePointSourceSymmetric,
		Length:          600, Width: 250, Height: 190,
		CAngles:      []float64{0, 90},
		GAngles:      []float64{0, 90},
		Intensities:  [][]float64{{100, 50}, {80, 40}},
		MaxIntensity: 100,
	}
}

func TestWriteLDTThenParseLDT(t *testing.T) {
	doc := sampleDoc()
	text, err := WriteLDT(doc)
	if err != nil {
		t.Fatalf("WriteLDT: %v", err)
	}
	got, err := ParseLDT([]byte(text))
	if err != nil {
		t.Fatalf("ParseLDT: %v", err)
	}
	if got.LuminaireName != doc.LuminaireName {
		t.Errorf("LuminaireName = %q, want %q", got.LuminaireName, doc.LuminaireName)
	}
}

func TestWriteIESThenParseIES(t *testing.T) {
	doc := sampleDoc()
	doc.TotalLuminousFlux = 1000
	doc.LampSets = []model.LampSet{{NumberOfLamps: 1}}
	text, err := WriteIES(doc)
	if err != nil {
		t.Fatalf("WriteIES: %v", err)
	}
	got, err := ParseIES([]byte(text))
	if err != nil {
		t.Fatalf("ParseIES: %v", err)
	}
	if got.CompanyIdentification != doc.CompanyIdentification {
		t.Errorf("CompanyIdentification = %q, want %q", got.CompanyIdentification, doc.CompanyIdentification)
	}
}

func TestSampleAndNormalized(t *testing.T) {
	doc := sampleDoc()
	if got := Sample(doc, 0, 0); got != 100 {
		t.Errorf("Sample(0,0) = %v, want 100", got)
	}
	if got := SampleNormalized(doc, 0, 0); got != 1.0 {
		t.Errorf("SampleNormalized(0,0) = %v, want 1.0", got)
	}
}

func TestValidateReturnsWarnings(t *testing.T) {
	// sampleDoc has no file name and no measurement report number, so the
	// W003 and W004 presence rules must report.
	warnings := Validate(sampleDoc())
	if len(warnings) == 0 {
		t.Error("expected warnings for a document with empty file name and report number")
	}
}

func TestAllDiagramSVGsAreWellFormed(t *testing.T) {
	doc := sampleDoc()
	renders := map[string]func() (string, error){
		"polar":     func() (string, error) { return PolarSVG(doc, 400, 400, svgrender.Light) },
		"cartesian": func() (string, error) { return CartesianSVG(doc, 400, 300, 4, svgrender.Light) },
		"butterfly": func() (string, error) { return ButterflySVG(doc, 400, 400, 20, svgrender.Light) },
		"heatmap":   func() (string, error) { return HeatmapSVG(doc, 400, 200, svgrender.Light) },
		"bug":       func() (string, error) { return BugSVG(doc, 400, 400, svgrender.Light) },
		"lcs":       func() (string, error) { return LcsSVG(doc, 400, 300, svgrender.Light) },
	}
	for name, render := range renders {
		svg, err := render()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if !strings.HasPrefix(svg, "<svg") {
			t.Errorf("%s: output does not start with <svg", name)
		}
		dec := xml.NewDecoder(strings.NewReader(svg))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("%s: output is not well-formed XML: %v", name, err)
				break
			}
		}
	}
}

func TestBugRatingAndNameHelpers(t *testing.T) {
	rating := BugRating(sampleDoc())
	if rating.B < 0 || rating.B > 5 {
		t.Errorf("BugRating().B = %d out of range", rating.B)
	}
	if SymmetryName(model.SymmetryBothPlanes) != "BothPlanes" {
		t.Errorf("SymmetryName mismatch")
	}
	if TypeIndicatorName(model.TypeLinear) != "Linear" {
		t.Errorf("TypeIndicatorName mismatch")
	}
}

func TestWriteLDTNilDocument(t *testing.T) {
	if _, err := WriteLDT(nil); err == nil {
		t.Error("expected an error for a nil document")
	}
}
