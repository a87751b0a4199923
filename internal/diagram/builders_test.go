package diagram

import (
	"strings"
	"testing"

	"github.com/genortech/photoeng/internal/model"
)

func testDoc() *model.Photometry {
	cAngles := []float64{0, 90, 180, 270}
	gAngles := []float64{0, 30, 60, 90, 120, 150, 180}
	intensities := make([][]float64, len(cAngles))
	for ci := range cAngles {
		row := make([]float64, len(gAngles))
		for gi, g := range gAngles {
			row[gi] = 100 * (1 - g/180) * (1 + 0.1*float64(ci))
		}
		intensities[ci] = row
	}
	return &model.Photometry{
		Symmetry:     model.SymmetryNone,
		CAngles:      cAngles,
		GAngles:      gAngles,
		Intensities:  intensities,
		MaxIntensity: 110,
	}
}

func TestPolarProducesClosedCurves(t *testing.T) {
	d := Polar(testDoc(), 400, 400)
	if len(d.Polylines) == 0 {
		t.Fatal("expected at least one polyline")
	}
	found := 0
	for _, pl := range d.Polylines {
		if pl.Class == "curve-c0-c180" || pl.Class == "curve-c90-c270" {
			found++
			if !pl.Closed {
				t.Errorf("curve %q should be closed", pl.Class)
			}
		}
	}
	if found != 2 {
		t.Errorf("expected 2 half-plane curves, found %d", found)
	}
}

func TestCartesianSelectsPreferredPlanes(t *testing.T) {
	d := Cartesian(testDoc(), 400, 300, 2)
	curves := 0
	for _, pl := range d.Polylines {
		if strings.HasPrefix(pl.Class, "curve") {
			curves++
		}
	}
	if curves != 2 {
		t.Errorf("expected 2 curves for maxCurves=2, got %d", curves)
	}
}

func TestSelectCPlanesPrefersCanonicalAngles(t *testing.T) {
	got := selectCPlanes([]float64{0, 45, 90, 135, 180, 270}, 2)
	if len(got) != 2 || got[0] != 0 || got[1] != 90 {
		t.Errorf("selectCPlanes = %v, want [0 90]", got)
	}
}

func TestButterflyRendersWireframeAndWings(t *testing.T) {
	d := Butterfly(testDoc(), 400, 400, 20)
	if len(d.Polylines) == 0 {
		t.Fatal("expected wireframe and wing polylines")
	}
}

func TestHeatmapProducesCellsAndLegend(t *testing.T) {
	d := Heatmap(testDoc(), 400, 200)
	if len(d.Cells) == 0 {
		t.Fatal("expected color cells")
	}
	if len(d.Labels) != heatmapLegendEntries {
		t.Errorf("expected %d legend labels, got %d", heatmapLegendEntries, len(d.Labels))
	}
}

func TestBUGRatingProducesNineZones(t *testing.T) {
	rating := BUGRatingOf(testDoc())
	if len(rating.Zones) != 9 {
		t.Errorf("len(Zones) = %d, want 9", len(rating.Zones))
	}
	for _, rv := range []int{rating.B, rating.U, rating.G} {
		if rv < 0 || rv > 5 {
			t.Errorf("rating value %d out of [0,5]", rv)
		}
	}
}

func TestLCSZonesProducesTenZones(t *testing.T) {
	zones := LCSZones(testDoc())
	if len(zones) != 10 {
		t.Errorf("len(zones) = %d, want 10", len(zones))
	}
}
