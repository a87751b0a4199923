package diagram

import (
	"fmt"
	"math"

	"github.com/genortech/photoeng/internal/model"
	"github.com/genortech/photoeng/internal/sample"
)

const (
	integrationCStep = 2.0 // degrees
	integrationGStep = 2.0 // degrees
)

// BUGRating is the TM-15-11 backlight/uplight/glare classification, each
// on the published 0..5 scale, alongside the raw zone lumens feeding it.
type BUGRating struct {
	B, U, G int
	Zones   map[string]float64
}

// bugZoneLimits gives the per-level lumen ceiling for each zone; a zone's
// rating is the highest level whose ceiling it exceeds (capped at 5).
var bugZoneLimits = map[string][5]float64{
	"BL":  {0, 110, 500, 1000, 2500},
	"BM":  {0, 110, 500, 1500, 3000},
	"BH":  {0, 110, 500, 1500, 4000},
	"BVH": {0, 0, 110, 220, 1000},
	"UL":  {0, 0, 10, 7.5, 7.5},
	"UH":  {0, 0, 10, 25, 40},
	"FH":  {0, 110, 500, 1500, 4000},
	"FVH": {0, 0, 110, 220, 1000},
	"FM":  {0, 110, 500, 1500, 3000},
}

// integrateZone sums intensity over the solid-angle patch bounded by
// [cLo,cHi)×[gLo,gHi] using the mid-point rectangle rule with symmetry
// expansion, per spec.md §4.8.
func integrateZone(p *model.Photometry, cLo, cHi, gLo, gHi float64) float64 {
	cStepRad := integrationCStep * math.Pi / 180
	gStepRad := integrationGStep * math.Pi / 180
	var total float64
	for c := cLo + integrationCStep/2; c < cHi; c += integrationCStep {
		for g := gLo + integrationGStep/2; g < gHi; g += integrationGStep {
			i := sample.Intensity(p, c, g)
			total += i * math.Sin(g*math.Pi/180) * gStepRad * cStepRad
		}
	}
	return total
}

func zoneRating(zone string, lumens float64) int {
	limits := bugZoneLimits[zone]
	level := 0
	for i, limit := range limits {
		if lumens > limit {
			level = i + 1
		}
	}
	if level > 5 {
		level = 5
	}
	return level
}

func maxLevel(levels ...int) int {
	m := 0
	for _, l := range levels {
		if l > m {
			m = l
		}
	}
	return m
}

// BUGRatingOf computes the nine-zone BUG classification: Backlight
// {BL,BM,BH,BVH} over the back half-plane (C∈[90,270]), Uplight {UL,UH}
// over gamma∈[90,180] independent of C, and the glare-relevant forward
// zones {FM,FH,FVH} over the front half-plane (C∉(90,270)).
func BUGRatingOf(p *model.Photometry) BUGRating {
	zones := map[string]float64{
		"BL":  integrateZone(p, 90, 270, 0, 30),
		"BM":  integrateZone(p, 90, 270, 30, 60),
		"BH":  integrateZone(p, 90, 270, 60, 80),
		"BVH": integrateZone(p, 90, 270, 80, 90),
		"UL":  integrateZone(p, 0, 360, 90, 100),
		"UH":  integrateZone(p, 0, 360, 100, 180),
		"FM":  integrateZone(p, -90, 90, 30, 60),
		"FH":  integrateZone(p, -90, 90, 60, 80),
		"FVH": integrateZone(p, -90, 90, 80, 90),
	}

	b := maxLevel(zoneRating("BL", zones["BL"]), zoneRating("BM", zones["BM"]),
		zoneRating("BH", zones["BH"]), zoneRating("BVH", zones["BVH"]))
	u := maxLevel(zoneRating("UL", zones["UL"]), zoneRating("UH", zones["UH"]))
	g := maxLevel(zoneRating("FM", zones["FM"]), zoneRating("FH", zones["FH"]),
		zoneRating("FVH", zones["FVH"]), zoneRating("BH", zones["BH"]), zoneRating("BVH", zones["BVH"]))

	return BUGRating{B: b, U: u, G: g, Zones: zones}
}

// BUG builds the concentric-ring zone-magnitude diagram per spec.md §4.8.
func BUG(p *model.Photometry, width, height float64) Diagram {
	rating := BUGRatingOf(p)
	center := Point2D{X: width / 2, Y: height / 2}
	maxRadius := math.Min(width, height) / 2 * 0.8

	order := []string{"UH", "UL", "FVH", "FH", "FM", "BVH", "BH", "BM", "BL"}
	var maxZone float64
	for _, z := range rating.Zones {
		if z > maxZone {
			maxZone = z
		}
	}
	if maxZone <= 0 {
		maxZone = 1
	}

	d := Diagram{Width: width, Height: height, Scale: Scale{
		Title: fmt.Sprintf("BUG: B%d U%d G%d", rating.B, rating.U, rating.G),
		Units: "lm",
	}}

	for i, name := range order {
		v, ok := rating.Zones[name]
		if !ok {
			continue
		}
		r := maxRadius * float64(i+1) / float64(len(order))
		d.Arcs = append(d.Arcs, Arc{Center: center, RadiusX: r, RadiusY: r, SweepAngle: 360, Class: "bug-ring"})
		d.Labels = append(d.Labels, TextLabel{
			Pos:    Point2D{X: center.X, Y: center.Y - r},
			Text:   fmt.Sprintf("%s %.0f", name, v),
			Anchor: AnchorMiddle, Class: "bug-label",
		})
		d.Cells = append(d.Cells, heatRing(center, r, v/maxZone))
	}

	return d
}

// heatRing renders one zone's magnitude as a filled square cell of side 2r
// centred on center, coloured by t∈[0,1] along the heatmap ramp; the
// emitter paints it from the same cell primitive the heatmap uses.
func heatRing(center Point2D, r, t float64) ColorCell {
	col := rampColor(t)
	r8, g8, b8 := col.RGB255()
	return ColorCell{X: center.X - r, Y: center.Y - r, W: 2 * r, H: 2 * r, R: r8, G: g8, B: b8, A: 120}
}
