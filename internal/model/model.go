// Package model defines the format-independent photometric document that
// every parser produces and every downstream stage (validator, sampler,
// diagram builder, writer) consumes.
package model

// Symmetry describes how much of the full 360° C-plane sweep is stored on
// disk versus reconstructed by reflection. See stored_c_count in the
// EULUMDAT/IES specs this package models.
type Symmetry int

const (
	// SymmetryNone stores all C-angles, 0..<360.
	SymmetryNone Symmetry = iota
	// SymmetryVerticalAxis stores a single C-plane, replicated to all C.
	SymmetryVerticalAxis
	// SymmetryPlaneC0C180 stores C in [0,180], mirrored for (180,360).
	SymmetryPlaneC0C180
	// SymmetryPlaneC90C270 stores C in [90,270], mirrored elsewhere.
	SymmetryPlaneC90C270
	// SymmetryBothPlanes stores C in [0,90], quadrant-reflected.
	SymmetryBothPlanes
)

// String renders the symmetry as the name used in LDT/IES documentation.
func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "None"
	case SymmetryVerticalAxis:
		return "VerticalAxis"
	case SymmetryPlaneC0C180:
		return "PlaneC0C180"
	case SymmetryPlaneC90C270:
		return "PlaneC90C270"
	case SymmetryBothPlanes:
		return "BothPlanes"
	default:
		return "Unknown"
	}
}

// TypeIndicator is the LDT Ityp / IES photometric-type classification.
type TypeIndicator int

const (
	TypePointSourceSymmetric TypeIndicator = iota + 1
	TypeLinear
	TypePointSourceOther
)

// String renders the type indicator name.
func (t TypeIndicator) String() string {
	switch t {
	case TypePointSourceSymmetric:
		return "PointSourceSymmetric"
	case TypeLinear:
		return "Linear"
	case TypePointSourceOther:
		return "PointSourceOther"
	default:
		return "Unknown"
	}
}

// LampSet describes one group of identical lamps within the luminaire.
type LampSet struct {
	NumberOfLamps       int
	LampType            string
	TotalFluxLumens     float64
	ColorAppearance     string
	ColorRenderingGroup string
	WattageWithBallast  float64
}

// Keyword is one ordered [KEY] VALUE pair carried through from an IES
// header, or a synthesized pair written into one on export. Order is
// preserved (unlike a map) so that byte-stable round-tripping is possible.
type Keyword struct {
	Key   string
	Value string
}

// Photometry is the canonical in-memory representation of a luminaire's
// photometric data, independent of its source file format. It is built
// once by a parser and is read-only thereafter; see package-level docs in
// the root photoeng package for the lifecycle contract.
type Photometry struct {
	// Identification
	LuminaireName            string
	Identification            string
	LuminaireNumber           string
	FileName                 string
	DateUser                 string
	MeasurementReportNumber  string
	CompanyIdentification    string

	// Classification
	Symmetry      Symmetry
	TypeIndicator TypeIndicator

	// Geometry, millimetres
	Length, Width, Height                       float64
	LuminousAreaLength, LuminousAreaWidth        float64
	LuminousAreaHeightC0, LuminousAreaHeightC90  float64
	LuminousAreaHeightC180, LuminousAreaHeightC270 float64

	// Ratios
	DownwardFluxFraction float64
	LightOutputRatio     float64
	ConversionFactor     float64

	// Posture
	TiltAngle float64

	// Lamps
	LampSets []LampSet

	// DIN utilization factors for room indices k=0.6..5.0, 10 values.
	DirectRatios [10]float64

	// Angular grid
	CAngles []float64
	GAngles []float64

	// Intensities[c][g], cd/klm unless Absolute is true (cd).
	Intensities [][]float64

	// Absolute is true when the source declared absolute photometry
	// (IES lumens_per_lamp == -1, or an LDT light output ratio above
	// 1.0); intensities are then stored in cd, not cd/klm. IES-sourced
	// absolute documents have LightOutputRatio fixed at 1.0; LDT-sourced
	// ones keep the ratio they declared. See the Open Question
	// resolution in DESIGN.md.
	Absolute bool

	// MaxIntensity is the declared (or, if absent, computed) peak value
	// used for diagram scale selection and validator cross-checks.
	MaxIntensity float64

	// TotalLuminousFlux is the declared total source flux in lumens,
	// used for IES candela normalization and validator cross-checks.
	TotalLuminousFlux float64

	// TiltIncluded mirrors an IES TILT=INCLUDE subsection, preserved
	// losslessly through round-trip even though the core does not
	// interpret it (§4.3).
	TiltIncluded        bool
	TiltLampToLuminaire int
	TiltAngles          []float64
	TiltMultipliers     []float64

	// Keywords carries the full ordered IES keyword vocabulary
	// ([TEST], [MANUFAC], [LUMINAIRE], user "_" keywords, ...); [MORE]
	// continuation lines are folded into the preceding keyword's value.
	// LDT documents leave this empty; the IES writer synthesizes the
	// minimal keyword set an IES export needs from the other fields.
	Keywords []Keyword
}

// StoredCCount returns how many C-planes are physically stored for the
// given symmetry and the full-circle plane count Mc, per spec.md §3.
func StoredCCount(sym Symmetry, mc int) int {
	switch sym {
	case SymmetryVerticalAxis:
		return 1
	case SymmetryPlaneC0C180:
		return mc/2 + 1
	case SymmetryPlaneC90C270:
		return mc/2 + 1
	case SymmetryBothPlanes:
		return mc/4 + 1
	default:
		return mc
	}
}

// Keyword looks up the first keyword with the given key, returning ""
// if absent.
func (p *Photometry) Keyword(key string) string {
	for _, kw := range p.Keywords {
		if kw.Key == key {
			return kw.Value
		}
	}
	return ""
}

// SetKeyword replaces the value of the first keyword matching key, or
// appends a new pair if none exists.
func (p *Photometry) SetKeyword(key, value string) {
	for i := range p.Keywords {
		if p.Keywords[i].Key == key {
			p.Keywords[i].Value = value
			return
		}
	}
	p.Keywords = append(p.Keywords, Keyword{Key: key, Value: value})
}
