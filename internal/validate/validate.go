// Package validate implements the stateless rule engine from spec.md §4.7:
// 44 independent checks over a Photometry document, always returning the
// full list of findings (rules never short-circuit each other).
package validate

import "github.com/genortech/photoeng/internal/model"

// Severity classifies a Warning.
type Severity string

const (
	Info    Severity = "Info"
	Warn    Severity = "Warning"
	Fatal   Severity = "Error"
)

// Warning is one finding from the rule catalogue, keyed by a stable rule
// code so callers can filter or suppress individual rules.
type Warning struct {
	Code     string
	Message  string
	Severity Severity
}

type rule func(p *model.Photometry) []Warning

// Validate runs every rule in the catalogue and returns their combined
// findings. The result is deterministic and independent of call order
// (spec.md §8): each rule only reads the document, never mutates shared
// state.
func Validate(p *model.Photometry) []Warning {
	var out []Warning
	for _, r := range rules {
		out = append(out, r(p)...)
	}
	return out
}

var rules = []rule{
	checkLuminaireNamePresent,
	checkLuminaireNumberPresent,
	checkFileNamePresent,
	checkMeasurementReportPresent,
	checkCompanyIdentificationPresent,
	checkSymmetryValid,
	checkTypeIndicatorValid,
	checkLengthNonNegative,
	checkWidthNonNegative,
	checkHeightNonNegative,
	checkLuminousAreaLengthNonNegative,
	checkLuminousAreaWidthNonNegative,
	checkLuminousAreaHeightsNonNegative,
	checkLuminousAreaFitsPhysical,
	checkDownwardFluxFractionRange,
	checkLightOutputRatioRange,
	checkConversionFactorPositive,
	checkTiltAngleRange,
	checkLampSetCount,
	checkLampSetWattagePositive,
	checkLampSetFluxNonNegative,
	checkLampSetLampCountPositive,
	checkDirectRatiosNonNegative,
	checkCAnglesPresent,
	checkGAnglesPresent,
	checkCAngleCountMatchesSymmetry,
	checkGAngleCountPositive,
	checkCAnglesAscending,
	checkGAnglesAscending,
	checkCAnglesNoDuplicates,
	checkGAnglesNoDuplicates,
	checkGAnglesStartNearZero,
	checkGAnglesEndWithin180,
	checkIntensityRowCountMatchesCAngles,
	checkIntensityRowLengthMatchesGAngles,
	checkIntensitiesNonNegative,
	checkMaxIntensityDeclaredMatches,
	checkMaxIntensityPositive,
	checkTotalFluxMatchesLampSets,
	checkAbsoluteModeConsistency,
	checkGAngleSpacingUniform,
	checkCAngleSpacingUniform,
	checkLinearTypeHasElongatedGeometry,
	checkPointSourceSymmetricConsistentWithSymmetry,
}
