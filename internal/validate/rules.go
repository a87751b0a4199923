package validate

import (
	"fmt"
	"math"

	"github.com/genortech/photoeng/internal/model"
)

const tolerance = 1e-3

func warn(code, msg string, sev Severity) Warning {
	return Warning{Code: code, Message: msg, Severity: sev}
}

func none() []Warning { return nil }

// --- field presence -------------------------------------------------

func checkLuminaireNamePresent(p *model.Photometry) []Warning {
	if p.LuminaireName == "" {
		return []Warning{warn("W001", "luminaire name is empty", Warn)}
	}
	return none()
}

func checkLuminaireNumberPresent(p *model.Photometry) []Warning {
	if p.LuminaireNumber == "" {
		return []Warning{warn("W002", "luminaire number is empty", Info)}
	}
	return none()
}

func checkFileNamePresent(p *model.Photometry) []Warning {
	if p.FileName == "" {
		return []Warning{warn("W003", "file name is empty", Info)}
	}
	return none()
}

func checkMeasurementReportPresent(p *model.Photometry) []Warning {
	if p.MeasurementReportNumber == "" {
		return []Warning{warn("W004", "measurement report number is empty", Info)}
	}
	return none()
}

func checkCompanyIdentificationPresent(p *model.Photometry) []Warning {
	if p.CompanyIdentification == "" {
		return []Warning{warn("W005", "company identification is empty", Warn)}
	}
	return none()
}

// --- classification ---------------------------------------------------

func checkSymmetryValid(p *model.Photometry) []Warning {
	if p.Symmetry < model.SymmetryNone || p.Symmetry > model.SymmetryBothPlanes {
		return []Warning{warn("W006", "symmetry indicator out of range", Fatal)}
	}
	return none()
}

func checkTypeIndicatorValid(p *model.Photometry) []Warning {
	if p.TypeIndicator < model.TypePointSourceSymmetric || p.TypeIndicator > model.TypePointSourceOther {
		return []Warning{warn("W007", "type indicator out of range", Fatal)}
	}
	return none()
}

// --- geometry -----------------------------------------------------------

func checkLengthNonNegative(p *model.Photometry) []Warning {
	if p.Length < 0 {
		return []Warning{warn("W008", "length is negative", Fatal)}
	}
	return none()
}

func checkWidthNonNegative(p *model.Photometry) []Warning {
	if p.Width < 0 {
		return []Warning{warn("W009", "width is negative", Fatal)}
	}
	return none()
}

func checkHeightNonNegative(p *model.Photometry) []Warning {
	if p.Height < 0 {
		return []Warning{warn("W010", "height is negative", Fatal)}
	}
	return none()
}

func checkLuminousAreaLengthNonNegative(p *model.Photometry) []Warning {
	if p.LuminousAreaLength < 0 {
		return []Warning{warn("W011", "luminous area length is negative", Fatal)}
	}
	return none()
}

func checkLuminousAreaWidthNonNegative(p *model.Photometry) []Warning {
	if p.LuminousAreaWidth < 0 {
		return []Warning{warn("W012", "luminous area width is negative", Fatal)}
	}
	return none()
}

func checkLuminousAreaHeightsNonNegative(p *model.Photometry) []Warning {
	var out []Warning
	heights := []float64{p.LuminousAreaHeightC0, p.LuminousAreaHeightC90, p.LuminousAreaHeightC180, p.LuminousAreaHeightC270}
	for i, h := range heights {
		if h < 0 {
			out = append(out, warn("W013", fmt.Sprintf("luminous area height (plane %d) is negative", i), Fatal))
		}
	}
	return out
}

func checkLuminousAreaFitsPhysical(p *model.Photometry) []Warning {
	var out []Warning
	if p.Length > 0 && p.LuminousAreaLength > p.Length {
		out = append(out, warn("W014", "luminous area length exceeds physical length", Warn))
	}
	if p.Width > 0 && p.LuminousAreaWidth > p.Width {
		out = append(out, warn("W014", "luminous area width exceeds physical width", Warn))
	}
	return out
}

func checkDownwardFluxFractionRange(p *model.Photometry) []Warning {
	if p.DownwardFluxFraction < 0 || p.DownwardFluxFraction > 1.0001 {
		return []Warning{warn("W015", "downward flux fraction outside [0,1]", Warn)}
	}
	return none()
}

func checkLightOutputRatioRange(p *model.Photometry) []Warning {
	if p.LightOutputRatio < 0 {
		return []Warning{warn("W016", "light output ratio is negative", Fatal)}
	}
	if p.LightOutputRatio > 1.0 && !p.Absolute {
		return []Warning{warn("W016", "light output ratio exceeds 1.0 for a relative-photometry document", Info)}
	}
	return none()
}

func checkConversionFactorPositive(p *model.Photometry) []Warning {
	if p.ConversionFactor <= 0 {
		return []Warning{warn("W017", "conversion factor is not positive", Warn)}
	}
	return none()
}

func checkTiltAngleRange(p *model.Photometry) []Warning {
	if p.TiltAngle < -90 || p.TiltAngle > 90 {
		return []Warning{warn("W018", "tilt angle outside plausible ±90° range", Warn)}
	}
	return none()
}

// --- lamp sets ------------------------------------------------------

func checkLampSetCount(p *model.Photometry) []Warning {
	if len(p.LampSets) > 20 {
		return []Warning{warn("W019", "more than 20 lamp sets declared", Fatal)}
	}
	return none()
}

func checkLampSetWattagePositive(p *model.Photometry) []Warning {
	var out []Warning
	for i, ls := range p.LampSets {
		if ls.WattageWithBallast < 0 {
			out = append(out, warn("W020", fmt.Sprintf("lamp set %d has negative wattage", i), Fatal))
		}
	}
	return out
}

func checkLampSetFluxNonNegative(p *model.Photometry) []Warning {
	var out []Warning
	for i, ls := range p.LampSets {
		if ls.TotalFluxLumens < 0 {
			out = append(out, warn("W021", fmt.Sprintf("lamp set %d has negative flux", i), Fatal))
		}
	}
	return out
}

func checkLampSetLampCountPositive(p *model.Photometry) []Warning {
	var out []Warning
	for i, ls := range p.LampSets {
		if ls.NumberOfLamps <= 0 {
			out = append(out, warn("W022", fmt.Sprintf("lamp set %d has non-positive lamp count", i), Warn))
		}
	}
	return out
}

// --- direct ratios ----------------------------------------------------

func checkDirectRatiosNonNegative(p *model.Photometry) []Warning {
	for i := 0; i < len(p.DirectRatios); i++ {
		if p.DirectRatios[i] < 0 {
			return []Warning{warn("W023", "direct ratio value is negative", Warn)}
		}
	}
	return none()
}

// --- angle arrays -----------------------------------------------------

func checkCAnglesPresent(p *model.Photometry) []Warning {
	if len(p.CAngles) == 0 {
		return []Warning{warn("W024", "no C-plane angles stored", Fatal)}
	}
	return none()
}

func checkGAnglesPresent(p *model.Photometry) []Warning {
	if len(p.GAngles) == 0 {
		return []Warning{warn("W025", "no gamma angles stored", Fatal)}
	}
	return none()
}

func checkCAngleCountMatchesSymmetry(p *model.Photometry) []Warning {
	// The full-circle Mc implied by the stored row count must reproduce
	// the same stored count when fed back through StoredCCount.
	stored := len(p.CAngles)
	var mc int
	switch p.Symmetry {
	case model.SymmetryVerticalAxis:
		mc = 1
	case model.SymmetryPlaneC0C180, model.SymmetryPlaneC90C270:
		mc = (stored - 1) * 2
	case model.SymmetryBothPlanes:
		mc = (stored - 1) * 4
	default:
		mc = stored
	}
	if model.StoredCCount(p.Symmetry, mc) != stored {
		return []Warning{warn("W026", "stored C-plane count is inconsistent with symmetry", Fatal)}
	}
	return none()
}

func checkGAngleCountPositive(p *model.Photometry) []Warning {
	if len(p.GAngles) < 2 {
		return []Warning{warn("W027", "fewer than 2 gamma angles stored", Fatal)}
	}
	return none()
}

func checkCAnglesAscending(p *model.Photometry) []Warning {
	for i := 1; i < len(p.CAngles); i++ {
		if p.CAngles[i] <= p.CAngles[i-1] {
			return []Warning{warn("W028", "C-plane angles are not strictly ascending", Fatal)}
		}
	}
	return none()
}

func checkGAnglesAscending(p *model.Photometry) []Warning {
	for i := 1; i < len(p.GAngles); i++ {
		if p.GAngles[i] <= p.GAngles[i-1] {
			return []Warning{warn("W029", "gamma angles are not strictly ascending", Fatal)}
		}
	}
	return none()
}

func checkCAnglesNoDuplicates(p *model.Photometry) []Warning {
	seen := map[float64]bool{}
	for _, a := range p.CAngles {
		if seen[a] {
			return []Warning{warn("W030", "duplicate C-plane angle", Warn)}
		}
		seen[a] = true
	}
	return none()
}

func checkGAnglesNoDuplicates(p *model.Photometry) []Warning {
	seen := map[float64]bool{}
	for _, a := range p.GAngles {
		if seen[a] {
			return []Warning{warn("W031", "duplicate gamma angle", Warn)}
		}
		seen[a] = true
	}
	return none()
}

func checkGAnglesStartNearZero(p *model.Photometry) []Warning {
	if len(p.GAngles) > 0 && math.Abs(p.GAngles[0]) > 1e-6 {
		return []Warning{warn("W032", "first gamma angle is not 0°", Info)}
	}
	return none()
}

func checkGAnglesEndWithin180(p *model.Photometry) []Warning {
	if len(p.GAngles) > 0 && p.GAngles[len(p.GAngles)-1] > 180.0001 {
		return []Warning{warn("W033", "last gamma angle exceeds 180°", Fatal)}
	}
	return none()
}

// --- intensity table ---------------------------------------------------

func checkIntensityRowCountMatchesCAngles(p *model.Photometry) []Warning {
	if len(p.Intensities) != len(p.CAngles) {
		return []Warning{warn("W034", "intensity row count does not match C-plane count", Fatal)}
	}
	return none()
}

func checkIntensityRowLengthMatchesGAngles(p *model.Photometry) []Warning {
	for i, row := range p.Intensities {
		if len(row) != len(p.GAngles) {
			return []Warning{warn("W035", fmt.Sprintf("intensity row %d length does not match gamma angle count", i), Fatal)}
		}
	}
	return none()
}

func checkIntensitiesNonNegative(p *model.Photometry) []Warning {
	for ci, row := range p.Intensities {
		for gi, v := range row {
			if v < 0 {
				return []Warning{warn("W036", fmt.Sprintf("negative intensity at [%d][%d]", ci, gi), Fatal)}
			}
		}
	}
	return none()
}

func checkMaxIntensityDeclaredMatches(p *model.Photometry) []Warning {
	actual := 0.0
	for _, row := range p.Intensities {
		for _, v := range row {
			if v > actual {
				actual = v
			}
		}
	}
	if p.MaxIntensity > 0 && math.Abs(actual-p.MaxIntensity) > p.MaxIntensity*0.01+tolerance {
		return []Warning{warn("W037", "declared max intensity does not match observed grid maximum", Warn)}
	}
	return none()
}

func checkMaxIntensityPositive(p *model.Photometry) []Warning {
	if p.MaxIntensity < 0 {
		return []Warning{warn("W038", "max intensity is negative", Fatal)}
	}
	return none()
}

func checkTotalFluxMatchesLampSets(p *model.Photometry) []Warning {
	if p.Absolute {
		return none()
	}
	var sum float64
	for _, ls := range p.LampSets {
		sum += ls.TotalFluxLumens
	}
	if sum == 0 {
		return none()
	}
	if math.Abs(sum-p.TotalLuminousFlux) > sum*0.01+tolerance {
		return []Warning{warn("W039", "total luminous flux does not match sum over lamp sets", Warn)}
	}
	return none()
}

func checkAbsoluteModeConsistency(p *model.Photometry) []Warning {
	if p.Absolute && p.LightOutputRatio != 1.0 {
		return []Warning{warn("W040", "absolute-photometry document should declare light output ratio 1.0", Info)}
	}
	return none()
}

func checkGAngleSpacingUniform(p *model.Photometry) []Warning {
	if !uniformSpacing(p.GAngles) {
		return []Warning{warn("W041", "gamma angle spacing is non-uniform", Warn)}
	}
	return none()
}

func checkCAngleSpacingUniform(p *model.Photometry) []Warning {
	if !uniformSpacing(p.CAngles) {
		return []Warning{warn("W042", "C-plane angle spacing is non-uniform", Info)}
	}
	return none()
}

func checkLinearTypeHasElongatedGeometry(p *model.Photometry) []Warning {
	if p.TypeIndicator == model.TypeLinear && p.Length > 0 && p.Width > 0 && p.Length < p.Width {
		return []Warning{warn("W043", "linear luminaire has width exceeding length", Info)}
	}
	return none()
}

func checkPointSourceSymmetricConsistentWithSymmetry(p *model.Photometry) []Warning {
	if p.TypeIndicator == model.TypePointSourceSymmetric && p.Symmetry == model.SymmetryNone {
		return []Warning{warn("W044", "point-source-symmetric type declared with no symmetry", Info)}
	}
	return none()
}

func uniformSpacing(angles []float64) bool {
	if len(angles) < 3 {
		return true
	}
	step := angles[1] - angles[0]
	for i := 2; i < len(angles); i++ {
		if math.Abs((angles[i]-angles[i-1])-step) > 1e-6 {
			return false
		}
	}
	return true
}
