package crates

import "math"

// ComplianceBand es la banda discreta del score. Límite inferior inclusivo.
// @Enum perfect, good, acceptable, borderline, highRisk, critical
type ComplianceBand string

const (
	BandPerfect    ComplianceBand = "perfect"
	BandGood       ComplianceBand = "good"
	BandAcceptable ComplianceBand = "acceptable"
	BandBorderline ComplianceBand = "borderline"
	BandHighRisk   ComplianceBand = "highRisk"
	BandCritical   ComplianceBand = "critical"
)

const (
	BaselineScore = 100
	MinScore      = 0
)

// DeductionCode identifica cada regla de descuento.
type DeductionCode string

const (
	DeductAxisDeviation       DeductionCode = "axis_deviation"
	DeductClearanceBelowMin   DeductionCode = "clearance_below_5cm"
	DeductClearanceBorderline DeductionCode = "clearance_borderline"
	DeductWidthTurnAround     DeductionCode = "width_below_turn_radius"
	DeductLengthLyingFlat     DeductionCode = "length_prevents_lying_flat"
	DeductBrachyClearance     DeductionCode = "brachycephalic_clearance_not_raised"
	DeductBrachyVentilation   DeductionCode = "brachycephalic_ventilation_missing"
	DeductGiantPlastic        DeductionCode = "giant_breed_plastic_crate"
	DeductAnxietyThinWall     DeductionCode = "high_anxiety_thin_wall"
	DeductWeightOverRating    DeductionCode = "weight_exceeds_rating"
	DeductMissingBreedData    DeductionCode = "missing_breed_data_large_pet"
	DeductStrictDestination   DeductionCode = "strict_destination"
)

// Puntos por regla.
const (
	pointsClearanceBelowMin   = 20
	pointsClearanceBorderline = 10
	pointsWidthTurnAround     = 25
	pointsLengthLyingFlat     = 30
	pointsBrachyClearance     = 15
	pointsBrachyVentilation   = 20
	pointsGiantPlastic        = 25
	pointsAnxietyThinWall     = 10
	pointsWeightOverRating    = 30
	pointsMissingBreedData    = 5
	pointsStrictDestination   = 10

	minClearanceCm        = 5.0
	borderlineClearanceCm = 7.0
	largePetLengthCm      = 90.0
	largePetWeightKg      = 30.0
)

// Deduction es un descuento aplicado. Se reportan todos para que el veredicto sea auditable.
type Deduction struct {
	Code   DeductionCode  `json:"code"`
	Axis   Axis           `json:"axis,omitempty"`
	Class  DeviationClass `json:"class,omitempty"`
	Points int            `json:"points"`
}

// DeviationPoints es el descuento de una clase de desvío.
func DeviationPoints(c DeviationClass) int {
	switch c {
	case MinorUnder:
		return 15
	case MinorOver:
		return 5
	case MajorUnder:
		return 30
	case CriticalUnder:
		return 50
	case ExcessiveOver:
		return 15
	default:
		return 0
	}
}

// ChosenCrate es la jaula sobre la que se evalúan los chequeos estructurales:
// el candidato si vino, si no el modelo recomendado.
type ChosenCrate struct {
	Dimensions           CrateDimensions
	MaterialClass        MaterialClass
	FourSidedVentilation bool
	MaxWeightKg          *float64
}

type ScoreInput struct {
	Measurements      PetMeasurements
	Profile           *BreedProfile
	Flags             OverrideFlags
	Comparison        *Comparison  // nil si no hubo candidato
	Crate             *ChosenCrate // nil si hace falta construcción a medida y no hubo candidato
	StrictDestination bool
}

type ScoreResult struct {
	Score      int
	Band       ComplianceBand
	Deductions []Deduction
}

// Score suma los descuentos y los resta de 100, con piso en 0.
func Score(in ScoreInput) ScoreResult {
	deductions := make([]Deduction, 0)
	add := func(code DeductionCode, points int) {
		deductions = append(deductions, Deduction{Code: code, Points: points})
	}

	if in.Comparison != nil {
		for _, a := range in.Comparison.Axes() {
			if p := DeviationPoints(a.Class); p > 0 {
				deductions = append(deductions, Deduction{
					Code:   DeductAxisDeviation,
					Axis:   a.Axis,
					Class:  a.Class,
					Points: p,
				})
			}
		}
	}

	m := in.Measurements
	if c := in.Crate; c != nil {
		clearance := RoundCm(c.Dimensions.Height - m.TallestPoint())
		switch {
		case clearance < minClearanceCm:
			add(DeductClearanceBelowMin, pointsClearanceBelowMin)
		case clearance <= borderlineClearanceCm:
			add(DeductClearanceBorderline, pointsClearanceBorderline)
		}

		// chequeos estructurales contra la medida cruda: el redondeo no puede esconder un giro imposible
		if c.Dimensions.Width < m.Width*2 {
			add(DeductWidthTurnAround, pointsWidthTurnAround)
		}
		if c.Dimensions.Length < rawMinimum(m, 0).Length {
			add(DeductLengthLyingFlat, pointsLengthLyingFlat)
		}

		if in.Flags.Brachycephalic {
			if clearance < BrachycephalicClearanceCm {
				add(DeductBrachyClearance, pointsBrachyClearance)
			}
			if !c.FourSidedVentilation {
				add(DeductBrachyVentilation, pointsBrachyVentilation)
			}
		}
		if in.Flags.GiantBreed && c.MaterialClass == MaterialPlastic {
			add(DeductGiantPlastic, pointsGiantPlastic)
		}
		if in.Flags.HighAnxiety && c.MaterialClass.IsThinWall() {
			add(DeductAnxietyThinWall, pointsAnxietyThinWall)
		}
		if w := weightOf(in.Profile); w > 0 && c.MaxWeightKg != nil && w > *c.MaxWeightKg {
			add(DeductWeightOverRating, pointsWeightOverRating)
		}
	}

	if missingBreedData(in.Profile) && (m.Length > largePetLengthCm || weightOf(in.Profile) > largePetWeightKg) {
		add(DeductMissingBreedData, pointsMissingBreedData)
	}

	if in.StrictDestination {
		add(DeductStrictDestination, pointsStrictDestination)
	}

	total := 0
	for _, d := range deductions {
		total += d.Points
	}
	score := int(math.Max(MinScore, float64(BaselineScore-total)))

	return ScoreResult{
		Score:      score,
		Band:       BandFor(score),
		Deductions: deductions,
	}
}

// BandFor mapea un score a su banda. En el límite exacto gana la banda mejor.
func BandFor(score int) ComplianceBand {
	switch {
	case score >= 95:
		return BandPerfect
	case score >= 85:
		return BandGood
	case score >= 75:
		return BandAcceptable
	case score >= 70:
		return BandBorderline
	case score >= 60:
		return BandHighRisk
	default:
		return BandCritical
	}
}

func weightOf(p *BreedProfile) float64 {
	if p == nil {
		return 0
	}
	return p.WeightKg
}

func missingBreedData(p *BreedProfile) bool {
	return p == nil || (p.SpeciesName == "" && p.BreedName == "")
}
