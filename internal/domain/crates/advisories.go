package crates

// Advisory es un hecho estructurado para quien genere texto (narrador externo).
// El motor no produce prosa.
type Advisory string

const (
	AdvisoryOversizeSurcharge     Advisory = "oversize_surcharge"
	AdvisoryTemperatureRestricted Advisory = "temperature_restricted"
	AdvisoryFourSidedVentilation  Advisory = "four_sided_ventilation_required"
	AdvisoryWoodenCrateRequired   Advisory = "wooden_crate_required"
	AdvisorySecondaryLatch        Advisory = "secondary_latch_required"
	AdvisorySeniorComfort         Advisory = "senior_comfort"
	AdvisoryStrictDestination     Advisory = "strict_destination"
	AdvisoryPlasticBanned         Advisory = "plastic_banned_destination"
	AdvisoryCustomBuildRequired   Advisory = "custom_build_required"
	AdvisoryHeavyCargoBooking     Advisory = "heavy_cargo_booking"
)

// TipCategory es la categoría de consejo a mostrar.
// @Enum crate_training, hydration, comfort, documentation, safety
type TipCategory string

const (
	TipCrateTraining TipCategory = "crate_training"
	TipHydration     TipCategory = "hydration"
	TipComfort       TipCategory = "comfort"
	TipDocumentation TipCategory = "documentation"
	TipSafety        TipCategory = "safety"
)

const (
	safetyTipBelowScore = 75
	heavyCargoWeightKg  = 45.0
)

type AdviceInput struct {
	Flags               OverrideFlags
	Profile             *BreedProfile
	Score               int
	SurchargeAxes       []string
	IsCustomBuildNeeded bool
	StrictDestination   bool
	LongHaulDestination bool
}

// Advise arma los hechos y la categoría de consejo, en orden estable.
func Advise(in AdviceInput) ([]Advisory, TipCategory) {
	out := make([]Advisory, 0)
	f := in.Flags

	if len(in.SurchargeAxes) > 0 {
		out = append(out, AdvisoryOversizeSurcharge)
	}
	if f.TemperatureRestricted {
		out = append(out, AdvisoryTemperatureRestricted)
	}
	if f.RequiresFourSidedVentilation {
		out = append(out, AdvisoryFourSidedVentilation)
	}
	if f.RequiresWoodenOrReinforced {
		out = append(out, AdvisoryWoodenCrateRequired)
	}
	if f.RequiresSecondaryLatch {
		out = append(out, AdvisorySecondaryLatch)
	}
	if f.Senior {
		out = append(out, AdvisorySeniorComfort)
	}
	if in.StrictDestination {
		out = append(out, AdvisoryStrictDestination)
	}
	if f.PlasticBannedDestination {
		out = append(out, AdvisoryPlasticBanned)
	}
	if in.IsCustomBuildNeeded {
		out = append(out, AdvisoryCustomBuildRequired)
	}
	if weightOf(in.Profile) > heavyCargoWeightKg {
		out = append(out, AdvisoryHeavyCargoBooking)
	}

	return out, tipCategoryFor(in)
}

// Prioridad: seguridad > hidratación (braquicéfalos) > confort (ansiedad/senior) > documentación (largo recorrido).
func tipCategoryFor(in AdviceInput) TipCategory {
	switch {
	case in.Score < safetyTipBelowScore:
		return TipSafety
	case in.Flags.Brachycephalic:
		return TipHydration
	case in.Flags.HighAnxiety || in.Flags.Senior:
		return TipComfort
	case in.LongHaulDestination:
		return TipDocumentation
	default:
		return TipCrateTraining
	}
}
