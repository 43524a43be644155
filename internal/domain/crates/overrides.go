package crates

// ApplyOverrides aplica las reglas por raza/especie en orden fijo:
//
//  1. braquicéfalo: clearance = 10 cm, ventilación en 4 lados, restricción de temperatura
//  2. raza gigante (>= 40 kg): madera o reforzada, sin plástico
//  3. alta ansiedad: segundo cerrojo (solo informativo)
//  4. senior: +5 cm de alto sobre el ajuste anterior
//
// Las reglas son acumulativas. Sin perfil, devuelve base sin cambios.
func ApplyOverrides(m PetMeasurements, base CrateDimensions, profile *BreedProfile) (CrateDimensions, OverrideFlags) {
	var flags OverrideFlags
	if profile == nil {
		return base, flags
	}

	adjusted := base

	if profile.IsBrachycephalic || IsKnownBrachycephalic(profile.BreedName) {
		flags.Brachycephalic = true
		flags.RequiresFourSidedVentilation = true
		flags.TemperatureRestricted = true
	}

	if profile.IsGiantBreed() {
		flags.GiantBreed = true
		flags.RequiresWoodenOrReinforced = true
	}

	if profile.IsHighAnxiety || IsKnownHighAnxiety(profile.BreedName) {
		flags.HighAnxiety = true
		flags.RequiresSecondaryLatch = true
	}

	if profile.IsSenior {
		flags.Senior = true
	}

	if flags.Brachycephalic || flags.Senior {
		// recalcula desde la medida cruda para no acumular redondeos
		adjusted.Height = RoundCm(m.TallestPoint() + ClearanceFor(flags))
	}

	return adjusted, flags
}

// ClearanceFor devuelve el clearance efectivo para los flags dados.
func ClearanceFor(flags OverrideFlags) float64 {
	clearance := DefaultClearanceCm
	if flags.Brachycephalic {
		clearance = BrachycephalicClearanceCm
	}
	if flags.Senior {
		clearance += SeniorExtraHeightCm
	}
	return clearance
}
