package crates

import "sort"

// MatchResult: Model es nil cuando ningún modelo cumple. Eso no es un error,
// es el resultado esperado para mascotas gigantes o fuera de talla.
type MatchResult struct {
	Model               *CrateCatalogEntry
	IsCustomBuildNeeded bool
}

// Match elige la entrada más chica del catálogo que domina el mínimo requerido,
// soporta el peso y no está excluida por los overrides activos.
// Orden: volumen interior asc, luego maxWeightKg asc, luego orden de inserción.
func Match(catalog *Catalog, required CrateDimensions, weightKg float64, flags OverrideFlags) MatchResult {
	if catalog == nil {
		return MatchResult{IsCustomBuildNeeded: true}
	}

	type candidate struct {
		entry CrateCatalogEntry
		index int
	}

	var fits []candidate
	for i, e := range catalog.entries {
		if !e.InteriorDimensions.Dominates(required) {
			continue
		}
		if e.MaxWeightKg < weightKg {
			continue
		}
		if flags.ExcludesPlastic() && e.MaterialClass == MaterialPlastic {
			continue
		}
		if flags.RequiresFourSidedVentilation && !e.HasEnhancedVentilation {
			continue
		}
		// raza gigante: solo madera o aluminio certificados para ese peso
		if flags.GiantBreed && !e.IsGiantCapable {
			continue
		}
		fits = append(fits, candidate{entry: e, index: i})
	}

	if len(fits) == 0 {
		return MatchResult{IsCustomBuildNeeded: true}
	}

	sort.SliceStable(fits, func(i, j int) bool {
		vi, vj := fits[i].entry.InteriorDimensions.Volume(), fits[j].entry.InteriorDimensions.Volume()
		if vi != vj {
			return vi < vj
		}
		if fits[i].entry.MaxWeightKg != fits[j].entry.MaxWeightKg {
			return fits[i].entry.MaxWeightKg < fits[j].entry.MaxWeightKg
		}
		return fits[i].index < fits[j].index
	})

	best := fits[0].entry
	return MatchResult{Model: &best}
}
