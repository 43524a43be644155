package memory

import (
	"context"
	"sync"

	"pet-crate-compliance/internal/domain/crates"
)

type CatalogRepo struct {
	mu      sync.RWMutex
	entries []crates.CrateCatalogEntry
}

// NewCatalogRepo guarda las entradas tal cual; la validación la hace crates.NewCatalog.
func NewCatalogRepo(entries []crates.CrateCatalogEntry) *CatalogRepo {
	r := &CatalogRepo{}
	r.Replace(entries)
	return r
}

// NewSeedCatalogRepo arranca con el stock por defecto.
func NewSeedCatalogRepo() *CatalogRepo {
	return NewCatalogRepo(SeedCatalog())
}

func (r *CatalogRepo) Load(ctx context.Context) ([]crates.CrateCatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]crates.CrateCatalogEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Replace cambia el contenido; se ve en el próximo Reload del service.
func (r *CatalogRepo) Replace(entries []crates.CrateCatalogEntry) {
	cp := make([]crates.CrateCatalogEntry, len(entries))
	copy(cp, entries)

	r.mu.Lock()
	r.entries = cp
	r.mu.Unlock()
}

// SeedCatalog: medidas interiores en cm, peso máximo en kg.
// Orden de inserción = orden de desempate del matcher.
// Los pesos de la serie Sky Kennel siguen la tabla de tallas de la tienda
// (7/11/16/23/32/45 kg); el interior del 500 es el publicado en la ficha.
func SeedCatalog() []crates.CrateCatalogEntry {
	return []crates.CrateCatalogEntry{
		plastic("sky-kennel-100", "Sky Kennel 100", 48, 32, 36, 7, false),
		plastic("sky-kennel-200", "Sky Kennel 200", 66, 46, 48, 11, false),
		plastic("sky-kennel-300", "Sky Kennel 300", 77, 51, 54, 16, false),
		plastic("sky-kennel-400", "Sky Kennel 400", 86, 56, 61, 23, false),
		plastic("sky-kennel-500", "Sky Kennel 500", 91, 63, 68, 32, false),
		plastic("sky-kennel-700", "Sky Kennel 700", 114, 73, 81, 45, false),

		// Ventilación en los cuatro lados (braquicéfalos)
		plastic("sky-kennel-ultra-300", "Sky Kennel Ultra 300", 77, 51, 54, 16, true),
		plastic("sky-kennel-ultra-500", "Sky Kennel Ultra 500", 91, 63, 68, 32, true),
		plastic("sky-kennel-ultra-700", "Sky Kennel Ultra 700", 114, 73, 81, 45, true),

		{
			ModelID:                "wire-xl-42",
			Name:                   "Wire Travel Crate XL 42",
			InteriorDimensions:     crates.CrateDimensions{Length: 104, Width: 69, Height: 76},
			MaxWeightKg:            40,
			MaterialClass:          crates.MaterialWire,
			HasEnhancedVentilation: true,
		},
		{
			ModelID:                "gunner-g1-large",
			Name:                   "Gunner G1 Large",
			InteriorDimensions:     crates.CrateDimensions{Length: 91, Width: 61, Height: 71},
			MaxWeightKg:            50,
			MaterialClass:          crates.MaterialAluminum,
			IsGiantCapable:         true,
			HasEnhancedVentilation: false,
		},
		{
			ModelID:                "gunner-g1-xl",
			Name:                   "Gunner G1 XL",
			InteriorDimensions:     crates.CrateDimensions{Length: 107, Width: 71, Height: 81},
			MaxWeightKg:            65,
			MaterialClass:          crates.MaterialAluminum,
			IsGiantCapable:         true,
			HasEnhancedVentilation: false,
		},
		{
			ModelID:                "wood-iata-l",
			Name:                   "IATA Wooden Crate L",
			InteriorDimensions:     crates.CrateDimensions{Length: 122, Width: 81, Height: 91},
			MaxWeightKg:            80,
			MaterialClass:          crates.MaterialWood,
			IsGiantCapable:         true,
			HasEnhancedVentilation: true,
		},
		{
			ModelID:                "wood-iata-xl",
			Name:                   "IATA Wooden Crate XL",
			InteriorDimensions:     crates.CrateDimensions{Length: 137, Width: 91, Height: 104},
			MaxWeightKg:            100,
			MaterialClass:          crates.MaterialWood,
			IsGiantCapable:         true,
			HasEnhancedVentilation: true,
		},
	}
}

func plastic(id, name string, l, w, h, maxKg float64, vented bool) crates.CrateCatalogEntry {
	return crates.CrateCatalogEntry{
		ModelID:                id,
		Name:                   name,
		InteriorDimensions:     crates.CrateDimensions{Length: l, Width: w, Height: h},
		MaxWeightKg:            maxKg,
		MaterialClass:          crates.MaterialPlastic,
		HasEnhancedVentilation: vented,
	}
}
