package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var basePet = PetMeasurements{Length: 50, StandingHeight: 60, Width: 25, SittingHeight: 55}

func TestApplyOverrides_NoProfile(t *testing.T) {
	base := CalculateMinimum(basePet, DefaultClearanceCm)

	got, flags := ApplyOverrides(basePet, base, nil)
	assert.Equal(t, base, got)
	assert.Equal(t, OverrideFlags{}, flags)
	assert.Equal(t, DefaultClearanceCm, ClearanceFor(flags))
}

func TestApplyOverrides_Rules(t *testing.T) {
	base := CalculateMinimum(basePet, DefaultClearanceCm)

	tests := []struct {
		name      string
		profile   BreedProfile
		height    float64
		clearance float64
		want      OverrideFlags
	}{
		{
			name:      "brachycefalo declarado",
			profile:   BreedProfile{SpeciesName: "dog", IsBrachycephalic: true},
			height:    70,
			clearance: 10,
			want: OverrideFlags{
				Brachycephalic:               true,
				RequiresFourSidedVentilation: true,
				TemperatureRestricted:        true,
			},
		},
		{
			name:      "brachycefalo inferido por raza",
			profile:   BreedProfile{SpeciesName: "dog", BreedName: "French Bulldog"},
			height:    70,
			clearance: 10,
			want: OverrideFlags{
				Brachycephalic:               true,
				RequiresFourSidedVentilation: true,
				TemperatureRestricted:        true,
			},
		},
		{
			name:      "gigante por peso",
			profile:   BreedProfile{SpeciesName: "dog", WeightKg: 40},
			height:    67.5,
			clearance: 7.5,
			want:      OverrideFlags{GiantBreed: true, RequiresWoodenOrReinforced: true},
		},
		{
			name:      "ansiedad inferida",
			profile:   BreedProfile{SpeciesName: "dog", BreedName: "siberian-husky"},
			height:    67.5,
			clearance: 7.5,
			want:      OverrideFlags{HighAnxiety: true, RequiresSecondaryLatch: true},
		},
		{
			name:      "senior",
			profile:   BreedProfile{SpeciesName: "cat", IsSenior: true},
			height:    72.5,
			clearance: 12.5,
			want:      OverrideFlags{Senior: true},
		},
		{
			name:      "senior braquicefalo acumula",
			profile:   BreedProfile{SpeciesName: "cat", BreedName: "Persian", IsSenior: true},
			height:    75,
			clearance: 15,
			want: OverrideFlags{
				Brachycephalic:               true,
				RequiresFourSidedVentilation: true,
				TemperatureRestricted:        true,
				Senior:                       true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.profile
			got, flags := ApplyOverrides(basePet, base, &p)

			assert.Equal(t, tt.want, flags)
			assert.Equal(t, tt.height, got.Height)
			assert.Equal(t, tt.clearance, ClearanceFor(flags))

			// largo y ancho no cambian
			assert.Equal(t, base.Length, got.Length)
			assert.Equal(t, base.Width, got.Width)
		})
	}
}

func TestApplyOverrides_JustBelowGiant(t *testing.T) {
	base := CalculateMinimum(basePet, DefaultClearanceCm)
	_, flags := ApplyOverrides(basePet, base, &BreedProfile{SpeciesName: "dog", WeightKg: 39.9})
	assert.False(t, flags.GiantBreed)
}

func TestKnownBreeds(t *testing.T) {
	assert.True(t, IsKnownBrachycephalic("PUG"))
	assert.True(t, IsKnownBrachycephalic("english_bulldog"))
	assert.True(t, IsKnownBrachycephalic("Shih-Tzu"))
	assert.False(t, IsKnownBrachycephalic("Labrador"))
	assert.False(t, IsKnownBrachycephalic(""))

	assert.True(t, IsKnownHighAnxiety("Alaskan Malamute"))
	assert.True(t, IsKnownHighAnxiety("Jack Russell Terrier"))
	assert.False(t, IsKnownHighAnxiety("Golden Retriever"))
}

func TestKnownBreeds_WholeWordsOnly(t *testing.T) {
	assert.False(t, IsKnownBrachycephalic("Puggle"))
	assert.False(t, IsKnownBrachycephalic("Boxerdoodle"))
	assert.False(t, IsKnownBrachycephalic("shih"))
	assert.False(t, IsKnownHighAnxiety("Huskydoodle"))

	assert.True(t, IsKnownBrachycephalic("French  Bulldog"))
	assert.True(t, IsKnownBrachycephalic("boston-terrier mix"))
	assert.True(t, IsKnownHighAnxiety("Siberian Husky"))
}
