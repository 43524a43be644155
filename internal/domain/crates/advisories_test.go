package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvise_StableOrder(t *testing.T) {
	got, _ := Advise(AdviceInput{
		Flags: OverrideFlags{
			Brachycephalic:               true,
			RequiresFourSidedVentilation: true,
			TemperatureRestricted:        true,
			Senior:                       true,
			PlasticBannedDestination:     true,
		},
		Profile:             &BreedProfile{SpeciesName: "dog", WeightKg: 50},
		Score:               90,
		SurchargeAxes:       []string{"length"},
		IsCustomBuildNeeded: true,
		StrictDestination:   true,
	})

	assert.Equal(t, []Advisory{
		AdvisoryOversizeSurcharge,
		AdvisoryTemperatureRestricted,
		AdvisoryFourSidedVentilation,
		AdvisorySeniorComfort,
		AdvisoryStrictDestination,
		AdvisoryPlasticBanned,
		AdvisoryCustomBuildRequired,
		AdvisoryHeavyCargoBooking,
	}, got)
}

func TestAdvise_NothingToSay(t *testing.T) {
	got, tip := Advise(AdviceInput{Score: 100})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, TipCrateTraining, tip)
}

func TestAdvise_TipPriority(t *testing.T) {
	tests := []struct {
		name string
		in   AdviceInput
		want TipCategory
	}{
		{"low score wins over everything", AdviceInput{Score: 74, Flags: OverrideFlags{Brachycephalic: true}, LongHaulDestination: true}, TipSafety},
		{"score 75 is not safety", AdviceInput{Score: 75}, TipCrateTraining},
		{"brachycephalic", AdviceInput{Score: 90, Flags: OverrideFlags{Brachycephalic: true, Senior: true}}, TipHydration},
		{"anxiety", AdviceInput{Score: 90, Flags: OverrideFlags{HighAnxiety: true}, LongHaulDestination: true}, TipComfort},
		{"senior", AdviceInput{Score: 90, Flags: OverrideFlags{Senior: true}}, TipComfort},
		{"long haul", AdviceInput{Score: 90, LongHaulDestination: true}, TipDocumentation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tip := Advise(tt.in)
			assert.Equal(t, tt.want, tip)
		})
	}
}

func TestAdvise_HeavyCargoIsStrictlyAbove45(t *testing.T) {
	got, _ := Advise(AdviceInput{Score: 100, Profile: &BreedProfile{WeightKg: 45}})
	assert.NotContains(t, got, AdvisoryHeavyCargoBooking)

	got, _ = Advise(AdviceInput{Score: 100, Profile: &BreedProfile{WeightKg: 45.1}})
	assert.Contains(t, got, AdvisoryHeavyCargoBooking)
}

func TestCountryCode(t *testing.T) {
	tests := map[string]string{
		"UK":              "GB",
		" united_kingdom": "GB",
		"Great-Britain":   "GB",
		"australia":       "AU",
		"New Zealand":     "NZ",
		"usa":             "US",
		"fr":              "FR",
		"":                "",
		"   ":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CountryCode(in), "input %q", in)
	}
}

func TestDestinationSet(t *testing.T) {
	set := newDestinationSet([]string{"United Kingdom", "au", ""})

	assert.True(t, set.contains("GB"))
	assert.True(t, set.contains("uk"))
	assert.True(t, set.contains("Australia"))
	assert.False(t, set.contains("NZ"))
	assert.False(t, set.contains(""))
}

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	assert.ElementsMatch(t, []string{"GB", "AU"}, r.StrictDestinations)
	assert.ElementsMatch(t, []string{"AU", "NZ"}, r.PlasticBannedDestinations)
}
