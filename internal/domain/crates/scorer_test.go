package crates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(ds []Deduction) []DeductionCode {
	out := make([]DeductionCode, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}
	return out
}

func crateOf(l, w, h float64, material MaterialClass, vented bool) *ChosenCrate {
	return &ChosenCrate{
		Dimensions:           CrateDimensions{Length: l, Width: w, Height: h},
		MaterialClass:        material,
		FourSidedVentilation: vented,
	}
}

var knownDog = &BreedProfile{SpeciesName: "dog", BreedName: "mixed", WeightKg: 15}

func TestScore_Baseline(t *testing.T) {
	res := Score(ScoreInput{Measurements: basePet, Profile: knownDog})
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, BandPerfect, res.Band)
	assert.Empty(t, res.Deductions)
}

func TestScore_Rules(t *testing.T) {
	tests := []struct {
		name  string
		in    ScoreInput
		score int
		codes []DeductionCode
	}{
		{
			name:  "clearance bajo 5",
			in:    ScoreInput{Measurements: basePet, Profile: knownDog, Crate: crateOf(60, 56, 64, MaterialWire, true)},
			score: 80,
			codes: []DeductionCode{DeductClearanceBelowMin},
		},
		{
			name:  "clearance 5 a 7",
			in:    ScoreInput{Measurements: basePet, Profile: knownDog, Crate: crateOf(60, 56, 67, MaterialWire, true)},
			score: 90,
			codes: []DeductionCode{DeductClearanceBorderline},
		},
		{
			name:  "clearance suficiente",
			in:    ScoreInput{Measurements: basePet, Profile: knownDog, Crate: crateOf(60, 56, 67.5, MaterialWire, true)},
			score: 100,
			codes: []DeductionCode{},
		},
		{
			name:  "ancho no permite girar",
			in:    ScoreInput{Measurements: basePet, Profile: knownDog, Crate: crateOf(60, 49, 70, MaterialWire, true)},
			score: 75,
			codes: []DeductionCode{DeductWidthTurnAround},
		},
		{
			name:  "largo no permite acostarse",
			in:    ScoreInput{Measurements: basePet, Profile: knownDog, Crate: crateOf(52, 56, 70, MaterialWire, true)},
			score: 70,
			codes: []DeductionCode{DeductLengthLyingFlat},
		},
		{
			name: "gigante en plastico",
			in: ScoreInput{
				Measurements: basePet,
				Profile:      &BreedProfile{SpeciesName: "dog", WeightKg: 45},
				Flags:        OverrideFlags{GiantBreed: true, RequiresWoodenOrReinforced: true},
				Crate:        crateOf(60, 56, 70, MaterialPlastic, false),
			},
			score: 75,
			codes: []DeductionCode{DeductGiantPlastic},
		},
		{
			name: "ansiedad en pared fina",
			in: ScoreInput{
				Measurements: basePet,
				Profile:      knownDog,
				Flags:        OverrideFlags{HighAnxiety: true, RequiresSecondaryLatch: true},
				Crate:        crateOf(60, 56, 70, MaterialPlastic, false),
			},
			score: 90,
			codes: []DeductionCode{DeductAnxietyThinWall},
		},
		{
			name: "peso sobre la capacidad",
			in: ScoreInput{
				Measurements: basePet,
				Profile:      &BreedProfile{SpeciesName: "dog", WeightKg: 20},
				Crate: &ChosenCrate{
					Dimensions:  CrateDimensions{Length: 60, Width: 56, Height: 70},
					MaxWeightKg: ptr(16.0),
				},
			},
			score: 70,
			codes: []DeductionCode{DeductWeightOverRating},
		},
		{
			name:  "sin datos de raza y mascota grande",
			in:    ScoreInput{Measurements: PetMeasurements{Length: 95, StandingHeight: 70, Width: 30, SittingHeight: 65}},
			score: 95,
			codes: []DeductionCode{DeductMissingBreedData},
		},
		{
			name:  "sin datos de raza y mascota chica",
			in:    ScoreInput{Measurements: basePet, Profile: &BreedProfile{WeightKg: 10}},
			score: 100,
			codes: []DeductionCode{},
		},
		{
			name:  "destino estricto",
			in:    ScoreInput{Measurements: basePet, Profile: knownDog, StrictDestination: true},
			score: 90,
			codes: []DeductionCode{DeductStrictDestination},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.in)
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, tt.codes, codes(res.Deductions))
			assert.Equal(t, BandFor(tt.score), res.Band)
		})
	}
}

func TestScore_AxisDeviations(t *testing.T) {
	minimum := CalculateMinimum(basePet, DefaultClearanceCm)
	cmp := Compare(minimum, CrateDimensions{Length: 48, Width: 56, Height: 71})

	res := Score(ScoreInput{Measurements: basePet, Profile: knownDog, Comparison: &cmp})

	// largo -4.5 minorUnder (-15), ancho +6 recargo (0), alto +3.5 minorOver (-5)
	assert.Equal(t, 80, res.Score)
	assert.Equal(t, []Deduction{
		{Code: DeductAxisDeviation, Axis: AxisLength, Class: MinorUnder, Points: 15},
		{Code: DeductAxisDeviation, Axis: AxisHeight, Class: MinorOver, Points: 5},
	}, res.Deductions)
}

func TestScore_FloorsAtZero(t *testing.T) {
	minimum := CalculateMinimum(basePet, DefaultClearanceCm)
	cmp := Compare(minimum, CrateDimensions{Length: 30, Width: 30, Height: 40})

	res := Score(ScoreInput{
		Measurements:      basePet,
		Flags:             OverrideFlags{Brachycephalic: true, RequiresFourSidedVentilation: true},
		Comparison:        &cmp,
		Crate:             crateOf(30, 30, 40, MaterialPlastic, false),
		StrictDestination: true,
	})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, BandCritical, res.Band)
}

func TestBandFor_Boundaries(t *testing.T) {
	tests := map[int]ComplianceBand{
		100: BandPerfect,
		95:  BandPerfect,
		94:  BandGood,
		85:  BandGood,
		84:  BandAcceptable,
		75:  BandAcceptable,
		74:  BandBorderline,
		70:  BandBorderline,
		69:  BandHighRisk,
		60:  BandHighRisk,
		59:  BandCritical,
		0:   BandCritical,
	}
	for score, want := range tests {
		assert.Equal(t, want, BandFor(score), "score %d", score)
	}
}

func TestDeviationPoints(t *testing.T) {
	assert.Equal(t, 0, DeviationPoints(WithinTolerance))
	assert.Equal(t, 15, DeviationPoints(MinorUnder))
	assert.Equal(t, 5, DeviationPoints(MinorOver))
	assert.Equal(t, 30, DeviationPoints(MajorUnder))
	assert.Equal(t, 50, DeviationPoints(CriticalUnder))
	assert.Equal(t, 15, DeviationPoints(ExcessiveOver))
}

func ptr[T any](v T) *T { return &v }
