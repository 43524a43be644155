package crates

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AcceptsMixedNumericInputs(t *testing.T) {
	m, err := Normalize(RawMeasurements{
		Length:         json.Number("50"),
		StandingHeight: "60",
		Width:          25,
		SittingHeight:  55.0,
	})
	require.NoError(t, err)
	assert.Equal(t, PetMeasurements{Length: 50, StandingHeight: 60, Width: 25, SittingHeight: 55}, m)
}

func TestNormalize_ReportsEveryBadField(t *testing.T) {
	_, err := Normalize(RawMeasurements{
		Length:         "abc",
		StandingHeight: 0,
		Width:          -3,
	})
	require.Error(t, err)

	verr, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []FieldError{
		{Field: "length", Problem: ProblemNotNumeric},
		{Field: "standingHeight", Problem: ProblemNonPositive},
		{Field: "width", Problem: ProblemNonPositive},
		{Field: "sittingHeight", Problem: ProblemMissing},
	}, verr.Fields)
}

func TestNormalize_NeverSubstitutesZero(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		problem FieldProblem
	}{
		{"nil", nil, ProblemMissing},
		{"empty string", "  ", ProblemMissing},
		{"NaN", math.NaN(), ProblemNotNumeric},
		{"Inf", math.Inf(1), ProblemNotNumeric},
		{"bool", true, ProblemNotNumeric},
		{"bad json number", json.Number("1e"), ProblemNotNumeric},
		{"zero", 0, ProblemNonPositive},
		{"negative", "-1.5", ProblemNonPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(RawMeasurements{
				Length:         50,
				StandingHeight: 60,
				Width:          25,
				SittingHeight:  tt.value,
			})
			verr, ok := IsValidation(err)
			require.True(t, ok)
			assert.True(t, verr.Has("sittingHeight", tt.problem), "got %+v", verr.Fields)
		})
	}
}

func TestNormalizeRequest_OptionalParts(t *testing.T) {
	req, err := NormalizeRequest(RawRequest{
		Measurements:       RawMeasurements{Length: 50, StandingHeight: 60, Width: 25, SittingHeight: 55},
		BreedProfile:       &RawBreedProfile{SpeciesName: " dog ", BreedName: "Pug", WeightKg: "8"},
		DestinationCountry: " UK ",
		CandidateDimensions: &RawCandidate{
			Length: 55, Width: 56, Height: 68,
			MaterialClass: "Plastic",
			MaxWeightKg:   json.Number("11"),
		},
	})
	require.NoError(t, err)

	require.NotNil(t, req.BreedProfile)
	assert.Equal(t, "dog", req.BreedProfile.SpeciesName)
	assert.Equal(t, 8.0, req.BreedProfile.WeightKg)
	assert.Equal(t, "UK", req.DestinationCountry)

	require.NotNil(t, req.Candidate)
	assert.Equal(t, CrateDimensions{Length: 55, Width: 56, Height: 68}, req.Candidate.Dimensions)
	assert.Equal(t, MaterialPlastic, req.Candidate.MaterialClass)
	require.NotNil(t, req.Candidate.MaxWeightKg)
	assert.Equal(t, 11.0, *req.Candidate.MaxWeightKg)
}

func TestNormalizeRequest_MissingWeightIsUnknown(t *testing.T) {
	req, err := NormalizeRequest(RawRequest{
		Measurements:        RawMeasurements{Length: 50, StandingHeight: 60, Width: 25, SittingHeight: 55},
		BreedProfile:        &RawBreedProfile{SpeciesName: "cat"},
		CandidateDimensions: &RawCandidate{Length: 55, Width: 56, Height: 68},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, req.BreedProfile.WeightKg)
	assert.Nil(t, req.Candidate.MaxWeightKg)
	assert.Equal(t, MaterialClass(""), req.Candidate.MaterialClass)
}

func TestNormalizeRequest_RejectsBadOptionalFields(t *testing.T) {
	_, err := NormalizeRequest(RawRequest{
		Measurements: RawMeasurements{Length: 50, StandingHeight: 60, Width: 25, SittingHeight: 55},
		BreedProfile: &RawBreedProfile{WeightKg: -2},
		CandidateDimensions: &RawCandidate{
			Length: 55, Width: 0, Height: "x",
			MaterialClass: "cardboard",
			MaxWeightKg:   -1,
		},
	})
	verr, ok := IsValidation(err)
	require.True(t, ok)

	assert.True(t, verr.Has("breedProfile.weightKg", ProblemNegative))
	assert.True(t, verr.Has("candidateDimensions.width", ProblemNonPositive))
	assert.True(t, verr.Has("candidateDimensions.height", ProblemNotNumeric))
	assert.True(t, verr.Has("candidateDimensions.materialClass", ProblemUnknown))
	assert.True(t, verr.Has("candidateDimensions.maxWeightKg", ProblemNegative))
	assert.False(t, verr.Has("candidateDimensions.length", ProblemNonPositive))
}

func TestValidationError_Message(t *testing.T) {
	_, err := Normalize(RawMeasurements{Length: 50, StandingHeight: 60, Width: 25})
	require.Error(t, err)
	assert.Equal(t, "validation failed: sittingHeight: missing", err.Error())
}

func TestNormalizeRequest_RejectsHugeValues(t *testing.T) {
	_, err := NormalizeRequest(RawRequest{
		Measurements:        RawMeasurements{Length: 50, StandingHeight: 60, Width: 1e308, SittingHeight: 55},
		BreedProfile:        &RawBreedProfile{SpeciesName: "dog", WeightKg: "1e9"},
		CandidateDimensions: &RawCandidate{Length: 55, Width: 56, Height: MaxMeasurementCm + 0.1},
	})
	verr, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []FieldError{
		{Field: "width", Problem: ProblemOutOfRange},
		{Field: "breedProfile.weightKg", Problem: ProblemOutOfRange},
		{Field: "candidateDimensions.height", Problem: ProblemOutOfRange},
	}, verr.Fields)
}

func TestNormalize_AcceptsCeiling(t *testing.T) {
	_, err := Normalize(RawMeasurements{
		Length:         MaxMeasurementCm,
		StandingHeight: MaxMeasurementCm,
		Width:          MaxMeasurementCm,
		SittingHeight:  MaxMeasurementCm,
	})
	assert.NoError(t, err)
}
