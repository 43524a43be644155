package crates

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Techos de entrada. Por encima, el calculador puede desbordar a Inf.
const (
	MaxMeasurementCm = 1000.0
	MaxInputWeightKg = 1000.0
)

// RawMeasurements son los valores tal como llegan del caller (JSON, formulario, CLI).
// nil = campo ausente.
type RawMeasurements struct {
	Length         any `json:"length"`
	StandingHeight any `json:"standingHeight"`
	Width          any `json:"width"`
	SittingHeight  any `json:"sittingHeight"`
}

type RawBreedProfile struct {
	SpeciesName      string `json:"speciesName"`
	BreedName        string `json:"breedName"`
	WeightKg         any    `json:"weightKg"`
	IsBrachycephalic bool   `json:"isBrachycephalic"`
	IsHighAnxiety    bool   `json:"isHighAnxiety"`
	IsSenior         bool   `json:"isSenior"`
}

type RawCandidate struct {
	Length               any    `json:"length"`
	Width                any    `json:"width"`
	Height               any    `json:"height"`
	MaterialClass        string `json:"materialClass"`
	FourSidedVentilation bool   `json:"fourSidedVentilation"`
	MaxWeightKg          any    `json:"maxWeightKg"`
}

type RawRequest struct {
	Measurements        RawMeasurements  `json:"measurements"`
	BreedProfile        *RawBreedProfile `json:"breedProfile,omitempty"`
	DestinationCountry  string           `json:"destinationCountry,omitempty"`
	CandidateDimensions *RawCandidate    `json:"candidateDimensions,omitempty"`
}

// Normalize valida un set de medidas. Un set está completo solo si las cuatro
// medidas existen y son > 0; nunca se sustituye un faltante por cero.
func Normalize(raw RawMeasurements) (PetMeasurements, error) {
	verr := &ValidationError{}
	m := PetMeasurements{
		Length:         requirePositive(verr, "length", MaxMeasurementCm, raw.Length),
		StandingHeight: requirePositive(verr, "standingHeight", MaxMeasurementCm, raw.StandingHeight),
		Width:          requirePositive(verr, "width", MaxMeasurementCm, raw.Width),
		SittingHeight:  requirePositive(verr, "sittingHeight", MaxMeasurementCm, raw.SittingHeight),
	}
	if err := verr.orNil(); err != nil {
		return PetMeasurements{}, err
	}
	return m, nil
}

// NormalizeRequest valida el request completo. Es el único punto del motor que
// rechaza input; los componentes siguientes asumen datos válidos.
func NormalizeRequest(raw RawRequest) (AssessmentRequest, error) {
	verr := &ValidationError{}

	m := PetMeasurements{
		Length:         requirePositive(verr, "length", MaxMeasurementCm, raw.Measurements.Length),
		StandingHeight: requirePositive(verr, "standingHeight", MaxMeasurementCm, raw.Measurements.StandingHeight),
		Width:          requirePositive(verr, "width", MaxMeasurementCm, raw.Measurements.Width),
		SittingHeight:  requirePositive(verr, "sittingHeight", MaxMeasurementCm, raw.Measurements.SittingHeight),
	}

	req := AssessmentRequest{
		Measurements:       m,
		DestinationCountry: strings.TrimSpace(raw.DestinationCountry),
	}

	if bp := raw.BreedProfile; bp != nil {
		req.BreedProfile = &BreedProfile{
			SpeciesName:      strings.TrimSpace(bp.SpeciesName),
			BreedName:        strings.TrimSpace(bp.BreedName),
			WeightKg:         optionalNonNegative(verr, "breedProfile.weightKg", MaxInputWeightKg, bp.WeightKg),
			IsBrachycephalic: bp.IsBrachycephalic,
			IsHighAnxiety:    bp.IsHighAnxiety,
			IsSenior:         bp.IsSenior,
		}
	}

	if c := raw.CandidateDimensions; c != nil {
		cand := &CandidateCrate{
			Dimensions: CrateDimensions{
				Length: requirePositive(verr, "candidateDimensions.length", MaxMeasurementCm, c.Length),
				Width:  requirePositive(verr, "candidateDimensions.width", MaxMeasurementCm, c.Width),
				Height: requirePositive(verr, "candidateDimensions.height", MaxMeasurementCm, c.Height),
			},
			FourSidedVentilation: c.FourSidedVentilation,
		}
		if mat := strings.ToLower(strings.TrimSpace(c.MaterialClass)); mat != "" {
			cand.MaterialClass = MaterialClass(mat)
			if !cand.MaterialClass.Valid() {
				verr.add("candidateDimensions.materialClass", ProblemUnknown)
			}
		}
		if c.MaxWeightKg != nil {
			w := optionalNonNegative(verr, "candidateDimensions.maxWeightKg", MaxInputWeightKg, c.MaxWeightKg)
			cand.MaxWeightKg = &w
		}
		req.Candidate = cand
	}

	if err := verr.orNil(); err != nil {
		return AssessmentRequest{}, err
	}
	return req, nil
}

func requirePositive(verr *ValidationError, field string, limit float64, v any) float64 {
	n, problem := toNumber(v)
	if problem != "" {
		verr.add(field, problem)
		return 0
	}
	if n <= 0 {
		verr.add(field, ProblemNonPositive)
		return 0
	}
	if n > limit {
		verr.add(field, ProblemOutOfRange)
		return 0
	}
	return n
}

// optionalNonNegative: ausente = 0 (desconocido).
func optionalNonNegative(verr *ValidationError, field string, limit float64, v any) float64 {
	n, problem := toNumber(v)
	if problem == ProblemMissing {
		return 0
	}
	if problem != "" {
		verr.add(field, problem)
		return 0
	}
	if n < 0 {
		verr.add(field, ProblemNegative)
		return 0
	}
	if n > limit {
		verr.add(field, ProblemOutOfRange)
		return 0
	}
	return n
}

func toNumber(v any) (float64, FieldProblem) {
	var n float64
	switch t := v.(type) {
	case nil:
		return 0, ProblemMissing
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int32:
		n = float64(t)
	case int64:
		n = float64(t)
	case uint:
		n = float64(t)
	case uint32:
		n = float64(t)
	case uint64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, ProblemNotNumeric
		}
		n = f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, ProblemMissing
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ProblemNotNumeric
		}
		n = f
	default:
		return 0, ProblemNotNumeric
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, ProblemNotNumeric
	}
	return n, ""
}
