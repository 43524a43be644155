package crates

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// DefaultClearanceCm es el punto medio del rango estándar de 5–10 cm.
	// Define pass/fail de mascotas en el límite: no reemplazar por un literal.
	DefaultClearanceCm = 7.5

	// BrachycephalicClearanceCm reemplaza el clearance por defecto.
	BrachycephalicClearanceCm = 10.0

	// SeniorExtraHeightCm se suma encima del clearance ya ajustado por raza.
	SeniorExtraHeightCm = 5.0

	GiantBreedWeightKg = 40.0
)

// CalculateMinimum aplica la fórmula IATA:
//
//	legLength = B - D
//	length    = A + legLength/2   (el término nunca resta)
//	width     = C * 2
//	height    = max(B, D) + clearance
//
// Las salidas se redondean a 0.1 cm (half-up); la aritmética intermedia no.
func CalculateMinimum(m PetMeasurements, clearance float64) CrateDimensions {
	return roundDimensions(rawMinimum(m, clearance))
}

func rawMinimum(m PetMeasurements, clearance float64) CrateDimensions {
	legLength := m.StandingHeight - m.SittingHeight
	return CrateDimensions{
		Length: m.Length + math.Max(0, legLength/2),
		Width:  m.Width * 2,
		Height: m.TallestPoint() + clearance,
	}
}

func roundDimensions(d CrateDimensions) CrateDimensions {
	return CrateDimensions{
		Length: RoundCm(d.Length),
		Width:  RoundCm(d.Width),
		Height: RoundCm(d.Height),
	}
}

// RoundCm redondea a un decimal, half-up. Es idempotente.
// decimal.Round redondea half away from zero, que para medidas (>= 0) es half-up.
// NaN e Inf se devuelven tal cual.
func RoundCm(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
