package crates

// DeviationClass es la banda de tolerancia de un eje del candidato.
// @Enum withinTolerance, minorUnder, minorOver, majorUnder, criticalUnder, excessiveOver
type DeviationClass string

const (
	WithinTolerance DeviationClass = "withinTolerance"
	MinorUnder      DeviationClass = "minorUnder"
	MinorOver       DeviationClass = "minorOver"
	MajorUnder      DeviationClass = "majorUnder"
	CriticalUnder   DeviationClass = "criticalUnder"
	ExcessiveOver   DeviationClass = "excessiveOver"
)

// Umbrales fijos en cm. No son configurables por llamada.
const (
	minorBandStartCm     = 3.0
	majorUnderStartCm    = 6.0
	criticalUnderAboveCm = 10.0
	minorOverUpToCm      = 5.0
	excessiveOverAboveCm = 15.0
)

// Severity ordena las clases para elegir el peor eje.
func (c DeviationClass) Severity() int {
	switch c {
	case MinorOver:
		return 1
	case ExcessiveOver:
		return 2
	case MinorUnder:
		return 3
	case MajorUnder:
		return 4
	case CriticalUnder:
		return 5
	default:
		return 0
	}
}

// Axis identifica un eje de la jaula.
type Axis string

const (
	AxisLength Axis = "length"
	AxisWidth  Axis = "width"
	AxisHeight Axis = "height"
)

// AxisComparison es el resultado de un eje.
type AxisComparison struct {
	Axis      Axis           `json:"axis"`
	Delta     float64        `json:"delta"`
	Class     DeviationClass `json:"class"`
	Surcharge bool           `json:"surcharge"` // (+5, +15]: no falla, pero genera recargo por peso de carga
}

// Comparison agrupa los tres ejes. Cada eje se evalúa por separado: un largo
// sobrado nunca compensa un ancho insuficiente (el ancho gobierna el giro de 360°).
type Comparison struct {
	Length AxisComparison
	Width  AxisComparison
	Height AxisComparison
}

// Compare clasifica el candidato contra el mínimo calculado.
func Compare(minimum, candidate CrateDimensions) Comparison {
	return Comparison{
		Length: compareAxis(AxisLength, minimum.Length, candidate.Length),
		Width:  compareAxis(AxisWidth, minimum.Width, candidate.Width),
		Height: compareAxis(AxisHeight, minimum.Height, candidate.Height),
	}
}

func compareAxis(axis Axis, minimum, candidate float64) AxisComparison {
	delta := RoundCm(candidate - minimum)
	class, surcharge := ClassifyDelta(delta)
	return AxisComparison{Axis: axis, Delta: delta, Class: class, Surcharge: surcharge}
}

// ClassifyDelta clasifica delta = candidato - mínimo.
// Las bandas empiezan en centímetros enteros: un faltante de 2.5 cm sigue
// dentro de tolerancia, uno de 5.5 cm sigue siendo minorUnder.
func ClassifyDelta(delta float64) (DeviationClass, bool) {
	if delta < 0 {
		under := -delta
		switch {
		case under > criticalUnderAboveCm:
			return CriticalUnder, false
		case under >= majorUnderStartCm:
			return MajorUnder, false
		case under >= minorBandStartCm:
			return MinorUnder, false
		default:
			return WithinTolerance, false
		}
	}

	switch {
	case delta > excessiveOverAboveCm:
		return ExcessiveOver, false
	case delta > minorOverUpToCm:
		return WithinTolerance, true
	case delta >= minorBandStartCm:
		return MinorOver, false
	default:
		return WithinTolerance, false
	}
}

// Axes devuelve los ejes en orden fijo.
func (c Comparison) Axes() []AxisComparison {
	return []AxisComparison{c.Length, c.Width, c.Height}
}

// Worst devuelve el eje más severo (empate: el primero en orden length, width, height).
func (c Comparison) Worst() AxisComparison {
	worst := c.Length
	for _, a := range c.Axes()[1:] {
		if a.Class.Severity() > worst.Class.Severity() {
			worst = a
		}
	}
	return worst
}

func (c Comparison) Deviations() AxisDeviations {
	return AxisDeviations{
		Length: c.Length.Class,
		Width:  c.Width.Class,
		Height: c.Height.Class,
	}
}

// SurchargeAxes lista los ejes marcados con recargo informativo.
func (c Comparison) SurchargeAxes() []string {
	var out []string
	for _, a := range c.Axes() {
		if a.Surcharge {
			out = append(out, string(a.Axis))
		}
	}
	return out
}
