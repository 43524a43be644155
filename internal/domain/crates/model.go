package crates

// PetMeasurements son las cuatro medidas IATA de la mascota, en centímetros.
//
//	A = Length          nariz a base de la cola (de pie)
//	B = StandingHeight  piso a punta de cabeza/orejas (de pie)
//	C = Width           punto más ancho (hombros)
//	D = SittingHeight   piso a punta de cabeza (sentado)
type PetMeasurements struct {
	Length         float64 `json:"length"`
	StandingHeight float64 `json:"standingHeight"`
	Width          float64 `json:"width"`
	SittingHeight  float64 `json:"sittingHeight"`
}

// TallestPoint devuelve la mayor de las dos alturas medidas.
func (m PetMeasurements) TallestPoint() float64 {
	if m.SittingHeight > m.StandingHeight {
		return m.SittingHeight
	}
	return m.StandingHeight
}

// BreedProfile es opcional y viene de datos externos (perfil de la mascota).
type BreedProfile struct {
	SpeciesName      string  `json:"speciesName"`
	BreedName        string  `json:"breedName,omitempty"`
	WeightKg         float64 `json:"weightKg"`
	IsBrachycephalic bool    `json:"isBrachycephalic,omitempty"`
	IsHighAnxiety    bool    `json:"isHighAnxiety,omitempty"`
	IsSenior         bool    `json:"isSenior,omitempty"`
}

// IsGiantBreed se deriva del peso, no se declara.
func (p BreedProfile) IsGiantBreed() bool {
	return p.WeightKg >= GiantBreedWeightKg
}

// CrateDimensions en cm. Se usa tanto para el mínimo requerido como para un candidato.
type CrateDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dominates: true si d es >= other en los tres ejes.
func (d CrateDimensions) Dominates(other CrateDimensions) bool {
	return d.Length >= other.Length && d.Width >= other.Width && d.Height >= other.Height
}

// Volume interior en cm³.
func (d CrateDimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// MaterialClass del cuerpo de la jaula.
// @Enum plastic, wire, wood, aluminum
type MaterialClass string

const (
	MaterialPlastic  MaterialClass = "plastic"
	MaterialWire     MaterialClass = "wire"
	MaterialWood     MaterialClass = "wood"
	MaterialAluminum MaterialClass = "aluminum"
)

func (m MaterialClass) Valid() bool {
	switch m {
	case MaterialPlastic, MaterialWire, MaterialWood, MaterialAluminum:
		return true
	default:
		return false
	}
}

// IsThinWall: paredes que un perro ansioso puede romper (clips plásticos).
func (m MaterialClass) IsThinWall() bool {
	return m == MaterialPlastic
}

// CrateCatalogEntry es un modelo en stock. Datos de referencia, inmutables.
type CrateCatalogEntry struct {
	ModelID                string          `json:"modelId" yaml:"model_id"`
	Name                   string          `json:"name,omitempty" yaml:"name"`
	InteriorDimensions     CrateDimensions `json:"interiorDimensions" yaml:"interior"`
	MaxWeightKg            float64         `json:"maxWeightKg" yaml:"max_weight_kg"`
	MaterialClass          MaterialClass   `json:"materialClass" yaml:"material"`
	IsGiantCapable         bool            `json:"isGiantCapable" yaml:"giant_capable"`
	HasEnhancedVentilation bool            `json:"hasEnhancedVentilation" yaml:"enhanced_ventilation"`
}

// CandidateCrate es la jaula que declara el cliente.
// Las dimensiones son obligatorias; el resto es opcional (nil = desconocido).
type CandidateCrate struct {
	Dimensions           CrateDimensions
	MaterialClass        MaterialClass
	FourSidedVentilation bool
	MaxWeightKg          *float64
}

// OverrideFlags es el registro fijo de overrides por raza/especie.
// No es una lista de tags: el orden de aplicación está en ApplyOverrides.
type OverrideFlags struct {
	Brachycephalic bool `json:"brachycephalic"`
	GiantBreed     bool `json:"giantBreed"`
	HighAnxiety    bool `json:"highAnxiety"`
	Senior         bool `json:"senior"`

	RequiresFourSidedVentilation bool `json:"requiresFourSidedVentilation"`
	TemperatureRestricted        bool `json:"temperatureRestricted"`
	RequiresWoodenOrReinforced   bool `json:"requiresWoodenOrReinforced"`
	RequiresSecondaryLatch       bool `json:"requiresSecondaryLatch"`

	// Destino que no acepta jaulas plásticas (p.ej. Australia).
	PlasticBannedDestination bool `json:"plasticBannedDestination"`
}

// ExcludesPlastic indica si el matcher debe descartar modelos plásticos.
func (f OverrideFlags) ExcludesPlastic() bool {
	return f.RequiresWoodenOrReinforced || f.PlasticBannedDestination
}

// AssessmentRequest ya normalizado (ver NormalizeRequest).
type AssessmentRequest struct {
	Measurements       PetMeasurements
	BreedProfile       *BreedProfile
	DestinationCountry string
	Candidate          *CandidateCrate
}

// AxisDeviations es la clasificación por eje del candidato.
type AxisDeviations struct {
	Length DeviationClass `json:"length"`
	Width  DeviationClass `json:"width"`
	Height DeviationClass `json:"height"`
}

// Assessment es el resultado estructurado del motor.
type Assessment struct {
	ID                string          `json:"id,omitempty"`
	MinimumDimensions CrateDimensions `json:"minimumDimensions"`
	ClearanceCm       float64         `json:"clearanceCm"`

	// Solo con candidato. Los desvíos se miden contra ComparisonBaseline
	// (clearance estándar), no contra MinimumDimensions: el alto extra de los
	// overrides lo controla el scorer por separado.
	ComparisonBaseline *CrateDimensions `json:"comparisonBaseline,omitempty"`
	Deviations         *AxisDeviations  `json:"deviations,omitempty"`
	WorstAxis          *AxisComparison  `json:"worstAxis,omitempty"`
	SurchargeAxes      []string         `json:"surchargeAxes,omitempty"`

	SafetyScore         int                `json:"safetyScore"`
	ComplianceBand      ComplianceBand     `json:"complianceBand"`
	Deductions          []Deduction        `json:"deductions"`
	OverrideFlags       OverrideFlags      `json:"overrideFlags"`
	RecommendedModel    *CrateCatalogEntry `json:"recommendedModel,omitempty"`
	IsCustomBuildNeeded bool               `json:"isCustomBuildNeeded"`
	Advisories          []Advisory         `json:"advisories"`
	TipCategory         TipCategory        `json:"tipCategory"`
}
