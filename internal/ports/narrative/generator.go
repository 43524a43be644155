package narrative

import "context"

// Facts es lo único que recibe el narrador: hechos ya decididos por el motor.
// El narrador redacta; nunca calcula ni corrige el score.
type Facts struct {
	AssessmentID        string          `json:"assessment_id"`
	SpeciesName         string          `json:"species_name,omitempty"`
	BreedName           string          `json:"breed_name,omitempty"`
	DestinationCountry  string          `json:"destination_country,omitempty"`
	SafetyScore         int             `json:"safety_score"`
	ComplianceBand      string          `json:"compliance_band"`
	Flags               map[string]bool `json:"flags"`
	RecommendedModel    string          `json:"recommended_model,omitempty"`
	IsCustomBuildNeeded bool            `json:"is_custom_build_needed"`
	Advisories          []string        `json:"advisories"`
	TipCategory         string          `json:"tip_category"`
}

// Narrative son los textos libres que acompañan al veredicto.
type Narrative struct {
	ComfortAnalysis string `json:"comfort_analysis"`
	AirlineWarning  string `json:"airline_warning"`
	ProTip          string `json:"pro_tip"`
}

type Generator interface {
	Narrate(ctx context.Context, in Facts) (Narrative, error)
}
