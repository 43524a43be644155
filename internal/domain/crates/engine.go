package crates

// Engine es el pipeline completo. No tiene estado mutable propio: el catálogo
// llega inyectado y es inmutable, así que se puede usar desde cualquier goroutine.
type Engine struct {
	catalog       CatalogSource
	strict        destinationSet
	plasticBanned destinationSet
	longHaul      destinationSet
}

func NewEngine(catalog CatalogSource, rules Rules) *Engine {
	return &Engine{
		catalog:       catalog,
		strict:        newDestinationSet(rules.StrictDestinations),
		plasticBanned: newDestinationSet(rules.PlasticBannedDestinations),
		longHaul:      newDestinationSet(rules.LongHaulDestinations),
	}
}

// AssessRaw normaliza y evalúa. El único error posible es *ValidationError.
func (e *Engine) AssessRaw(raw RawRequest) (Assessment, error) {
	req, err := NormalizeRequest(raw)
	if err != nil {
		return Assessment{}, err
	}
	return e.Assess(req), nil
}

// Assess asume un request ya normalizado.
//
// medidas -> mínimo -> (comparación si hay candidato) -> overrides -> matcher -> score
func (e *Engine) Assess(req AssessmentRequest) Assessment {
	m := req.Measurements

	base := CalculateMinimum(m, DefaultClearanceCm)

	var cmp *Comparison
	if req.Candidate != nil {
		c := Compare(base, req.Candidate.Dimensions)
		cmp = &c
	}

	required, flags := ApplyOverrides(m, base, req.BreedProfile)
	flags.PlasticBannedDestination = e.plasticBanned.contains(req.DestinationCountry)

	var catalog *Catalog
	if e.catalog != nil {
		catalog = e.catalog.Current()
	}
	match := Match(catalog, required, weightOf(req.BreedProfile), flags)

	strict := e.strict.contains(req.DestinationCountry)
	score := Score(ScoreInput{
		Measurements:      m,
		Profile:           req.BreedProfile,
		Flags:             flags,
		Comparison:        cmp,
		Crate:             chosenCrate(req.Candidate, match.Model),
		StrictDestination: strict,
	})

	out := Assessment{
		MinimumDimensions:   required,
		ClearanceCm:         ClearanceFor(flags),
		SafetyScore:         score.Score,
		ComplianceBand:      score.Band,
		Deductions:          score.Deductions,
		OverrideFlags:       flags,
		RecommendedModel:    match.Model,
		IsCustomBuildNeeded: match.IsCustomBuildNeeded,
	}
	if cmp != nil {
		baseline := base
		d := cmp.Deviations()
		worst := cmp.Worst()
		out.ComparisonBaseline = &baseline
		out.Deviations = &d
		out.WorstAxis = &worst
		out.SurchargeAxes = cmp.SurchargeAxes()
	}

	out.Advisories, out.TipCategory = Advise(AdviceInput{
		Flags:               flags,
		Profile:             req.BreedProfile,
		Score:               score.Score,
		SurchargeAxes:       out.SurchargeAxes,
		IsCustomBuildNeeded: match.IsCustomBuildNeeded,
		StrictDestination:   strict,
		LongHaulDestination: e.longHaul.contains(req.DestinationCountry),
	})

	return out
}

func chosenCrate(candidate *CandidateCrate, model *CrateCatalogEntry) *ChosenCrate {
	switch {
	case candidate != nil:
		return &ChosenCrate{
			Dimensions:           candidate.Dimensions,
			MaterialClass:        candidate.MaterialClass,
			FourSidedVentilation: candidate.FourSidedVentilation,
			MaxWeightKg:          candidate.MaxWeightKg,
		}
	case model != nil:
		maxWeight := model.MaxWeightKg
		return &ChosenCrate{
			Dimensions:           model.InteriorDimensions,
			MaterialClass:        model.MaterialClass,
			FourSidedVentilation: model.HasEnhancedVentilation,
			MaxWeightKg:          &maxWeight,
		}
	default:
		return nil
	}
}
