package crates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-crate-compliance/internal/platform/logger"
	"pet-crate-compliance/internal/ports/narrative"

	"github.com/google/uuid"
)

// Recorder es lo que el service necesita de las métricas.
// *metrics.Metrics lo implementa.
type Recorder interface {
	ObserveAssessment(band string, customBuild bool, d time.Duration)
	IncValidationFailures()
	ObserveCatalogReload(ok bool, size int)
}

type ServiceOptions struct {
	Repository CatalogRepository
	Rules      Rules
	Logger     logger.Logger       // nil = nop
	Metrics    Recorder            // opcional
	Narrator   narrative.Generator // opcional
}

// Report es lo que devuelve la API: la evaluación más el texto opcional del narrador.
type Report struct {
	Assessment
	Narrative *narrative.Narrative `json:"narrative,omitempty"`
}

type Service struct {
	repo     CatalogRepository
	store    *CatalogStore
	engine   *Engine
	log      logger.Logger
	metrics  Recorder
	narrator narrative.Generator
	now      func() time.Time
	newID    func() string
}

func NewService(opts ServiceOptions) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	store := NewCatalogStore(nil)
	return &Service{
		repo:     opts.Repository,
		store:    store,
		engine:   NewEngine(store, opts.Rules),
		log:      log.With(map[string]any{"module": "crates"}),
		metrics:  opts.Metrics,
		narrator: opts.Narrator,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Reload lee el catálogo del repositorio y lo instala de forma atómica.
// Si falla, el catálogo anterior sigue vigente.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, ErrCatalogNotLoaded
	}

	entries, err := s.repo.Load(ctx)
	if err != nil {
		s.reloadFailed(err)
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	next, err := NewCatalog(entries)
	if err != nil {
		s.reloadFailed(err)
		return 0, err
	}

	s.store.Swap(next)
	s.recordReload(true, next.Len())
	s.log.Info("crate catalog loaded", map[string]any{"models": next.Len()})

	return next.Len(), nil
}

func (s *Service) reloadFailed(err error) {
	s.recordReload(false, 0)
	s.log.Error("crate catalog reload failed", map[string]any{"error": err})
}

func (s *Service) recordReload(ok bool, size int) {
	if s.metrics != nil {
		s.metrics.ObserveCatalogReload(ok, size)
	}
}

// Assess valida y evalúa un request. Solo devuelve *ValidationError.
// Con narrate=true pide texto al narrador; si falla se loguea y el reporte sale sin texto.
func (s *Service) Assess(ctx context.Context, raw RawRequest, narrate bool) (Report, error) {
	req, err := NormalizeRequest(raw)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncValidationFailures()
		}
		s.log.Debug("assessment rejected", map[string]any{"error": err})
		return Report{}, err
	}

	start := s.now()
	a := s.engine.Assess(req)
	a.ID = s.newID()
	elapsed := s.now().Sub(start)

	if s.metrics != nil {
		s.metrics.ObserveAssessment(string(a.ComplianceBand), a.IsCustomBuildNeeded, elapsed)
	}

	fields := map[string]any{
		"assessment_id": a.ID,
		"score":         a.SafetyScore,
		"band":          a.ComplianceBand,
		"custom_build":  a.IsCustomBuildNeeded,
	}
	if a.RecommendedModel != nil {
		fields["model_id"] = a.RecommendedModel.ModelID
	}
	s.log.Info("crate assessed", fields)

	out := Report{Assessment: a}
	if narrate && s.narrator != nil {
		n, err := s.narrator.Narrate(ctx, factsFor(a, req))
		if err != nil {
			s.log.Warn("narrative unavailable", map[string]any{"assessment_id": a.ID, "error": err})
		} else {
			out.Narrative = &n
		}
	}

	return out, nil
}

// Catalog devuelve los modelos vigentes en orden de inserción.
func (s *Service) Catalog() ([]CrateCatalogEntry, error) {
	c := s.store.Current()
	if c == nil {
		return nil, ErrCatalogNotLoaded
	}
	return c.Entries(), nil
}

func (s *Service) Model(modelID string) (CrateCatalogEntry, error) {
	c := s.store.Current()
	if c == nil {
		return CrateCatalogEntry{}, ErrCatalogNotLoaded
	}
	return c.Get(modelID)
}

func factsFor(a Assessment, req AssessmentRequest) narrative.Facts {
	f := narrative.Facts{
		AssessmentID:        a.ID,
		DestinationCountry:  CountryCode(req.DestinationCountry),
		SafetyScore:         a.SafetyScore,
		ComplianceBand:      string(a.ComplianceBand),
		IsCustomBuildNeeded: a.IsCustomBuildNeeded,
		TipCategory:         string(a.TipCategory),
		Flags: map[string]bool{
			"brachycephalic":                  a.OverrideFlags.Brachycephalic,
			"giant_breed":                     a.OverrideFlags.GiantBreed,
			"high_anxiety":                    a.OverrideFlags.HighAnxiety,
			"senior":                          a.OverrideFlags.Senior,
			"requires_four_sided_ventilation": a.OverrideFlags.RequiresFourSidedVentilation,
			"temperature_restricted":          a.OverrideFlags.TemperatureRestricted,
			"requires_wooden_or_reinforced":   a.OverrideFlags.RequiresWoodenOrReinforced,
			"requires_secondary_latch":        a.OverrideFlags.RequiresSecondaryLatch,
			"plastic_banned_destination":      a.OverrideFlags.PlasticBannedDestination,
		},
		Advisories: make([]string, 0, len(a.Advisories)),
	}
	if req.BreedProfile != nil {
		f.SpeciesName = req.BreedProfile.SpeciesName
		f.BreedName = req.BreedProfile.BreedName
	}
	if a.RecommendedModel != nil {
		f.RecommendedModel = a.RecommendedModel.ModelID
	}
	for _, adv := range a.Advisories {
		f.Advisories = append(f.Advisories, string(adv))
	}
	return f
}

// IsValidation es un atajo para handlers y CLI.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
