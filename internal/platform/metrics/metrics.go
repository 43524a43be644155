package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa las métricas Prometheus del servicio de jaulas.
// Se registran en el Registerer recibido, no en el global.
type Metrics struct {
	Assessments        *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	AssessLatency      prometheus.Histogram
	CatalogReloads     *prometheus.CounterVec
	CatalogModels      prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Assessments: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crates_assessments_total",
			Help: "Total crate assessments by compliance band and custom build outcome",
		}, []string{"band", "custom_build"}),

		ValidationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "crates_validation_failures_total",
			Help: "Total assessment requests rejected by input validation",
		}),

		AssessLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "crates_assess_duration_seconds",
			Help:    "Duration of a crate assessment, narrative excluded",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		CatalogReloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crates_catalog_reloads_total",
			Help: "Catalog reload attempts by result",
		}, []string{"result"}),

		CatalogModels: f.NewGauge(prometheus.GaugeOpts{
			Name: "crates_catalog_models",
			Help: "Number of crate models in the active catalog",
		}),
	}
}

// ObserveAssessment registra un resultado del motor.
func (m *Metrics) ObserveAssessment(band string, customBuild bool, d time.Duration) {
	if m == nil {
		return
	}
	m.Assessments.WithLabelValues(band, strconv.FormatBool(customBuild)).Inc()
	m.AssessLatency.Observe(d.Seconds())
}

func (m *Metrics) IncValidationFailures() {
	if m != nil {
		m.ValidationFailures.Inc()
	}
}

// ObserveCatalogReload registra un reload; size solo aplica si ok.
func (m *Metrics) ObserveCatalogReload(ok bool, size int) {
	if m == nil {
		return
	}
	if !ok {
		m.CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	m.CatalogReloads.WithLabelValues("ok").Inc()
	m.CatalogModels.Set(float64(size))
}
