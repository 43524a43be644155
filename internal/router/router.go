package router

import (
	"context"
	"net/http"

	_ "pet-crate-compliance/docs"
	mem "pet-crate-compliance/internal/adapters/storage/memory"
	"pet-crate-compliance/internal/domain/crates"
	"pet-crate-compliance/internal/middleware"
	"pet-crate-compliance/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, se arma uno con el catálogo semilla in-memory (modo dev).
	Crates *crates.Service

	Logger logger.Logger // nil = nop

	// Opcional: si viene, expone /metrics.
	Gatherer prometheus.Gatherer
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := opts.Crates
	if svc == nil {
		svc = crates.NewService(crates.ServiceOptions{
			Repository: mem.NewSeedCatalogRepo(),
			Rules:      crates.DefaultRules(),
			Logger:     log,
		})
		if _, err := svc.Reload(context.Background()); err != nil {
			log.Error("seed catalog rejected", map[string]any{"error": err})
		}
	}

	crates.RegisterRoutes(r, svc)

	return r
}
