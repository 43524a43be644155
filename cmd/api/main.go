package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-crate-compliance/internal/adapters/narrative/httpnarrator"
	"pet-crate-compliance/internal/adapters/storage/yamlfile"
	"pet-crate-compliance/internal/bootstrap"
	"pet-crate-compliance/internal/domain/crates"
	"pet-crate-compliance/internal/platform/config"
	"pet-crate-compliance/internal/platform/metrics"
	"pet-crate-compliance/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// @title Pet Crate Compliance API
// @version 1.0
// @description Dimensionamiento y cumplimiento IATA de jaulas para transporte aéreo de mascotas.
// @BasePath /
func main() {
	configFile := flag.String("config", os.Getenv("CRATES_CONFIG"), "ruta a config YAML (opcional)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := bootstrap.Logger(cfg)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	repo, closeRepo, err := bootstrap.CatalogRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	opts := crates.ServiceOptions{
		Repository: repo,
		Rules:      bootstrap.Rules(cfg),
		Logger:     log,
		Metrics:    m,
	}
	if cfg.Narrator.Enabled() {
		n, err := httpnarrator.NewClient(httpnarrator.Config{
			BaseURL: cfg.Narrator.BaseURL,
			APIKey:  cfg.Narrator.APIKey,
			Timeout: cfg.Narrator.Timeout,
		})
		if err != nil {
			return fmt.Errorf("narrator: %w", err)
		}
		opts.Narrator = n
	}

	svc := crates.NewService(opts)

	// sin catálogo válido no arrancamos
	if _, err := svc.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.NewRouter(router.Options{Crates: svc, Logger: log, Gatherer: reg}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": cfg.Server.Addr, "catalog_source": cfg.Catalog.Source})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	if cfg.Catalog.Watch {
		w := &yamlfile.Watcher{
			Path:   cfg.Catalog.Path,
			Logger: log,
			OnChange: func(ctx context.Context) error {
				_, err := svc.Reload(ctx)
				return err
			},
		}
		g.Go(func() error { return w.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
