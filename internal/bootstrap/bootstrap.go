package bootstrap

import (
	"context"
	"fmt"

	mem "pet-crate-compliance/internal/adapters/storage/memory"
	pg "pet-crate-compliance/internal/adapters/storage/postgres"
	"pet-crate-compliance/internal/adapters/storage/yamlfile"
	"pet-crate-compliance/internal/domain/crates"
	"pet-crate-compliance/internal/platform/config"
	"pet-crate-compliance/internal/platform/logger"
)

// CatalogRepository arma el repositorio según catalog.source.
// closeFn libera la conexión a Postgres; para el resto no hace nada.
func CatalogRepository(ctx context.Context, cfg *config.Config) (repo crates.CatalogRepository, closeFn func() error, err error) {
	noop := func() error { return nil }

	switch cfg.Catalog.Source {
	case config.SourceMemory, "":
		return mem.NewSeedCatalogRepo(), noop, nil

	case config.SourceFile:
		return yamlfile.NewCatalogRepo(cfg.Catalog.Path), noop, nil

	case config.SourcePostgres:
		db, err := pg.OpenContext(ctx, cfg.Database.DSN, pg.DefaultPoolOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return pg.NewCatalogRepo(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func Rules(cfg *config.Config) crates.Rules {
	return crates.Rules{
		StrictDestinations:        cfg.Rules.StrictDestinations,
		PlasticBannedDestinations: cfg.Rules.PlasticBannedDestinations,
		LongHaulDestinations:      cfg.Rules.LongHaulDestinations,
	}
}

func Logger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
		File:   cfg.Log.File,
	})
}
