package crates

import "context"

// CatalogRepository carga el catálogo desde su origen (memoria, archivo, Postgres).
type CatalogRepository interface {
	Load(ctx context.Context) ([]CrateCatalogEntry, error)
}
