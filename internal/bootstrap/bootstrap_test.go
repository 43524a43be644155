package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mem "pet-crate-compliance/internal/adapters/storage/memory"
	"pet-crate-compliance/internal/adapters/storage/yamlfile"
	"pet-crate-compliance/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Memory(t *testing.T) {
	cfg := config.Default()

	repo, closeFn, err := CatalogRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	entries, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mem.SeedCatalog(), entries)
}

func TestCatalogRepository_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, yamlfile.Encode(f, mem.SeedCatalog()[:3]))
	require.NoError(t, f.Close())

	cfg := config.Default()
	cfg.Catalog.Source = config.SourceFile
	cfg.Catalog.Path = path

	repo, closeFn, err := CatalogRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	entries, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestCatalogRepository_Unknown(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.Source = "s3"

	_, _, err := CatalogRepository(context.Background(), cfg)
	require.Error(t, err)
}

func TestRules_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.StrictDestinations = []string{"NZ"}

	r := Rules(cfg)
	assert.Equal(t, []string{"NZ"}, r.StrictDestinations)
	assert.Equal(t, []string{"AU", "NZ"}, r.PlasticBannedDestinations)
}
