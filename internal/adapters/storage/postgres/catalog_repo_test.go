package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-crate-compliance/internal/domain/crates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base con migrations/001_crate_models.sql aplicada.
func openTestDB(t *testing.T) *CatalogRepo {
	t.Helper()
	dsn := os.Getenv("CRATES_TEST_DSN")
	if dsn == "" {
		t.Skip("CRATES_TEST_DSN not set")
	}
	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DELETE FROM crate_models`)
	require.NoError(t, err)
	return NewCatalogRepo(db)
}

func TestCatalogRepo_UpsertAndLoadKeepOrder(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	in := []crates.CrateCatalogEntry{
		{
			ModelID:            "b-model",
			Name:               "B",
			InteriorDimensions: crates.CrateDimensions{Length: 77, Width: 51, Height: 54},
			MaxWeightKg:        16,
			MaterialClass:      crates.MaterialPlastic,
		},
		{
			ModelID:                "a-model",
			Name:                   "A",
			InteriorDimensions:     crates.CrateDimensions{Length: 122, Width: 81, Height: 91},
			MaxWeightKg:            80,
			MaterialClass:          crates.MaterialWood,
			IsGiantCapable:         true,
			HasEnhancedVentilation: true,
		},
	}
	require.NoError(t, repo.Upsert(ctx, in))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCatalogRepo_UpsertDeactivatesMissingModels(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	model := func(id string) crates.CrateCatalogEntry {
		return crates.CrateCatalogEntry{
			ModelID:            id,
			InteriorDimensions: crates.CrateDimensions{Length: 77, Width: 51, Height: 54},
			MaxWeightKg:        16,
			MaterialClass:      crates.MaterialPlastic,
		}
	}

	require.NoError(t, repo.Upsert(ctx, []crates.CrateCatalogEntry{model("keep"), model("stale")}))
	require.NoError(t, repo.Upsert(ctx, []crates.CrateCatalogEntry{model("keep")}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].ModelID)

	// volver a sembrarlo lo reactiva
	require.NoError(t, repo.Upsert(ctx, []crates.CrateCatalogEntry{model("keep"), model("stale")}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOpen_Unreachable(t *testing.T) {
	ctx := context.Background()
	opts := DefaultPoolOptions()
	opts.PingTimeout = 500 * time.Millisecond

	_, err := OpenContext(ctx, "postgres://crates@127.0.0.1:1/crates?sslmode=disable&connect_timeout=1", opts)
	require.Error(t, err)
}
