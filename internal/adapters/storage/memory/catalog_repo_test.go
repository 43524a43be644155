package memory

import (
	"context"
	"testing"

	"pet-crate-compliance/internal/domain/crates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogIsValid(t *testing.T) {
	c, err := crates.NewCatalog(SeedCatalog())
	require.NoError(t, err)
	assert.Equal(t, len(SeedCatalog()), c.Len())

	m, err := c.Get("sky-kennel-300")
	require.NoError(t, err)
	assert.Equal(t, crates.MaterialPlastic, m.MaterialClass)
}

func TestCatalogRepo_LoadReturnsCopy(t *testing.T) {
	repo := NewSeedCatalogRepo()

	first, err := repo.Load(context.Background())
	require.NoError(t, err)
	first[0].ModelID = "mutated"

	second, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sky-kennel-100", second[0].ModelID)
}

func TestCatalogRepo_Replace(t *testing.T) {
	repo := NewCatalogRepo(nil)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	repo.Replace(SeedCatalog()[:2])
	got, err = repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSeedCatalogRepo().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedCatalog_MediumDogGetsSkyKennel300(t *testing.T) {
	c, err := crates.NewCatalog(SeedCatalog())
	require.NoError(t, err)

	res := crates.Match(c, crates.CrateDimensions{Length: 62.5, Width: 50, Height: 52.5}, 15, crates.OverrideFlags{})
	require.NotNil(t, res.Model)
	assert.Equal(t, "sky-kennel-300", res.Model.ModelID)
	assert.False(t, res.IsCustomBuildNeeded)
}

func TestSeedCatalog_GiantBreedGetsReinforcedCrate(t *testing.T) {
	c, err := crates.NewCatalog(SeedCatalog())
	require.NoError(t, err)

	e := crates.NewEngine(crates.NewCatalogStore(c), crates.DefaultRules())
	a, err := e.AssessRaw(crates.RawRequest{
		Measurements: crates.RawMeasurements{Length: 95, StandingHeight: 60, Width: 25, SittingHeight: 55},
		BreedProfile: &crates.RawBreedProfile{SpeciesName: "dog", BreedName: "Great Dane", WeightKg: 40},
	})
	require.NoError(t, err)

	require.NotNil(t, a.RecommendedModel)
	assert.Equal(t, "gunner-g1-xl", a.RecommendedModel.ModelID)
	assert.True(t, a.RecommendedModel.IsGiantCapable)
	assert.NotEqual(t, crates.MaterialWire, a.RecommendedModel.MaterialClass)
}

func TestSeedCatalog_SkyKennelSizes(t *testing.T) {
	c, err := crates.NewCatalog(SeedCatalog())
	require.NoError(t, err)

	weights := map[string]float64{
		"sky-kennel-100": 7,
		"sky-kennel-200": 11,
		"sky-kennel-300": 16,
		"sky-kennel-400": 23,
		"sky-kennel-500": 32,
		"sky-kennel-700": 45,
	}
	for id, kg := range weights {
		m, err := c.Get(id)
		require.NoError(t, err, id)
		assert.Equal(t, kg, m.MaxWeightKg, id)
	}

	m, err := c.Get("sky-kennel-500")
	require.NoError(t, err)
	assert.Equal(t, crates.CrateDimensions{Length: 91, Width: 63, Height: 68}, m.InteriorDimensions)
}
