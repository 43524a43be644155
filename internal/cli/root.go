package cli

import (
	"context"
	"encoding/json"
	"io"

	mem "pet-crate-compliance/internal/adapters/storage/memory"
	"pet-crate-compliance/internal/adapters/storage/yamlfile"
	"pet-crate-compliance/internal/domain/crates"

	"github.com/spf13/cobra"
)

// NewRootCmd arma cratectl. Todo lo que imprime va a cmd.OutOrStdout() para poder testearlo.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cratectl",
		Short:         "Dimensionamiento y cumplimiento IATA de jaulas",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("catalog", "", "catálogo YAML (por defecto el catálogo semilla)")

	cmd.AddCommand(newAssessCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}

// catalogRepo devuelve el repositorio según --catalog.
func catalogRepo(cmd *cobra.Command) crates.CatalogRepository {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return mem.NewSeedCatalogRepo()
	}
	return yamlfile.NewCatalogRepo(path)
}

func loadCatalog(ctx context.Context, repo crates.CatalogRepository) (*crates.Catalog, error) {
	entries, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return crates.NewCatalog(entries)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
