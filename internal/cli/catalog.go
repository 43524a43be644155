package cli

import (
	"fmt"
	"text/tabwriter"

	mem "pet-crate-compliance/internal/adapters/storage/memory"
	pg "pet-crate-compliance/internal/adapters/storage/postgres"
	"pet-crate-compliance/internal/adapters/storage/yamlfile"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Operaciones sobre el catálogo de jaulas",
	}

	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogExportCmd())
	cmd.AddCommand(newCatalogSeedCmd())

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los modelos en orden de inserción",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context(), catalogRepo(cmd))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), c.Entries())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tL x W x H (cm)\tMAX KG\tMATERIAL\tGIANT\tVENTILATED")
			for _, e := range c.Entries() {
				d := e.InteriorDimensions
				fmt.Fprintf(tw, "%s\t%.1f x %.1f x %.1f\t%.1f\t%s\t%t\t%t\n",
					e.ModelID, d.Length, d.Width, d.Height, e.MaxWeightKg, e.MaterialClass,
					e.IsGiantCapable, e.HasEnhancedVentilation)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Valida un catálogo YAML (--catalog)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("catalog")
			if path == "" {
				return fmt.Errorf("--catalog is required")
			}
			c, err := loadCatalog(cmd.Context(), yamlfile.NewCatalogRepo(path))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d models\n", c.Len())
			return nil
		},
	}
}

func newCatalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Escribe el catálogo semilla en YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return yamlfile.Encode(cmd.OutOrStdout(), mem.SeedCatalog())
		},
	}
}

func newCatalogSeedCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga el catálogo (--catalog o semilla) en la tabla crate_models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalog(cmd.Context(), catalogRepo(cmd))
			if err != nil {
				return err
			}

			db, err := pg.OpenContext(cmd.Context(), dsn, pg.DefaultPoolOptions())
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			if err := pg.NewCatalogRepo(db).Upsert(cmd.Context(), c.Entries()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d models\n", c.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "DSN de Postgres")
	_ = cmd.MarkFlagRequired("dsn")
	return cmd
}
