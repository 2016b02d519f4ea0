package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/snapshot"
)

var skipMigrations bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Aplica migraciones y copia el desglose por categorías a PostgreSQL",
	Long: `Escribe las categorías de cada instantánea embebida en report_category_entities.
Reemplaza las filas existentes del reporte. La API las lee al arrancar con REPORT_SOURCE=postgres.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "No aplicar migraciones antes de sembrar")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if !skipMigrations {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			return err
		}
		log.Info().Msg("migraciones aplicadas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	repo := postgres.NewCategoryRepository(pool)

	reports, err := snapshot.NewEmbeddedSource().LoadReports()
	if err != nil {
		return err
	}
	for _, r := range reports {
		if reportName != "" && r.Name != reportName {
			continue
		}
		if err := repo.ReplaceCategories(ctx, r); err != nil {
			return err
		}
		log.Info().Str("report", r.Name).Int("categories", len(r.Categories)).Msg("categorías sembradas")
	}
	return nil
}
