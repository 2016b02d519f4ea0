// Command dashctl agrupa las tareas de operación del dashboard: sembrar
// Postgres, emitir tokens de visualización y exportar el reporte.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/bootstrap"
	"github.com/jhoicas/wallet-dashboard/pkg/config"
	"github.com/jhoicas/wallet-dashboard/pkg/logger"
)

var (
	verbose    bool
	reportName string
)

var rootCmd = &cobra.Command{
	Use:           "dashctl",
	Short:         "Herramientas de operación del wallet dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log en nivel debug")
	rootCmd.PersistentFlags().StringVarP(&reportName, "report", "r", "", "Reporte (default: REPORT_DEFAULT)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// ── helpers compartidos por los subcomandos ──────────────────────────────────

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})
	return cfg, log, nil
}

// openCategories abre el repositorio de categorías con REPORT_SOURCE=postgres.
var openCategories bootstrap.CategoryRepoOpener = bootstrap.OpenPostgresCategories

// catalogUseCases arma los casos de uso sobre el catálogo que indica REPORT_SOURCE.
// El llamador debe invocar el cierre devuelto.
func catalogUseCases(ctx context.Context, cfg *config.Config) (*appanalytics.DashboardUseCase, *appanalytics.CategoryUseCase, func(), error) {
	catalog, closeFn, err := bootstrap.LoadCatalog(ctx, cfg, openCategories)
	if err != nil {
		return nil, nil, nil, err
	}
	return appanalytics.NewDashboardUseCase(catalog), appanalytics.NewCategoryUseCase(catalog), closeFn, nil
}

func selectedReport(cfg *config.Config) string {
	if reportName != "" {
		return reportName
	}
	return cfg.Report.Default
}
