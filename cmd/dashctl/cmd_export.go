package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	infrapdf "github.com/jhoicas/wallet-dashboard/internal/infrastructure/pdf"
	infrasvg "github.com/jhoicas/wallet-dashboard/internal/infrastructure/svg"
)

var (
	exportOut      string
	exportCategory string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta el reporte a PDF, o el gráfico de una categoría a SVG con --category",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Archivo de salida (default: <reporte>.pdf / .svg)")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Exportar el gráfico de esta categoría como SVG")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	dashboardUC, categoryUC, closeCatalog, err := catalogUseCases(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()
	uc := appanalytics.NewExportUseCase(dashboardUC, categoryUC,
		infrasvg.NewBarChartRenderer(), infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	report := selectedReport(cfg)

	var (
		out  []byte
		name string
	)
	if exportCategory != "" {
		out, err = uc.CategoryChartSVG(report, exportCategory)
		name = report + ".svg"
	} else {
		out, name, err = uc.ReportPDF(cmd.Context(), report)
	}
	if err != nil {
		return err
	}
	if exportOut != "" {
		name = exportOut
	}
	if err := os.WriteFile(name, out, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	log.Info().Str("report", report).Str("file", name).Int("bytes", len(out)).Msg("exportado")
	return nil
}
