package analytics

import (
	"context"
	"fmt"
)

// ExportUseCase exporta el reporte a formatos fuera de la API JSON.
type ExportUseCase struct {
	dashboard  *DashboardUseCase
	categories *CategoryUseCase
	renderer   ChartRenderer
	pdf        ReportPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	dashboard *DashboardUseCase,
	categories *CategoryUseCase,
	renderer ChartRenderer,
	pdf ReportPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{dashboard: dashboard, categories: categories, renderer: renderer, pdf: pdf}
}

// CategoryChartSVG dibuja el gráfico del selector. Una categoría desconocida
// produce el SVG del estado vacío, no un error.
func (uc *ExportUseCase) CategoryChartSVG(report, category string) ([]byte, error) {
	spec, err := uc.categories.Chart(report, category)
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryChartSVG: %w", err)
	}
	out, err := uc.renderer.RenderBarChart(spec)
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryChartSVG: render: %w", err)
	}
	return out, nil
}

// ReportPDF genera el PDF del reporte y su nombre de archivo.
func (uc *ExportUseCase) ReportPDF(ctx context.Context, report string) ([]byte, string, error) {
	summary, err := uc.dashboard.GetSummary(report)
	if err != nil {
		return nil, "", fmt.Errorf("analytics.ReportPDF: %w", err)
	}
	snap, err := uc.categories.Snapshot(report)
	if err != nil {
		return nil, "", fmt.Errorf("analytics.ReportPDF: %w", err)
	}
	doc, err := uc.pdf.GenerateReportPDF(ctx, summary, snap.Categories.Table())
	if err != nil {
		return nil, "", fmt.Errorf("analytics.ReportPDF: %w", err)
	}
	return doc, report + ".pdf", nil
}
