package analytics

import (
	"context"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
)

// ChartRenderer dibuja una especificación de barras (SVG, PNG...).
type ChartRenderer interface {
	RenderBarChart(spec dto.BarChartSpecDTO) ([]byte, error)
}

// ReportPDFGenerator genera el PDF del reporte (tarjetas KPI + tabla de categorías).
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, summary *dto.DashboardSummaryDTO, rows []entity.CategoryRow) ([]byte, error)
}
