package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
)

// ReportHandler maneja el listado de reportes, el resumen KPI y los gráficos.
type ReportHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      Instantáneas disponibles
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportListDTO
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reports())
}

// GetSummary godoc
// @Summary      Tarjetas KPI del reporte
// @Description  Totales, promedios mensuales y picos recalculados sobre la instantánea.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        report  path  string  true  "Nombre del reporte (ej: annual-2024)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/summary [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Params("report"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetChart godoc
// @Summary      Especificación de un gráfico del dashboard
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        report  path  string  true  "Nombre del reporte"
// @Param        chart   path  string  true  "monthly | daily | hourly | countries | clients | failures | industries | banks"
// @Success      200  {object}  dto.ChartDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/charts/{chart} [get]
func (h *ReportHandler) GetChart(c *fiber.Ctx) error {
	chart, err := h.uc.GetChart(c.Params("report"), c.Params("chart"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(chart)
}
