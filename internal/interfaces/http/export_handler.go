package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
)

// ExportHandler sirve el reporte en PDF.
type ExportHandler struct {
	uc *appanalytics.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *appanalytics.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PDF godoc
// @Summary      Reporte en PDF (tarjetas KPI + tabla de categorías)
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Param        report  path  string  true  "Nombre del reporte"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/export.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ReportPDF(c.UserContext(), c.Params("report"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
