package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/pkg/logger"
)

// CategoryHandler maneja el selector de categorías.
type CategoryHandler struct {
	uc     *appanalytics.CategoryUseCase
	export *appanalytics.ExportUseCase
	log    *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *appanalytics.CategoryUseCase, export *appanalytics.ExportUseCase, log *logger.Logger) *CategoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryHandler{uc: uc, export: export, log: log}
}

// List godoc
// @Summary      Categorías del reporte (orden de inserción) y selección por defecto
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        report  path  string  true  "Nombre del reporte"
// @Success      200  {object}  dto.CategoryListDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Params("report"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Ranking de entidades de una categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        report  path  string  true  "Nombre del reporte"
// @Param        name    path  string  true  "Categoría (exacta, sensible a mayúsculas)"
// @Success      200  {object}  dto.CategoryRecordDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/categories/{name} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "nombre de categoría mal codificado",
		})
	}
	rec, err := h.uc.Get(c.Params("report"), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// Chart godoc
// @Summary      Gráfico de barras del selector de categorías
// @Description  Sin category se usa la categoría por defecto (default_applied=true).
// @Description  Una categoría desconocida responde 200 con no_data=true.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        report    path   string  true   "Nombre del reporte"
// @Param        category  query  string  false  "Categoría seleccionada"
// @Success      200  {object}  dto.BarChartSpecDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/categories/chart [get]
func (h *CategoryHandler) Chart(c *fiber.Ctx) error {
	var req dto.CategoryChartRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	spec, err := h.uc.Chart(c.Params("report"), req.Category)
	if err != nil {
		return respondError(c, err)
	}
	h.logMiss(c, spec)
	return c.JSON(spec)
}

// ChartSVG godoc
// @Summary      Gráfico del selector renderizado como SVG
// @Tags         categories
// @Security     Bearer
// @Produce      image/svg+xml
// @Param        report    path   string  true   "Nombre del reporte"
// @Param        category  query  string  false  "Categoría seleccionada"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{report}/categories/chart.svg [get]
func (h *CategoryHandler) ChartSVG(c *fiber.Ctx) error {
	var req dto.CategoryChartRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	out, err := h.export.CategoryChartSVG(c.Params("report"), req.Category)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(out)
}

func (h *CategoryHandler) logMiss(c *fiber.Ctx, spec dto.BarChartSpecDTO) {
	if !spec.NoData {
		return
	}
	h.log.Warn().
		Str("request_id", GetRequestID(c)).
		Str("report", c.Params("report")).
		Str("category", c.Query("category")).
		Msg("selección sin datos")
}
