package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/pkg/jwt"
	"github.com/jhoicas/wallet-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	CategoryUC  *appanalytics.CategoryUseCase
	ExportUC    *appanalytics.ExportUseCase
	Logger      *logger.Logger
	JWTSecret   string // vacío = API pública
}

// Router registra las rutas de la API.
//
// Con JWTSecret definido toda la API exige token; el export PDF además exige
// rol admin. Sin secret la API es pública y no se comprueban roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	pdfGuard := []fiber.Handler{}
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		pdfGuard = append(pdfGuard, RequireRole(jwt.RoleAdmin))
	}

	reportHandler := NewReportHandler(deps.DashboardUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ExportUC, deps.Logger)
	exportHandler := NewExportHandler(deps.ExportUC)

	reports := api.Group("/reports")
	reports.Get("/", reportHandler.List)
	reports.Get("/:report/summary", reportHandler.GetSummary)
	reports.Get("/:report/charts/:chart", reportHandler.GetChart)
	reports.Get("/:report/export.pdf", append(pdfGuard, exportHandler.PDF)...)

	// Rutas fijas antes de /:name para que "chart" no se tome como categoría.
	categories := reports.Group("/:report/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/chart", categoryHandler.Chart)
	categories.Get("/chart.svg", categoryHandler.ChartSVG)
	categories.Get("/:name", categoryHandler.Get)
}
