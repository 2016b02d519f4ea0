// @title        Wallet Dashboard API
// @version      1.0
// @description  API de solo lectura del reporte de transferencias de billetera móvil.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <viewer token> (solo si JWT_SECRET está definido)
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/wallet-dashboard/docs"
	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/bootstrap"
	infrapdf "github.com/jhoicas/wallet-dashboard/internal/infrastructure/pdf"
	infrasvg "github.com/jhoicas/wallet-dashboard/internal/infrastructure/svg"
	httpRouter "github.com/jhoicas/wallet-dashboard/internal/interfaces/http"
	"github.com/jhoicas/wallet-dashboard/pkg/config"
	"github.com/jhoicas/wallet-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Report.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Con REPORT_SOURCE=postgres el desglose por categorías se lee una vez al arrancar.
	catalog, closeCatalog, err := bootstrap.LoadCatalog(ctx, cfg, bootstrap.OpenPostgresCategories)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar instantáneas del reporte")
	}
	defer closeCatalog()
	log.Info().Strs("reports", catalog.Names()).Str("default", catalog.Default()).Msg("catálogo cargado")

	dashboardUC := appanalytics.NewDashboardUseCase(catalog)
	categoryUC := appanalytics.NewCategoryUseCase(catalog)
	exportUC := appanalytics.NewExportUseCase(
		dashboardUC, categoryUC,
		infrasvg.NewBarChartRenderer(),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Wallet Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: la API es pública")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		CategoryUC:  categoryUC,
		ExportUC:    exportUC,
		Logger:      log,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
