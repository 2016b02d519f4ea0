package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/snapshot"
	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/svg"
	apphttp "github.com/jhoicas/wallet-dashboard/internal/interfaces/http"
	"github.com/jhoicas/wallet-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testJWTSecret = "test-secret-key-for-unit-tests"

// buildApp arma la app completa sobre las instantáneas embebidas.
func buildApp(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	return buildAppWithLogger(t, jwtSecret, logger.Nop())
}

func buildAppWithLogger(t *testing.T, jwtSecret string, log *logger.Logger) *fiber.App {
	t.Helper()
	catalog, err := appanalytics.BuildCatalog(context.Background(), snapshot.NewEmbeddedSource(), nil,
		appanalytics.CatalogOptions{DefaultReport: "annual-2024"})
	require.NoError(t, err)

	dashboardUC := appanalytics.NewDashboardUseCase(catalog)
	categoryUC := appanalytics.NewCategoryUseCase(catalog)
	exportUC := appanalytics.NewExportUseCase(dashboardUC, categoryUC,
		svg.NewBarChartRenderer(), pdf.NewMarotoPDFGenerator("test"))

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: dashboardUC,
		CategoryUC:  categoryUC,
		ExportUC:    exportUC,
		Logger:      log,
		JWTSecret:   jwtSecret,
	})
	return app
}

func get(t *testing.T, app *fiber.App, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
