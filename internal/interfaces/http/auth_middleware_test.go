package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	apphttp "github.com/jhoicas/wallet-dashboard/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/wallet-dashboard/pkg/jwt"
	"github.com/jhoicas/wallet-dashboard/pkg/logger"
)

const (
	testViewerID = "00000000-0000-0000-0000-000000000001"
	testIssuer   = "wallet-dashboard-test"
	testExpMin   = 60
)

func tokenFor(t *testing.T, role string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testViewerID, role, testIssuer, expMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware sobre el router
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinSecretLaAPIEsPublica(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports", "")
	_ = body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_ConSecret(t *testing.T) {
	app := buildApp(t, testJWTSecret)

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"sin header", "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"formato incorrecto", "Token abc", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"token malformado", "Bearer token.invalido.aqui", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"token expirado", tokenFor(t, pkgjwt.RoleViewer, -1), http.StatusUnauthorized, "INVALID_TOKEN"},
		{"sin rol", tokenFor(t, "", testExpMin), http.StatusUnauthorized, "MISSING_ROLE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, app, "/api/reports", tc.header)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	resp := get(t, app, "/api/reports", tokenFor(t, pkgjwt.RoleViewer, testExpMin))
	_ = body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_ExtraeClaimsYRequireRole(t *testing.T) {
	app := fiber.New()
	app.Get("/me",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(pkgjwt.RoleViewer, pkgjwt.RoleAdmin),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"viewer_id": apphttp.GetViewerID(c), "role": apphttp.GetRole(c)})
		})
	app.Get("/admin",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(pkgjwt.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, pkgjwt.RoleViewer, testExpMin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string]string](t, resp)
	assert.Equal(t, testViewerID, got["viewer_id"])
	assert.Equal(t, pkgjwt.RoleViewer, got["role"])

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", tokenFor(t, pkgjwt.RoleViewer, testExpMin))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuth_ExportPDFSoloAdmin(t *testing.T) {
	app := buildApp(t, testJWTSecret)
	const target = "/api/reports/november-2024/export.pdf"

	resp := get(t, app, target, tokenFor(t, pkgjwt.RoleViewer, testExpMin))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = get(t, app, target, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = body(t, resp)

	resp = get(t, app, target, tokenFor(t, pkgjwt.RoleAdmin, testExpMin))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix([]byte(body(t, resp)), []byte("%PDF")))

	// el resto de la API sigue abierta al rol viewer
	resp = get(t, app, "/api/reports/november-2024/categories/chart.svg", tokenFor(t, pkgjwt.RoleViewer, testExpMin))
	_ = body(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestLogger_RegistraViewerID(t *testing.T) {
	var buf bytes.Buffer
	app := buildAppWithLogger(t, testJWTSecret, logger.New(logger.Config{Env: "test", Level: "info", Output: &buf}))

	resp := get(t, app, "/api/reports", tokenFor(t, pkgjwt.RoleViewer, testExpMin))
	_ = body(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, buf.String(), `"viewer_id":"`+testViewerID+`"`)

	buf.Reset()
	resp = get(t, app, "/api/reports", "")
	_ = body(t, resp)
	assert.NotContains(t, buf.String(), "viewer_id")
}
