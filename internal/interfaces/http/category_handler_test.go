package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
)

func TestCategories_List(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports/annual-2024/categories", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[dto.CategoryListDTO](t, resp)
	assert.Equal(t, []string{"Banking", "Other", "Savings", "Securities & Insurance", "Retail & Grocery"}, list.Categories)
	assert.Equal(t, "Banking", list.Default)
	assert.Equal(t, 5, list.TopN)
}

func TestCategories_Chart_Banking(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports/annual-2024/categories/chart?category=Banking", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	spec := decode[dto.BarChartSpecDTO](t, resp)
	assert.False(t, spec.NoData)
	assert.Contains(t, spec.Title, "Banking")
	assert.Equal(t, []string{"EQUITY BANK", "KCB BANK", "IM BANK", "NCBA BANK", "FAMILY BANK"}, spec.XLabels)
	assert.Equal(t, []float64{8431804.50, 7507623.85, 4628412.47, 4195733.53, 3421604.24}, spec.YValues)
	assert.Equal(t, -45, spec.TickAngle)
}

func TestCategories_Chart_SinSeleccionUsaDefault(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports/annual-2024/categories/chart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	spec := decode[dto.BarChartSpecDTO](t, resp)
	assert.True(t, spec.DefaultApplied)
	assert.Equal(t, "Banking", spec.Category)
}

func TestCategories_Chart_Desconocida_EstadoVacio(t *testing.T) {
	app := buildApp(t, "")
	// Sensible a mayúsculas: "banking" no existe y no cae en el default.
	for _, q := range []string{"Gaming", "banking"} {
		resp := get(t, app, "/api/reports/annual-2024/categories/chart?category="+q, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		spec := decode[dto.BarChartSpecDTO](t, resp)
		assert.True(t, spec.NoData, q)
		assert.Empty(t, spec.XLabels, q)
		assert.Empty(t, spec.YValues, q)
		assert.Equal(t, "no data for this selection", spec.Message)
	}
}

func TestCategories_Get(t *testing.T) {
	app := buildApp(t, "")

	resp := get(t, app, "/api/reports/annual-2024/categories/Securities%20%26%20Insurance", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[dto.CategoryRecordDTO](t, resp)
	assert.Equal(t, "Securities & Insurance", rec.Name)
	require.NotEmpty(t, rec.Entities)
	assert.Equal(t, 1, rec.Entities[0].Rank)

	resp = get(t, app, "/api/reports/annual-2024/categories/Gaming", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CATEGORY_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories_ReporteDesconocido(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports/weekly/categories/chart?category=Banking", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "REPORT_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories_ChartSVG(t *testing.T) {
	app := buildApp(t, "")

	resp := get(t, app, "/api/reports/annual-2024/categories/chart.svg?category=Banking", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	out := body(t, resp)
	assert.True(t, strings.Contains(out, "<svg"))
	assert.Contains(t, out, "EQUITY BANK")

	resp = get(t, app, "/api/reports/annual-2024/categories/chart.svg?category=Gaming", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "no data for this selection")
}
