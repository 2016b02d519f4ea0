package http_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	apphttp "github.com/jhoicas/wallet-dashboard/internal/interfaces/http"
)

func TestReports_List(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decode[dto.ReportListDTO](t, resp)
	assert.Equal(t, "annual-2024", list.Default)
	names := make([]string, 0, len(list.Reports))
	for _, r := range list.Reports {
		names = append(names, r.Name)
	}
	assert.ElementsMatch(t, []string{"annual-2024", "november-2024"}, names)
}

func TestReports_Summary(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports/annual-2024/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	s := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, "annual-2024", s.Report)
	assert.Equal(t, "KES", s.Currency)
	require.Len(t, s.Cards, 7)
	assert.Equal(t, "total_transactions", s.Cards[0].ID)
	assert.NotEmpty(t, s.Cards[0].Display)
}

func TestReports_Chart(t *testing.T) {
	app := buildApp(t, "")

	resp := get(t, app, "/api/reports/annual-2024/charts/monthly", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chart := decode[dto.ChartDTO](t, resp)
	assert.Equal(t, "monthly", chart.ID)
	require.NotNil(t, chart.Peak)

	resp = get(t, app, "/api/reports/annual-2024/charts/radar", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CHART_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestReports_ExportPDF(t *testing.T) {
	app := buildApp(t, "")
	resp := get(t, app, "/api/reports/november-2024/export.pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "november-2024.pdf")
	assert.True(t, bytes.HasPrefix([]byte(body(t, resp)), []byte("%PDF")))
}

func TestRequestLogger_RequestID(t *testing.T) {
	app := buildApp(t, "")

	resp := get(t, app, "/api/reports", "")
	_ = body(t, resp)
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36)

	req := get(t, app, "/api/reports/weekly/summary", "")
	_ = body(t, req)
	assert.NotEmpty(t, req.Header.Get(apphttp.HeaderRequestID))
}
