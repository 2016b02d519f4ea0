package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain"
)

func TestGetChart_TodosLosIDs(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureCatalog(t))
	for _, id := range analytics.ChartIDs() {
		chart, err := uc.GetChart(testReport, id)
		require.NoError(t, err, id)
		assert.Equal(t, id, chart.ID)
		require.NotEmpty(t, chart.Series, id)
		for _, s := range chart.Series {
			assert.Len(t, s.Values, len(s.Labels), "%s/%s", id, s.Name)
		}
	}
}

func TestGetChart_Monthly(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureCatalog(t))
	chart, err := uc.GetChart(testReport, analytics.ChartMonthly)
	require.NoError(t, err)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, dto.SeriesBar, chart.Series[0].Type)
	assert.Equal(t, []string{"January", "February", "March"}, chart.Series[0].Labels)
	assert.InDelta(t, 2013.68781126, chart.Series[0].Values[0], 1e-6)
	assert.Equal(t, "y2", chart.Series[1].Axis)
	assert.Equal(t, []float64{95.47, 97.72, 96.65}, chart.Series[1].Values)
	require.NotNil(t, chart.Y2Axis)
	assert.Equal(t, []float64{0, 100}, chart.Y2Axis.Range)

	require.NotNil(t, chart.Peak)
	assert.Equal(t, "March", chart.Peak.Label)
	assert.Equal(t, "KES 2,776.7M", chart.Peak.Display)
}

func TestGetChart_CountriesExcluyeUnknown(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureCatalog(t))
	chart, err := uc.GetChart(testReport, analytics.ChartCountries)
	require.NoError(t, err)
	assert.Equal(t, []string{"GBR", "USA"}, chart.Series[0].Labels)
	assert.Equal(t, "log", chart.YAxis.Type)
	assert.Equal(t, -45, chart.XAxis.TickAngle)
}

func TestGetChart_ClientsLogos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureCatalog(t))
	chart, err := uc.GetChart(testReport, analytics.ChartClients)
	require.NoError(t, err)

	assert.Equal(t, 0.3, chart.Series[0].Hole)
	assert.Equal(t, []dto.LogoDTO{
		{Name: "Lemfi", Path: "CLIENT_LOGOS/LEMFI.png", Known: true},
		{Name: "Others", Path: "Others.jpg", Known: false},
	}, chart.Logos)
	assert.Equal(t, "KES 11.61B", chart.Peak.Display)
}

func TestGetChart_FailuresYBanks(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureCatalog(t))

	failures, err := uc.GetChart(testReport, analytics.ChartFailures)
	require.NoError(t, err)
	assert.Equal(t, "Insufficient Balance", failures.Peak.Label)
	assert.Equal(t, "31,173", failures.Peak.Display)

	banks, err := uc.GetChart(testReport, analytics.ChartBanks)
	require.NoError(t, err)
	assert.Equal(t, "EQUITY BANK", banks.Peak.Label)
	assert.Equal(t, "KES 2,841.2M", banks.Peak.Display)
	assert.False(t, banks.Logos[1].Known)
	assert.Equal(t, "bank_default.png", banks.Logos[1].Path)
}

func TestGetChart_Desconocidos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(fixtureCatalog(t))

	_, err := uc.GetChart(testReport, "radar")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetChart("weekly", analytics.ChartMonthly)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
