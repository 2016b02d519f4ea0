package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: reporte reducido con la misma forma que el reporte anual
// ──────────────────────────────────────────────────────────────────────────────

const testReport = "annual-2024"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ea(name, amount string) entity.EntityAmount {
	return entity.EntityAmount{EntityName: name, Amount: d(amount)}
}

func fixtureReport() entity.Report {
	return entity.Report{
		Name:     testReport,
		Title:    "2024 Mobile Wallet Transfer Analysis",
		Currency: "KES",
		Period:   "January - March 2024",
		Monthly: []entity.PeriodMetric{
			{Label: "January", Transactions: 133641, Volume: d("2013687811.26"), SuccessRate: d("95.47"), UniqueRemitters: 20610, UniqueRecipients: 34553},
			{Label: "February", Transactions: 171044, Volume: d("2490772705.46"), SuccessRate: d("97.72"), UniqueRemitters: 20219, UniqueRecipients: 50852},
			{Label: "March", Transactions: 200841, Volume: d("2776712059.66"), SuccessRate: d("96.65"), UniqueRemitters: 17487, UniqueRecipients: 75630},
		},
		Daily: []entity.PeriodMetric{
			{Label: "Thursday", Volume: d("4174561072.82"), Transactions: 264715},
			{Label: "Friday", Volume: d("5582156391.24"), Transactions: 348966},
		},
		Hourly: []entity.PeriodMetric{
			{Label: "2:00:00 PM", Volume: d("802473919.21"), Transactions: 60297},
			{Label: "1:30:00 PM", Volume: d("841420254.91"), Transactions: 60756},
		},
		Countries: []entity.ShareMetric{
			{Name: "GBR", Volume: d("11315946583.70"), Transactions: 864380, MarketShare: d("42.21")},
			{Name: "USA", Volume: d("6791147045.70"), Transactions: 402476, MarketShare: d("25.33")},
			{Name: "Unknown", Volume: d("4772819388.13"), Transactions: 327200, MarketShare: d("17.81")},
		},
		Clients: []entity.ShareMetric{
			{Name: "Lemfi", Volume: d("11606556833.85"), Transactions: 836080},
			{Name: "Others", Volume: d("0.00")},
		},
		Banks: []entity.ShareMetric{
			{Name: "EQUITY BANK", Volume: d("2841226390.10")},
			{Name: "KCB BANK", Volume: d("2160938817.44")},
		},
		Industries: []entity.ShareMetric{
			{Name: "Banking", Volume: d("6021887410.20")},
			{Name: "Other", Volume: d("14873204312.55")},
		},
		Failures: []entity.FailureReason{
			{Reason: "Limit Exceeded", Count: 11376, Percentage: d("18.98")},
			{Reason: "Insufficient Balance", Count: 31173, Percentage: d("52.02")},
		},
		Categories: []entity.CategoryRecord{
			{Name: "Banking", Entities: []entity.EntityAmount{
				ea("EQUITY BANK", "8431804.50"),
				ea("KCB BANK", "7507623.85"),
				ea("IM BANK", "4628412.47"),
				ea("NCBA BANK", "4195733.53"),
				ea("FAMILY BANK", "3421604.24"),
			}},
			{Name: "Other", Entities: []entity.EntityAmount{ea("KENYA POWER", "2411874.95")}},
			{Name: "Savings", Entities: []entity.EntityAmount{ea("STIMA SACCO", "1904312.10")}},
			{Name: "Securities & Insurance", Entities: []entity.EntityAmount{ea("BRITAM", "1512004.00")}},
			{Name: "Retail & Grocery", Entities: []entity.EntityAmount{ea("NAIVAS", "901220.75")}},
		},
		ClientLogos: map[string]string{"Lemfi": "CLIENT_LOGOS/LEMFI.png"},
		BankLogos:   map[string]string{"EQUITY BANK": "BANK_LOGOS/equity.png"},
	}
}

func fixtureCatalog(t *testing.T) *metrics.Catalog {
	t.Helper()
	snap, err := metrics.NewSnapshot(fixtureReport(), metrics.DefaultTopN)
	require.NoError(t, err)
	c, err := metrics.NewCatalog([]*metrics.Snapshot{snap}, "")
	require.NoError(t, err)
	return c
}

func fixtureStore(t *testing.T) *metrics.CategoryMetricStore {
	t.Helper()
	s, err := fixtureCatalog(t).Get(testReport)
	require.NoError(t, err)
	return s.Categories
}
