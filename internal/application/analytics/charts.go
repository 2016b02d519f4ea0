package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
	"github.com/jhoicas/wallet-dashboard/pkg/format"
)

// Identificadores de gráficos del dashboard.
const (
	ChartMonthly    = "monthly"
	ChartDaily      = "daily"
	ChartHourly     = "hourly"
	ChartCountries  = "countries"
	ChartClients    = "clients"
	ChartFailures   = "failures"
	ChartIndustries = "industries"
	ChartBanks      = "banks"
)

// unknownCountry se excluye del gráfico geográfico.
const unknownCountry = "Unknown"

var million = decimal.NewFromInt(1_000_000)

type chartBuilder func(s *metrics.Snapshot) dto.ChartDTO

var chartBuilders = map[string]chartBuilder{
	ChartMonthly:    monthlyChart,
	ChartDaily:      dailyChart,
	ChartHourly:     hourlyChart,
	ChartCountries:  countriesChart,
	ChartClients:    clientsChart,
	ChartFailures:   failuresChart,
	ChartIndustries: industriesChart,
	ChartBanks:      banksChart,
}

// ChartIDs identificadores en el orden en que se muestran.
func ChartIDs() []string {
	return []string{
		ChartMonthly, ChartDaily, ChartHourly, ChartCountries,
		ChartClients, ChartFailures, ChartIndustries, ChartBanks,
	}
}

// GetChart construye un gráfico del reporte. Reporte o gráfico desconocido → ErrNotFound.
func (uc *DashboardUseCase) GetChart(report, chartID string) (*dto.ChartDTO, error) {
	snap, err := uc.catalog.Get(report)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetChart: %w", err)
	}
	build, ok := chartBuilders[chartID]
	if !ok {
		return nil, fmt.Errorf("analytics.GetChart: %w", domain.NewNotFound("chart", chartID))
	}
	chart := build(snap)
	return &chart, nil
}

// ── Series temporales ─────────────────────────────────────────────────────────

func monthlyChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels, vol := periodVolumes(r.Monthly)
	rates := make([]float64, len(r.Monthly))
	for i, m := range r.Monthly {
		rates[i] = m.SuccessRate.InexactFloat64()
	}
	return dto.ChartDTO{
		ID:    ChartMonthly,
		Title: "Monthly Volume and Success Rate Trends",
		Series: []dto.SeriesDTO{
			{Name: "Volume", Type: dto.SeriesBar, Axis: "y", Labels: labels, Values: vol},
			{Name: "Success Rate", Type: dto.SeriesLine, Axis: "y2", Labels: labels, Values: rates},
		},
		YAxis:  dto.AxisDTO{Title: volumeAxis(r.Currency)},
		Y2Axis: &dto.AxisDTO{Title: "Success Rate (%)", Range: []float64{0, 100}},
		Peak:   millionsPeak(labels, vol, r.Currency),
	}
}

func dailyChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels, vol := periodVolumes(r.Daily)
	return dto.ChartDTO{
		ID:    ChartDaily,
		Title: "Daily Transaction Patterns",
		Series: []dto.SeriesDTO{
			{Name: "Volume", Type: dto.SeriesBar, Axis: "y", Labels: labels, Values: vol},
			{Name: "Transactions", Type: dto.SeriesLine, Axis: "y2", Labels: labels, Values: periodCounts(r.Daily)},
		},
		YAxis:  dto.AxisDTO{Title: volumeAxis(r.Currency)},
		Y2Axis: &dto.AxisDTO{Title: "Number of Transactions"},
		Peak:   millionsPeak(labels, vol, r.Currency),
	}
}

func hourlyChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels, vol := periodVolumes(r.Hourly)
	return dto.ChartDTO{
		ID:    ChartHourly,
		Title: "Hourly Volume and Transaction Count Distribution",
		Series: []dto.SeriesDTO{
			{Name: "Volume", Type: dto.SeriesLine, Axis: "y", Labels: labels, Values: vol},
			{Name: "Transaction Count", Type: dto.SeriesLine, Axis: "y2", Labels: labels, Values: periodCounts(r.Hourly)},
		},
		XAxis:  dto.AxisDTO{Title: "Hour of Day", TickAngle: -45},
		YAxis:  dto.AxisDTO{Title: volumeAxis(r.Currency)},
		Y2Axis: &dto.AxisDTO{Title: "Number of Transactions"},
		Peak:   millionsPeak(labels, vol, r.Currency),
	}
}

// ── Participaciones ───────────────────────────────────────────────────────────

func countriesChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	var known []entity.ShareMetric
	for _, c := range r.Countries {
		if c.Name != unknownCountry {
			known = append(known, c)
		}
	}
	labels, vol := shareVolumes(known, million)
	tx := make([]float64, len(known))
	for i, c := range known {
		tx[i] = float64(c.Transactions)
	}
	return dto.ChartDTO{
		ID:    ChartCountries,
		Title: "Country-wise Distribution",
		Series: []dto.SeriesDTO{
			{Name: volumeSeries(r.Currency), Type: dto.SeriesBar, Axis: "y", Labels: labels, Values: vol},
			{Name: "Transactions", Type: dto.SeriesLine, Axis: "y2", Labels: labels, Values: tx},
		},
		XAxis:  dto.AxisDTO{TickAngle: -45},
		YAxis:  dto.AxisDTO{Title: volumeAxis(r.Currency), Type: "log"},
		Y2Axis: &dto.AxisDTO{Title: "Number of Transactions", Type: "log"},
		Peak:   millionsPeak(labels, vol, r.Currency),
	}
}

func clientsChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels, vol := shareVolumes(r.Clients, decimal.NewFromInt(1))
	return dto.ChartDTO{
		ID:    ChartClients,
		Title: "Client Market Share",
		Series: []dto.SeriesDTO{
			{Name: "Volume", Type: dto.SeriesPie, Labels: labels, Values: vol, Hole: 0.3},
		},
		Peak:  billionsPeak(labels, vol, r.Currency),
		Logos: logos(labels, s.ClientLogos),
	}
}

func failuresChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels := make([]string, len(r.Failures))
	counts := make([]float64, len(r.Failures))
	for i, f := range r.Failures {
		labels[i] = f.Reason
		counts[i] = float64(f.Count)
	}
	chart := dto.ChartDTO{
		ID:    ChartFailures,
		Title: "Failure Reason Analysis",
		Series: []dto.SeriesDTO{
			{Name: "Count", Type: dto.SeriesTreemap, Labels: labels, Values: counts},
		},
	}
	if i, ok := argMax(counts); ok {
		chart.Peak = &dto.PeakDTO{Label: labels[i], Value: counts[i], Display: format.Int(int64(counts[i]))}
	}
	return chart
}

func industriesChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels, vol := shareVolumes(r.Industries, decimal.NewFromInt(1))
	return dto.ChartDTO{
		ID:    ChartIndustries,
		Title: "Transaction Volume by Industry",
		Series: []dto.SeriesDTO{
			{Name: "Volume", Type: dto.SeriesTreemap, Labels: labels, Values: vol},
		},
		Peak: billionsPeak(labels, vol, r.Currency),
	}
}

func banksChart(s *metrics.Snapshot) dto.ChartDTO {
	r := s.Report
	labels, vol := shareVolumes(r.Banks, decimal.NewFromInt(1))
	return dto.ChartDTO{
		ID:    ChartBanks,
		Title: "Bank Recipients Analysis",
		Series: []dto.SeriesDTO{
			{Name: "Volume", Type: dto.SeriesTreemap, Labels: labels, Values: vol},
		},
		Peak:  millionsPeak(labels, scale(vol, 1e-6), r.Currency),
		Logos: logos(labels, s.BankLogos),
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// periodVolumes etiquetas y volumen en millones.
func periodVolumes(rows []entity.PeriodMetric) ([]string, []float64) {
	labels := make([]string, len(rows))
	vol := make([]float64, len(rows))
	for i, m := range rows {
		labels[i] = m.Label
		vol[i] = m.Volume.Div(million).InexactFloat64()
	}
	return labels, vol
}

func periodCounts(rows []entity.PeriodMetric) []float64 {
	out := make([]float64, len(rows))
	for i, m := range rows {
		out[i] = float64(m.Transactions)
	}
	return out
}

// shareVolumes etiquetas y volumen dividido por unit.
func shareVolumes(rows []entity.ShareMetric, unit decimal.Decimal) ([]string, []float64) {
	labels := make([]string, len(rows))
	vol := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Name
		vol[i] = r.Volume.Div(unit).InexactFloat64()
	}
	return labels, vol
}

func scale(values []float64, f float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * f
	}
	return out
}

// argMax índice del primer máximo.
func argMax(values []float64) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best, true
}

// millionsPeak anota el máximo de una serie expresada en millones.
func millionsPeak(labels []string, millions []float64, currency string) *dto.PeakDTO {
	i, ok := argMax(millions)
	if !ok {
		return nil
	}
	return &dto.PeakDTO{
		Label:   labels[i],
		Value:   millions[i],
		Display: format.Money(currency, format.Float(millions[i], 1)+"M"),
	}
}

// billionsPeak anota el máximo de una serie en unidades.
func billionsPeak(labels []string, values []float64, currency string) *dto.PeakDTO {
	i, ok := argMax(values)
	if !ok {
		return nil
	}
	return &dto.PeakDTO{
		Label:   labels[i],
		Value:   values[i],
		Display: format.Money(currency, format.Billions(values[i])),
	}
}

func logos(names []string, catalog metrics.LogoCatalog) []dto.LogoDTO {
	out := make([]dto.LogoDTO, 0, len(names))
	for _, n := range names {
		_, known := catalog.Resolve(n)
		out = append(out, dto.LogoDTO{Name: n, Path: catalog.PathOrFallback(n), Known: known})
	}
	return out
}

func volumeAxis(currency string) string {
	return fmt.Sprintf("Volume (%s Millions)", currency)
}

func volumeSeries(currency string) string {
	return fmt.Sprintf("Volume (%s)", currency)
}
