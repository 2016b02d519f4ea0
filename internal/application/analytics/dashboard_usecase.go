// Package analytics contiene los casos de uso del dashboard del reporte de
// transferencias: tarjetas KPI, gráficos y selector de categorías.
package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
	"github.com/jhoicas/wallet-dashboard/pkg/format"
)

// DashboardUseCase genera las tarjetas KPI y los gráficos de un reporte.
//
// Fuente de datos: el catálogo de instantáneas (inmutable). Las cifras derivadas
// (promedios, picos, totales) se recalculan en cada lectura; el volumen es mínimo.
type DashboardUseCase struct {
	catalog *metrics.Catalog
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalog *metrics.Catalog) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog}
}

// Reports lista las instantáneas disponibles.
func (uc *DashboardUseCase) Reports() dto.ReportListDTO {
	out := dto.ReportListDTO{Default: uc.catalog.Default()}
	for _, snap := range uc.catalog.Snapshots() {
		out.Reports = append(out.Reports, dto.ReportInfoDTO{
			Name:   snap.Report.Name,
			Title:  snap.Report.Title,
			Period: snap.Report.Period,
		})
	}
	return out
}

// GetSummary construye las tarjetas KPI del reporte indicado.
//
// Tarjetas:
//  1. total_transactions  → suma mensual + promedio mensual
//  2. success_rate        → promedio + pico
//  3. total_volume        → suma (miles de millones) + promedio mensual
//  4. unique_remitters    → suma + promedio mensual
//  5. unique_recipients   → suma + promedio mensual
//  6. active_countries    → países activos + país principal
//  7. failed_transactions → total de fallos + motivo principal
func (uc *DashboardUseCase) GetSummary(report string) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.catalog.Get(report)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSummary: %w", err)
	}
	r := snap.Report
	months := r.Monthly

	var (
		txTotal, remitters, recipients int64
		volume, rateSum, ratePeak      decimal.Decimal
	)
	for i, m := range months {
		txTotal += m.Transactions
		remitters += m.UniqueRemitters
		recipients += m.UniqueRecipients
		volume = volume.Add(m.Volume)
		rateSum = rateSum.Add(m.SuccessRate)
		if i == 0 || m.SuccessRate.GreaterThan(ratePeak) {
			ratePeak = m.SuccessRate
		}
	}
	n := len(months)

	txAvg := meanInt(txTotal, n)
	remAvg := meanInt(remitters, n)
	recAvg := meanInt(recipients, n)
	rateAvg := meanDecimal(rateSum, n)
	volAvg := meanDecimal(volume, n)

	cards := []dto.KPICardDTO{
		{
			ID: "total_transactions", Title: "Total Transactions",
			Value: float64(txTotal), Display: format.Int(txTotal),
			SubLabel: "Monthly Average", SubValue: txAvg, SubDisplay: format.Float(txAvg, 0),
		},
		{
			ID: "success_rate", Title: "Average Success Rate",
			Value: rateAvg, Display: format.Percent(rateAvg),
			SubLabel: "Peak", SubValue: ratePeak.InexactFloat64(), SubDisplay: format.Percent(ratePeak.InexactFloat64()),
		},
		{
			ID: "total_volume", Title: fmt.Sprintf("Total Volume (%s)", r.Currency),
			Value: volume.InexactFloat64(), Display: format.Billions(volume.InexactFloat64()),
			SubLabel: "Monthly Average", SubValue: volAvg, SubDisplay: format.Money(r.Currency, format.Billions(volAvg)),
		},
		{
			ID: "unique_remitters", Title: "Total Unique Remitters",
			Value: float64(remitters), Display: format.Int(remitters),
			SubLabel: "Monthly Average", SubValue: remAvg, SubDisplay: format.Float(remAvg, 0),
		},
		{
			ID: "unique_recipients", Title: "Total Unique Recipients",
			Value: float64(recipients), Display: format.Int(recipients),
			SubLabel: "Monthly Average", SubValue: recAvg, SubDisplay: format.Float(recAvg, 0),
		},
		countriesCard(r),
		failuresCard(r.Failures),
	}

	return &dto.DashboardSummaryDTO{
		Report:   r.Name,
		Title:    r.Title,
		Period:   r.Period,
		Currency: r.Currency,
		Cards:    cards,
	}, nil
}

// countriesCard usa ActiveCountries si el reporte lo declara; si no, cuenta los
// países conocidos de la tabla.
func countriesCard(r entity.Report) dto.KPICardDTO {
	active := r.ActiveCountries
	if active == 0 {
		for _, c := range r.Countries {
			if c.Name != unknownCountry {
				active++
			}
		}
	}
	card := dto.KPICardDTO{
		ID: "active_countries", Title: "Active Countries",
		Value: float64(active), Display: format.Int(int64(active)),
		SubLabel: "Top Country",
	}
	if top, ok := topShare(r.Countries); ok {
		card.SubValue = top.Volume.InexactFloat64()
		card.SubDisplay = fmt.Sprintf("%s (%s)", top.Name, format.Money(r.Currency, format.Billions(card.SubValue)))
	}
	return card
}

func failuresCard(failures []entity.FailureReason) dto.KPICardDTO {
	var total int64
	var top entity.FailureReason
	for i, f := range failures {
		total += f.Count
		if i == 0 || f.Count > top.Count {
			top = f
		}
	}
	card := dto.KPICardDTO{
		ID: "failed_transactions", Title: "Total Failed Transactions",
		Value: float64(total), Display: format.Int(total),
		SubLabel: "Top Reason",
	}
	if len(failures) > 0 {
		card.SubValue = float64(top.Count)
		card.SubDisplay = fmt.Sprintf("%s (%s)", top.Reason, format.Int(top.Count))
	}
	return card
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func meanInt(total int64, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func meanDecimal(total decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return total.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
}

// topShare primera fila con mayor volumen.
func topShare(rows []entity.ShareMetric) (entity.ShareMetric, bool) {
	if len(rows) == 0 {
		return entity.ShareMetric{}, false
	}
	top := rows[0]
	for _, r := range rows[1:] {
		if r.Volume.GreaterThan(top.Volume) {
			top = r
		}
	}
	return top, true
}
