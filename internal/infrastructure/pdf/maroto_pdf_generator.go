// Package pdf genera la versión imprimible del reporte de transferencias.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Periodo + moneda            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS KPI: título / valor / dato secundario (2 por fila) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | # | Entidad | Monto                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota de origen de los datos                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(
	ctx context.Context,
	summary *dto.DashboardSummaryDTO,
	rows []entity.CategoryRow,
) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("pdf: resumen nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(summary.Title, true).
		WithAuthor(nonEmpty(g.author, "wallet-dashboard"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("INDICADORES"))
	m.AddRows(kpiRows(summary.Cards)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TOP ENTIDADES POR CATEGORÍA"))
	m.AddRows(tableHeaderRow(summary.Currency))
	m.AddRows(tableDetailRows(rows)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y periodo + moneda (der).
func headerRow(s *dto.DashboardSummaryDTO) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(s.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte: "+s.Report, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(s.Period, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Moneda: "+nonEmpty(s.Currency, "n/d"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// kpiRows: dos tarjetas por fila.
func kpiRows(cards []dto.KPICardDTO) []core.Row {
	result := make([]core.Row, 0, (len(cards)+1)/2)
	for i := 0; i < len(cards); i += 2 {
		r := row.New(20)
		r.Add(kpiCol(cards[i]))
		if i+1 < len(cards) {
			r.Add(kpiCol(cards[i+1]))
		} else {
			r.Add(col.New(6))
		}
		result = append(result, r)
	}
	return result
}

func kpiCol(c dto.KPICardDTO) core.Col {
	sub := c.SubDisplay
	if c.SubLabel != "" {
		sub = c.SubLabel + ": " + sub
	}
	return col.New(6).Add(
		text.New(c.Title, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
		text.New(c.Display, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 6, Left: 2,
		}),
		text.New(sub, props.Text{Size: 7, Color: colorGray, Top: 14, Left: 2}),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

func tableHeaderRow(currency string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 4, align.Left),
		h("#", 1, align.Center),
		h("Entidad", 4, align.Left),
		h(format.Money(currency, "Monto"), 3, align.Right),
	)
}

// tableDetailRows: una fila por entidad. El nombre de la categoría solo se
// repite en la primera posición del ranking.
func tableDetailRows(rows []entity.CategoryRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New(analytics.NoDataMessage, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		category := ""
		if r.Rank == 1 {
			category = r.Category
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(category, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Rank), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(4).Add(text.New(r.Entity, props.Text{
				Size: 8, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(format.Float(r.Amount.InexactFloat64(), 2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func footerRow(s *dto.DashboardSummaryDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Cifras calculadas sobre la instantánea %q (%s). Datos de solo lectura.", s.Report, s.Period),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

var _ analytics.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)
