package analytics

import (
	"fmt"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
)

// Textos del gráfico del selector de categorías.
const (
	selectionXAxisLabel = "Entity"
	selectionTickAngle  = -45
	NoDataMessage       = "no data for this selection"
)

// SelectionHandler convierte la categoría elegida en el selector en la
// especificación del gráfico de barras.
//
// No guarda estado entre llamadas: la salida depende solo del store (inmutable),
// por lo que dos llamadas con la misma categoría devuelven lo mismo.
type SelectionHandler struct {
	store    *metrics.CategoryMetricStore
	currency string
}

// NewSelectionHandler construye el handler sobre un store ya cargado.
func NewSelectionHandler(store *metrics.CategoryMetricStore, currency string) *SelectionHandler {
	return &SelectionHandler{store: store, currency: currency}
}

// Handle resuelve la categoría y arma la especificación.
//
//   - "" (selección sin inicializar) → categoría por defecto, DefaultApplied=true
//   - categoría desconocida → estado vacío (NoData=true), nunca error
func (h *SelectionHandler) Handle(category string) dto.BarChartSpecDTO {
	defaultApplied := false
	if category == "" {
		category = h.store.Default()
		defaultApplied = true
	}

	rec, err := h.store.Lookup(category)
	if err != nil {
		// Lookup solo falla con NotFound: se informa a la UI como estado vacío.
		return h.emptyState(category)
	}

	labels := make([]string, 0, len(rec.Entities))
	values := make([]float64, 0, len(rec.Entities))
	for _, e := range rec.Entities {
		labels = append(labels, e.EntityName)
		values = append(values, e.Amount.InexactFloat64())
	}

	return dto.BarChartSpecDTO{
		Title:          fmt.Sprintf("Top %d Entities by Amount: %s", len(labels), rec.Name),
		Category:       rec.Name,
		XLabels:        labels,
		YValues:        values,
		XAxisLabel:     selectionXAxisLabel,
		YAxisLabel:     h.yAxisLabel(),
		TickAngle:      selectionTickAngle,
		DefaultApplied: defaultApplied,
	}
}

// emptyState especificación para una categoría sin datos.
func (h *SelectionHandler) emptyState(category string) dto.BarChartSpecDTO {
	return dto.BarChartSpecDTO{
		Title:      fmt.Sprintf("No data for %q", category),
		Category:   category,
		XLabels:    []string{},
		YValues:    []float64{},
		XAxisLabel: selectionXAxisLabel,
		YAxisLabel: h.yAxisLabel(),
		TickAngle:  selectionTickAngle,
		NoData:     true,
		Message:    NoDataMessage,
	}
}

func (h *SelectionHandler) yAxisLabel() string {
	if h.currency == "" {
		return "Amount"
	}
	return "Amount (" + h.currency + ")"
}
