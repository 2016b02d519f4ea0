package dto

// ── Selector de categorías ────────────────────────────────────────────────────

// CategoryChartRequest parámetros para GET /api/reports/:report/categories/chart.
type CategoryChartRequest struct {
	Category string `query:"category"` // vacío = selección sin inicializar → categoría por defecto
}

// BarChartSpecDTO especificación de gráfico de barras para el selector de categorías.
// XLabels y YValues son paralelos y conservan el orden descendente del store.
type BarChartSpecDTO struct {
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	XLabels        []string  `json:"x_labels"`
	YValues        []float64 `json:"y_values"`
	XAxisLabel     string    `json:"x_axis_label"`
	YAxisLabel     string    `json:"y_axis_label"`
	TickAngle      int       `json:"tick_angle"` // rotación sugerida para etiquetas largas
	NoData         bool      `json:"no_data"`
	Message        string    `json:"message,omitempty"`
	DefaultApplied bool      `json:"default_applied,omitempty"`
}

// ── Gráficos del dashboard ────────────────────────────────────────────────────

// Tipos de serie.
const (
	SeriesBar     = "bar"
	SeriesLine    = "line"
	SeriesPie     = "pie"
	SeriesTreemap = "treemap"
)

// SeriesDTO una serie de datos; Axis es "y" o "y2".
type SeriesDTO struct {
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	Axis   string    `json:"axis,omitempty"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Hole   float64   `json:"hole,omitempty"` // solo pie (donut)
}

// AxisDTO configuración de un eje.
type AxisDTO struct {
	Title     string    `json:"title,omitempty"`
	Type      string    `json:"type,omitempty"` // "" lineal, "log"
	Range     []float64 `json:"range,omitempty"`
	TickAngle int       `json:"tick_angle,omitempty"`
}

// PeakDTO anotación del máximo de la serie principal.
type PeakDTO struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// LogoDTO logo de un cliente o banco; Known=false si se usó el fallback.
type LogoDTO struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Known bool   `json:"known"`
}

// ChartDTO respuesta de GET /api/reports/:report/charts/:chart.
type ChartDTO struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Series []SeriesDTO `json:"series"`
	XAxis  AxisDTO     `json:"x_axis"`
	YAxis  AxisDTO     `json:"y_axis"`
	Y2Axis *AxisDTO    `json:"y2_axis,omitempty"`
	Peak   *PeakDTO    `json:"peak,omitempty"`
	Logos  []LogoDTO   `json:"logos,omitempty"`
}
