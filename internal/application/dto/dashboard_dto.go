package dto

import "github.com/shopspring/decimal"

// KPICardDTO tarjeta de indicador (valor principal + dato secundario).
type KPICardDTO struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Value      float64 `json:"value"`
	Display    string  `json:"display"`     // ej: "1,924,490"
	SubLabel   string  `json:"sub_label"`   // ej: "Monthly Average"
	SubValue   float64 `json:"sub_value"`
	SubDisplay string  `json:"sub_display"`
}

// DashboardSummaryDTO respuesta de GET /api/reports/:report/summary.
// Las cifras se recalculan en cada lectura a partir de la instantánea inmutable.
type DashboardSummaryDTO struct {
	Report   string       `json:"report"`
	Title    string       `json:"title"`
	Period   string       `json:"period"`
	Currency string       `json:"currency"`
	Cards    []KPICardDTO `json:"cards"`
}

// ReportInfoDTO resumen de una instantánea disponible.
type ReportInfoDTO struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Period string `json:"period"`
}

// ReportListDTO respuesta de GET /api/reports.
type ReportListDTO struct {
	Reports []ReportInfoDTO `json:"reports"`
	Default string          `json:"default"`
}

// CategoryListDTO respuesta de GET /api/reports/:report/categories.
type CategoryListDTO struct {
	Categories []string `json:"categories"`
	Default    string   `json:"default"`
	TopN       int      `json:"top_n"`
}

// EntityAmountDTO entidad del ranking de una categoría.
type EntityAmountDTO struct {
	Rank   int             `json:"rank"`
	Entity string          `json:"entity"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryRecordDTO respuesta de GET /api/reports/:report/categories/:name.
type CategoryRecordDTO struct {
	Name     string            `json:"name"`
	Entities []EntityAmountDTO `json:"entities"`
}
