package entity

import "github.com/shopspring/decimal"

// EntityAmount es un contribuyente (banco, comercio, institución) dentro del
// ranking de una categoría.
type EntityAmount struct {
	EntityName string          `yaml:"entity"`
	Amount     decimal.Decimal `yaml:"amount"` // >= 0, moneda del reporte
}

// CategoryRecord agrupa el top-N de entidades de una categoría de negocio
// (ej: "Banking", "Savings"), ordenado por monto descendente.
type CategoryRecord struct {
	Name     string         `yaml:"name"`
	Entities []EntityAmount `yaml:"entities"`
}

// CategoryRow fila aplanada (categoría, posición, entidad, monto) para tablas y exportes.
type CategoryRow struct {
	Category string
	Rank     int // 1-based
	Entity   string
	Amount   decimal.Decimal
}
