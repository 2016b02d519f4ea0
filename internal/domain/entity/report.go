package entity

import "github.com/shopspring/decimal"

// PeriodMetric métricas agregadas de un período (mes, día de la semana, media hora).
// Los campos que una tabla no reporta quedan en cero.
type PeriodMetric struct {
	Label            string          `yaml:"label"`
	Transactions     int64           `yaml:"transactions"`
	Volume           decimal.Decimal `yaml:"volume"`
	SuccessRate      decimal.Decimal `yaml:"success_rate"` // porcentaje 0-100
	UniqueRemitters  int64           `yaml:"unique_remitters"`
	UniqueRecipients int64           `yaml:"unique_recipients"`
}

// ShareMetric participación de un país, cliente, banco o industria.
type ShareMetric struct {
	Name         string          `yaml:"name"`
	Volume       decimal.Decimal `yaml:"volume"`
	Transactions int64           `yaml:"transactions"`
	MarketShare  decimal.Decimal `yaml:"market_share"` // porcentaje 0-100
}

// FailureReason motivo de fallo con su conteo anual.
type FailureReason struct {
	Reason     string          `yaml:"reason"`
	Count      int64           `yaml:"count"`
	Percentage decimal.Decimal `yaml:"percentage"`
}

// Report es una instantánea independiente del reporte de transferencias
// (anual, mensual, etc.). Se construye una vez al arrancar y no se modifica.
type Report struct {
	Name            string            `yaml:"name"`
	Title           string            `yaml:"title"`
	Currency        string            `yaml:"currency"`
	Period          string            `yaml:"period"`
	ActiveCountries int               `yaml:"active_countries"`
	Monthly         []PeriodMetric    `yaml:"monthly"`
	Daily           []PeriodMetric    `yaml:"daily"`
	Hourly          []PeriodMetric    `yaml:"hourly"`
	Countries       []ShareMetric     `yaml:"countries"`
	Clients         []ShareMetric     `yaml:"clients"`
	Banks           []ShareMetric     `yaml:"banks"`
	Industries      []ShareMetric     `yaml:"industries"`
	Failures        []FailureReason   `yaml:"failures"`
	Categories      []CategoryRecord  `yaml:"categories"`
	ClientLogos     map[string]string `yaml:"client_logos"`
	BankLogos       map[string]string `yaml:"bank_logos"`
}
