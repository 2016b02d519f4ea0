package repository

import "github.com/jhoicas/wallet-dashboard/internal/domain/entity"

// ReportSource fuente de las instantáneas del reporte (YAML embebido por defecto).
// Se lee una sola vez al arrancar.
type ReportSource interface {
	LoadReports() ([]entity.Report, error)
}
