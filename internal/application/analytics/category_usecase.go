package analytics

import (
	"fmt"

	"github.com/jhoicas/wallet-dashboard/internal/application/dto"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
)

// CategoryUseCase expone el desglose por categorías de cada reporte del catálogo.
type CategoryUseCase struct {
	catalog *metrics.Catalog
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(catalog *metrics.Catalog) *CategoryUseCase {
	return &CategoryUseCase{catalog: catalog}
}

// List devuelve las categorías del reporte (orden de inserción) y la selección por defecto.
func (uc *CategoryUseCase) List(report string) (*dto.CategoryListDTO, error) {
	snap, err := uc.catalog.Get(report)
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryUseCase.List: %w", err)
	}
	return &dto.CategoryListDTO{
		Categories: snap.Categories.Categories(),
		Default:    snap.Categories.Default(),
		TopN:       snap.Categories.TopN(),
	}, nil
}

// Get devuelve el ranking de una categoría. Una categoría desconocida es ErrNotFound.
func (uc *CategoryUseCase) Get(report, category string) (*dto.CategoryRecordDTO, error) {
	snap, err := uc.catalog.Get(report)
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryUseCase.Get: %w", err)
	}
	rec, err := snap.Categories.Lookup(category)
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryUseCase.Get: %w", err)
	}
	out := &dto.CategoryRecordDTO{
		Name:     rec.Name,
		Entities: make([]dto.EntityAmountDTO, 0, len(rec.Entities)),
	}
	for i, e := range rec.Entities {
		out.Entities = append(out.Entities, dto.EntityAmountDTO{
			Rank:   i + 1,
			Entity: e.EntityName,
			Amount: e.Amount,
		})
	}
	return out, nil
}

// Chart atiende un cambio del selector. Solo falla si el reporte no existe;
// una categoría desconocida produce el estado vacío.
func (uc *CategoryUseCase) Chart(report, category string) (dto.BarChartSpecDTO, error) {
	snap, err := uc.catalog.Get(report)
	if err != nil {
		return dto.BarChartSpecDTO{}, fmt.Errorf("analytics.CategoryUseCase.Chart: %w", err)
	}
	return NewSelectionHandler(snap.Categories, snap.Report.Currency).Handle(category), nil
}

// Snapshot devuelve la instantánea (para exportes SVG/PDF).
func (uc *CategoryUseCase) Snapshot(report string) (*metrics.Snapshot, error) {
	snap, err := uc.catalog.Get(report)
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryUseCase.Snapshot: %w", err)
	}
	return snap, nil
}
