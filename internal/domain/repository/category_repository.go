package repository

import (
	"context"

	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia del desglose por categorías (DIP).
// La API solo lee; la escritura la usa el comando de siembra.
type CategoryRepository interface {
	// ListCategories devuelve las categorías de un reporte en orden de inserción,
	// con sus entidades ordenadas por monto descendente. Sin filas → slice vacío.
	ListCategories(ctx context.Context, report string) ([]entity.CategoryRecord, error)

	// ReplaceCategories reemplaza el desglose completo de un reporte en una transacción.
	ReplaceCategories(ctx context.Context, report entity.Report) error
}
