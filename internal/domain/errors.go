package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// NotFoundError indica que una clave no existe en un catálogo de solo lectura
// (categoría, reporte, gráfico). errors.Is(err, ErrNotFound) es verdadero.
type NotFoundError struct {
	Kind string // "category", "report", "chart"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Kind, e.Key)
}

// Is permite comparar contra ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound construye un NotFoundError.
func NewNotFound(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}
