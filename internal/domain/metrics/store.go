// Package metrics contiene los servicios de dominio de solo lectura sobre el
// desglose por categorías del reporte.
package metrics

import (
	"fmt"
	"sort"

	"github.com/jhoicas/wallet-dashboard/internal/domain"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
)

// DefaultTopN longitud del ranking observada en los reportes fuente.
const DefaultTopN = 5

// CategoryMetricStore mapeo inmutable categoría → ranking de entidades.
//
// Se construye una sola vez al arrancar; después solo se lee, por lo que puede
// compartirse entre goroutines sin sincronización.
type CategoryMetricStore struct {
	order   []string
	records map[string]entity.CategoryRecord
	topN    int
}

// NewCategoryMetricStore valida y copia los registros.
//
// Reglas de carga:
//   - nombres únicos y no vacíos
//   - montos >= 0
//   - entidades ordenadas por monto descendente (orden estable ante empates)
//   - se recorta a topN entidades (topN <= 0 usa DefaultTopN)
func NewCategoryMetricStore(records []entity.CategoryRecord, topN int) (*CategoryMetricStore, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	s := &CategoryMetricStore{
		order:   make([]string, 0, len(records)),
		records: make(map[string]entity.CategoryRecord, len(records)),
		topN:    topN,
	}
	for _, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("metrics.NewCategoryMetricStore: categoría sin nombre: %w", domain.ErrInvalidInput)
		}
		if _, dup := s.records[r.Name]; dup {
			return nil, fmt.Errorf("metrics.NewCategoryMetricStore: categoría %q duplicada: %w", r.Name, domain.ErrInvalidInput)
		}
		entities := make([]entity.EntityAmount, len(r.Entities))
		copy(entities, r.Entities)
		for _, e := range entities {
			if e.Amount.IsNegative() {
				return nil, fmt.Errorf("metrics.NewCategoryMetricStore: monto negativo para %q en %q: %w",
					e.EntityName, r.Name, domain.ErrInvalidInput)
			}
		}
		sort.SliceStable(entities, func(i, j int) bool {
			return entities[i].Amount.GreaterThan(entities[j].Amount)
		})
		if len(entities) > topN {
			entities = entities[:topN]
		}
		s.order = append(s.order, r.Name)
		s.records[r.Name] = entity.CategoryRecord{Name: r.Name, Entities: entities}
	}
	return s, nil
}

// Categories devuelve los nombres en orden de inserción.
func (s *CategoryMetricStore) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Lookup busca por coincidencia exacta (sensible a mayúsculas).
// Una clave desconocida devuelve *domain.NotFoundError; nunca se sustituye por el default.
func (s *CategoryMetricStore) Lookup(category string) (entity.CategoryRecord, error) {
	r, ok := s.records[category]
	if !ok {
		return entity.CategoryRecord{}, domain.NewNotFound("category", category)
	}
	entities := make([]entity.EntityAmount, len(r.Entities))
	copy(entities, r.Entities)
	return entity.CategoryRecord{Name: r.Name, Entities: entities}, nil
}

// Default es la selección inicial: la primera categoría en orden de inserción.
// Solo aplica a una selección sin inicializar. Vacío si el store no tiene categorías.
func (s *CategoryMetricStore) Default() string {
	if len(s.order) == 0 {
		return ""
	}
	return s.order[0]
}

// TopN longitud máxima de cada ranking.
func (s *CategoryMetricStore) TopN() int { return s.topN }

// Len número de categorías.
func (s *CategoryMetricStore) Len() int { return len(s.order) }

// Table aplana el store en filas (categoría, posición, entidad, monto).
func (s *CategoryMetricStore) Table() []entity.CategoryRow {
	var rows []entity.CategoryRow
	for _, name := range s.order {
		for i, e := range s.records[name].Entities {
			rows = append(rows, entity.CategoryRow{
				Category: name,
				Rank:     i + 1,
				Entity:   e.EntityName,
				Amount:   e.Amount,
			})
		}
	}
	return rows
}
