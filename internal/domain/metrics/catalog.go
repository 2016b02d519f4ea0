package metrics

import (
	"fmt"

	"github.com/jhoicas/wallet-dashboard/internal/domain"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
)

// Rutas de logo usadas cuando el nombre no está en el catálogo.
const (
	ClientLogoFallback = "Others.jpg"
	BankLogoFallback   = "bank_default.png"
)

// Snapshot una instantánea del reporte lista para consultar.
type Snapshot struct {
	Report      entity.Report
	Categories  *CategoryMetricStore
	ClientLogos LogoCatalog
	BankLogos   LogoCatalog
}

// NewSnapshot construye el store de categorías y los catálogos de logos del reporte.
func NewSnapshot(r entity.Report, topN int) (*Snapshot, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("metrics.NewSnapshot: reporte sin nombre: %w", domain.ErrInvalidInput)
	}
	store, err := NewCategoryMetricStore(r.Categories, topN)
	if err != nil {
		return nil, fmt.Errorf("metrics.NewSnapshot %s: %w", r.Name, err)
	}
	return &Snapshot{
		Report:      r,
		Categories:  store,
		ClientLogos: NewLogoCatalog(r.ClientLogos, ClientLogoFallback),
		BankLogos:   NewLogoCatalog(r.BankLogos, BankLogoFallback),
	}, nil
}

// Catalog conjunto de instantáneas indexadas por nombre, en orden de inserción.
type Catalog struct {
	order       []string
	byName      map[string]*Snapshot
	defaultName string
}

// NewCatalog valida nombres únicos. defaultName vacío usa la primera instantánea.
func NewCatalog(snapshots []*Snapshot, defaultName string) (*Catalog, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("metrics.NewCatalog: sin reportes: %w", domain.ErrInvalidInput)
	}
	c := &Catalog{byName: make(map[string]*Snapshot, len(snapshots))}
	for _, s := range snapshots {
		name := s.Report.Name
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("metrics.NewCatalog: reporte %q duplicado: %w", name, domain.ErrInvalidInput)
		}
		c.order = append(c.order, name)
		c.byName[name] = s
	}
	if defaultName == "" {
		defaultName = c.order[0]
	}
	if _, ok := c.byName[defaultName]; !ok {
		return nil, fmt.Errorf("metrics.NewCatalog: reporte por defecto: %w", domain.NewNotFound("report", defaultName))
	}
	c.defaultName = defaultName
	return c, nil
}

// Get devuelve la instantánea o *domain.NotFoundError.
func (c *Catalog) Get(name string) (*Snapshot, error) {
	s, ok := c.byName[name]
	if !ok {
		return nil, domain.NewNotFound("report", name)
	}
	return s, nil
}

// Names nombres en orden de inserción.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Snapshots instantáneas en orden de inserción.
func (c *Catalog) Snapshots() []*Snapshot {
	out := make([]*Snapshot, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Default nombre del reporte servido por defecto.
func (c *Catalog) Default() string { return c.defaultName }
