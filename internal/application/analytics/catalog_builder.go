package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
	"github.com/jhoicas/wallet-dashboard/internal/domain/repository"
)

// CatalogOptions parámetros de construcción del catálogo.
type CatalogOptions struct {
	TopN          int    // longitud del ranking por categoría (0 = metrics.DefaultTopN)
	DefaultReport string // vacío = primer reporte
}

// BuildCatalog carga las instantáneas y construye el catálogo inmutable.
//
// Si categories no es nil, el desglose por categorías de cada reporte se
// reemplaza por el persistido (consultas en paralelo); un reporte sin filas
// conserva el desglose de la fuente.
func BuildCatalog(
	ctx context.Context,
	source repository.ReportSource,
	categories repository.CategoryRepository,
	opts CatalogOptions,
) (*metrics.Catalog, error) {
	reports, err := source.LoadReports()
	if err != nil {
		return nil, fmt.Errorf("analytics.BuildCatalog: %w", err)
	}

	if categories != nil {
		overlays := make([][]entity.CategoryRecord, len(reports))
		g, gctx := errgroup.WithContext(ctx)
		for i := range reports {
			g.Go(func() error {
				recs, err := categories.ListCategories(gctx, reports[i].Name)
				if err != nil {
					return fmt.Errorf("categorías de %s: %w", reports[i].Name, err)
				}
				overlays[i] = recs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("analytics.BuildCatalog: %w", err)
		}
		for i, recs := range overlays {
			if len(recs) > 0 {
				reports[i].Categories = recs
			}
		}
	}

	snaps := make([]*metrics.Snapshot, 0, len(reports))
	for _, r := range reports {
		s, err := metrics.NewSnapshot(r, opts.TopN)
		if err != nil {
			return nil, fmt.Errorf("analytics.BuildCatalog: %w", err)
		}
		snaps = append(snaps, s)
	}
	catalog, err := metrics.NewCatalog(snaps, opts.DefaultReport)
	if err != nil {
		return nil, fmt.Errorf("analytics.BuildCatalog: %w", err)
	}
	return catalog, nil
}
