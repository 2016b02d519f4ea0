// Package bootstrap arma el catálogo de reportes a partir de la configuración.
// Lo comparten cmd/api y cmd/dashctl para que REPORT_SOURCE signifique lo mismo
// en ambos binarios.
package bootstrap

import (
	"context"
	"fmt"

	appanalytics "github.com/jhoicas/wallet-dashboard/internal/application/analytics"
	"github.com/jhoicas/wallet-dashboard/internal/domain/metrics"
	"github.com/jhoicas/wallet-dashboard/internal/domain/repository"
	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/wallet-dashboard/internal/infrastructure/snapshot"
	"github.com/jhoicas/wallet-dashboard/pkg/config"
)

// CategoryRepoOpener abre el repositorio de categorías persistidas y devuelve
// la función que libera la conexión.
type CategoryRepoOpener func(ctx context.Context, db config.DBConfig) (repository.CategoryRepository, func(), error)

// OpenPostgresCategories abre un pool pgx contra cfg.
func OpenPostgresCategories(ctx context.Context, db config.DBConfig) (repository.CategoryRepository, func(), error) {
	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return postgres.NewCategoryRepository(pool), pool.Close, nil
}

// LoadCatalog construye el catálogo sobre las instantáneas embebidas. Con
// REPORT_SOURCE=postgres el desglose por categorías se lee del repositorio que
// abre open. El cierre devuelto nunca es nil.
func LoadCatalog(ctx context.Context, cfg *config.Config, open CategoryRepoOpener) (*metrics.Catalog, func(), error) {
	closeFn := func() {}

	var categories repository.CategoryRepository
	if cfg.Report.Source == config.SourcePostgres {
		repo, closeRepo, err := open(ctx, cfg.DB)
		if err != nil {
			return nil, closeFn, err
		}
		categories = repo
		if closeRepo != nil {
			closeFn = closeRepo
		}
	}

	catalog, err := appanalytics.BuildCatalog(ctx, snapshot.NewEmbeddedSource(), categories, appanalytics.CatalogOptions{
		TopN:          cfg.Report.TopN,
		DefaultReport: cfg.Report.Default,
	})
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return catalog, closeFn, nil
}
