package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/wallet-dashboard/internal/domain"
	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/internal/domain/repository"
)

// Asegura que CategoryRepo implementa repository.CategoryRepository.
var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo desglose por categorías persistido en PostgreSQL.
type CategoryRepo struct {
	q  Querier
	tx *TxRunner
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{q: pool, tx: NewTxRunner(pool)}
}

// ListCategories agrupa las filas (ordenadas por posición de categoría y rank) en registros.
func (r *CategoryRepo) ListCategories(ctx context.Context, report string) ([]entity.CategoryRecord, error) {
	const query = `
	SELECT category, entity_name, amount
	FROM report_category_entities
	WHERE report_name = $1
	ORDER BY category_position, rank`

	rows, err := r.q.Query(ctx, query, report)
	if err != nil {
		return nil, fmt.Errorf("postgres.ListCategories: %w", err)
	}
	defer rows.Close()

	records := []entity.CategoryRecord{}
	for rows.Next() {
		var (
			category string
			e        entity.EntityAmount
		)
		if err := rows.Scan(&category, &e.EntityName, &e.Amount); err != nil {
			return nil, fmt.Errorf("postgres.ListCategories scan: %w", err)
		}
		last := len(records) - 1
		if last < 0 || records[last].Name != category {
			records = append(records, entity.CategoryRecord{Name: category})
			last++
		}
		records[last].Entities = append(records[last].Entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres.ListCategories rows: %w", err)
	}
	return records, nil
}

// ReplaceCategories borra y vuelve a insertar el desglose del reporte en una transacción.
func (r *CategoryRepo) ReplaceCategories(ctx context.Context, report entity.Report) error {
	return r.tx.Run(ctx, func(q Querier) error {
		return replaceCategories(ctx, q, report)
	})
}

func replaceCategories(ctx context.Context, q Querier, report entity.Report) error {
	const upsertSnapshot = `
	INSERT INTO report_snapshots (name, title, currency, period, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (name) DO UPDATE
	SET title = EXCLUDED.title, currency = EXCLUDED.currency,
	    period = EXCLUDED.period, updated_at = now()`
	if _, err := q.Exec(ctx, upsertSnapshot, report.Name, report.Title, report.Currency, report.Period); err != nil {
		return fmt.Errorf("upsert report_snapshots: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM report_category_entities WHERE report_name = $1`, report.Name); err != nil {
		return fmt.Errorf("delete report_category_entities: %w", err)
	}

	batch := &pgx.Batch{}
	const insertEntity = `
	INSERT INTO report_category_entities
	    (report_name, category, category_position, rank, entity_name, amount)
	VALUES ($1, $2, $3, $4, $5, $6)`
	for pos, c := range report.Categories {
		for i, e := range c.Entities {
			batch.Queue(insertEntity, report.Name, c.Name, pos, i+1, e.EntityName, e.Amount)
		}
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert report_category_entities: categoría duplicada: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert report_category_entities: %w", err)
	}
	return nil
}
