package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wallet-dashboard/internal/domain/entity"
	"github.com/jhoicas/wallet-dashboard/internal/domain/repository"
	"github.com/jhoicas/wallet-dashboard/pkg/config"
)

type fakeCategories struct {
	byReport map[string][]entity.CategoryRecord
}

func (f fakeCategories) ListCategories(_ context.Context, report string) ([]entity.CategoryRecord, error) {
	return f.byReport[report], nil
}

func (f fakeCategories) ReplaceCategories(context.Context, entity.Report) error { return nil }

func testConfig(source string) *config.Config {
	return &config.Config{Report: config.ReportConfig{Source: source, Default: "annual-2024", TopN: 5}}
}

func TestLoadCatalog_EmbeddedNoAbreRepositorio(t *testing.T) {
	open := func(context.Context, config.DBConfig) (repository.CategoryRepository, func(), error) {
		t.Fatal("no debe abrir el repositorio con REPORT_SOURCE=embedded")
		return nil, nil, nil
	}
	catalog, closeFn, err := LoadCatalog(context.Background(), testConfig(config.SourceEmbedded), open)
	require.NoError(t, err)
	defer closeFn()

	snap, err := catalog.Get("annual-2024")
	require.NoError(t, err)
	assert.Equal(t, "Banking", snap.Categories.Default())
}

func TestLoadCatalog_PostgresUsaElRepositorio(t *testing.T) {
	closed := false
	repo := fakeCategories{byReport: map[string][]entity.CategoryRecord{
		"annual-2024": {{Name: "Remittance", Entities: []entity.EntityAmount{
			{EntityName: "ACME REMIT", Amount: decimal.NewFromInt(1200)},
		}}},
	}}
	open := func(context.Context, config.DBConfig) (repository.CategoryRepository, func(), error) {
		return repo, func() { closed = true }, nil
	}

	catalog, closeFn, err := LoadCatalog(context.Background(), testConfig(config.SourcePostgres), open)
	require.NoError(t, err)

	snap, err := catalog.Get("annual-2024")
	require.NoError(t, err)
	assert.Equal(t, []string{"Remittance"}, snap.Categories.Categories())

	// sin filas persistidas conserva el desglose embebido
	nov, err := catalog.Get("november-2024")
	require.NoError(t, err)
	assert.Equal(t, "Banking", nov.Categories.Default())

	assert.False(t, closed)
	closeFn()
	assert.True(t, closed)
}

func TestLoadCatalog_ErrorAlAbrir(t *testing.T) {
	boom := errors.New("sin conexión")
	open := func(context.Context, config.DBConfig) (repository.CategoryRepository, func(), error) {
		return nil, nil, boom
	}
	_, closeFn, err := LoadCatalog(context.Background(), testConfig(config.SourcePostgres), open)
	assert.ErrorIs(t, err, boom)
	assert.NotNil(t, closeFn)
}
