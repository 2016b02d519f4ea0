package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, SourceEmbedded, cfg.Report.Source)
	assert.Equal(t, "annual-2024", cfg.Report.Default)
	assert.Equal(t, 5, cfg.Report.TopN)
	assert.False(t, cfg.JWT.Enabled())
}

func TestFromViper_PortTienePrioridad(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"PORT": "9090", "HTTP_PORT": "7070"}))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)

	cfg, err = fromViper(newViper(map[string]any{"HTTP_PORT": "7070"}))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.HTTP.Port)
}

func TestFromViper_Invalidos(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"PORT": "abc"}))
	assert.Error(t, err)

	_, err = fromViper(newViper(map[string]any{"REPORT_SOURCE": "sqlite"}))
	assert.Error(t, err)

	_, err = fromViper(newViper(map[string]any{"REPORT_TOP_N": -2}))
	assert.Error(t, err)
}

func TestFromViper_EnterosNoNumericosNombranLaClave(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"expiración", "JWT_EXPIRATION_MINUTES", "eight-hours"},
		{"top n", "REPORT_TOP_N", "five"},
		{"puerto db", "DB_PORT", "pg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(map[string]any{tt.key: tt.raw}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			assert.Contains(t, err.Error(), tt.raw)
			assert.NotContains(t, err.Error(), "negativo")
		})
	}
}

func TestFromViper_ExpiracionDebeSerPositiva(t *testing.T) {
	for _, raw := range []any{0, "0", -15} {
		_, err := fromViper(newViper(map[string]any{"JWT_EXPIRATION_MINUTES": raw}))
		require.Error(t, err, "valor %v", raw)
		assert.Contains(t, err.Error(), "JWT_EXPIRATION_MINUTES")
	}

	cfg, err := fromViper(newViper(map[string]any{"JWT_EXPIRATION_MINUTES": "60"}))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestFromViper_SourceInsensibleAMayusculas(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"REPORT_SOURCE": "Postgres"}))
	require.NoError(t, err)
	assert.Equal(t, SourcePostgres, cfg.Report.Source)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "x", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/x?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
