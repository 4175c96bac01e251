package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-balance-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir()) // sin .env ni config.env

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.LedgerSourceMemory, cfg.Ledger.Source)
	assert.Equal(t, int64(50000), cfg.Ledger.DefaultOpening)
	assert.Equal(t, "2023-01-01", cfg.Ledger.DefaultStart)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_SOURCE", "POSTGRES")
	t.Setenv("LEDGER_DEFAULT_OPENING", "1200")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("DB_MAX_CONNS", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.LedgerSourcePostgres, cfg.Ledger.Source)
	assert.Equal(t, int64(1200), cfg.Ledger.DefaultOpening)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.Equal(t, 10, cfg.DB.MaxConns, "un entero inválido conserva el default")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Error(t, cfg.Validate(), "sin JWT_SECRET debe fallar")

	cfg.JWT.Secret = "x"
	cfg.Ledger.Source = "mongo"
	assert.Error(t, cfg.Validate())

	cfg.Ledger.Source = config.LedgerSourceMemory
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "ops", Password: "p@ss/word", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://ops:p%40ss%2Fword@db:5432/ledger?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", db.ConnectionString())
}

// chdir cambia el directorio de trabajo durante el test y lo restaura al
// terminar (equivalente a testing.T.Chdir, disponible solo desde Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
