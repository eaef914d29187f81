// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/database"
)

// Config returns settings for an isolated in-memory sqlite database.
func Config() *config.Config {
	return &config.Config{
		EnvType:            "LOCAL",
		DBDriver:           config.DriverSQLite,
		DBPath:             ":memory:",
		DBMigrationMode:    database.MigrationAuto,
		DBMaxIdleConns:     1,
		DBMaxOpenConns:     1,
		ServerPort:         "3000",
		GinMode:            "test",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
}

// NewPool opens a migrated in-memory database that is closed with the test.
func NewPool(t testing.TB) (*database.ConnectionPool, *config.Config) {
	t.Helper()

	cfg := Config()
	pool, err := database.NewConnectionPool(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	require.NoError(t, database.Migrate(pool.DB, cfg.DBMigrationMode))
	return pool, cfg
}
