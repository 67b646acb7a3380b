package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":6060", cfg.HTTPAddr)
	assert.Equal(t, DriverJSONFile, cfg.StorageDriver)
	assert.Equal(t, "_data", cfg.DataDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BOOKINGS_HTTP_ADDR", ":9090")
	t.Setenv("BOOKINGS_STORAGE_DRIVER", "SQLite")
	t.Setenv("BOOKINGS_SQLITE_PATH", "/tmp/bookings.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/bookings.db", cfg.SQLitePath)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("BOOKINGS_STORAGE_DRIVER", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "postgres")
}
