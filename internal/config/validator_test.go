package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	t.Run("missing schema version", func(t *testing.T) {
		clearEnvVars(t)
		err := ValidateEnv(BackendMemory)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("schema version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.1")
		err := ValidateEnv(BackendMemory)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("postgres missing vars", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("DB_USER", "postgres")
		err := ValidateEnv(BackendPostgres)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
		assert.NotContains(t, err.Error(), "DB_USER")
	})

	t.Run("sqlite complete", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("SQLITE_PATH", "companion.db")
		assert.NoError(t, ValidateEnv(BackendSQLite))
	})

	t.Run("unknown backend", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		assert.Error(t, ValidateEnv("mongo"))
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", DefaultExampleDBSecret)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "companion")
	t.Setenv("CACHE_SIZE", "0")

	warnings, err := ValidateEnvWithWarnings(BackendPostgres)
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
}
