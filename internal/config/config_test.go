package config

import (
	"testing"
	"time"

	"jobboard/internal/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int64(24), cfg.JWTExpirationHours)
	assert.Equal(t, DriverMongo, cfg.StorageDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "jobboard", cfg.MongoDatabase)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30, cfg.AuthRateLimitPerMin)
	assert.Nil(t, cfg.DB)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_EXPIRATION_HOURS", "abc")
	t.Setenv("STORE_TIMEOUT", "soon")
	t.Setenv("AUTH_RATE_LIMIT_PER_MIN", "-3")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int64(24), cfg.JWTExpirationHours)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 30, cfg.AuthRateLimitPerMin)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("STORE_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example ,")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(2), cfg.JWTExpirationHours)
	assert.Equal(t, 250*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()

	assert.ErrorContains(t, err, "unsupported STORAGE_DRIVER")
}

func TestLoad_PostgresRequiresDBVars(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.ErrorContains(t, err, "database environment variables not set")

	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "jobs")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "jobboard")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.DB)
	assert.Equal(t, "host=localhost port=5432 user=jobs password=pw dbname=jobboard sslmode=disable", cfg.DB.DSN)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_init.sql", entries[0].Name())
}

func TestLoadEnvFile_MissingFileIsNotFatal(t *testing.T) {
	assert.NotPanics(t, func() { LoadEnvFile("does-not-exist.env") })
}
