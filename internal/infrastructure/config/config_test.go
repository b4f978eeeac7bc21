package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "purchase-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "memory", cfg.Import.LockBackend)
	assert.Equal(t, int64(10<<20), cfg.Import.MaxUploadSize)
	assert.Equal(t, 5*time.Minute, cfg.Import.LockTTL)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PURCHASE_DATABASE_HOST", "db.internal")
	t.Setenv("PURCHASE_IMPORT_LOCK_BACKEND", "redis")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "redis", cfg.Import.LockBackend)
}

func TestValidateRejectsBadLockBackend(t *testing.T) {
	t.Setenv("PURCHASE_IMPORT_LOCK_BACKEND", "zookeeper")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock_backend")
}

func TestValidateProduction(t *testing.T) {
	t.Setenv("PURCHASE_APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.password")

	t.Setenv("PURCHASE_DATABASE_PASSWORD", "secret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sslmode")

	t.Setenv("PURCHASE_DATABASE_SSLMODE", "require")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestDSNEscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user@corp",
		Password: "p@ss/word",
		DBName:   "purchase",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.True(t, strings.HasPrefix(dsn, "postgres://"))
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.RedisAddr())
}
