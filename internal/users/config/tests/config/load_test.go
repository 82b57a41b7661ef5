package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermgmt/internal/users/config"
	"usermgmt/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "postgres", cfg.Postgres.User)
	assert.Equal(t, "postgres", cfg.Postgres.Password)
	assert.Equal(t, "users", cfg.Postgres.Database)
	assert.Equal(t, 1, cfg.Postgres.MinConn)
	assert.Equal(t, 10, cfg.Postgres.MaxConn)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "development", cfg.Logging.Mode)

	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 5, cfg.Shutdown.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	ctx := context.Background()

	t.Setenv("USERS_POSTGRES_HOST", "db.internal")
	t.Setenv("USERS_POSTGRES_PORT", "6432")
	t.Setenv("USERS_POSTGRES_USER", "svc_users")
	t.Setenv("USERS_POSTGRES_PASSWORD", "secret")
	t.Setenv("USERS_POSTGRES_DB", "users_prod")
	t.Setenv("USERS_POSTGRES_MIN_CONN", "2")
	t.Setenv("USERS_POSTGRES_MAX_CONN", "20")
	t.Setenv("USERS_HTTP_HOST", "127.0.0.1")
	t.Setenv("USERS_HTTP_PORT", "9090")
	t.Setenv("USERS_HTTP_READ_TIMEOUT", "15s")
	t.Setenv("USERS_HTTP_WRITE_TIMEOUT", "30s")
	t.Setenv("USERS_LOGGER_LEVEL", "debug")
	t.Setenv("USERS_LOGGER_MODE", "production")
	t.Setenv("USERS_BCRYPT_COST", "12")
	t.Setenv("USERS_GRACEFUL_SHUTDOWN_TIMEOUT", "15")

	cfg, err := config.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 6432, cfg.Postgres.Port)
	assert.Equal(t, "svc_users", cfg.Postgres.User)
	assert.Equal(t, "secret", cfg.Postgres.Password)
	assert.Equal(t, "users_prod", cfg.Postgres.Database)
	assert.Equal(t, 2, cfg.Postgres.MinConn)
	assert.Equal(t, 20, cfg.Postgres.MaxConn)

	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.GetAddress())
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())

	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 15*time.Second, cfg.Shutdown.GetTimeout())
}

func TestLoadInvalidPort(t *testing.T) {
	ctx := context.Background()

	t.Setenv("USERS_POSTGRES_PORT", "not-a-number")

	cfg, err := config.Load(ctx)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid syntax")
}

func TestGetDSN(t *testing.T) {
	cfg := &config.PostgresConfig{
		Host:     "db.internal",
		Port:     6432,
		User:     "svc_users",
		Password: "secret",
		Database: "users_prod",
	}

	dsn := cfg.GetDSN()

	assert.Equal(t, "host=db.internal port=6432 user=svc_users password=secret dbname=users_prod sslmode=disable", dsn)
}

func TestGetEnvironmentDefaultsToDevelopment(t *testing.T) {
	cfg := &config.LoggingConfig{Mode: "staging"}

	assert.Equal(t, logger.Development, cfg.GetEnvironment())
}
