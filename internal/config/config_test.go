package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Dashboard.ItemsPerPage)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("DB_SEED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.DSN())
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.InDelta(t, 2.5, cfg.HTTP.RateLimitRPS, 1e-9)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		Database:    DatabaseConfig{Driver: "postgres"},
		Dashboard:   DashboardConfig{ItemsPerPage: 10},
	}
	assert.Error(t, cfg.Validate())

	cfg.Database.Password = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = "mongo"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "sqlite"
	cfg.Dashboard.ItemsPerPage = 0
	assert.Error(t, cfg.Validate())
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Database: "shops", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shops sslmode=disable", d.DSN())
}
