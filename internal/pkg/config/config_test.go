package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, CatalogSpanner, cfg.Catalog.Source)
	assert.Equal(t, GatewaySpanner, cfg.Gateway.Mode)
	assert.True(t, cfg.UsesSpanner())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":9090"
catalog:
  source: memory
  seed_file: ./catalog.yaml
gateway:
  mode: rest
  base_url: http://backend.local/api
  timeout: 3s
sessions:
  idle_ttl: 30m
`), 0o600))

	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, CatalogMemory, cfg.Catalog.Source)
	assert.Equal(t, "http://backend.local/api", cfg.Gateway.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTTL)
	assert.Equal(t, time.Minute, cfg.Sessions.SweepInterval)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.UsesSpanner())
}

func TestLoad_BadEnvDuration(t *testing.T) {
	t.Setenv("SESSION_IDLE_TTL", "soon")
	_, err := Load("")
	assert.ErrorContains(t, err, "SESSION_IDLE_TTL")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"memory without seed", func(c *Config) { c.Catalog.Source = CatalogMemory }, "seed_file"},
		{"unknown catalog", func(c *Config) { c.Catalog.Source = "csv" }, "catalog.source"},
		{"rest without url", func(c *Config) { c.Gateway.Mode = GatewayREST }, "base_url"},
		{"unknown gateway", func(c *Config) { c.Gateway.Mode = "kafka" }, "gateway.mode"},
		{"no spanner db", func(c *Config) { c.Spanner.Database = "" }, "spanner.database"},
		{"zero idle ttl", func(c *Config) { c.Sessions.IdleTTL = 0 }, "idle_ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
