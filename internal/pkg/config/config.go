package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CatalogSpanner = "spanner"
	CatalogMemory  = "memory"

	GatewayREST    = "rest"
	GatewaySpanner = "spanner"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Log      LogConfig      `yaml:"log"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Spanner  SpannerConfig  `yaml:"spanner"`
	Redis    RedisConfig    `yaml:"redis"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Sessions SessionsConfig `yaml:"sessions"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type GRPCConfig struct {
	// Addr serves the gRPC health service. Empty disables it.
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type CatalogConfig struct {
	Source   string `yaml:"source"`
	SeedFile string `yaml:"seed_file"`
}

type SpannerConfig struct {
	Database string `yaml:"database"`
}

type RedisConfig struct {
	// Addr enables the catalog cache when set.
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type GatewayConfig struct {
	Mode    string        `yaml:"mode"`
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

type SessionsConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		GRPC: GRPCConfig{Addr: ":50051"},
		Log:  LogConfig{Level: "info"},
		Catalog: CatalogConfig{
			Source: CatalogSpanner,
		},
		Spanner: SpannerConfig{
			Database: "projects/test-project/instances/emulator-instance/databases/test-db",
		},
		Redis: RedisConfig{CacheTTL: 5 * time.Minute},
		Gateway: GatewayConfig{
			Mode:    GatewaySpanner,
			Timeout: 10 * time.Second,
		},
		Sessions: SessionsConfig{
			IdleTTL:       2 * time.Hour,
			SweepInterval: time.Minute,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv overrides fields from environment variables.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.HTTP.Addr = v
	}
	if v, ok := os.LookupEnv("GRPC_ADDR"); ok {
		c.GRPC.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CATALOG_SOURCE"); v != "" {
		c.Catalog.Source = v
	}
	if v := os.Getenv("CATALOG_SEED_FILE"); v != "" {
		c.Catalog.SeedFile = v
	}
	if v := os.Getenv("SPANNER_DATABASE"); v != "" {
		c.Spanner.Database = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("GATEWAY_MODE"); v != "" {
		c.Gateway.Mode = v
	}
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		c.Gateway.BaseURL = v
	}
	if v := os.Getenv("BACKEND_TOKEN"); v != "" {
		c.Gateway.Token = v
	}

	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_DEVELOPMENT: %w", err)
		}
		c.Log.Development = b
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		c.Redis.DB = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"HTTP_REQUEST_TIMEOUT", &c.HTTP.RequestTimeout},
		{"HTTP_SHUTDOWN_TIMEOUT", &c.HTTP.ShutdownTimeout},
		{"REDIS_CACHE_TTL", &c.Redis.CacheTTL},
		{"BACKEND_TIMEOUT", &c.Gateway.Timeout},
		{"SESSION_IDLE_TTL", &c.Sessions.IdleTTL},
		{"SESSION_SWEEP_INTERVAL", &c.Sessions.SweepInterval},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

// Validate checks that the selected components have what they need.
func (c Config) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}

	switch c.Catalog.Source {
	case CatalogSpanner:
	case CatalogMemory:
		if c.Catalog.SeedFile == "" {
			errs = append(errs, errors.New("catalog.seed_file is required for the memory catalog"))
		}
	default:
		errs = append(errs, fmt.Errorf("catalog.source %q must be %q or %q", c.Catalog.Source, CatalogSpanner, CatalogMemory))
	}

	switch c.Gateway.Mode {
	case GatewaySpanner:
	case GatewayREST:
		if c.Gateway.BaseURL == "" {
			errs = append(errs, errors.New("gateway.base_url is required for the rest gateway"))
		}
	default:
		errs = append(errs, fmt.Errorf("gateway.mode %q must be %q or %q", c.Gateway.Mode, GatewayREST, GatewaySpanner))
	}

	if c.UsesSpanner() && c.Spanner.Database == "" {
		errs = append(errs, errors.New("spanner.database is required"))
	}
	if c.Sessions.IdleTTL <= 0 {
		errs = append(errs, errors.New("sessions.idle_ttl must be positive"))
	}
	if c.Sessions.SweepInterval <= 0 {
		errs = append(errs, errors.New("sessions.sweep_interval must be positive"))
	}
	return errors.Join(errs...)
}

// UsesSpanner reports whether any component needs a Spanner client.
func (c Config) UsesSpanner() bool {
	return c.Catalog.Source == CatalogSpanner || c.Gateway.Mode == GatewaySpanner
}
