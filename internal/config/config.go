package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	envPostgresPassword = "WT_POSTGRES_PASSWORD"
	envRedisPassword    = "WT_REDIS_PASSWORD"
	envSentryDSN        = "SENTRY_DSN"
	envHoneycombEnabled = "HONEYCOMB_ENABLED"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost            string        `toml:"postgres_host"`
	PostgresPort            string        `toml:"postgres_port"`
	PostgresDBName          string        `toml:"postgres_db_name"`
	PostgresUser            string        `toml:"postgres_user"`
	PostgresMaxConns        int32         `toml:"postgres_max_conns"`
	PostgresMaxConnIdleTime time.Duration `toml:"postgres_max_conn_idle_time"`
	PostgresAcquireTimeout  time.Duration `toml:"postgres_acquire_timeout"`
	MigrateOnStart          bool          `toml:"migrate_on_start"`

	// redis, used for write rate limiting; empty host disables it
	RedisHost            string `toml:"redis_host"`
	RedisPort            string `toml:"redis_port"`
	WriteRateLimitPerMin int    `toml:"write_rate_limit_per_min"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// secrets, only from env
	PostgresPassword string `toml:"-"`
	RedisPassword    string `toml:"-"`
	SentryDSN        string `toml:"-"`
	HoneycombEnabled bool   `toml:"-"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file, picks the section for env, fills in defaults and reads
// secrets from the environment (a local .env file is loaded first when present).
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.PostgresPassword = os.Getenv(envPostgresPassword)
	cfg.RedisPassword = os.Getenv(envRedisPassword)
	cfg.SentryDSN = os.Getenv(envSentryDSN)
	cfg.HoneycombEnabled = os.Getenv(envHoneycombEnabled) == "true"

	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresHost == "" {
		c.PostgresHost = "localhost"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PostgresMaxConns == 0 {
		c.PostgresMaxConns = 10
	}
	if c.PostgresMaxConnIdleTime == 0 {
		c.PostgresMaxConnIdleTime = 30 * time.Minute
	}
	if c.PostgresAcquireTimeout == 0 {
		c.PostgresAcquireTimeout = 5 * time.Second
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.WriteRateLimitPerMin == 0 {
		c.WriteRateLimitPerMin = 60
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
}

func (c *Config) Validate() error {
	if c.PostgresDBName == "" {
		return errors.New("postgres_db_name not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PostgresMaxConns < 1 {
		return fmt.Errorf("invalid postgres_max_conns: %d", c.PostgresMaxConns)
	}
	return nil
}

// RateLimitEnabled reports whether writes go through the redis rate limiter.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisHost != "" && c.WriteRateLimitPerMin > 0
}
