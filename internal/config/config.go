package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds configuration shared by the flightsched CLI and server.
type Config struct {
	Addr           string `yaml:"addr"`            // Listen address (default ":8080")
	LogLevel       string `yaml:"log_level"`       // Log level: debug, info, warn, error
	LogFormat      string `yaml:"log_format"`      // Log format: text, json
	DBPath         string `yaml:"db_path"`         // SQLite path (default ~/.flightsched/flightsched.db, ":memory:" for testing)
	Algorithm      string `yaml:"algorithm"`       // Default scheduling algorithm
	MetricsEnabled bool   `yaml:"metrics_enabled"` // Expose /metrics on the server
	RetentionDays  int    `yaml:"retention_days"`  // Server prunes runs older than this; 0 keeps everything
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		Algorithm:      "sjf",
		MetricsEnabled: true,
	}
}

// Environment variables that override file settings.
const (
	EnvAddr      = "FLIGHTSCHED_ADDR"
	EnvDBPath    = "FLIGHTSCHED_DB"
	EnvLogLevel  = "FLIGHTSCHED_LOG_LEVEL"
	EnvLogFormat = "FLIGHTSCHED_LOG_FORMAT"
	EnvAlgorithm = "FLIGHTSCHED_ALGORITHM"
	EnvMetrics   = "FLIGHTSCHED_METRICS"
	EnvRetention = "FLIGHTSCHED_RETENTION_DAYS"
)

// Load builds a Config from defaults, a .env file in the working directory
// (if any), the YAML file at path (if non-empty) and finally the
// environment. Later sources win.
func Load(path string) (Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	for env, dst := range map[string]*string{
		EnvAddr:      &c.Addr,
		EnvDBPath:    &c.DBPath,
		EnvLogLevel:  &c.LogLevel,
		EnvLogFormat: &c.LogFormat,
		EnvAlgorithm: &c.Algorithm,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvMetrics)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMetrics, err)
		}
		c.MetricsEnabled = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvRetention)); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return fmt.Errorf("%s: want a non-negative number of days, got %q", EnvRetention, v)
		}
		c.RetentionDays = days
	}
	return nil
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.flightsched/flightsched.db and creating its directory.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".flightsched")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "flightsched.db"), nil
}
