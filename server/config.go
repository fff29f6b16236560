package server

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid server config")

// CacheConfig mirrors computus.CacheConfig for the YAML file
type CacheConfig struct {
	Disabled   bool `yaml:"disabled"`
	MaxEntries int  `yaml:"max_entries"` // 0 = unbounded
}

// Config holds the settings of the holiday feed server
type Config struct {
	Listen    string `yaml:"listen"`     // e.g. :8080
	URLPrefix string `yaml:"url_prefix"` // e.g. /holidays/

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MetricsPath serves Prometheus metrics when not empty
	MetricsPath string `yaml:"metrics_path"`
	LogLevel    string `yaml:"log_level"` // debug|info|warn|error

	// Requested years outside [MinYear, MaxYear] are rejected
	MinYear int `yaml:"min_year"`
	MaxYear int `yaml:"max_year"`

	Cache CacheConfig `yaml:"cache"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	c := Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.URLPrefix == "" {
		c.URLPrefix = "/"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 120 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 15 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	// Gregorian computus range
	if c.MinYear == 0 {
		c.MinYear = 1583
	}
	if c.MaxYear == 0 {
		c.MaxYear = 4099
	}
}

// Validate reports the first inconsistent setting
func (c Config) Validate() error {
	if c.MinYear > c.MaxYear {
		return fmt.Errorf("%w: min_year %d is after max_year %d", ErrInvalidConfig, c.MinYear, c.MaxYear)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("%w: cache.max_entries must not be negative", ErrInvalidConfig)
	}
	if c.MetricsPath != "" && !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("%w: metrics_path %q must start with /", ErrInvalidConfig, c.MetricsPath)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// ParseConfig decodes a YAML document, applies defaults and validates it
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads the YAML file at path
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(b)
}
