// Package config loads catbi5 defaults from the environment.
//
// Every setting can also be given on the command line; flags win over the
// environment, which wins over the built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "CATBI5_"

// Config represents the catbi5 configuration.
type Config struct {
	Separator   string        `env:"SEP" envDefault:"\t"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"warn"`
	Compression string        `env:"COMPRESSION" envDefault:"lzma"`
	PriceScale  int           `env:"PRICE_SCALE" envDefault:"0"`
	FilePeriod  time.Duration `env:"FILE_PERIOD" envDefault:"1h"`
	MetricsFile string        `env:"METRICS_FILE"`
}

// Load loads the configuration from the process environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom loads the configuration from the given variables instead of the
// process environment. Keys include the prefix.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PriceScale < 0 {
		return nil, fmt.Errorf("invalid %sPRICE_SCALE %d: must not be negative", Prefix, cfg.PriceScale)
	}

	return cfg, nil
}
