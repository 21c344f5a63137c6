package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/shell"
	"github.com/AntonStoeckl/drone-assembly-go/shell/codec"
)

// Config is the environment configuration of the drone assembly tools.
type Config struct {
	// CatalogPath is a JSON catalog file. Empty selects the embedded default catalog.
	CatalogPath string `env:"DRONE_CATALOG_PATH"`

	// MaxPrice is the advisory price ceiling. 0 means no ceiling.
	MaxPrice core.PriceFloat64 `env:"DRONE_MAX_PRICE" envDefault:"0"`

	LogLevel     slog.Level   `env:"DRONE_LOG_LEVEL"     envDefault:"info"`
	ExportFormat codec.Format `env:"DRONE_EXPORT_FORMAT" envDefault:"csv"`
}

// Parse reads the Config from environment variables.
func Parse() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values the env tags cannot express.
func (c Config) Validate() error {
	if c.MaxPrice < 0 {
		return fmt.Errorf("DRONE_MAX_PRICE %v: %w", c.MaxPrice, shell.ErrNegativeMaxPrice)
	}

	return nil
}

// PriceLimit converts MaxPrice to a core.PriceLimit. 0 means no limit.
func (c Config) PriceLimit() core.PriceLimit {
	if c.MaxPrice == 0 {
		return core.NoPriceLimit()
	}

	return core.PriceLimitOf(c.MaxPrice)
}
