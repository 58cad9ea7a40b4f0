package web

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration, read from the environment.
type Config struct {
	Addr         string        `env:"CIP_ADDR" envDefault:"127.0.0.1:8080"`
	Currency     string        `env:"CIP_CURRENCY" envDefault:"EUR"`
	ReadTimeout  time.Duration `env:"CIP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"CIP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"CIP_IDLE_TIMEOUT" envDefault:"60s"`
	RateLimit    int           `env:"CIP_RATE_LIMIT" envDefault:"60"` // requests per minute per client
	RateBurst    int           `env:"CIP_RATE_BURST" envDefault:"10"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	var errs error
	if cfg.RateLimit <= 0 {
		errs = errors.Join(errs, fmt.Errorf("CIP_RATE_LIMIT must be positive, got %d", cfg.RateLimit))
	}
	if cfg.RateBurst <= 0 {
		errs = errors.Join(errs, fmt.Errorf("CIP_RATE_BURST must be positive, got %d", cfg.RateBurst))
	}
	if errs != nil {
		return Config{}, errs
	}
	return cfg, nil
}
