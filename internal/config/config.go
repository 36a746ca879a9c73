// Package config loads importer settings from the environment
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

// Log levels accepted by LOG_LEVEL
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds process-wide settings
type Config struct {
	RedisURL         string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	IDPrefix         string `env:"ID_PREFIX" envDefault:"char"`
	CampaignIDPrefix string `env:"CAMPAIGN_ID_PREFIX" envDefault:"campaign"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("REDIS_URL", c.RedisURL, vb)
	errors.ValidateEnum("LOG_LEVEL", c.LogLevel, logLevels, vb)
	return vb.Build()
}

// SlogLevel maps LogLevel onto slog levels
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
