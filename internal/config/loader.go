package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads, populates, and validates the configuration.
//
// Steps, in order:
//  1. Enforce UTC as the process timezone to prevent drift bugs; every
//     forecast timestamp is location-local text, never process-local time.
//  2. Load a .env file if one exists (never overrides real env vars).
//  3. Process envconfig tags to populate the Config struct.
//  4. Validate the populated struct; any invalid value fails startup.
func Load() (*Config, error) {
	time.Local = time.UTC

	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
