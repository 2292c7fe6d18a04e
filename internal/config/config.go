// Package config defines the skycast service configuration. Configuration is
// loaded once at process initialization and is immutable thereafter; it
// follows 12-Factor principles by strictly separating code from
// configuration. Values come from the OS environment, with a .env file as a
// development convenience.
package config

import "time"

// Config is the top-level configuration struct.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Server   ServerConfig
	Database DatabaseConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"29s"`
}

// DatabaseConfig holds the Postgres connection settings for the favourites
// store. An empty URL disables favourites entirely; the insight endpoints do
// not need a database.
type DatabaseConfig struct {
	URL      string `envconfig:"DATABASE_URL"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

// UpstreamConfig holds the forecast provider endpoints and client tuning.
type UpstreamConfig struct {
	ForecastURL       string        `envconfig:"FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`
	GeocodeURL        string        `envconfig:"GEOCODE_URL" default:"https://geocoding-api.open-meteo.com/v1/search" validate:"required,url"`
	UserAgent         string        `envconfig:"UPSTREAM_USER_AGENT" default:"skycast/1.0"`
	Timeout           time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	RequestsPerSecond float64       `envconfig:"UPSTREAM_RPS" default:"5"`
	Burst             int           `envconfig:"UPSTREAM_BURST" default:"5"`
}

// CacheConfig holds the forecast cache tuning.
type CacheConfig struct {
	TTL time.Duration `envconfig:"FORECAST_CACHE_TTL" default:"20m"`
}
