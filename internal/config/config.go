// Package config loads application configuration from environment variables,
// with optional values from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Distance source kinds.
const (
	DistanceSourceRandom = "random"
	DistanceSourceTable  = "table"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Data     DataConfig
	Distance DistanceConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig bounds schedule lookups.
type TimeoutConfig struct {
	Request   time.Duration `env:"TIMEOUT_REQUEST" envDefault:"5s"`
	DataFetch time.Duration `env:"TIMEOUT_DATA_FETCH" envDefault:"2s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"whereto"`
}

// DataConfig locates the schedule dataset.
type DataConfig struct {
	SchedulesPath string        `env:"DATA_SCHEDULES_PATH" envDefault:"data/flights.json"`
	FetchRetries  int           `env:"DATA_FETCH_RETRIES" envDefault:"3"`
	RetryDelay    time.Duration `env:"DATA_RETRY_DELAY" envDefault:"200ms"`
	Timezone      string        `env:"DATA_TIMEZONE" envDefault:"UTC"`
}

// DistanceConfig selects and tunes the distance source.
type DistanceConfig struct {
	Source    string  `env:"DISTANCE_SOURCE" envDefault:"random"`
	TablePath string  `env:"DISTANCE_TABLE_PATH" envDefault:"data/distances.csv"`
	Min       int     `env:"DISTANCE_MIN" envDefault:"200"`
	Max       int     `env:"DISTANCE_MAX" envDefault:"500"`
	Fallback  float64 `env:"DISTANCE_TABLE_FALLBACK" envDefault:"0"`
	Symmetric bool    `env:"DISTANCE_SYMMETRIC" envDefault:"false"`
}

// AuthConfig configures bearer token authentication.
// An empty JWTSecret disables authentication: no request carries a user.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	Issuer    string `env:"AUTH_JWT_ISSUER" envDefault:"whereto"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout},
		{"TIMEOUT_REQUEST", cfg.Timeouts.Request},
		{"TIMEOUT_DATA_FETCH", cfg.Timeouts.DataFetch},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Timeouts.DataFetch >= cfg.Timeouts.Request {
		return fmt.Errorf("TIMEOUT_DATA_FETCH (%s) should be less than TIMEOUT_REQUEST (%s)",
			cfg.Timeouts.DataFetch, cfg.Timeouts.Request)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if cfg.Data.SchedulesPath == "" {
		return fmt.Errorf("DATA_SCHEDULES_PATH must not be empty")
	}
	if cfg.Data.FetchRetries < 1 {
		return fmt.Errorf("DATA_FETCH_RETRIES must be at least 1, got %d", cfg.Data.FetchRetries)
	}
	if cfg.Data.RetryDelay < 0 {
		return fmt.Errorf("DATA_RETRY_DELAY must not be negative")
	}

	switch cfg.Distance.Source {
	case DistanceSourceRandom:
		if cfg.Distance.Min < 0 || cfg.Distance.Max < cfg.Distance.Min {
			return fmt.Errorf("DISTANCE_MIN (%d) and DISTANCE_MAX (%d) must satisfy 0 <= min <= max",
				cfg.Distance.Min, cfg.Distance.Max)
		}
	case DistanceSourceTable:
		if cfg.Distance.TablePath == "" {
			return fmt.Errorf("DISTANCE_TABLE_PATH must be set when DISTANCE_SOURCE is %q", DistanceSourceTable)
		}
		if cfg.Distance.Fallback < 0 {
			return fmt.Errorf("DISTANCE_TABLE_FALLBACK must not be negative")
		}
	default:
		return fmt.Errorf("DISTANCE_SOURCE must be one of: random, table; got %q", cfg.Distance.Source)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// AuthEnabled reports whether bearer tokens are verified.
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}
