// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Data source kinds accepted by DATA_SOURCE.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Search   SearchConfig
	Data     DataConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds itinerary search settings.
type SearchConfig struct {
	Origin  string        `env:"SEARCH_ORIGIN" envDefault:"Vienna"`
	OneOpt  float64       `env:"SEARCH_ONE_OPT" envDefault:"25"`
	Workers int           `env:"SEARCH_WORKERS" envDefault:"1"`
	Timeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"5s"`
}

// DataConfig selects where the destinations and stay-length tables come from.
type DataConfig struct {
	Source      string `env:"DATA_SOURCE" envDefault:"file"`
	FlightsFile string `env:"DATA_FLIGHTS_FILE" envDefault:"flights.json"`
	DaysFile    string `env:"DATA_DAYS_FILE" envDefault:"optimal_days.json"`
}

// DatabaseConfig holds PostgreSQL settings, used when DATA_SOURCE=postgres.
type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"5"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
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
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}

	// Validate search settings
	if cfg.Search.Origin == "" {
		return fmt.Errorf("SEARCH_ORIGIN must not be empty")
	}
	if !(cfg.Search.OneOpt > 0) || math.IsInf(cfg.Search.OneOpt, 1) {
		return fmt.Errorf("SEARCH_ONE_OPT must be positive and finite, got %g", cfg.Search.OneOpt)
	}
	if cfg.Search.Workers < 1 {
		return fmt.Errorf("SEARCH_WORKERS must be at least 1, got %d", cfg.Search.Workers)
	}

	// Validate data source
	switch cfg.Data.Source {
	case SourceFile:
		if cfg.Data.FlightsFile == "" || cfg.Data.DaysFile == "" {
			return fmt.Errorf("DATA_FLIGHTS_FILE and DATA_DAYS_FILE are required when DATA_SOURCE=file")
		}
	case SourcePostgres:
		if cfg.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
		if cfg.Database.MaxOpenConns < 1 {
			return fmt.Errorf("DATABASE_MAX_OPEN_CONNS must be at least 1, got %d", cfg.Database.MaxOpenConns)
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of: file, postgres; got %q", cfg.Data.Source)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
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

// UsesPostgres reports whether the tables are read from PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.Data.Source == SourcePostgres
}
