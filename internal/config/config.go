package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/forgo/gamesdb/internal/database"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
}

// DatabaseConfig holds document store connection settings
type DatabaseConfig struct {
	Driver         string        `env:"GAMESDB_DRIVER" envDefault:"mongo"`
	Host           string        `env:"GAMESDB_HOST" envDefault:"localhost"`
	Port           string        `env:"GAMESDB_PORT"`
	Database       string        `env:"GAMESDB_DATABASE" envDefault:"gamesdb"`
	Namespace      string        `env:"GAMESDB_NAMESPACE" envDefault:"gamesdb"`
	User           string        `env:"GAMESDB_USER"`
	Password       string        `env:"GAMESDB_PASSWORD"`
	ConnectTimeout time.Duration `env:"GAMESDB_CONNECT_TIMEOUT" envDefault:"10s"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `env:"GAMESDB_LOG_LEVEL" envDefault:"info"`
}

// Default ports used when GAMESDB_PORT is unset
const (
	DefaultMongoPort     = "27017"
	DefaultSurrealDBPort = "8000"
)

// Load reads configuration from the environment. Values in .env and
// .env.local are applied first when those files exist; variables already set
// in the environment take precedence. An unset port defaults to the
// driver's standard port.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = defaultPort(cfg.Database.Driver)
	}
	return &cfg, nil
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case database.DriverMongo, database.DriverSurrealDB:
	default:
		errs = append(errs, fmt.Errorf("GAMESDB_DRIVER must be '%s' or '%s', got '%s'",
			database.DriverMongo, database.DriverSurrealDB, c.Database.Driver))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("GAMESDB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("GAMESDB_PORT is required"))
	} else if p, err := strconv.Atoi(c.Database.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("GAMESDB_PORT must be a port number, got '%s'", c.Database.Port))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("GAMESDB_DATABASE is required"))
	}
	if c.Database.Driver == database.DriverSurrealDB && c.Database.Namespace == "" {
		errs = append(errs, errors.New("GAMESDB_NAMESPACE is required for the surrealdb driver"))
	}
	if c.Database.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("GAMESDB_CONNECT_TIMEOUT must be positive"))
	}

	if _, ok := parseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("GAMESDB_LOG_LEVEL must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// StoreConfig returns the connection settings in the form the database
// package expects.
func (c *Config) StoreConfig() database.Config {
	return database.Config{
		Driver:         c.Database.Driver,
		Host:           c.Database.Host,
		Port:           c.Database.Port,
		User:           c.Database.User,
		Password:       c.Database.Password,
		Namespace:      c.Database.Namespace,
		Database:       c.Database.Database,
		ConnectTimeout: c.Database.ConnectTimeout,
	}
}

func defaultPort(driver string) string {
	if driver == database.DriverSurrealDB {
		return DefaultSurrealDBPort
	}
	return DefaultMongoPort
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
