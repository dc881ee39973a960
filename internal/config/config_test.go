package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/forgo/gamesdb/internal/database"
)

func validBaseConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:         database.DriverMongo,
			Host:           "localhost",
			Port:           "27017",
			Database:       "games",
			ConnectTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := validBaseConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantVar string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "GAMESDB_DRIVER"},
		{"missing host", func(c *Config) { c.Database.Host = "" }, "GAMESDB_HOST"},
		{"missing port", func(c *Config) { c.Database.Port = "" }, "GAMESDB_PORT"},
		{"non-numeric port", func(c *Config) { c.Database.Port = "mongo" }, "GAMESDB_PORT"},
		{"port out of range", func(c *Config) { c.Database.Port = "70000" }, "GAMESDB_PORT"},
		{"missing database", func(c *Config) { c.Database.Database = "" }, "GAMESDB_DATABASE"},
		{"zero timeout", func(c *Config) { c.Database.ConnectTimeout = 0 }, "GAMESDB_CONNECT_TIMEOUT"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "GAMESDB_LOG_LEVEL"},
		{"surrealdb without namespace", func(c *Config) {
			c.Database.Driver = database.DriverSurrealDB
			c.Database.Port = "8000"
		}, "GAMESDB_NAMESPACE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error mentioning %s", tt.wantVar)
			}
			if !strings.Contains(err.Error(), tt.wantVar) {
				t.Errorf("expected error to mention %s, got: %v", tt.wantVar, err)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""
	cfg.Database.Database = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "GAMESDB_HOST") || !strings.Contains(msg, "GAMESDB_DATABASE") {
		t.Errorf("expected both failures to be reported, got: %v", err)
	}
}

func TestConfig_Validate_SurrealDBWithNamespace(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Driver = database.DriverSurrealDB
	cfg.Database.Port = "8000"
	cfg.Database.Namespace = "games"

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{
		"GAMESDB_DRIVER", "GAMESDB_HOST", "GAMESDB_PORT", "GAMESDB_DATABASE",
		"GAMESDB_NAMESPACE", "GAMESDB_USER", "GAMESDB_PASSWORD",
		"GAMESDB_CONNECT_TIMEOUT", "GAMESDB_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Driver != database.DriverMongo {
		t.Errorf("expected default driver mongo, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Port != "27017" {
		t.Errorf("expected default port 27017, got %q", cfg.Database.Port)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", cfg.Database.ConnectTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got: %v", err)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GAMESDB_DRIVER", "surrealdb")
	t.Setenv("GAMESDB_HOST", "db.internal")
	t.Setenv("GAMESDB_PORT", "8000")
	t.Setenv("GAMESDB_NAMESPACE", "prod")
	t.Setenv("GAMESDB_DATABASE", "catalog")
	t.Setenv("GAMESDB_CONNECT_TIMEOUT", "3s")
	t.Setenv("GAMESDB_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	sc := cfg.StoreConfig()
	want := database.Config{
		Driver:         database.DriverSurrealDB,
		Host:           "db.internal",
		Port:           "8000",
		Namespace:      "prod",
		Database:       "catalog",
		ConnectTimeout: 3 * time.Second,
	}
	if sc != want {
		t.Errorf("StoreConfig() = %+v, want %+v", sc, want)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestLoad_PortDefaultsPerDriver(t *testing.T) {
	tests := []struct {
		driver string
		port   string
		want   string
	}{
		{database.DriverMongo, "", DefaultMongoPort},
		{database.DriverSurrealDB, "", DefaultSurrealDBPort},
		{database.DriverSurrealDB, "8443", "8443"},
	}

	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.want, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("GAMESDB_DRIVER", tt.driver)
			t.Setenv("GAMESDB_PORT", tt.port)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Database.Port != tt.want {
				t.Errorf("expected port %s, got %q", tt.want, cfg.Database.Port)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("expected valid config, got: %v", err)
			}
		})
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GAMESDB_CONNECT_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse env") {
		t.Errorf("expected parse env error, got: %v", err)
	}
}
