// Package config provides configuration for the ladle service, loaded from
// defaults, an optional YAML file, LADLE_-prefixed environment variables, and
// CLI flags, in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
)

// Store backend types.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Default configuration values.
const (
	DefaultPort         = 8010
	DefaultLimit        = 10
	DefaultStoreType    = StoreMemory
	DefaultDatabasePath = ".ladle/recipes.db"
	DefaultLogLevel     = "info"
)

// Config holds all service configuration options.
type Config struct {
	Addr         string `koanf:"addr"`
	Port         int    `koanf:"port"`
	StoreType    string `koanf:"store_type"`
	DatabasePath string `koanf:"database"`
	DSN          string `koanf:"dsn"`
	SeedFile     string `koanf:"seed_file"`
	DefaultLimit int    `koanf:"default_limit"`
	LogLevel     string `koanf:"log_level"`
	Verbose      bool   `koanf:"verbose"`
	Watch        bool   `koanf:"watch"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.StoreType {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("unknown store type %q (expected memory, sqlite, or postgres)", c.StoreType)
	}

	if c.StoreType == StorePostgres && c.DSN == "" {
		return fmt.Errorf("dsn is required for the postgres store")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level. Verbose forces
// debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
