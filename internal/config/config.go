// Package config provides centralized configuration management for studentctl.
// It loads settings from environment variables with sensible defaults and
// validates everything on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds PostgreSQL connection settings.
// The five identity values are configured individually rather than as a
// single URL so that none of them ends up hard-coded in source.
type DatabaseConfig struct {
	// Name is the database to connect to (required)
	Name string `env:"DB_NAME" required:"true"`

	// User is the database role to authenticate as (required)
	User string `env:"DB_USER" required:"true"`

	// Password is the password for User (required)
	Password string `env:"DB_PASSWORD" required:"true"`

	// Host is the database server hostname (default: localhost)
	Host string `env:"DB_HOST" default:"localhost"`

	// Port is the database server port (default: 5432)
	Port int `env:"DB_PORT" default:"5432"`

	// ConnectTimeout is the dial timeout for each scoped connection (default: 10s)
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DSN returns the PostgreSQL connection URL assembled from the configured
// values. The password is URL-escaped, so credentials with reserved
// characters survive the round trip through the driver's parser.
func (c *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.ConnectTimeout > 0 {
		q := url.Values{}
		q.Set("connect_timeout", strconv.Itoa(int(c.ConnectTimeout.Seconds())))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Database validation
	if c.Database.Name == "" {
		errs = append(errs, "DB_NAME is required")
	}
	if c.Database.User == "" {
		errs = append(errs, "DB_USER is required")
	}
	if c.Database.Password == "" {
		errs = append(errs, "DB_PASSWORD is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Sprintf("DB_PORT (%d) must be 1-65535", c.Database.Port))
	}
	if c.Database.ConnectTimeout <= 0 {
		errs = append(errs, "DB_CONNECT_TIMEOUT must be positive")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// The database password is masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Database: {Name: %q, User: %q, Password: [MASKED], Host: %q, Port: %d}, ",
		c.Database.Name, c.Database.User, c.Database.Host, c.Database.Port))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}",
		c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
