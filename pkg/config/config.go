// Package config loads service configuration from defaults and environment
// variables, with struct-tag driven validation.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the migration service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host    string        `koanf:"host"    validate:"required"        env:"SERVER_HOST"`
	Port    int           `koanf:"port"    validate:"min=1,max=65535" env:"SERVER_PORT"`
	Timeout time.Duration `koanf:"timeout"                            env:"SERVER_TIMEOUT"`
}

// DatabaseConfig contains PostgreSQL connection configuration.
type DatabaseConfig struct {
	ConnString string `koanf:"conn_string" env:"DB_CONN_STRING"`
	Host       string `koanf:"host"        env:"DB_HOST"`
	Port       string `koanf:"port"        env:"DB_PORT"`
	User       string `koanf:"user"        env:"DB_USER"`
	Password   string `koanf:"password"    env:"DB_PASSWORD"`
	DBName     string `koanf:"name"        env:"DB_NAME"`
	SSLMode    string `koanf:"ssl_mode"    env:"DB_SSL_MODE"`
}

// DSN returns the connection string, assembling one from the discrete
// fields when conn_string is not set explicitly.
func (d *DatabaseConfig) DSN() string {
	if d.ConnString != "" {
		return d.ConnString
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error" env:"LOG_LEVEL"`
	JSON  bool   `koanf:"json"                                         env:"LOG_JSON"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    5001,
			Timeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			DBName:  "apollo",
			SSLMode: "disable",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
