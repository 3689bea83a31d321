// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend names accepted by TASKS_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
)

// Config holds all configuration options for the task store service.
type Config struct {
	Port    string
	Backend string

	// sqlite backend
	DBPath string

	// mysql backend
	MySQLDSN string

	Auth AuthConfig
}

// AuthConfig holds the basic-auth settings for the task routes.
type AuthConfig struct {
	Enabled  bool
	Username string
	Password string
	Realm    string
}

// Load builds a Config from environment variables, applying defaults, and
// validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("TASKS_PORT", "8080"),
		Backend:  getEnv("TASKS_BACKEND", BackendMemory),
		DBPath:   getEnv("TASKS_DB_PATH", "./data/tasks.db"),
		MySQLDSN: os.Getenv("TASKS_MYSQL_DSN"),
		Auth: AuthConfig{
			Enabled:  getEnvBool("TASKS_AUTH", false),
			Username: getEnv("TASKS_AUTH_USER", "admin"),
			Password: os.Getenv("TASKS_AUTH_PASSWORD"),
			Realm:    getEnv("TASKS_AUTH_REALM", "tasks"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistent settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite, BackendMySQL:
	default:
		return fmt.Errorf("unknown backend %q: must be %s, %s or %s",
			c.Backend, BackendMemory, BackendSQLite, BackendMySQL)
	}

	if c.Backend == BackendMySQL && c.MySQLDSN == "" {
		return fmt.Errorf("TASKS_MYSQL_DSN is required for the %s backend", BackendMySQL)
	}

	if c.Auth.Enabled {
		if c.Auth.Username == "" {
			return fmt.Errorf("TASKS_AUTH_USER must not be empty when auth is enabled")
		}
		if c.Auth.Password == "" {
			return fmt.Errorf("TASKS_AUTH_PASSWORD is required when auth is enabled")
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
